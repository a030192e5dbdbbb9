package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielPopoola/redeban-payment-bridge/internal/application"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/domain"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/i18n"
	"github.com/go-playground/validator"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/DanielPopoola/redeban-payment-bridge/internal/application/services"

// Bridge dispatches channel method calls to the payment SDK.
type Bridge struct {
	sdk      application.PaymentSDK
	logger   *slog.Logger
	tracer   trace.Tracer
	validate *validator.Validate
	now      func() time.Time
}

type Option func(*Bridge)

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(b *Bridge) {
		b.tracer = tp.Tracer(tracerName)
	}
}

// WithClock overrides the clock used for card expiry checks.
func WithClock(now func() time.Time) Option {
	return func(b *Bridge) {
		b.now = now
	}
}

func NewBridge(sdk application.PaymentSDK, logger *slog.Logger, opts ...Option) *Bridge {
	b := &Bridge{
		sdk:      sdk,
		logger:   logger,
		tracer:   otel.Tracer(tracerName),
		validate: validator.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Call dispatches one method call. Synchronous methods return an already
// resolved future; tokenizeCard resolves when the SDK calls back.
func (b *Bridge) Call(ctx context.Context, call application.MethodCall) *application.Future {
	start := time.Now()
	cmd, decodeErr := application.DecodeCommand(call)

	spanName := "bridge.notImplemented"
	if cmd != nil {
		spanName = "bridge." + cmd.Method()
	}
	ctx, span := b.tracer.Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("bridge.method", call.Method)),
	)

	future := application.NewFuture().
		OnResolve(func(o application.Outcome) {
			b.finish(span, call.Method, o, time.Since(start))
		}).
		OnDrop(func(o application.Outcome) {
			b.logger.Warn("dropped duplicate call resolution",
				"method", call.Method,
				"outcome", outcomeLabel(o),
			)
		})

	switch {
	case errors.Is(decodeErr, domain.ErrNotImplemented):
		future.NotImplemented()
	case decodeErr != nil:
		future.Fail(b.argumentError(ctx, call.Method, decodeErr))
	default:
		b.execute(ctx, cmd, future)
	}

	return future
}

func (b *Bridge) execute(ctx context.Context, cmd application.Command, future *application.Future) {
	switch c := cmd.(type) {
	case application.InitCommand:
		b.initialize(ctx, c, future)
	case application.SessionIDCommand:
		b.sessionID(ctx, future)
	case application.TokenizeCardCommand:
		b.tokenizeCard(ctx, c, future)
	default:
		future.NotImplemented()
	}
}

func (b *Bridge) argumentError(ctx context.Context, method string, err error) *domain.BridgeError {
	var argErr *application.ArgumentError
	message := err.Error()
	if errors.As(err, &argErr) {
		message = i18n.Sprintf(ctx, domain.MsgInvalidArgumentFmt, argErr.Key, argErr.Want)
	}

	if method == application.MethodInitRedeban {
		return &domain.BridgeError{Code: domain.ErrCodeInit, Message: message, Err: err}
	}
	return domain.NewValidationError(message, err)
}

func (b *Bridge) finish(span trace.Span, method string, o application.Outcome, elapsed time.Duration) {
	label := outcomeLabel(o)
	span.SetAttributes(attribute.String("bridge.outcome", label))

	switch {
	case o.Err != nil:
		span.SetStatus(codes.Error, o.Err.Message)
		b.logger.Warn("bridge call failed",
			"method", method,
			"code", o.Err.Code,
			"error", o.Err.Message,
			"duration", elapsed,
		)
	case o.NotImplemented:
		span.SetStatus(codes.Error, domain.MsgNotImplemented)
		b.logger.Info("bridge method not implemented", "method", method)
	default:
		span.SetStatus(codes.Ok, "")
		b.logger.Info("bridge call completed",
			"method", method,
			"duration", elapsed,
		)
	}
	span.End()
}

func outcomeLabel(o application.Outcome) string {
	switch {
	case o.Err != nil:
		return o.Err.Code
	case o.NotImplemented:
		return domain.ErrCodeNotImplemented
	default:
		return "SUCCESS"
	}
}

// guard converts an SDK panic into an error so a call always resolves.
func guard(fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("sdk panic: %v", rec)
		}
	}()
	return fn()
}
