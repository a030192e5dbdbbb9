package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/DanielPopoola/redeban-payment-bridge/internal/application"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/domain"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/i18n"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/interfaces/rest"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 64 << 10

// Channel invokes the method named in the path with the JSON body as its
// argument bag and waits for the call to resolve.
func (h *Handlers) Channel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	method := chi.URLParam(r, "method")

	args, err := decodeArguments(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		rest.WriteError(w, r, &domain.BridgeError{
			Code:    domain.ErrCodeInvalidArgument,
			Message: i18n.Sprintf(ctx, domain.MsgInvalidBody),
			Err:     err,
		}, h.logger)
		return
	}

	future := h.bridge.Call(ctx, application.MethodCall{Method: method, Arguments: args})

	waitCtx, cancel := context.WithTimeout(ctx, h.callTimeout)
	defer cancel()

	outcome, err := future.Wait(waitCtx)
	if err != nil {
		rest.WriteError(w, r, &domain.BridgeError{
			Code:    domain.ErrCodeTimeout,
			Message: i18n.Sprintf(ctx, domain.MsgTimeout),
			Err:     err,
		}, h.logger)
		return
	}

	switch {
	case outcome.NotImplemented:
		rest.WriteError(w, r, &domain.BridgeError{
			Code:    domain.ErrCodeNotImplemented,
			Message: i18n.Sprintf(ctx, domain.MsgNotImplemented),
			Err:     domain.ErrNotImplemented,
		}, h.logger)
	case outcome.Err != nil:
		rest.WriteError(w, r, outcome.Err, h.logger)
	default:
		rest.WriteSuccess(w, outcome.Value, h.logger)
	}
}

// decodeArguments reads a JSON object. An empty body is an empty bag.
// Numbers stay json.Number so integer arguments keep their exact value.
func decodeArguments(body io.Reader) (application.Arguments, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("error reading body: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return application.Arguments{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var args map[string]any
	if err := dec.Decode(&args); err != nil {
		return nil, fmt.Errorf("error decoding json: %w", err)
	}
	if args == nil {
		return nil, errors.New("body must be a JSON object")
	}
	if dec.More() {
		return nil, errors.New("unexpected data after JSON object")
	}

	return application.Arguments(args), nil
}
