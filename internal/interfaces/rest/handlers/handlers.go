package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/DanielPopoola/redeban-payment-bridge/internal/application"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/interfaces/rest"
	"github.com/go-chi/chi/v5"
)

// Dispatcher runs a channel method call.
type Dispatcher interface {
	Call(ctx context.Context, call application.MethodCall) *application.Future
}

type Handlers struct {
	bridge      Dispatcher
	docs        []byte
	callTimeout time.Duration
	logger      *slog.Logger
}

func NewHandlers(bridge Dispatcher, docs *Docs, callTimeout time.Duration, logger *slog.Logger) *Handlers {
	return &Handlers{
		bridge:      bridge,
		docs:        docs.JSON(),
		callTimeout: callTimeout,
		logger:      logger,
	}
}

// AppendRoutes mounts the channel routes. Middleware passed in protect only
// the channel itself.
func (h *Handlers) AppendRoutes(r chi.Router, channelMiddleware ...func(http.Handler) http.Handler) {
	r.Get("/healthz", h.Health)
	r.Get("/openapi.json", h.OpenAPI)

	r.Route("/v1/channel", func(r chi.Router) {
		r.Use(channelMiddleware...)
		r.Post("/{method}", h.Channel)
	})
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	rest.WriteSuccess(w, map[string]string{"status": "ok"}, h.logger)
}

func (h *Handlers) OpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.docs)
}
