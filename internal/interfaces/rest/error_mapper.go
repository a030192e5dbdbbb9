package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/redeban-payment-bridge/internal/domain"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/i18n"
)

type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string               `json:"code"`
	Message string               `json:"message"`
	Details *domain.ErrorDetails `json:"details,omitempty"`
}

// ToHTTPStatus maps a bridge error code to its channel status.
func ToHTTPStatus(code string) int {
	switch code {
	case domain.ErrCodeValidation, domain.ErrCodeInvalidArgument:
		return http.StatusBadRequest
	case domain.ErrCodeTokenize:
		return http.StatusUnprocessableEntity
	case domain.ErrCodeCardNull:
		return http.StatusBadGateway
	case domain.ErrCodeNotImplemented:
		return http.StatusNotImplemented
	case domain.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case domain.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// BuildErrorResponse turns any error into the channel envelope. Errors that
// are not BridgeErrors are reported as INTERNAL_ERROR without their text.
func BuildErrorResponse(ctx context.Context, err error) (int, ErrorResponse) {
	bridgeErr, ok := domain.AsBridgeError(err)
	if !ok {
		bridgeErr = &domain.BridgeError{
			Code:    domain.ErrCodeInternal,
			Message: i18n.Sprintf(ctx, domain.MsgInternal),
			Err:     err,
		}
	}

	return ToHTTPStatus(bridgeErr.Code), ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Code:    bridgeErr.Code,
			Message: bridgeErr.Message,
			Details: bridgeErr.Details,
		},
	}
}

// WriteError maps errors to HTTP responses
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status, response := BuildErrorResponse(r.Context(), err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"code", response.Error.Code,
			"error", err,
		)
	}
	WriteJSON(w, status, response, logger)
}

func WriteSuccess(w http.ResponseWriter, data any, logger *slog.Logger) {
	WriteJSON(w, http.StatusOK, SuccessResponse{Success: true, Data: data}, logger)
}

func WriteJSON(w http.ResponseWriter, status int, body any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("failed to encode response", "error", err)
	}
}
