package redeban

import (
	"errors"
	"fmt"

	"github.com/DanielPopoola/redeban-payment-bridge/internal/domain"
)

var (
	ErrNotConfigured  = errors.New("redeban environment is not configured")
	ErrMissingAppCode = errors.New("client app code is required")
	ErrMissingAppKey  = errors.New("client app key is required")

	errDecode = errors.New("decode response")
)

// Processor error types produced locally rather than by the API.
const (
	ErrTypeNetwork       = "network"
	ErrTypeDecode        = "decode"
	ErrTypeHTTP          = "http"
	ErrTypeConfiguration = "configuration"
)

// APIError is a non-200 answer from the card API.
type APIError struct {
	StatusCode  int
	Type        string
	Help        string
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("redeban error [%s]: %s (status: %d)", e.Type, e.Description, e.StatusCode)
}

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}

// toProcessorError classifies a request failure for the token callback.
func toProcessorError(err error) *domain.ProcessorError {
	if apiErr, ok := IsAPIError(err); ok {
		return &domain.ProcessorError{
			Type:        apiErr.Type,
			Help:        apiErr.Help,
			Description: apiErr.Description,
		}
	}

	errType := ErrTypeNetwork
	switch {
	case errors.Is(err, errDecode):
		errType = ErrTypeDecode
	case errors.Is(err, ErrNotConfigured):
		errType = ErrTypeConfiguration
	}
	return &domain.ProcessorError{Type: errType, Description: err.Error()}
}
