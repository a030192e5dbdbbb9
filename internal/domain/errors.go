package domain

import (
	"errors"
	"fmt"
)

// BridgeError is the error envelope returned to channel callers.
type BridgeError struct {
	Code    string
	Message string
	Details *ErrorDetails
	Err     error
}

// ErrorDetails carries the structured part of a processor failure.
type ErrorDetails struct {
	Type        string `json:"type"`
	Help        string `json:"help"`
	Description string `json:"description"`
}

func (e *BridgeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *BridgeError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeInit       = "INIT_ERROR"
	ErrCodeSession    = "SESSION_ERROR"
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeCardNull   = "CARD_NULL"
	ErrCodeTokenize   = "TOKENIZE_ERROR"

	// Transport level codes, never produced by the bridge operations.
	ErrCodeInvalidArgument = "INVALID_ARGUMENT"
	ErrCodeNotImplemented  = "NOT_IMPLEMENTED"
	ErrCodeUnauthorized    = "UNAUTHORIZED"
	ErrCodeTimeout         = "TIMEOUT"
	ErrCodeInternal        = "INTERNAL_ERROR"
)

// Fixed messages. They double as i18n catalog keys.
const (
	MsgInitialized        = "SDK initialized successfully"
	MsgInvalidExpiration  = "invalid expiration month or year"
	MsgInvalidCardData    = "invalid card data"
	MsgCardNull           = "card is null"
	MsgUnknownError       = "unknown error"
	MsgNotImplemented     = "method not implemented"
	MsgInvalidArgumentFmt = "argument %s must be of type %s"

	MsgInvalidBody  = "request body must be a JSON object"
	MsgUnauthorized = "missing or invalid bearer token"
	MsgTimeout      = "request timed out waiting for completion"
	MsgInternal     = "an internal error occurred"
)

// ErrNotImplemented is returned when a method name is not part of the channel.
var ErrNotImplemented = errors.New("method not implemented")

func NewInitError(err error) *BridgeError {
	return &BridgeError{
		Code:    ErrCodeInit,
		Message: causeMessage(err),
		Err:     err,
	}
}

func NewSessionError(err error) *BridgeError {
	return &BridgeError{
		Code:    ErrCodeSession,
		Message: causeMessage(err),
		Err:     err,
	}
}

func NewValidationError(message string, err error) *BridgeError {
	return &BridgeError{
		Code:    ErrCodeValidation,
		Message: message,
		Err:     err,
	}
}

func NewCardNullError(message string) *BridgeError {
	return &BridgeError{
		Code:    ErrCodeCardNull,
		Message: message,
	}
}

// NewTokenizeError maps a processor failure. A nil failure yields empty details
// and the fallback message.
func NewTokenizeError(pe *ProcessorError, fallback string) *BridgeError {
	if pe == nil {
		pe = &ProcessorError{}
	}

	message := pe.Description
	if message == "" {
		message = fallback
	}

	return &BridgeError{
		Code:    ErrCodeTokenize,
		Message: message,
		Details: &ErrorDetails{
			Type:        pe.Type,
			Help:        pe.Help,
			Description: pe.Description,
		},
		Err: pe,
	}
}

// IsErrorCode checks if an error is a BridgeError with a specific code
func IsErrorCode(err error, code string) bool {
	var bridgeErr *BridgeError
	if errors.As(err, &bridgeErr) {
		return bridgeErr.Code == code
	}
	return false
}

// AsBridgeError unwraps err into a BridgeError when possible.
func AsBridgeError(err error) (*BridgeError, bool) {
	var bridgeErr *BridgeError
	ok := errors.As(err, &bridgeErr)
	return bridgeErr, ok
}

func causeMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// ProcessorError is the structured failure reported by the card processor.
type ProcessorError struct {
	Type        string
	Help        string
	Description string
}

func (e *ProcessorError) Error() string {
	return fmt.Sprintf("processor error [%s]: %s", e.Type, e.Description)
}
