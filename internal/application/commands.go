package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/DanielPopoola/redeban-payment-bridge/internal/domain"
)

// Channel method names.
const (
	MethodInitRedeban  = "initRedeban"
	MethodGetSessionID = "getSessionId"
	MethodTokenizeCard = "tokenizeCard"
)

// MethodCall is a named invocation with its argument bag.
type MethodCall struct {
	Method    string
	Arguments Arguments
}

// Command is one decoded channel request.
type Command interface {
	Method() string
}

type InitCommand struct {
	TestMode      bool
	ClientAppCode string
	ClientAppKey  string
}

func (InitCommand) Method() string { return MethodInitRedeban }

type SessionIDCommand struct{}

func (SessionIDCommand) Method() string { return MethodGetSessionID }

type TokenizeCardCommand struct {
	UserID     string
	Email      string
	CardNumber string
	HolderName string
	ExpMonth   int
	ExpYear    int
	CVC        string
}

func (TokenizeCardCommand) Method() string { return MethodTokenizeCard }

// ArgumentError reports a present argument of the wrong type.
type ArgumentError struct {
	Method string
	Key    string
	Want   string
	Got    any
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: argument %s must be of type %s, got %T", e.Method, e.Key, e.Want, e.Got)
}

// Arguments is the caller supplied argument bag. Absent keys and nil values
// take the getter's default.
type Arguments map[string]any

func (a Arguments) Bool(key string, def bool) (bool, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return def, &ArgumentError{Key: key, Want: "boolean", Got: v}
	}
	return b, nil
}

func (a Arguments) String(key string, def string) (string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return def, &ArgumentError{Key: key, Want: "string", Got: v}
	}
	return s, nil
}

// Int accepts Go integer types, json.Number and integral floats.
func (a Arguments) Int(key string, def int) (int, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return def, nil
	}

	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		if n < math.MinInt32 || n > math.MaxInt32 {
			break
		}
		return int(n), nil
	case float64:
		if n != math.Trunc(n) || n < math.MinInt32 || n > math.MaxInt32 {
			break
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil || i < math.MinInt32 || i > math.MaxInt32 {
			break
		}
		return int(i), nil
	}
	return def, &ArgumentError{Key: key, Want: "integer", Got: v}
}

// DecodeCommand turns a MethodCall into its typed command. Unknown methods
// yield domain.ErrNotImplemented; mistyped arguments yield *ArgumentError.
func DecodeCommand(call MethodCall) (Command, error) {
	var (
		cmd Command
		err error
	)

	switch call.Method {
	case MethodInitRedeban:
		cmd, err = decodeInit(call.Arguments)
	case MethodGetSessionID:
		cmd = SessionIDCommand{}
	case MethodTokenizeCard:
		cmd, err = decodeTokenize(call.Arguments)
	default:
		return nil, errNotImplemented(call.Method)
	}

	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		argErr.Method = call.Method
	}
	return cmd, err
}

func errNotImplemented(method string) error {
	return fmt.Errorf("%w: %q", domain.ErrNotImplemented, method)
}

func decodeInit(args Arguments) (Command, error) {
	var (
		cmd InitCommand
		err error
	)
	if cmd.TestMode, err = args.Bool("testMode", true); err != nil {
		return nil, err
	}
	if cmd.ClientAppCode, err = args.String("clientAppCode", ""); err != nil {
		return nil, err
	}
	if cmd.ClientAppKey, err = args.String("clientAppKey", ""); err != nil {
		return nil, err
	}
	return cmd, nil
}

func decodeTokenize(args Arguments) (Command, error) {
	var (
		cmd TokenizeCardCommand
		err error
	)

	fields := []struct {
		key string
		dst *string
	}{
		{"userId", &cmd.UserID},
		{"email", &cmd.Email},
		{"cardNumber", &cmd.CardNumber},
		{"holderName", &cmd.HolderName},
		{"cvc", &cmd.CVC},
	}
	for _, f := range fields {
		if *f.dst, err = args.String(f.key, ""); err != nil {
			return nil, err
		}
	}

	if cmd.ExpMonth, err = args.Int("expMonth", 0); err != nil {
		return nil, err
	}
	if cmd.ExpYear, err = args.Int("expYear", 0); err != nil {
		return nil, err
	}
	return cmd, nil
}
