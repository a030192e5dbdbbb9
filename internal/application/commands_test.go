package application_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/DanielPopoola/redeban-payment-bridge/internal/application"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCommand_Init(t *testing.T) {
	t.Run("defaults when arguments are absent", func(t *testing.T) {
		cmd, err := application.DecodeCommand(application.MethodCall{Method: "initRedeban"})

		require.NoError(t, err)
		assert.Equal(t, application.InitCommand{TestMode: true}, cmd)
	})

	t.Run("reads provided arguments", func(t *testing.T) {
		cmd, err := application.DecodeCommand(application.MethodCall{
			Method: "initRedeban",
			Arguments: application.Arguments{
				"testMode":      false,
				"clientAppCode": "APP-CODE",
				"clientAppKey":  "app-key",
			},
		})

		require.NoError(t, err)
		assert.Equal(t, application.InitCommand{
			TestMode:      false,
			ClientAppCode: "APP-CODE",
			ClientAppKey:  "app-key",
		}, cmd)
	})

	t.Run("nil testMode keeps default", func(t *testing.T) {
		cmd, err := application.DecodeCommand(application.MethodCall{
			Method:    "initRedeban",
			Arguments: application.Arguments{"testMode": nil},
		})

		require.NoError(t, err)
		assert.True(t, cmd.(application.InitCommand).TestMode)
	})

	t.Run("rejects mistyped testMode", func(t *testing.T) {
		_, err := application.DecodeCommand(application.MethodCall{
			Method:    "initRedeban",
			Arguments: application.Arguments{"testMode": "false"},
		})

		var argErr *application.ArgumentError
		require.True(t, errors.As(err, &argErr))
		assert.Equal(t, "initRedeban", argErr.Method)
		assert.Equal(t, "testMode", argErr.Key)
		assert.Equal(t, "boolean", argErr.Want)
	})
}

func TestDecodeCommand_Tokenize(t *testing.T) {
	t.Run("defaults when arguments are absent", func(t *testing.T) {
		cmd, err := application.DecodeCommand(application.MethodCall{Method: "tokenizeCard"})

		require.NoError(t, err)
		assert.Equal(t, application.TokenizeCardCommand{}, cmd)
	})

	t.Run("accepts json numbers", func(t *testing.T) {
		cmd, err := application.DecodeCommand(application.MethodCall{
			Method: "tokenizeCard",
			Arguments: application.Arguments{
				"userId":     "u-1",
				"email":      "ana@example.com",
				"cardNumber": "4111111111111111",
				"holderName": "Ana",
				"expMonth":   json.Number("12"),
				"expYear":    float64(2035),
				"cvc":        "123",
			},
		})

		require.NoError(t, err)
		assert.Equal(t, application.TokenizeCardCommand{
			UserID:     "u-1",
			Email:      "ana@example.com",
			CardNumber: "4111111111111111",
			HolderName: "Ana",
			ExpMonth:   12,
			ExpYear:    2035,
			CVC:        "123",
		}, cmd)
	})

	t.Run("rejects fractional month", func(t *testing.T) {
		_, err := application.DecodeCommand(application.MethodCall{
			Method:    "tokenizeCard",
			Arguments: application.Arguments{"expMonth": 1.5},
		})

		var argErr *application.ArgumentError
		require.True(t, errors.As(err, &argErr))
		assert.Equal(t, "expMonth", argErr.Key)
		assert.Equal(t, "integer", argErr.Want)
	})

	t.Run("rejects numeric card number", func(t *testing.T) {
		_, err := application.DecodeCommand(application.MethodCall{
			Method:    "tokenizeCard",
			Arguments: application.Arguments{"cardNumber": 4111111111111111},
		})

		var argErr *application.ArgumentError
		require.True(t, errors.As(err, &argErr))
		assert.Equal(t, "cardNumber", argErr.Key)
	})
}

func TestDecodeCommand_SessionID(t *testing.T) {
	cmd, err := application.DecodeCommand(application.MethodCall{
		Method:    "getSessionId",
		Arguments: application.Arguments{"ignored": true},
	})

	require.NoError(t, err)
	assert.Equal(t, application.MethodGetSessionID, cmd.Method())
}

func TestDecodeCommand_Unknown(t *testing.T) {
	for _, method := range []string{"", "init", "deleteCard", "TOKENIZECARD"} {
		t.Run(method, func(t *testing.T) {
			cmd, err := application.DecodeCommand(application.MethodCall{Method: method})

			assert.Nil(t, cmd)
			assert.True(t, errors.Is(err, domain.ErrNotImplemented))
		})
	}
}
