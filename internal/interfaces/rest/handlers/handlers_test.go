package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DanielPopoola/redeban-payment-bridge/internal/application"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/application/services"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/domain"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string               `json:"code"`
		Message string               `json:"message"`
		Details *domain.ErrorDetails `json:"details"`
	} `json:"error"`
}

// pendingDispatcher never resolves its futures.
type pendingDispatcher struct{}

func (pendingDispatcher) Call(context.Context, application.MethodCall) *application.Future {
	return application.NewFuture()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRouter(t *testing.T, bridge handlers.Dispatcher, callTimeout time.Duration) http.Handler {
	t.Helper()
	docs, err := handlers.LoadDocs(context.Background())
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(middleware.Locale)
	handlers.NewHandlers(bridge, docs, callTimeout, discardLogger()).AppendRoutes(r)
	return r
}

func newBridgeRouter(t *testing.T) (http.Handler, *mocks.MockPaymentSDK) {
	t.Helper()
	sdk := mocks.NewMockPaymentSDK(t)
	bridge := services.NewBridge(sdk, discardLogger(), services.WithClock(func() time.Time {
		return time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)
	}))
	return newRouter(t, bridge, time.Second), sdk
}

func do(t *testing.T, h http.Handler, method, path, body string, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") && path != "/openapi.json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestChannel_InitDefaultsToTestMode(t *testing.T) {
	router, sdk := newBridgeRouter(t)
	sdk.EXPECT().ConfigureEnvironment(mock.Anything, domain.Environment{TestMode: true}).Return(nil).Once()

	rec, env := do(t, router, http.MethodPost, "/v1/channel/initRedeban", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `"SDK initialized successfully"`, string(env.Data))
}

func TestChannel_SessionError(t *testing.T) {
	router, sdk := newBridgeRouter(t)
	sdk.EXPECT().FetchSessionID(mock.Anything).Return("", errors.New("environment is not configured")).Once()

	rec, env := do(t, router, http.MethodPost, "/v1/channel/getSessionId", `{}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, domain.ErrCodeSession, env.Error.Code)
	assert.Equal(t, "environment is not configured", env.Error.Message)
}

func TestChannel_TokenizeSuccess(t *testing.T) {
	router, sdk := newBridgeRouter(t)
	sdk.EXPECT().
		SubmitCardForTokenization(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, req application.TokenizationRequest, cb application.TokenCallback) {
			go cb.OnSuccess(&domain.TokenizedCard{
				Last4: "4242", Type: "vi", ExpiryMonth: 12, ExpiryYear: 2030,
				Status: "valid", Token: "tok", TransactionReference: "ref",
				CardID: "id", Country: "CO",
			})
		}).
		Once()

	body := `{"userId":"u","email":"e@x.co","cardNumber":"4242424242424242",
		"holderName":"Jane","expMonth":12,"expYear":2030,"cvc":"123"}`
	rec, env := do(t, router, http.MethodPost, "/v1/channel/tokenizeCard", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"last4":"4242","type":"vi","expiryMonth":12,"expiryYear":2030,
		"status":"valid","token":"tok","transactionReference":"ref",
		"cardId":"id","country":"CO"}`, string(env.Data))
}

func TestChannel_ErrorStatuses(t *testing.T) {
	validCard := `"userId":"u","email":"e","cardNumber":"4242424242424242","cvc":"123","expYear":2030`

	tests := []struct {
		name       string
		body       string
		callback   func(application.TokenCallback)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "expiry out of range",
			body:       `{` + validCard + `,"expMonth":13}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   domain.ErrCodeValidation,
		},
		{
			name:       "mistyped month",
			body:       `{` + validCard + `,"expMonth":"12"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   domain.ErrCodeValidation,
		},
		{
			name:       "null card",
			body:       `{` + validCard + `,"expMonth":12}`,
			callback:   func(cb application.TokenCallback) { cb.OnSuccess(nil) },
			wantStatus: http.StatusBadGateway,
			wantCode:   domain.ErrCodeCardNull,
		},
		{
			name: "declined",
			body: `{` + validCard + `,"expMonth":12}`,
			callback: func(cb application.TokenCallback) {
				cb.OnError(&domain.ProcessorError{Type: "D1", Help: "contact bank", Description: "card declined"})
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   domain.ErrCodeTokenize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, sdk := newBridgeRouter(t)
			if tt.callback != nil {
				sdk.EXPECT().
					SubmitCardForTokenization(mock.Anything, mock.Anything, mock.Anything).
					Run(func(_ context.Context, _ application.TokenizationRequest, cb application.TokenCallback) {
						tt.callback(cb)
					}).
					Once()
			}

			rec, env := do(t, router, http.MethodPost, "/v1/channel/tokenizeCard", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestChannel_DeclinedCarriesDetails(t *testing.T) {
	router, sdk := newBridgeRouter(t)
	sdk.EXPECT().
		SubmitCardForTokenization(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ application.TokenizationRequest, cb application.TokenCallback) {
			cb.OnError(&domain.ProcessorError{Type: "D1", Help: "contact bank", Description: "card declined"})
		}).
		Once()

	body := `{"cardNumber":"4242424242424242","cvc":"123","expMonth":12,"expYear":2030}`
	_, env := do(t, router, http.MethodPost, "/v1/channel/tokenizeCard", body)

	require.NotNil(t, env.Error)
	assert.Equal(t, "card declined", env.Error.Message)
	assert.Equal(t, &domain.ErrorDetails{Type: "D1", Help: "contact bank", Description: "card declined"}, env.Error.Details)
}

func TestChannel_NotImplemented(t *testing.T) {
	router, _ := newBridgeRouter(t)

	rec, env := do(t, router, http.MethodPost, "/v1/channel/chargeCard", `{"amount":10}`)

	assert.Equal(t, http.StatusNotImplemented, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, domain.ErrCodeNotImplemented, env.Error.Code)
}

func TestChannel_MalformedBody(t *testing.T) {
	router, _ := newBridgeRouter(t)

	for _, body := range []string{`{"a":`, `[1,2]`, `null`, `{} {}`} {
		rec, env := do(t, router, http.MethodPost, "/v1/channel/getSessionId", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		require.NotNil(t, env.Error, body)
		assert.Equal(t, domain.ErrCodeInvalidArgument, env.Error.Code, body)
	}
}

func TestChannel_TimesOutWaiting(t *testing.T) {
	router := newRouter(t, pendingDispatcher{}, 20*time.Millisecond)

	rec, env := do(t, router, http.MethodPost, "/v1/channel/tokenizeCard", `{}`)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, domain.ErrCodeTimeout, env.Error.Code)
}

func TestChannel_SpanishMessages(t *testing.T) {
	router, _ := newBridgeRouter(t)

	rec, env := do(t, router, http.MethodPost, "/v1/channel/tokenizeCard", `{"expMonth":0}`, "Accept-Language", "es-CO,es;q=0.9")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "es", rec.Header().Get("Content-Language"))
	require.NotNil(t, env.Error)
	assert.Equal(t, "Mes o año de expiración inválido", env.Error.Message)
}

func TestHealthAndDocs(t *testing.T) {
	router, _ := newBridgeRouter(t)

	rec, env := do(t, router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))

	rec, _ = do(t, router, http.MethodGet, "/openapi.json", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])
	assert.Contains(t, doc["paths"], "/v1/channel/{method}")
}

func TestLoadDocs(t *testing.T) {
	docs, err := handlers.LoadDocs(context.Background())
	require.NoError(t, err)

	op := docs.Document().Paths.Find("/v1/channel/{method}").Post
	require.NotNil(t, op)
	assert.Equal(t, "callMethod", op.OperationID)
}
