package e2e

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DanielPopoola/redeban-payment-bridge/internal/infrastructure/redeban"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/tests/e2e/testdata"
	"github.com/stretchr/testify/require"
)

// Envelope is the channel response shape.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

// TestClient wraps HTTP calls to the bridge channel
type TestClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *TestClient) WithToken(token string) *TestClient {
	clone := *c
	clone.token = token
	return &clone
}

// Call posts args to /v1/channel/{method}
func (c *TestClient) Call(t *testing.T, method string, args map[string]any) (int, Envelope) {
	t.Helper()

	if args == nil {
		args = map[string]any{}
	}
	body, err := json.Marshal(args)
	require.NoError(t, err)

	httpReq, err := http.NewRequest(http.MethodPost, c.baseURL+"/v1/channel/"+method, bytes.NewReader(body))
	require.NoError(t, err)
	httpReq.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	require.NoError(t, err)
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env Envelope
	require.NoError(t, json.Unmarshal(bodyBytes, &env), string(bodyBytes))
	return resp.StatusCode, env
}

func (c *TestClient) Tokenize(t *testing.T, card testdata.TestCard) (int, Envelope) {
	t.Helper()
	return c.Call(t, "tokenizeCard", map[string]any{
		"userId":     "user-e2e",
		"email":      "e2e@example.com",
		"cardNumber": card.CardNumber,
		"holderName": "E2E Holder",
		"expMonth":   card.ExpiryMonth,
		"expYear":    card.ExpiryYear,
		"cvc":        card.CVC,
	})
}

// FakeRedeban emulates the card add endpoint and records the app codes it
// saw in Auth-Token headers.
type FakeRedeban struct {
	*httptest.Server

	mu       sync.Mutex
	appCodes []string
}

func NewFakeRedeban() *FakeRedeban {
	f := &FakeRedeban{}
	f.Server = httptest.NewServer(http.HandlerFunc(f.handle))
	return f
}

func (f *FakeRedeban) AppCodes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.appCodes...)
}

func (f *FakeRedeban) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != "/v2/card/add" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	raw, err := base64.StdEncoding.DecodeString(r.Header.Get("Auth-Token"))
	parts := strings.Split(string(raw), ";")
	if err != nil || len(parts) != 3 {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"type":"auth","help":"","description":"invalid auth token"}}`))
		return
	}
	f.mu.Lock()
	f.appCodes = append(f.appCodes, parts[0])
	f.mu.Unlock()

	var req redeban.AddCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch req.Card.Number {
	case testdata.DeclinedCard.CardNumber:
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"D1","help":"contact bank","description":"card declined"}}`))
	case testdata.NoDataCard.CardNumber:
		_, _ = w.Write([]byte(`{}`))
	default:
		_ = json.NewEncoder(w).Encode(map[string]any{
			"card": map[string]any{
				"status":                "valid",
				"token":                 "tok-" + req.User.ID,
				"expiry_month":          req.Card.ExpiryMonth,
				"expiry_year":           req.Card.ExpiryYear,
				"transaction_reference": "RB-" + req.SessionID[:8],
				"type":                  req.Card.Type,
				"number":                req.Card.Number[len(req.Card.Number)-4:],
				"card_id":               "card-" + req.User.ID,
				"country":               "CO",
			},
		})
	}
}
