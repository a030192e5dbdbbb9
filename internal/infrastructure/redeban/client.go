package redeban

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/DanielPopoola/redeban-payment-bridge/internal/application"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/config"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/domain"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const addCardPath = "/v2/card/add"

// Client is the application.PaymentSDK backed by the Redeban card API.
type Client struct {
	testBaseURL string
	prodBaseURL string
	httpClient  *http.Client
	logger      *slog.Logger
	now         func() time.Time

	mu  sync.RWMutex
	env *domain.Environment

	inflight sync.WaitGroup
}

var _ application.PaymentSDK = (*Client)(nil)

func NewClient(cfg config.RedebanConfig, logger *slog.Logger) *Client {
	return &Client{
		testBaseURL: strings.TrimRight(cfg.TestBaseURL, "/"),
		prodBaseURL: strings.TrimRight(cfg.ProdBaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   cfg.ConnTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
		now:    time.Now,
	}
}

func (c *Client) ConfigureEnvironment(_ context.Context, env domain.Environment) error {
	if env.ClientAppCode == "" {
		return ErrMissingAppCode
	}
	if env.ClientAppKey == "" {
		return ErrMissingAppKey
	}

	c.mu.Lock()
	c.env = &env
	c.mu.Unlock()
	return nil
}

// FetchSessionID issues a fresh 32 character hex session id.
func (c *Client) FetchSessionID(_ context.Context) (string, error) {
	if _, err := c.environment(); err != nil {
		return "", err
	}
	return newSessionID(), nil
}

// SubmitCardForTokenization posts the card from a background goroutine and
// reports through callback exactly once. The request outlives ctx
// cancellation but keeps its values.
func (c *Client) SubmitCardForTokenization(ctx context.Context, req application.TokenizationRequest, callback application.TokenCallback) {
	env, err := c.environment()
	if err != nil {
		callback.OnError(toProcessorError(err))
		return
	}

	detached := context.WithoutCancel(ctx)
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()

		card, err := c.addCard(detached, env, req)
		if err != nil {
			c.logger.Warn("card tokenization failed", "user_id", req.UserID, "error", err)
			callback.OnError(toProcessorError(err))
			return
		}
		callback.OnSuccess(card)
	}()
}

// Drain waits for in-flight submissions or until ctx ends.
func (c *Client) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) addCard(ctx context.Context, env domain.Environment, req application.TokenizationRequest) (*domain.TokenizedCard, error) {
	url := fmt.Sprintf("%s%s", c.baseURL(env), addCardPath)
	body := newAddCardRequest(newSessionID(), req.UserID, req.Email, req.Card)

	resp, err := sendRequest[AddCardRequest, AddCardResponse](c, ctx, env, http.MethodPost, url, &body)
	if err != nil {
		return nil, err
	}
	if resp.Card == nil {
		return nil, nil
	}
	return resp.Card.toDomain(), nil
}

func (c *Client) environment() (domain.Environment, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.env == nil {
		return domain.Environment{}, ErrNotConfigured
	}
	return *c.env, nil
}

func (c *Client) baseURL(env domain.Environment) string {
	if env.TestMode {
		return c.testBaseURL
	}
	return c.prodBaseURL
}

func newSessionID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func sendRequest[Req any, Resp any](c *Client, ctx context.Context, env domain.Environment, method, url string, reqBody *Req) (*Resp, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set(authHeader, authToken(env.ClientAppCode, env.ClientAppKey, c.now()))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var errResp ErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error == (ErrorBody{}) {
			return nil, &APIError{
				StatusCode:  resp.StatusCode,
				Type:        ErrTypeHTTP,
				Description: fmt.Sprintf("redeban returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
			}
		}
		return nil, &APIError{
			StatusCode:  resp.StatusCode,
			Type:        errResp.Error.Type,
			Help:        errResp.Error.Help,
			Description: errResp.Error.Description,
		}
	}

	var out Resp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", errDecode, err)
	}

	return &out, nil
}
