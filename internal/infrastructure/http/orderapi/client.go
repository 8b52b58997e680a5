package orderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"storefront/internal/config"
	"storefront/internal/domain/catalog"
	"storefront/internal/domain/order"
	"storefront/pkg/logger"
)

// Error bodies are surfaced to the user verbatim, cap how much we read.
const maxErrorBody = 8 << 10

// Client talks to the order-service REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        logger.Logger
}

func NewClient(cfg config.APIConfig, log logger.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	dialTimeout := time.Duration(cfg.DialTimeoutSec) * time.Second
	if dialTimeout <= 0 {
		dialTimeout = 5 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		log:     log,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   dialTimeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
			},
		},
	}
}

// StatusError is a non-2xx response from the API. The body text is kept
// verbatim so the user sees exactly what the API said.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return e.Body
	}
	return fmt.Sprintf("order api status %d", e.StatusCode)
}

// ListProducts fetches the full product catalog. No retry, no cache,
// a failed fetch is reported as-is and the caller keeps whatever
// catalog it already had.
func (c *Client) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call order api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp)
	}

	var products []catalog.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	c.log.Info("fetched product catalog", logger.Int("count", len(products)))
	return products, nil
}

// CreateOrder posts the submission and returns the API's confirmation.
func (c *Client) CreateOrder(ctx context.Context, sub order.Submission) (*order.Confirmation, error) {
	body, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call order api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.statusError(resp)
	}

	var conf order.Confirmation
	if err := json.NewDecoder(resp.Body).Decode(&conf); err != nil {
		return nil, fmt.Errorf("decode confirmation: %w", err)
	}

	c.log.Info("order created", logger.Int64("order_id", conf.OrderID))
	return &conf, nil
}

func (c *Client) statusError(resp *http.Response) error {
	var body string
	if raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)); err == nil {
		body = strings.TrimSpace(string(raw))
	}

	c.log.Error("order api returned an error",
		logger.Int("status", resp.StatusCode),
		logger.String("body", body),
	)
	return &StatusError{StatusCode: resp.StatusCode, Body: body}
}
