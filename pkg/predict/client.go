// Package predict is the HTTP client for the remote prediction service. The
// service is opaque: one POST per prediction, JSON both ways, no retries.
package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/clinsight/go-predictform/pkg/payload"
)

const (
	defaultPredictPath = "/api/predict"
	defaultHealthPath  = "/health"
)

// Option customises the client configuration.
type Option func(*Client)

// WithHTTPClient injects the underlying HTTP client. The transport's own
// timeout is the only client-side time limit applied to a prediction call.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithPredictPath overrides the prediction endpoint path.
func WithPredictPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.predictPath = path
		}
	}
}

// WithHealthPath overrides the health endpoint path.
func WithHealthPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.healthPath = path
		}
	}
}

// WithLogger attaches a logger used for diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Client talks to one prediction service instance.
type Client struct {
	baseURL     string
	predictPath string
	healthPath  string
	http        *http.Client
	logger      *zap.Logger
}

// NewClient constructs a Client for the given base URL.
func NewClient(baseURL string, options ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errors.New("predict: base url is required")
	}

	c := &Client{
		baseURL:     trimmed,
		predictPath: defaultPredictPath,
		healthPath:  defaultHealthPath,
		http:        http.DefaultClient,
		logger:      zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c, nil
}

// Predict submits a serialized payload and returns the decoded result.
// Non-success statuses come back as *RequestError with the best-effort
// message extracted from the body; everything else (connectivity, malformed
// success bodies) is a wrapped transport error.
func (c *Client) Predict(ctx context.Context, p payload.Payload) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("predict: context is required")
	}

	body, err := json.Marshal(p)
	if err != nil {
		return Result{}, fmt.Errorf("predict: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.predictPath, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("predict: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("predict: send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("predict: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := extractErrorMessage(respBody, resp.StatusCode)
		c.logger.Debug("prediction rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("message", message))
		return Result{}, &RequestError{Status: resp.StatusCode, Message: message}
	}

	var result Result
	if err := json.Unmarshal(respBody, &result); err != nil {
		return Result{}, fmt.Errorf("predict: decode response: %w", err)
	}
	return result, nil
}

// Health queries the service's liveness endpoint.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	if ctx == nil {
		return HealthStatus{}, errors.New("predict: context is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+c.healthPath, nil)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("predict: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("predict: send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return HealthStatus{}, &RequestError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("request failed with status %d", resp.StatusCode),
		}
	}

	var status HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return HealthStatus{}, fmt.Errorf("predict: decode response: %w", err)
	}
	return status, nil
}
