// Package apiclient talks to the teamboard REST API. Client satisfies store.Backend.
package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/teamboard/internal/config"
)

// APIError is returned for any non-2xx response.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (e *APIError) NotFound() bool { return e.Status == http.StatusNotFound }

func (e *APIError) StatusCode() int { return e.Status }

// Client issues JSON requests against a base URL.
type Client struct {
	baseURL string
	timeout time.Duration
	logger  *zap.Logger
}

// New builds a client from configuration. A nil logger is replaced with a no-op logger.
func New(cfg config.ClientConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.RequestTimeout(),
		logger:  logger,
	}
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) endpoint(parts ...string) string {
	escaped := make([]string, 0, len(parts))
	for _, part := range parts {
		escaped = append(escaped, url.PathEscape(part))
	}
	return c.baseURL + "/" + strings.Join(escaped, "/")
}

// do sends body (if any) and decodes the response into out (if any).
func (c *Client) do(ctx context.Context, method string, target string, body any, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var agent *fiber.Agent
	switch method {
	case fiber.MethodGet:
		agent = fiber.Get(target)
	case fiber.MethodPost:
		agent = fiber.Post(target)
	case fiber.MethodPut:
		agent = fiber.Put(target)
	case fiber.MethodDelete:
		agent = fiber.Delete(target)
	default:
		return fmt.Errorf("unsupported method %s", method)
	}
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if body != nil {
		agent.JSON(body)
	}
	if timeout := c.requestTimeout(ctx); timeout > 0 {
		agent.Timeout(timeout)
	}

	started := time.Now()
	code, payload, errs := agent.Bytes()
	if len(errs) > 0 {
		c.logger.Warn("api request failed",
			zap.String("method", method),
			zap.String("url", target),
			zap.Errors("errors", errs))
		return fmt.Errorf("%s %s: %w", method, target, errors.Join(errs...))
	}
	c.logger.Debug("api request",
		zap.String("method", method),
		zap.String("url", target),
		zap.Int("status", code),
		zap.Duration("latency", time.Since(started)))

	if code < 200 || code > 299 {
		apiErr := &APIError{Status: code, Message: http.StatusText(code)}
		var envelope errorEnvelope
		if json.Unmarshal(payload, &envelope) == nil && envelope.Error.Message != "" {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		}
		return apiErr
	}

	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, target, err)
	}
	return nil
}

// requestTimeout is the configured timeout, shortened to the context deadline when sooner.
func (c *Client) requestTimeout(ctx context.Context) time.Duration {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); timeout == 0 || remaining < timeout {
			timeout = remaining
		}
	}
	return timeout
}

func list[T any](ctx context.Context, c *Client, resource string) ([]T, error) {
	out := []T{}
	if err := c.do(ctx, fiber.MethodGet, c.endpoint(resource), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func create[T any](ctx context.Context, c *Client, resource string, record T) (T, error) {
	var out T
	err := c.do(ctx, fiber.MethodPost, c.endpoint(resource), record, &out)
	return out, err
}

func update[T any](ctx context.Context, c *Client, resource, id string, record T) (T, error) {
	var out T
	err := c.do(ctx, fiber.MethodPut, c.endpoint(resource, id), record, &out)
	return out, err
}

func (c *Client) remove(ctx context.Context, resource, id string) error {
	return c.do(ctx, fiber.MethodDelete, c.endpoint(resource, id), nil, nil)
}
