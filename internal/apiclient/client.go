// Package apiclient is the typed client of the UChoose backend REST API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"uchoose-client/internal/uchooseerrors"
	"uchoose-client/utils"
)

// Config configures the backend client
type Config struct {
	BaseURL string
	// Token is used when the request context carries no bearer token of its own.
	Token     string
	Timeout   time.Duration
	Transport http.RoundTripper
}

// Client calls the backend over HTTP and validates every decoded payload
type Client struct {
	baseURL  string
	token    string
	http     *http.Client
	validate *validator.Validate
}

// StatusError is a non-2xx backend answer
type StatusError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Status, e.Message)
}

func (e *StatusError) Unwrap() error { return uchooseerrors.ErrBackendStatus }

// New creates a backend client
func New(cfg Config) *Client {
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		token:    cfg.Token,
		http:     &http.Client{Timeout: timeout, Transport: otelhttp.NewTransport(transport)},
		validate: validator.New(),
	}
}

type tokenKey struct{}

// WithBearerToken attaches the caller's session token to ctx
func WithBearerToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// BearerToken returns the token attached by WithBearerToken
func BearerToken(ctx context.Context) string {
	v, _ := ctx.Value(tokenKey{}).(string)
	return v
}

// do sends body as JSON to path and decodes a 2xx response into out (if non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+strings.TrimLeft(path, "/"), reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token := c.tokenFor(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s %s: %w", method, path, ctxErr)
		}
		return fmt.Errorf("%s %s: %v: %w", method, path, err, uchooseerrors.ErrBackendUnavailable)
	}
	defer resp.Body.Close()

	utils.Debug("apiclient: backend call", map[string]any{
		"method":  method,
		"path":    path,
		"status":  resp.StatusCode,
		"latency": time.Since(start).String(),
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: method, Path: path, Status: resp.StatusCode, Message: errorMessage(resp.Body)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%s %s: empty body: %w", method, path, uchooseerrors.ErrInvalidPayload)
		}
		return fmt.Errorf("%s %s: %v: %w", method, path, err, uchooseerrors.ErrInvalidPayload)
	}
	return nil
}

func (c *Client) tokenFor(ctx context.Context) string {
	if token := BearerToken(ctx); token != "" {
		return token
	}
	return c.token
}

// check validates a decoded struct against its validate tags
func (c *Client) check(what string, v any) error {
	if err := c.validate.Struct(v); err != nil {
		return fmt.Errorf("%s: %v: %w", what, err, uchooseerrors.ErrInvalidPayload)
	}
	return nil
}

// errorMessage extracts the backend's {"error": "..."} or {"detail": "..."} message.
func errorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 64<<10))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var payload struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Detail != "" {
			return payload.Detail
		}
	}
	return ""
}
