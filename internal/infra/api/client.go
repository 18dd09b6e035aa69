// Package api implements the outbound HTTP path: a configured request client
// plus one thin gateway per backend resource.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"foodies/config"
	domainerrors "foodies/internal/domain/errors"
	"foodies/internal/domain/service"
	"foodies/internal/errors"
)

// Client is the single point of outbound request configuration: base address,
// request timeout, bearer-token injection and error normalization.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    service.SessionStore
	logger     *slog.Logger
}

// NewClient builds the request client from configuration.
func NewClient(cfg *config.Config, session service.SessionStore, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.API.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.API.Timeout,
		},
		session: session,
		logger:  logger,
	}
}

// envelope is the unified response structure the backend wraps every payload in.
type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *errorInfo      `json:"error,omitempty"`
}

type errorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do issues one request. A transport failure (no response received) is
// normalized to ErrNetworkUnavailable; an error status is normalized to an
// HTTPError carrying {message, status, data}. A 401 is surfaced like any
// other status, never acted on here. No retries.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")

	if token, ok := c.session.Token(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed before a response was received",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)

		return errors.Wrap(domainerrors.ErrNetworkUnavailable, err.Error())
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := env.Message
		var data any
		if env.Error != nil {
			data = env.Error
		}

		return errors.WithStack(domainerrors.NewHTTPError(resp.StatusCode, message, data))
	}

	if out == nil {
		return nil
	}
	if decodeErr != nil {
		return errors.Wrap(decodeErr, "decode response body")
	}
	if len(env.Data) == 0 {
		return nil
	}

	return errors.Wrap(json.Unmarshal(env.Data, out), "decode response payload")
}
