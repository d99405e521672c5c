// Package graphql is the transport that delivers built query requests to the
// AniList GraphQL endpoint and hands back the reply.
//
// The transport does not interpret data and does not cache. Non-2xx replies
// become *ServerError; 2xx replies, including ones that carry GraphQL errors,
// are returned as *Response.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/media-gateway/internal/adapters/clients/anilist/query"
	"github.com/jsamuelsen11/media-gateway/internal/domain"
	"github.com/jsamuelsen11/media-gateway/internal/platform/httpclient"
)

// maxResponseSize bounds how much of a reply is read. Stats and
// recommendation payloads stay well under this.
const maxResponseSize = 8 << 20

// Client posts GraphQL requests through the instrumented httpclient.
type Client struct {
	http   *httpclient.Client
	logger *slog.Logger
}

// New creates a transport that posts to the client's base URL.
func New(client *httpclient.Client, logger *slog.Logger) *Client {
	return &Client{http: client, logger: logger}
}

// Execute sends req and returns AniList's reply.
//
// Breaker rejections and network failures wrap domain.ErrUnavailable; an
// exhausted request budget wraps domain.ErrRateLimited.
// Context cancellation is returned as is.
func (c *Client) Execute(ctx context.Context, req *query.Request) (*Response, error) {
	if req == nil {
		return nil, errors.New("graphql: nil request")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", req.Operation, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.http.BaseURL(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", req.Operation, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(ctx, httpReq)
	if resp != nil {
		defer c.closeBody(ctx, resp)
	}
	if err != nil && resp == nil {
		return nil, c.transportError(ctx, req.Operation, err)
	}

	payload, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if readErr != nil {
		return nil, fmt.Errorf("reading %s response: %w: %w", req.Operation, domain.ErrUnavailable, readErr)
	}

	var out Response
	decodeErr := json.Unmarshal(payload, &out)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		serverErr := &ServerError{
			Operation: req.Operation.String(),
			Status:    resp.StatusCode,
			Errors:    out.Errors,
			RetryIn:   httpclient.RetryAfter(resp),
		}
		c.logger.ErrorContext(ctx, "anilist returned error status",
			slog.String("operation", req.Operation.String()),
			slog.Int("status", resp.StatusCode),
			slog.Int("graphql_errors", len(out.Errors)),
		)
		return nil, serverErr
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("decoding %s response: %w", req.Operation, decodeErr)
	}

	if out.HasErrors() {
		c.logger.WarnContext(ctx, "anilist returned graphql errors",
			slog.String("operation", req.Operation.String()),
			slog.String("first_error", out.Errors[0].Message),
		)
	}

	return &out, nil
}

// Name identifies the transport in the health registry.
func (c *Client) Name() string {
	return c.http.Name()
}

// HealthCheck reports AniList availability from the breaker state. A
// half-open breaker wraps domain.ErrDegraded; an open one
// domain.ErrUnavailable.
func (c *Client) HealthCheck(ctx context.Context) error {
	err := c.http.HealthCheck(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, httpclient.ErrBreakerHalfOpen):
		return fmt.Errorf("%w: %w", domain.ErrDegraded, err)
	default:
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
}

func (c *Client) transportError(ctx context.Context, op query.Operation, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("anilist %s: %w", op, err)
	}

	if errors.Is(err, httpclient.ErrThrottled) {
		c.logger.WarnContext(ctx, "anilist request budget exhausted",
			slog.String("operation", op.String()),
			slog.Any("error", err),
		)
		return fmt.Errorf("anilist %s: %w: %w", op, domain.ErrRateLimited, err)
	}

	reason := "request failed"
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		reason = "circuit open"
	}
	c.logger.ErrorContext(ctx, "anilist "+reason,
		slog.String("operation", op.String()),
		slog.Any("error", err),
	)
	return fmt.Errorf("anilist %s: %w: %w", op, domain.ErrUnavailable, err)
}

func (c *Client) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}
