package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/media-gateway/internal/platform/config"
	"github.com/jsamuelsen11/media-gateway/internal/platform/logging"
)

// jitterFraction spreads each delay by up to ±25%.
const jitterFraction = 0.25

// retryPolicy is exponential backoff with jitter, capped at ceiling.
type retryPolicy struct {
	maxAttempts int
	initial     time.Duration
	ceiling     time.Duration
	multiplier  float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		maxAttempts: cfg.MaxAttempts,
		initial:     cfg.InitialInterval,
		ceiling:     cfg.MaxInterval,
		multiplier:  cfg.Multiplier,
	}
}

// backoff returns the jittered delay before retry attempt (1 is the first
// retry).
func (p retryPolicy) backoff(attempt int) time.Duration {
	delay := float64(p.initial) * math.Pow(p.multiplier, float64(attempt-1))
	delay = min(delay, float64(p.ceiling))
	delay += delay * jitterFraction * (2*rand.Float64() - 1) //nolint:gosec // jitter needs no crypto source
	return time.Duration(max(delay, 0))
}

// delay is the backoff for attempt, stretched to the server's Retry-After
// hint. ok is false when the hint exceeds the ceiling: retrying sooner
// would only be refused again.
func (p retryPolicy) delay(attempt int, hint time.Duration) (d time.Duration, ok bool) {
	if hint > p.ceiling {
		return 0, false
	}
	return max(p.backoff(attempt), hint), true
}

// send performs req with retries. The body is buffered so each attempt can
// replay it. Every reply feeds the quota tracker. The reply is written to
// resp rather than returned to keep the bodyclose linter quiet; the caller
// closes it.
func (c *Client) send(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retry.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retry.maxAttempts)
	}

	body, err := bufferBody(req)
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := range c.retry.maxAttempts {
		rewindBody(req, body)

		r, err := c.httpClient.Do(req)
		if err != nil {
			if !isRetryable(err) || attempt == c.retry.maxAttempts-1 {
				return err
			}
			lastErr = err
			if err := c.pause(ctx, req, attempt+1, c.retry.backoff(attempt+1), lastErr); err != nil {
				return err
			}
			continue
		}

		c.quota.observe(r.Header, time.Now())
		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		hint := parseRetryAfter(r.Header.Get(HeaderRetryAfter), time.Now())
		d, ok := c.retry.delay(attempt+1, hint)
		if !ok || attempt == c.retry.maxAttempts-1 {
			*resp = r
			return lastErr
		}

		drain(r)
		if err := c.pause(ctx, req, attempt+1, d, lastErr); err != nil {
			return err
		}
	}
	return lastErr
}

// pause logs the upcoming retry and sleeps for d or until ctx ends.
func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, d time.Duration, cause error) error {
	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retry.maxAttempts),
		slog.Duration("backoff", d),
		slog.Any("error", cause),
	)

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func bufferBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	b, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

func rewindBody(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// drain empties and closes a discarded reply so its connection is reused.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// RetryAfter returns the Retry-After hint of resp, zero when absent.
func RetryAfter(resp *http.Response) time.Duration {
	return parseRetryAfter(resp.Header.Get(HeaderRetryAfter), time.Now())
}

// parseRetryAfter reads Retry-After in either of its forms: delay seconds
// or an HTTP date. Unparseable or past values yield zero.
func parseRetryAfter(value string, now time.Time) time.Duration {
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(max(secs, 0)) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		return max(at.Sub(now), 0)
	}
	return 0
}

// isRetryable reports whether a transport error is worth another attempt.
// The caller giving up is not.
func isRetryable(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports whether AniList may answer differently on a
// second try. 501 and other 5xx codes that describe the request itself are
// final.
func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
