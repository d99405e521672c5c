// Package httpclient is the outbound HTTP client used to reach AniList. Every
// request passes through, in order:
//
//	Quota Pause → Circuit Breaker → Rate Limiter → Header Injection → OTEL Span → Retry → HTTP
//
// AniList budgets requests per client (90 per minute) and reports the budget
// in X-RateLimit-* headers. The local limiter keeps the gateway under that
// budget; when AniList still reports it exhausted, or answers 429, every
// caller is held until the reset instead of spending retries on it.
//
//	client := httpclient.New(&cfg.Client, "anilist", metrics, logger)
//	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, client.BaseURL(), body)
//	resp, err := client.Do(ctx, req)
//
// Request ID, correlation ID, and the caller's AniList access token travel in
// the context (see WithRequestID, WithCorrelationID, WithAccessToken).
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/media-gateway/internal/platform/config"
	"github.com/jsamuelsen11/media-gateway/internal/platform/telemetry"
)

const tracerName = "httpclient"

// Client is the instrumented AniList HTTP client.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	serviceName string
	breaker     *gobreaker.CircuitBreaker[struct{}]
	limiter     *rate.Limiter // nil when rate limiting is disabled
	quota       quotaTracker
	retry       retryPolicy
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// New builds a client for the downstream named serviceName ("anilist"),
// which labels spans, metrics, and health reports. A nil metrics skips
// recording; a zero RequestsPerSecond disables the limiter.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		serviceName: serviceName,
		retry:       newRetryPolicy(cfg.Retry),
		metrics:     metrics,
		logger:      logger,
	}

	c.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        serviceName,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		OnStateChange: c.logBreakerChange,
	})

	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}
	return c
}

// Do sends req through the pipeline described in the package doc. ctx
// supplies cancellation, the trace parent, and the forwarded headers.
//
// A non-retryable reply is returned with a nil error and an open body the
// caller must close. When retries run out on a retryable status, both the
// last reply (body open) and an error are returned. Quota pauses, breaker
// rejections, and network failures return a nil response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	method := req.Method

	if err := c.quota.wait(ctx, c.serviceName); err != nil {
		c.recordMetrics(ctx, method, start, nil, err)
		return nil, err
	}

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, err
			}
		}

		injectHeaders(ctx, req)

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		req = req.WithContext(spanCtx)
		sendErr := c.send(spanCtx, req, &resp)
		endSpan(span, resp, sendErr)
		return struct{}{}, sendErr
	})

	c.recordMetrics(ctx, method, start, resp, err)
	return resp, err
}

// BaseURL returns the configured AniList endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name returns the downstream service identifier (e.g., "anilist").
func (c *Client) Name() string {
	return c.serviceName
}

// CircuitBreakerState returns "closed", "half-open", or "open".
func (c *Client) CircuitBreakerState() string {
	return c.breaker.State().String()
}

// Quota returns the request budget AniList last reported.
func (c *Client) Quota() Quota {
	return c.quota.snapshot()
}

// Breaker states reported by HealthCheck.
var (
	ErrBreakerOpen     = errors.New("circuit breaker open")
	ErrBreakerHalfOpen = errors.New("circuit breaker half-open")
)

// HealthCheck reports availability from the breaker state alone: nil when
// closed, ErrBreakerHalfOpen while trial requests probe AniList, and
// ErrBreakerOpen while calls are rejected. A quota pause is not a failure:
// AniList is up and the gateway is only waiting its turn.
func (c *Client) HealthCheck(_ context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: %w", c.serviceName, ErrBreakerHalfOpen)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: %w", c.serviceName, ErrBreakerOpen)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.serviceName, state)
	}
}

func (c *Client) logBreakerChange(name string, from, to gobreaker.State) {
	c.logger.Warn("circuit breaker state change",
		slog.String("breaker", name),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)
}

// startSpan opens the client span and writes the W3C trace context into the
// outbound headers.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.GetTracerProvider().Tracer(tracerName).Start(ctx,
		"HTTP "+req.Method+" "+c.serviceName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
			attribute.String("peer.service", c.serviceName),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

func endSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
		if v := resp.Header.Get(HeaderRateLimitRemaining); v != "" {
			span.SetAttributes(attribute.String("anilist.ratelimit.remaining", v))
		}
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// recordMetrics runs outside the breaker so rejections and quota pauses are
// counted too.
func (c *Client) recordMetrics(ctx context.Context, method string, start time.Time, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.serviceName),
		telemetry.AttrResult.String(outcome(status, err)),
	)
	c.metrics.ClientRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

// outcome classifies a call for the result metric attribute.
func outcome(status int, err error) string {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	case errors.Is(err, ErrThrottled), status == http.StatusTooManyRequests:
		return "throttled"
	case status > 0 && status < http.StatusBadRequest:
		return "success"
	default:
		return "error"
	}
}

// clampUint32 converts v for gobreaker, treating negatives as zero.
func clampUint32(v int) uint32 {
	return uint32(min(max(v, 0), math.MaxUint32)) //nolint:gosec // clamped above
}
