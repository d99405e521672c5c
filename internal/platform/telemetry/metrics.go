package telemetry

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterScope prefixes the instrumentation scope of every meter.
const meterScope = "github.com/jsamuelsen11/media-gateway"

// Metric attribute keys.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrOperation   = attribute.Key("graphql.operation.name")
)

// Metrics are the gateway's instruments. Server metrics cover /api/v1
// requests, client metrics each HTTP exchange with AniList, and GraphQL
// metrics each logical AniList operation including its retries.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	GraphQLOperationTotal    metric.Int64Counter
	GraphQLOperationDuration metric.Float64Histogram
}

// NewMetrics registers the instruments on a meter scoped to component
// ("media-gateway", "mediaq"). Any MeterProvider works, including noop.
func NewMetrics(mp metric.MeterProvider, component string) (*Metrics, error) {
	r := registrar{meter: mp.Meter(meterScope + "/" + component)}

	m := &Metrics{
		ServerRequestDuration:    r.seconds("http.server.request.duration", "Duration of /api/v1 requests"),
		ServerRequestTotal:       r.count("http.server.request.total", "{request}", "/api/v1 requests served"),
		ClientRequestDuration:    r.seconds("http.client.request.duration", "Duration of HTTP exchanges with AniList"),
		ClientRequestTotal:       r.count("http.client.request.total", "{request}", "HTTP exchanges with AniList"),
		GraphQLOperationTotal:    r.count("graphql.operation.total", "{operation}", "AniList GraphQL operations by name and result"),
		GraphQLOperationDuration: r.seconds("graphql.operation.duration", "Duration of AniList GraphQL operations"),
	}
	if r.err != nil {
		return nil, r.err
	}
	return m, nil
}

// registrar creates instruments and keeps the first failure.
type registrar struct {
	meter metric.Meter
	err   error
}

func (r *registrar) seconds(name, desc string) metric.Float64Histogram {
	h, err := r.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
	r.keep(name, err)
	return h
}

func (r *registrar) count(name, unit, desc string) metric.Int64Counter {
	c, err := r.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	r.keep(name, err)
	return c
}

func (r *registrar) keep(name string, err error) {
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("creating %s: %w", name, err)
	}
}
