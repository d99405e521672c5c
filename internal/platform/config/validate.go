package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
)

// aniListMaxPerPage is the largest page AniList serves.
const aniListMaxPerPage = 50

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	exporters  = []string{"stdout", "otlp"}
)

// problems collects every invalid key so one error reports all of them.
type problems []error

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	var p problems
	c.Server.validate(&p)
	c.Log.validate(&p)
	c.Client.validate(&p)
	c.API.validate(&p)
	c.Telemetry.validate(&p)
	return errors.Join(p...)
}

func (s *ServerConfig) validate(p *problems) {
	p.check(s.Port >= 1 && s.Port <= 65535, "server.port must be between 1 and 65535, got %d", s.Port)
	p.check(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.check(s.WriteTimeout > 0, "server.write_timeout must be positive")
}

func (l *LogConfig) validate(p *problems) {
	p.check(slices.Contains(logLevels, l.Level), "log.level must be one of %v, got %q", logLevels, l.Level)
	p.check(slices.Contains(logFormats, l.Format), "log.format must be one of %v, got %q", logFormats, l.Format)
}

func (cl *ClientConfig) validate(p *problems) {
	u, err := url.Parse(cl.BaseURL)
	p.check(err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "",
		"client.base_url must be an absolute http(s) URL, got %q", cl.BaseURL)
	p.check(cl.Timeout > 0, "client.timeout must be positive")

	p.check(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.check(cl.Retry.Multiplier > 0, "client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)
	p.check(cl.Retry.InitialInterval <= cl.Retry.MaxInterval,
		"client.retry.initial_interval must not exceed max_interval, got %s > %s",
		cl.Retry.InitialInterval, cl.Retry.MaxInterval)

	p.check(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)

	rl := cl.RateLimit
	p.check(rl.RequestsPerSecond >= 0,
		"client.rate_limit.requests_per_second must not be negative, got %g", rl.RequestsPerSecond)
	p.check(rl.RequestsPerSecond == 0 || rl.BurstSize >= 1,
		"client.rate_limit.burst_size must be >= 1 when rate limiting is enabled, got %d", rl.BurstSize)
}

func (a *APIConfig) validate(p *problems) {
	p.check(a.DefaultPerPage >= 1, "api.default_per_page must be >= 1, got %d", a.DefaultPerPage)
	p.check(a.MaxPerPage >= a.DefaultPerPage,
		"api.max_per_page must be >= api.default_per_page, got %d < %d", a.MaxPerPage, a.DefaultPerPage)
	p.check(a.MaxPerPage <= aniListMaxPerPage,
		"api.max_per_page must not exceed AniList's page size of %d, got %d", aniListMaxPerPage, a.MaxPerPage)
	p.check(a.OverviewWorkers >= 1, "api.overview_workers must be >= 1, got %d", a.OverviewWorkers)
}

func (t *TelemetryConfig) validate(p *problems) {
	if !t.Enabled {
		return
	}
	p.check(slices.Contains(exporters, t.Exporter),
		"telemetry.exporter must be one of %v, got %q", exporters, t.Exporter)
	p.check(t.Exporter != "otlp" || t.Endpoint != "",
		"telemetry.endpoint must not be empty when exporter is otlp")
}
