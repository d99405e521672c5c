package config

import (
	"errors"
	"time"
)

// defaults is the bottom layer, so partial YAML files still validate. The
// rate limit keeps the gateway under AniList's 90 requests per minute. koanf
// merges into the maps it is given, so each call builds a fresh tree.
func defaults() map[string]any {
	return map[string]any{
		"server": map[string]any{
			"host":          "0.0.0.0",
			"port":          8080,
			"read_timeout":  5 * time.Second,
			"write_timeout": 10 * time.Second,
			"idle_timeout":  2 * time.Minute,
		},
		"log": map[string]any{
			"level":  "info",
			"format": "json",
		},
		"client": map[string]any{
			"base_url": "https://graphql.anilist.co",
			"timeout":  30 * time.Second,
			"retry": map[string]any{
				"max_attempts":     3,
				"initial_interval": 100 * time.Millisecond,
				"max_interval":     10 * time.Second,
				"multiplier":       2.0,
			},
			"circuit_breaker": map[string]any{
				"max_failures":    5,
				"timeout":         30 * time.Second,
				"half_open_limit": 1,
			},
			"rate_limit": map[string]any{
				"requests_per_second": 1.5,
				"burst_size":          5,
			},
		},
		"api": map[string]any{
			"default_per_page": 25,
			"max_per_page":     aniListMaxPerPage,
			"overview_workers": 4,
		},
		"telemetry": map[string]any{
			"enabled":      false,
			"exporter":     "stdout",
			"endpoint":     "",
			"service_name": "media-gateway",
		},
	}
}

// defaultsProvider feeds defaults to koanf as an already-parsed layer.
type defaultsProvider struct{}

func (defaultsProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("config: defaults provider does not support ReadBytes")
}

func (defaultsProvider) Read() (map[string]any, error) {
	return defaults(), nil
}
