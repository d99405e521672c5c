package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix marks the environment variables that override config keys.
	EnvPrefix = "GATEWAY_"
	// EnvProfile names the profile to load when none is given explicitly.
	EnvProfile = EnvPrefix + "PROFILE"

	defaultConfigDir = "configs"
)

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
	environ   func() []string
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// WithEnviron replaces os.Environ as the source of overrides. Entries use
// the KEY=value form.
func WithEnviron(environ func() []string) Option {
	return func(o *loadOptions) {
		o.environ = environ
	}
}

// Load builds the gateway configuration from four layers, later ones
// winning:
//
//  0. built-in defaults, so partial YAML files still validate
//  1. {configDir}/base.yaml
//  2. {configDir}/{profile}.yaml
//  3. GATEWAY_* environment variables
//
// Variables are matched against the keys the first three layers produced,
// so field names containing underscores resolve unambiguously:
//
//	GATEWAY_SERVER_READ_TIMEOUT        -> server.read_timeout
//	GATEWAY_CLIENT_RATE_LIMIT_BURST_SIZE -> client.rate_limit.burst_size
//	GATEWAY_API_OVERVIEW_WORKERS       -> api.overview_workers
//
// Variables that match no key are ignored.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir, environ: os.Environ}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	if err := k.Load(defaultsProvider{}, nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}

	if err := k.Load(envProvider(k.Keys(), o.environ), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config %q: %w", profile, err)
	}
	return &cfg, nil
}

// ProfileFromEnv returns $GATEWAY_PROFILE, or fallback when it is unset.
func ProfileFromEnv(fallback string) string {
	if p := strings.TrimSpace(os.Getenv(EnvProfile)); p != "" {
		return p
	}
	return fallback
}

// envProvider maps GATEWAY_SERVER_READ_TIMEOUT style variables onto the
// known dotted keys.
func envProvider(keys []string, environ func() []string) *env.Env {
	known := make(map[string]string, len(keys))
	for _, key := range keys {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	return env.Provider(".", env.Opt{
		Prefix:      EnvPrefix,
		EnvironFunc: environ,
		TransformFunc: func(name, value string) (string, any) {
			key, ok := known[strings.ToLower(strings.TrimPrefix(name, EnvPrefix))]
			if !ok {
				return "", nil
			}
			return key, value
		},
	})
}

// validateProfile rejects names that would escape the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}
