package settings

import (
	"fmt"

	"github.com/0xalexb/hjarta-settings/config"
	"github.com/0xalexb/hjarta-settings/setting"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
// Lookups take precedence over Sources; earlier entries take precedence over later ones.
type Options struct {
	Modules  []fx.Option
	LogLevel string
	Lookups  []setting.Lookup
	Sources  []Source
}

// Source is raw configuration loaded through the config package when the app is built.
type Source struct {
	Path       string
	Parser     config.Parser
	Fetcher    config.DataFetcher
	Validators []config.Validator
}

func (s Source) load() (setting.MapLookup, error) {
	lookup, err := config.Provider(s.Path, s.Validators...)(s.Parser, s.Fetcher)
	if err != nil {
		return nil, fmt.Errorf("loading configuration source: %w", err)
	}

	return lookup, nil
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithLogLevel sets the log level for the application, overriding the log.level setting.
// Valid levels are: "debug", "info", "warn", "error"; anything else means "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLookup adds an already materialized lookup, e.g. a setting.MapLookup of overrides.
func WithLookup(lookup setting.Lookup) Option {
	return func(opts *Options) {
		opts.Lookups = append(opts.Lookups, lookup)
	}
}

// WithSource adds configuration read by fetcher and decoded by parser.
// The given settings are validated as soon as the source is loaded.
func WithSource(path string, parser config.Parser, fetcher config.DataFetcher, validators ...config.Validator) Option {
	return func(opts *Options) {
		opts.Sources = append(opts.Sources, Source{
			Path:       path,
			Parser:     parser,
			Fetcher:    fetcher,
			Validators: validators,
		})
	}
}
