package settings

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/hjarta-settings/logging"
	"github.com/0xalexb/hjarta-settings/setting"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// App is a configured starting point for an application using Fx, with a
// setting.Lookup available for injection.
type App struct {
	app *fx.App
}

// NewApp creates a new instance of App with Fx configured.
// Configuration sources are loaded immediately; a failure is reported by Start and Err.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return &App{
		app: configure(&options, os.Stderr),
	}
}

func configure(options *Options, w io.Writer) *fx.App {
	lookup, lookupErr := buildLookup(options)

	logger, logErr := createLogger(options.LogLevel, lookup, w)
	slog.SetDefault(logger)

	slog.Debug("configuring application", slog.String("version", Version), slog.String("compiled_at", CompiledAt))

	fxOptions := []fx.Option{
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(logger),
		fx.Provide(func() setting.Lookup { return lookup }),
		fx.Options(options.Modules...),
	}

	if err := errors.Join(lookupErr, logErr); err != nil {
		fxOptions = append(fxOptions, fx.Error(err))
	}

	return fx.New(fxOptions...)
}

func buildLookup(options *Options) (setting.Lookup, error) {
	lookups := make([]setting.Lookup, 0, len(options.Lookups)+len(options.Sources))
	lookups = append(lookups, options.Lookups...)

	for _, source := range options.Sources {
		lookup, err := source.load()
		if err != nil {
			return setting.MapLookup{}, err
		}

		lookups = append(lookups, lookup)
	}

	return setting.Layered(lookups...), nil
}

// createLogger prefers an explicit level and falls back on the log.level setting.
// An invalid explicit level means info.
func createLogger(level string, lookup setting.Lookup, w io.Writer) (*slog.Logger, error) {
	if level != "" {
		parsed, err := logging.ParseLevel(level)
		if err != nil {
			parsed = slog.LevelInfo
		}

		return logging.NewLogger(parsed, w), nil
	}

	logger, err := logging.FromLookup(lookup, w)
	if err != nil {
		return logging.NewLogger(slog.LevelInfo, w), err
	}

	return logger, nil
}

// Err returns the error that prevented the application from being built, if any.
func (app *App) Err() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	return app.app.Err()
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}
