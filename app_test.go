package settings_test

import (
	"context"
	"log/slog"
	"testing"

	settings "github.com/0xalexb/hjarta-settings"
	"github.com/0xalexb/hjarta-settings/setting"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestNewApp_CreatesAppWithDefaultLogLevel(t *testing.T) {
	t.Parallel()

	app := settings.NewApp()
	require.NotNil(t, app)
	require.NoError(t, app.Err())
}

func TestNewApp_WithLogLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level falls back to info", "chatty"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			app := settings.NewApp(settings.WithLogLevel(tc.level))
			require.NotNil(t, app)
			require.NoError(t, app.Err())
		})
	}
}

func TestNewApp_WithModules(t *testing.T) {
	t.Parallel()

	var invoked bool

	module := fx.Module("test",
		fx.Invoke(func() {
			invoked = true
		}),
	)

	app := settings.NewApp(settings.WithModules(module))
	require.NotNil(t, app)

	err := app.Start()
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Stop() })
	require.True(t, invoked)
}

func TestNewApp_LoggerIsAvailableInFxContainer(t *testing.T) {
	t.Parallel()

	var capturedLogger *slog.Logger

	module := fx.Module("test",
		fx.Invoke(func(logger *slog.Logger) {
			capturedLogger = logger
		}),
	)

	app := settings.NewApp(
		settings.WithLogLevel("debug"),
		settings.WithModules(module),
	)
	require.NotNil(t, app)

	err := app.Start()
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Stop() })
	require.NotNil(t, capturedLogger)
}

func TestNewApp_LookupIsAvailableInFxContainer(t *testing.T) {
	t.Parallel()

	var captured setting.Lookup

	module := fx.Module("test",
		fx.Invoke(func(lookup setting.Lookup) {
			captured = lookup
		}),
	)

	app := settings.NewApp(
		settings.WithLookup(setting.MapLookup{"dbms.port": "7687"}),
		settings.WithLookup(setting.MapLookup{"dbms.port": "7474", "dbms.name": "graph"}),
		settings.WithModules(module),
	)

	err := app.Start()
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Stop() })

	port, ok := captured.Get("dbms.port")
	require.True(t, ok)
	require.Equal(t, "7687", port)

	name, ok := captured.Get("dbms.name")
	require.True(t, ok)
	require.Equal(t, "graph", name)
}

func TestNewApp_InvalidLogLevelSetting(t *testing.T) {
	t.Parallel()

	app := settings.NewApp(settings.WithLookup(setting.MapLookup{"log.level": "verbose"}))

	require.Error(t, app.Err())
	require.Contains(t, app.Err().Error(), "log.level")
	require.Error(t, app.Start())
}

func TestApp_Stop(t *testing.T) {
	t.Parallel()

	var stopCalled bool

	module := fx.Module("test",
		fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.Hook{
				OnStop: func(_ context.Context) error {
					stopCalled = true

					return nil
				},
			})
		}),
	)

	app := settings.NewApp(settings.WithModules(module))
	require.NotNil(t, app)

	err := app.Start()
	require.NoError(t, err)

	err = app.Stop()
	require.NoError(t, err)
	require.True(t, stopCalled, "OnStop hook should be called")
}

func TestApp_NilApp(t *testing.T) {
	t.Parallel()

	var app *settings.App

	require.Error(t, app.Start())
	require.Error(t, app.Stop())
	require.Error(t, app.Err())
	require.NotPanics(t, func() {
		app.Run()
	})
}

func TestApp_Run(t *testing.T) {
	t.Parallel()

	module := fx.Module("test",
		fx.Invoke(func(shutdowner fx.Shutdowner) {
			go func() {
				_ = shutdowner.Shutdown()
			}()
		}),
	)

	app := settings.NewApp(settings.WithModules(module))
	require.NotNil(t, app)

	require.NotPanics(t, func() {
		app.Run()
	})
}
