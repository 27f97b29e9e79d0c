package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-dashboard/config"
	v1 "weather-dashboard/internal/controllers/http/v1"
	"weather-dashboard/internal/models"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/internal/services/weather"
	"weather-dashboard/pkg/httpserver"
	"weather-dashboard/pkg/logger"
)

// @title Weather Dashboard API
// @version 1.0.0
// @description Simplified weather forecasts for a set of supported locations and in-memory user display preferences.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Weather
// @tag.description Simplified weather forecasts
// @tag.name Preferences
// @tag.description Per-user display preferences
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	l, err := logger.New(logger.Options{
		AppName:   cnf.App.Name,
		AppEnv:    cnf.App.Env,
		Level:     cnf.Log.Level,
		Format:    cnf.Log.Format,
		SentryDSN: cnf.Log.SentryDSN,
		Writers:   []io.Writer{os.Stdout},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app := httpserver.InitFiberServer(httpserver.Options{
		AppName:      cnf.App.Name,
		ReadTimeout:  cnf.ReadTimeout(),
		WriteTimeout: cnf.WriteTimeout(),
		IdleTimeout:  cnf.IdleTimeout(),
	}, l)

	repo, err := repositories.NewOpenWeatherMapRepository(cnf.Weather, l, repositories.NewHTTPClient(cnf.UpstreamTimeout()))
	if err != nil {
		l.Fatal("cannot init forecast repository", map[string]any{"err": err.Error()})
	}

	service := weather.NewWeatherService(repo, cnf.Weather.Locations, models.Units(cnf.Weather.Units), l)

	preferences := repositories.NewPreferenceStore(models.SeedPreferences())

	v1.NewRouter(
		app,
		service,
		preferences,
		v1.RouterOptions{StrictUnits: cnf.Preferences.StrictUnits},
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err.Error()})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":      cnf.Server.Port,
		"version":   cnf.App.Version,
		"locations": cnf.Weather.Locations,
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		_ = l.Stop()
		cancel()
	}()

	select {
	case sig := <-sigCh:
		l.Info("received shutdown signal", map[string]any{"signal": sig.String()})
	case <-ctx.Done():
		l.Info("context cancelled")
	}
}
