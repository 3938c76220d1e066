package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hr-attendance-go/internal/app"
	"github.com/cmlabs-hris/hr-attendance-go/internal/config"
	appHTTP "github.com/cmlabs-hris/hr-attendance-go/internal/handler/http"
	"github.com/cmlabs-hris/hr-attendance-go/internal/pkg/cron"
	"github.com/cmlabs-hris/hr-attendance-go/migrations"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(ctx, a.DB); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
		slog.Info("migrations applied")
	}

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AllowedOrigins: cfg.App.AllowedOrigins,
			Env:            cfg.App.Env,
			LogLevel:       cfg.LogLevel(),
		},
		a.JWT,
		appHTTP.Handlers{
			Auth:       appHTTP.NewAuthHandler(a.Auth),
			Attendance: appHTTP.NewAttendanceHandler(a.Logs, a.Employees),
			Summary:    appHTTP.NewSummaryHandler(a.Summaries),
			Holiday:    appHTTP.NewHolidayHandler(a.Holidays),
			Intern:     appHTTP.NewInternHandler(a.Interns),
		},
	)

	if cfg.Summary.NightlyJob {
		scheduler := cron.NewScheduler()
		a.SummaryJob.RegisterJobs(scheduler)
		scheduler.Start(ctx)
		defer scheduler.Stop()
		slog.Info("nightly summary job enabled", "hour_utc", cfg.Summary.NightlyHour)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", server.Addr, "env", cfg.App.Env, "timezone", a.Location.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
