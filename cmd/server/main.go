package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/templates"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"
	"resume-builder/pkg/logger"

	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger.Setup(cfg.LogLevel)

	if _, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		slog.Debug("maxprocs", "message", format, "args", args)
	})); err != nil {
		slog.Warn("failed to set GOMAXPROCS", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	renderer, closeRenderer, err := infra.NewRenderer(cfg.Renderer, cfg.ChromePath, cfg.RenderTimeout)
	if err != nil {
		slog.Error("failed to create renderer", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeRenderer(); err != nil {
			slog.Warn("failed to close renderer", "error", err)
		}
	}()

	var jobs usecase.JobsRepo = repo.NewMemoryJobsRepo()
	jobsPool, err := infra.NewJobsPool(ctx, cfg.JobsDatabaseURL)
	if err != nil {
		slog.Warn("jobs DB not available, keeping jobs in memory", "error", err)
	}
	if jobsPool != nil {
		defer jobsPool.Close()
		if err := migration.RunMigrations(ctx, jobsPool); err != nil {
			slog.Error("migrations failed", "error", err)
			os.Exit(1)
		}
		jobs = repo.NewJobsRepo(jobsPool)
	}

	engine, err := templates.NewEngine(cfg.DefaultTemplate)
	if err != nil {
		slog.Error("failed to load templates", "error", err)
		os.Exit(1)
	}

	processor := usecase.NewProcessor(renderer, jobs, engine, usecase.Options{
		OutputDir:     cfg.OutputDir,
		Attempts:      cfg.RenderAttempts,
		RenderTimeout: cfg.RenderTimeout,
	})

	app := httpadapter.NewApp(httpadapter.NewHandler(processor))

	go func() {
		slog.Info("listening", "port", cfg.Port, "renderer", cfg.Renderer, "templates", len(templates.List()))
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Warn("graceful shutdown failed", "error", err)
	}
}
