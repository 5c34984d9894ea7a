// Package main wires the HTTP server for the counter entry service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	handlers_fiber "counter-api/internal/transport/http/server/handlers-fiber"
	"counter-api/internal/usecase"

	"counter-api/config"
	"counter-api/internal/metrics"
	"counter-api/internal/repository"
	"counter-api/internal/transport/http/middleware"
	"counter-api/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	m := metrics.New()

	repo, err := repository.New(ctx, "postgres", log, cfg, m)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, ctx, repo, timeout)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))
	serv.Use(middleware.Metrics(m))

	serv.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	auth := middleware.Auth(cfg.Auth.JWTSecret, log)
	sync := middleware.UserSynchronise(uc, log)

	handler := handlers_fiber.NewHandler(log, uc, cfg.App)
	handler.Register(serv, auth, sync)

	go func() {
		<-ctx.Done()
		log.Infow("shutting down", "timeout", cfg.Server.ShutdownTimeout)
		_ = serv.ShutdownWithTimeout(cfg.Server.ShutdownTimeout)
	}()

	log.Infow("listening", "addr", cfg.ServerAddr())
	if err := serv.Listen(cfg.ServerAddr()); err != nil {
		log.Errorw("server stopped", "error", err)
	}
}
