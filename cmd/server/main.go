package main

import (
	"FitHub/internal/config"
	"FitHub/internal/handlers"
	"FitHub/internal/logger"
	"FitHub/internal/middleware"
	"FitHub/internal/repo"
	"FitHub/internal/service"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	cfg := config.NewConfig()

	sugar, err := logger.New(cfg.LogLevel, "info", true)
	if err != nil {
		panic(err)
	}
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		_ = sugar.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN, cfg.SQLitePath)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	userService := service.NewUserService(userRepo)

	h := handlers.NewHandler(userService, sugar, cfg)

	storage := "sqlite:" + cfg.SQLitePath
	if cfg.DatabaseDSN != "" {
		storage = "postgres"
	}
	sugar.Infow("Starting server",
		"addr", cfg.ListenAddr,
		"storage", storage,
		"tokenTTL", cfg.TokenTTL,
	)

	srv := &http.Server{Addr: cfg.ListenAddr, Handler: h.Router}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Errorw("Shutdown failed", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugar.Fatalw("Server failed", "error", err)
	}
	sugar.Infow("Server stopped")
}
