package handlers

import (
	"FitHub/internal/config"
	"FitHub/internal/middleware"
	"FitHub/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(reg)

	r.Use(metrics.Handler)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	userHandler := NewUserHandler(userService, logger, config)

	// Auth routes
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register/player", userHandler.RegisterPlayer)
		r.Post("/register/trainer", userHandler.RegisterTrainer)
		r.Post("/login", userHandler.Login)
		r.Get("/me", userHandler.Me)
	})

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{DisableCompression: true}))

	// неизвестные маршруты отвечают text/plain (стандартный NotFound chi)
	return &Handler{Router: r}
}
