package commands

import (
	"net/http"

	"go.uber.org/zap"

	"FitHub/internal/cli/api"
	"FitHub/internal/cli/bootstrap"
	"FitHub/internal/cli/repo"
	"FitHub/internal/cli/service"
	"FitHub/internal/config"
)

var logger = zap.NewNop().Sugar()

// SetLogger задаёт логгер для команд и собираемых ими сервисов.
func SetLogger(l *zap.SugaredLogger) {
	if l != nil {
		logger = l
	}
}

// openAuth собирает AuthService для текущей команды.
// Возвращённый cleanup закрывает хранилище сессии.
func openAuth(cfg *config.Config) (service.AuthService, *repo.SessionStore, func() error, error) {
	store, err := bootstrap.OpenSessionStore(cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	client := api.NewClient(cfg.ServerURL, store, httpClient, logger)
	return service.NewAuthService(client, store, logger), store, store.Close, nil
}
