package bootstrap

import (
	"fmt"

	"go.uber.org/zap"

	"FitHub/internal/cli/repo"
	fsrepo "FitHub/internal/cli/repo/fs"
	"FitHub/internal/cli/repo/memory"
	reposqlite "FitHub/internal/cli/repo/sqlite"
	"FitHub/internal/config"
)

// OpenSessionStore открывает хранилище сессии выбранного в конфиге бэкенда.
// Хранилище нужно закрыть после использования.
func OpenSessionStore(cfg *config.Config, logger *zap.SugaredLogger) (*repo.SessionStore, error) {
	var kv repo.KeyValue
	switch cfg.StoreBackend {
	case config.StoreSQLite:
		s, err := reposqlite.Open(cfg.ClientDBPath)
		if err != nil {
			return nil, fmt.Errorf("open client db: %w", err)
		}
		kv = s
	case config.StoreMemory:
		kv = memory.New()
	default:
		kv = fsrepo.AuthFSStore{Dir: cfg.StoreDir}
	}
	return repo.NewSessionStore(kv, logger), nil
}
