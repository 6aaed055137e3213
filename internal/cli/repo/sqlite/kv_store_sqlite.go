package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"FitHub/internal/cli/repo"
)

// KVStoreSQLite — хранилище ключ/значение сессии в локальной БД SQLite.
type KVStoreSQLite struct {
	db *sql.DB
}

var _ repo.KeyValue = (*KVStoreSQLite)(nil)

// Open открывает (и создаёт при необходимости) файл БД по пути dbPath
// и применяет миграции.
func Open(dbPath string) (*KVStoreSQLite, error) {
	if dbPath == "" {
		return nil, errors.New("empty client db path")
	}
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o700); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// одно соединение: для :memory: каждое соединение — отдельная БД
	db.SetMaxOpenConns(1)
	s := &KVStoreSQLite{db: db}
	if err := s.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Migrate гарантирует наличие необходимых таблиц.
func (s *KVStoreSQLite) Migrate() error {
	_, err := s.db.Exec(initialDDL())
	return err
}

// Close закрывает соединение с БД.
func (s *KVStoreSQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *KVStoreSQLite) Get(ctx context.Context, key string) (string, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", repo.ErrNotFound
		}
		return "", err
	}
	return v, nil
}

func (s *KVStoreSQLite) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO kv(key, value, updated_at) VALUES(?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix(),
	)
	return err
}

func (s *KVStoreSQLite) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	return err
}
