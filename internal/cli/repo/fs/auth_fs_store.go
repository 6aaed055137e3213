package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"FitHub/internal/cli/repo"
)

// AuthFSStore — файловое хранилище сессии для CLI: один файл на ключ в Dir.
type AuthFSStore struct {
	Dir string
}

var _ repo.KeyValue = AuthFSStore{}

// DefaultDir возвращает каталог FitHub внутри пользовательского конфиг-каталога.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "FitHub"), nil
}

var keyRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

func (s AuthFSStore) configDir() (string, error) {
	p := s.Dir
	if p == "" {
		d, err := DefaultDir()
		if err != nil {
			return "", err
		}
		p = d
	}
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func (s AuthFSStore) keyPath(key string) (string, error) {
	if !keyRe.MatchString(key) {
		return "", fmt.Errorf("invalid key: %q", key)
	}
	dir, err := s.configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, key), nil
}

// Get читает значение ключа из файла.
func (s AuthFSStore) Get(_ context.Context, key string) (string, error) {
	p, err := s.keyPath(key)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", repo.ErrNotFound
		}
		return "", err
	}
	// обрезаем завершающие переводы строки/пробелы
	for len(b) > 0 {
		c := b[len(b)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	return string(b), nil
}

// Set сохраняет значение в файл с правами 0600.
func (s AuthFSStore) Set(_ context.Context, key, value string) error {
	p, err := s.keyPath(key)
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(value), 0o600)
}

// Delete удаляет файл ключа; отсутствие файла не ошибка.
func (s AuthFSStore) Delete(_ context.Context, key string) error {
	p, err := s.keyPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (AuthFSStore) Close() error { return nil }
