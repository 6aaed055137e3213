package repo

import (
	"context"
	"errors"
)

// Ключи локального хранилища сессии.
const (
	KeyAuthToken = "authToken"
	KeyUserData  = "userData"
)

// ErrNotFound возвращается бэкендом, если ключ отсутствует.
var ErrNotFound = errors.New("key not found")

// KeyValue — долговременное строковое хранилище ключ/значение.
// Отдельные операции атомарны; составные операции поверх них — нет.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Delete отсутствующего ключа не является ошибкой.
	Delete(ctx context.Context, key string) error
	Close() error
}
