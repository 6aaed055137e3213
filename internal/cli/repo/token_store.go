package repo

import "context"

// TokenStore описывает абстракцию хранилища auth-токена на клиенте.
// Методы не возвращают ошибок хранилища: чтение при сбое даёт "токена нет",
// запись и удаление сообщают результат через StoreResult.
type TokenStore interface {
	GetToken(ctx context.Context) (string, bool)
	SetToken(ctx context.Context, token string) StoreResult
	RemoveToken(ctx context.Context) StoreResult
}

// StoreResult is the outcome of a best-effort write or delete.
// The zero value means Stored.
type StoreResult struct {
	err error
}

// Stored reports a successful write.
func Stored() StoreResult { return StoreResult{} }

// StorageFailed wraps the reason a write did not reach durable storage.
func StorageFailed(reason error) StoreResult { return StoreResult{err: reason} }

// OK is true when the value reached storage.
func (r StoreResult) OK() bool { return r.err == nil }

// Err returns the failure reason, nil on success.
func (r StoreResult) Err() error { return r.err }

func (r StoreResult) String() string {
	if r.err == nil {
		return "stored"
	}
	return "storage failed: " + r.err.Error()
}
