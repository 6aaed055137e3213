package repo

import (
	"context"
	"encoding/json"
)

// UserContextStore абстракция для хранения снимка профиля текущего пользователя.
// Снимок полностью заменяется при каждом входе и не валидируется.
type UserContextStore interface {
	GetUser(ctx context.Context) (json.RawMessage, bool)
	SetUser(ctx context.Context, user json.RawMessage) StoreResult
	RemoveUser(ctx context.Context) StoreResult
}
