package repo

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
)

// SessionStore хранит bearer-токен и кэш профиля пользователя поверх KeyValue.
// Сбои хранилища логируются здесь и дальше не пробрасываются.
type SessionStore struct {
	kv     KeyValue
	logger *zap.SugaredLogger
}

var (
	_ TokenStore       = (*SessionStore)(nil)
	_ UserContextStore = (*SessionStore)(nil)
)

// NewSessionStore создаёт хранилище сессии. nil logger заменяется на no-op.
func NewSessionStore(kv KeyValue, logger *zap.SugaredLogger) *SessionStore {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &SessionStore{kv: kv, logger: logger}
}

// GetToken читает токен; отсутствие и ошибка чтения дают ("", false).
func (s *SessionStore) GetToken(ctx context.Context) (string, bool) {
	v, ok := s.get(ctx, KeyAuthToken)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (s *SessionStore) SetToken(ctx context.Context, token string) StoreResult {
	return s.set(ctx, KeyAuthToken, token)
}

func (s *SessionStore) RemoveToken(ctx context.Context) StoreResult {
	return s.remove(ctx, KeyAuthToken)
}

// GetUser возвращает сохранённый снимок профиля как есть.
func (s *SessionStore) GetUser(ctx context.Context) (json.RawMessage, bool) {
	v, ok := s.get(ctx, KeyUserData)
	if !ok || v == "" {
		return nil, false
	}
	return json.RawMessage(v), true
}

func (s *SessionStore) SetUser(ctx context.Context, user json.RawMessage) StoreResult {
	return s.set(ctx, KeyUserData, string(user))
}

func (s *SessionStore) RemoveUser(ctx context.Context) StoreResult {
	return s.remove(ctx, KeyUserData)
}

// Close закрывает нижележащий бэкенд.
func (s *SessionStore) Close() error {
	return s.kv.Close()
}

func (s *SessionStore) get(ctx context.Context, key string) (string, bool) {
	v, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Warnw("session store: read failed", "key", key, "error", err)
		}
		return "", false
	}
	return v, true
}

func (s *SessionStore) set(ctx context.Context, key, value string) StoreResult {
	if err := s.kv.Set(ctx, key, value); err != nil {
		s.logger.Errorw("session store: write failed", "key", key, "error", err)
		return StorageFailed(err)
	}
	return Stored()
}

func (s *SessionStore) remove(ctx context.Context, key string) StoreResult {
	if err := s.kv.Delete(ctx, key); err != nil {
		s.logger.Errorw("session store: delete failed", "key", key, "error", err)
		return StorageFailed(err)
	}
	return Stored()
}
