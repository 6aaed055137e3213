package service

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"FitHub/internal/cli/api"
	"FitHub/internal/cli/repo"
)

// Пути API аутентификации.
const (
	PathRegisterPlayer  = "/api/auth/register/player"
	PathRegisterTrainer = "/api/auth/register/trainer"
	PathLogin           = "/api/auth/login"
	PathMe              = "/api/auth/me"
)

// Role — роль пользователя на сервере.
type Role string

const (
	RolePlayer  Role = "player"
	RoleTrainer Role = "trainer"
)

// PlayerRegistration — поля регистрации игрока. Необязательные поля
// не отправляются, если не заданы.
type PlayerRegistration struct {
	Email      string   `json:"email"`
	Password   string   `json:"password"`
	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	Age        *int     `json:"age,omitempty"`
	Bodyweight *float64 `json:"bodyweight,omitempty"`
	Height     *float64 `json:"height,omitempty"`
	SexAtBirth *string  `json:"sexAtBirth,omitempty"`
}

// TrainerRegistration — поля регистрации тренера.
type TrainerRegistration struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Credentials — данные для входа.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// SessionStore — то, что сервису нужно от локального хранилища сессии.
type SessionStore interface {
	repo.TokenStore
	repo.UserContextStore
}

// Requester выполняет запросы к API.
type Requester interface {
	Request(ctx context.Context, path string, opts api.RequestOptions) (json.RawMessage, error)
}

// AuthService описывает юзкейс-уровень аутентификации для CLI.
type AuthService interface {
	RegisterPlayer(ctx context.Context, p PlayerRegistration) (api.Response, error)
	RegisterTrainer(ctx context.Context, p TrainerRegistration) (api.Response, error)
	Login(ctx context.Context, c Credentials) (api.Response, error)
	// CurrentUser запрашивает профиль с текущим токеном (или без него).
	CurrentUser(ctx context.Context) (api.Response, error)
	// Logout очищает локальный контекст аутентификации, без обращения к серверу.
	Logout(ctx context.Context)
}

type authService struct {
	api    Requester
	store  SessionStore
	logger *zap.SugaredLogger
}

// NewAuthService собирает сервис поверх клиента API и хранилища сессии.
func NewAuthService(client Requester, store SessionStore, logger *zap.SugaredLogger) AuthService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &authService{api: client, store: store, logger: logger}
}

func (s *authService) RegisterPlayer(ctx context.Context, p PlayerRegistration) (api.Response, error) {
	return s.authenticate(ctx, PathRegisterPlayer, p)
}

func (s *authService) RegisterTrainer(ctx context.Context, p TrainerRegistration) (api.Response, error) {
	return s.authenticate(ctx, PathRegisterTrainer, p)
}

func (s *authService) Login(ctx context.Context, c Credentials) (api.Response, error) {
	return s.authenticate(ctx, PathLogin, c)
}

func (s *authService) CurrentUser(ctx context.Context) (api.Response, error) {
	raw, err := s.api.Request(ctx, PathMe, api.RequestOptions{Method: http.MethodGet})
	if err != nil {
		return nil, err
	}
	return api.Decode(raw), nil
}

func (s *authService) Logout(ctx context.Context) {
	s.store.RemoveToken(ctx)
	s.store.RemoveUser(ctx)
}

// authenticate отправляет POST и, если сервер вернул токен, сохраняет
// токен и снимок пользователя до возврата ответа. Сбой сохранения
// уже залогирован хранилищем; вызывающий получает ответ как обычно.
func (s *authService) authenticate(ctx context.Context, path string, body any) (api.Response, error) {
	raw, err := s.api.Request(ctx, path, api.RequestOptions{Method: http.MethodPost, Body: body})
	if err != nil {
		return nil, err
	}
	resp := api.Decode(raw)
	if auth, ok := resp.(api.AuthSuccess); ok {
		if res := s.store.SetToken(ctx, auth.Token); !res.OK() {
			s.logger.Warnw("session token not persisted", "path", path, "error", res.Err())
		}
		// снимок заменяется целиком; без user в ответе старый удаляется
		if len(auth.User) == 0 {
			s.store.RemoveUser(ctx)
		} else {
			s.store.SetUser(ctx, auth.User)
		}
	}
	return resp, nil
}
