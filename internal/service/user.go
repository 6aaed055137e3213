package service

import (
	"FitHub/internal/model"
	"FitHub/internal/repo"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnknownRole        = errors.New("unknown role")
	ErrMissingFields      = errors.New("email, password, first name and last name are required")
	ErrUserNotFound       = errors.New("user not found")
)

type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Registration — данные новой учётной записи. Параметры тела задаются только игроком.
type Registration struct {
	Role       string
	Email      string
	Password   string
	FirstName  string
	LastName   string
	Age        *int
	Bodyweight *float64
	Height     *float64
	SexAtBirth *string
}

// Register создаёт пользователя с bcrypt-хешем пароля.
func (s *UserService) Register(ctx context.Context, reg Registration) (*model.User, error) {
	if !model.ValidRole(reg.Role) {
		return nil, ErrUnknownRole
	}
	email := normalizeEmail(reg.Email)
	first := strings.TrimSpace(reg.FirstName)
	last := strings.TrimSpace(reg.LastName)
	if email == "" || reg.Password == "" || first == "" || last == "" {
		return nil, ErrMissingFields
	}

	existing, err := s.repo.GetUserByEmail(ctx, email, reg.Role)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &model.User{
		PublicID:  uuid.NewString(),
		Email:     email,
		Role:      reg.Role,
		Password:  string(hash),
		FirstName: first,
		LastName:  last,
	}
	if reg.Role == model.RolePlayer {
		u.Age = reg.Age
		u.Bodyweight = reg.Bodyweight
		u.Height = reg.Height
		u.SexAtBirth = reg.SexAtBirth
	}
	created, err := s.repo.CreateUser(ctx, u)
	// параллельная регистрация могла пройти проверку выше раньше нас
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// Login проверяет пароль пользователя с указанной ролью. Пустая роль означает игрока.
func (s *UserService) Login(ctx context.Context, email, password, role string) (*model.User, error) {
	if role == "" {
		role = model.RolePlayer
	}
	if !model.ValidRole(role) {
		return nil, ErrUnknownRole
	}
	u, err := s.repo.GetUserByEmail(ctx, normalizeEmail(email), role)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && u == nil) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// GetByID возвращает пользователя по идентификатору из токена.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u, err := s.repo.GetUserByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && u == nil) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
