package handlers

import (
	"FitHub/internal/config"
	"FitHub/internal/middleware"
	"FitHub/internal/model"
	"FitHub/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultTokenTTL = 24 * time.Hour

// UserHandler обслуживает регистрацию, вход и профиль текущего пользователя.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

type registerRequest struct {
	Email      string   `json:"email"`
	Password   string   `json:"password"`
	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	Age        *int     `json:"age"`
	Bodyweight *float64 `json:"bodyweight"`
	Height     *float64 `json:"height"`
	SexAtBirth *string  `json:"sexAtBirth"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

type meResponse struct {
	User *model.User `json:"user"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (h *UserHandler) RegisterPlayer(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, model.RolePlayer)
}

func (h *UserHandler) RegisterTrainer(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, model.RoleTrainer)
}

func (h *UserHandler) register(w http.ResponseWriter, r *http.Request, role string) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.UserService.Register(r.Context(), service.Registration{
		Role:       role,
		Email:      req.Email,
		Password:   req.Password,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Age:        req.Age,
		Bodyweight: req.Bodyweight,
		Height:     req.Height,
		SexAtBirth: req.SexAtBirth,
	})
	switch {
	case errors.Is(err, service.ErrMissingFields):
		writeError(w, http.StatusBadRequest, "Email, password, first name and last name are required")
		return
	case errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusConflict, "Email already registered")
		return
	case err != nil:
		h.Logger.Errorw("register failed", "role", role, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.Logger.Infow("user registered", "id", user.ID, "role", role)
	h.respondWithToken(w, http.StatusCreated, user)
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.UserService.Login(r.Context(), req.Email, req.Password, req.Role)
	switch {
	case errors.Is(err, service.ErrUnknownRole):
		writeError(w, http.StatusBadRequest, "Unknown role")
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	case err != nil:
		h.Logger.Errorw("login failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.respondWithToken(w, http.StatusOK, user)
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	user, err := h.UserService.GetByID(r.Context(), uid)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	case err != nil:
		h.Logger.Errorw("load current user failed", "id", uid, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, meResponse{User: user})
}

func (h *UserHandler) respondWithToken(w http.ResponseWriter, status int, user *model.User) {
	ttl := h.Config.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	token, err := middleware.IssueToken(user.ID, user.Role, h.Config.AuthSecret, ttl)
	if err != nil {
		h.Logger.Errorw("issue token failed", "id", user.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, status, authResponse{Token: token, User: user})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}
