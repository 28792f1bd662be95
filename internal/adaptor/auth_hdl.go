package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"fashion-shop/internal/dto/request"
	"fashion-shop/internal/usecase"
	"fashion-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Login handles POST /authentication/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	token, err := h.service.Login(r.Context(), &req)
	if err != nil {
		var vErr *usecase.ValidationError
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			utils.ResponseUnauthorized(w, "Invalid email or password", nil)
		case errors.As(err, &vErr):
			utils.ResponseUnauthorized(w, "Validation failed", vErr.Fields)
		default:
			h.log.Error("Login failed", zap.Error(err))
			utils.ResponseInternalError(w, "Internal server error")
		}
		return
	}

	utils.ResponseSuccess(w, "Login successful", map[string]string{"token": token})
}

// FindUserByEmail handles GET /authentication/{userEmail}
func (h *AuthHandler) FindUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "userEmail")

	user, err := h.service.FindUserByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			utils.ResponseNotFound(w, "User not found")
			return
		}
		h.log.Error("Find user failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "User found", user)
}

// CreateUser handles POST /authentication/createuser
func (h *AuthHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		var vErr *usecase.ValidationError
		switch {
		// validation and duplicate both map to 401 on this endpoint,
		// matching the public API contract
		case errors.As(err, &vErr):
			utils.ResponseUnauthorized(w, "Validation failed", vErr.Fields)
		case errors.Is(err, usecase.ErrEmailTaken):
			utils.ResponseUnauthorized(w, "Email already registered", nil)
		default:
			h.log.Error("Create user failed", zap.Error(err))
			utils.ResponseInternalError(w, "Internal server error")
		}
		return
	}

	utils.ResponseSuccess(w, "Successful Registration", user)
}

// UpdateUserPassword handles PUT /authentication/updatePassword/{userEmail}
func (h *AuthHandler) UpdateUserPassword(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "userEmail")

	var req request.UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateUserPassword(r.Context(), email, &req); err != nil {
		var vErr *usecase.ValidationError
		if errors.As(err, &vErr) {
			utils.ResponseBadRequest(w, "Validation failed", vErr.Fields)
			return
		}
		h.log.Error("Update password failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "OK", nil)
}
