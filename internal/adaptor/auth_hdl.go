package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"game-ghor/internal/dto/request"
	"game-ghor/internal/usecase"
	"game-ghor/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "register")
		return
	}

	utils.ResponseCreated(w, "Registration successful", resp)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", resp)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		utils.ResponseBadRequest(w, "No token provided", nil)
		return
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		utils.ResponseBadRequest(w, "Invalid token format", nil)
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		handleServiceError(w, h.log, err, "logout")
		return
	}

	utils.ResponseSuccess(w, "Logout successful", nil)
}

// ForgotPassword handles POST /auth/forgot-password
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ForgotPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.RequestPasswordReset(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "forgot password")
		return
	}

	utils.ResponseSuccess(w, "Reset code sent if the account exists", resp)
}

// ResetPassword handles POST /auth/reset-password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "reset password")
		return
	}

	utils.ResponseSuccess(w, "Password reset successful", nil)
}
