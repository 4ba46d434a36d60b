package adaptor

import (
	"encoding/json"
	"net/http"

	"game-ghor/internal/dto/request"
	"game-ghor/internal/usecase"
	"game-ghor/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetAllUsers handles GET /admin/users
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved", users)
}

// UpdateUser handles PATCH /admin/users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	var req request.UpdateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	user, err := h.service.UpdateUser(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update user")
		return
	}

	utils.ResponseSuccess(w, "User updated", user)
}
