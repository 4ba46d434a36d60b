package usecase

import (
	"context"
	"time"

	"game-ghor/internal/data/entity"
	"game-ghor/internal/data/repository"
	"game-ghor/internal/dto/request"
	"game-ghor/internal/dto/response"
	"game-ghor/pkg/apperr"
	"game-ghor/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]response.UserResponse, error)
	UpdateUser(ctx context.Context, userID string, req *request.UpdateUserRequest) (*response.UserResponse, error)
}

type userService struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewUserService(users repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		users: users,
		log:   log.With(zap.String("service", "user")),
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := s.users.FindAll(ctx, 1000, 0)
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, apperr.Upstream("failed to list users", err)
	}

	return response.UsersToResponse(users), nil
}

// UpdateUser patches role and/or activation. Demoting or deactivating
// the last remaining active admin is refused, otherwise the control
// plane would lock itself out.
func (s *userService) UpdateUser(ctx context.Context, userID string, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.Validation("invalid user id")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update user validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if req.Role == nil && req.IsActive == nil {
		return nil, apperr.Validation("nothing to update")
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID))
		return nil, apperr.Upstream("failed to find user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user not found")
	}

	losesAdmin := user.Role == entity.RoleAdmin && user.IsActive &&
		((req.Role != nil && entity.UserRole(*req.Role) != entity.RoleAdmin) ||
			(req.IsActive != nil && !*req.IsActive))

	if losesAdmin {
		admins, err := s.users.CountActiveAdmins(ctx)
		if err != nil {
			s.log.Error("Failed to count admins", zap.Error(err))
			return nil, apperr.Upstream("failed to update user", err)
		}
		if admins <= 1 {
			return nil, apperr.Conflict("cannot demote or deactivate the last admin")
		}
	}

	if req.Role != nil {
		role := entity.UserRole(*req.Role)
		if !role.Valid() {
			return nil, apperr.Validation("unknown role: %s", *req.Role)
		}
		user.Role = role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", userID))
		return nil, apperr.Upstream("failed to update user", err)
	}

	s.log.Info("User updated",
		zap.String("user_id", userID),
		zap.String("role", string(user.Role)),
		zap.Bool("is_active", user.IsActive),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}
