package usecase

import (
	"context"
	"time"

	"game-ghor/internal/data/entity"
	"game-ghor/internal/data/repository"
	"game-ghor/internal/dto/request"
	"game-ghor/internal/dto/response"
	"game-ghor/internal/mailer"
	"game-ghor/pkg/apperr"
	"game-ghor/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	RequestPasswordReset(ctx context.Context, req *request.ForgotPasswordRequest) (*response.ForgotPasswordResponse, error)
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	mail   mailer.Mailer
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Mailer,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		mail:   mail,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, apperr.Upstream("failed to check email", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("email already registered")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, apperr.Upstream("failed to process password", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, apperr.Upstream("failed to create account", err)
	}

	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to create session after register",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, apperr.Upstream("failed to create session", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return response.AuthToResponse(user, session), nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", req.Email))
		return nil, apperr.Upstream("failed to find user", err)
	}

	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, apperr.Auth("invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, apperr.Auth("invalid credentials")
	}

	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, apperr.Auth("account is deactivated")
	}

	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, apperr.Upstream("failed to create session", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return response.AuthToResponse(user, session), nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		s.log.Warn("Invalid token format", zap.Error(err))
		return apperr.Validation("invalid token format")
	}

	if err := s.repo.Session.Revoke(ctx, tokenUUID.String()); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return apperr.Upstream("failed to logout", err)
	}

	s.log.Info("User logged out")
	return nil
}

// RequestPasswordReset never reveals whether the email exists: the
// caller gets the same answer either way. Issuing a new code replaces
// the previous one (one live code per identity).
func (s *authService) RequestPasswordReset(ctx context.Context, req *request.ForgotPasswordRequest) (*response.ForgotPasswordResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Forgot password validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	resp := &response.ForgotPasswordResponse{
		Message: "If the account exists, a reset code has been sent",
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for reset", zap.Error(err), zap.String("email", req.Email))
		return nil, apperr.Upstream("failed to process request", err)
	}
	if user == nil {
		return resp, nil
	}

	code := utils.GenerateResetCode(s.config.ResetCode.Length)
	expiresAt := time.Now().Add(time.Duration(s.config.ResetCode.ExpiryMinutes) * time.Minute)

	reset := &entity.PasswordReset{
		Email:     user.Email,
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}

	if err := s.repo.PasswordReset.Replace(ctx, reset); err != nil {
		s.log.Error("Failed to store reset code", zap.Error(err), zap.String("email", req.Email))
		return nil, apperr.Upstream("failed to process request", err)
	}

	if err := s.mail.SendResetCode(ctx, user.Email, code, expiresAt); err != nil {
		s.log.Warn("Failed to send reset code", zap.Error(err), zap.String("email", req.Email))
		// best effort, the code is stored either way
	}

	s.log.Info("Reset code issued",
		zap.String("email", user.Email),
		zap.Time("expires_at", expiresAt))

	if s.config.App.Debug {
		resp.DebugCode = code
	}

	return resp, nil
}

func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reset password validation failed", zap.Any("errors", errs))
		return apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Compare-and-clear: a second call with the same code sees zero
	// rows affected and fails.
	ok, err := s.repo.PasswordReset.Consume(ctx, req.Email, req.Code)
	if err != nil {
		s.log.Error("Failed to consume reset code", zap.Error(err), zap.String("email", req.Email))
		return apperr.Upstream("failed to reset password", err)
	}
	if !ok {
		return apperr.Auth("invalid or expired reset code")
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil || user == nil {
		s.log.Error("User not found for reset", zap.Error(err), zap.String("email", req.Email))
		return apperr.Auth("invalid or expired reset code")
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return apperr.Upstream("failed to process password", err)
	}

	user.PasswordHash = hashedPassword
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", user.ID.String()))
		return apperr.Upstream("failed to reset password", err)
	}

	// Old sessions stop working once the credential changes.
	if err := s.repo.Session.RevokeAllUserSessions(ctx, user.ID); err != nil {
		s.log.Warn("Failed to revoke sessions after reset",
			zap.Error(err), zap.String("user_id", user.ID.String()))
	}

	s.log.Info("Password reset", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *authService) createSession(ctx context.Context, userID uuid.UUID) (*entity.Session, error) {
	expiry := time.Duration(s.config.Session.ExpiryHours) * time.Hour
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    userID,
		Token:     utils.GenerateSessionToken(),
		ExpiresAt: time.Now().Add(expiry),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
