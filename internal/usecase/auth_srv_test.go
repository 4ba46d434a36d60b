package usecase

import (
	"context"
	"testing"

	"game-ghor/internal/dto/request"
	"game-ghor/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	resp, err := env.service.Auth.Register(ctx, &request.RegisterRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bob@example.com", resp.Email)
	assert.Equal(t, "user", string(resp.Role))

	login, err := env.service.Auth.Login(ctx, &request.LoginRequest{
		Email:    "bob@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.AccessToken)
	assert.NotEqual(t, resp.AccessToken, login.AccessToken)

	// The token resolves to a live session.
	session, err := env.repo.Session.FindValidSession(ctx, login.AccessToken)
	require.NoError(t, err)
	require.NotNil(t, session)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.service.Auth.Register(ctx, &request.RegisterRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = env.service.Auth.Register(ctx, &request.RegisterRequest{
		Name:     "Other Bob",
		Email:    "bob@example.com",
		Password: "different",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestRegisterShortPassword(t *testing.T) {
	env := newTestEnv()

	_, err := env.service.Auth.Register(context.Background(), &request.RegisterRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "short",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.service.Auth.Register(ctx, &request.RegisterRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = env.service.Auth.Login(ctx, &request.LoginRequest{
		Email:    "bob@example.com",
		Password: "wrong-password",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))

	_, err = env.service.Auth.Login(ctx, &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "hunter22",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))
}

func TestLogoutRevokesSession(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	resp, err := env.service.Auth.Register(ctx, &request.RegisterRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	require.NoError(t, env.service.Auth.Logout(ctx, resp.AccessToken))

	session, err := env.repo.Session.FindValidSession(ctx, resp.AccessToken)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestPasswordResetFlow(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	reg, err := env.service.Auth.Register(ctx, &request.RegisterRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	resp, err := env.service.Auth.RequestPasswordReset(ctx, &request.ForgotPasswordRequest{
		Email: "bob@example.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.DebugCode, "debug mode exposes the code")
	assert.Len(t, env.mail.resetCodes, 1)

	err = env.service.Auth.ResetPassword(ctx, &request.ResetPasswordRequest{
		Email:       "bob@example.com",
		Code:        resp.DebugCode,
		NewPassword: "new-password",
	})
	require.NoError(t, err)

	// Old credential is gone, new one works.
	_, err = env.service.Auth.Login(ctx, &request.LoginRequest{
		Email:    "bob@example.com",
		Password: "hunter22",
	})
	require.Error(t, err)

	_, err = env.service.Auth.Login(ctx, &request.LoginRequest{
		Email:    "bob@example.com",
		Password: "new-password",
	})
	require.NoError(t, err)

	// Sessions issued before the reset are revoked.
	session, err := env.repo.Session.FindValidSession(ctx, reg.AccessToken)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestResetCodeSingleUse(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.service.Auth.Register(ctx, &request.RegisterRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	resp, err := env.service.Auth.RequestPasswordReset(ctx, &request.ForgotPasswordRequest{
		Email: "bob@example.com",
	})
	require.NoError(t, err)

	req := &request.ResetPasswordRequest{
		Email:       "bob@example.com",
		Code:        resp.DebugCode,
		NewPassword: "new-password",
	}
	require.NoError(t, env.service.Auth.ResetPassword(ctx, req))

	err = env.service.Auth.ResetPassword(ctx, req)
	require.Error(t, err)
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))
}

func TestResetCodeRotation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.service.Auth.Register(ctx, &request.RegisterRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	first, err := env.service.Auth.RequestPasswordReset(ctx, &request.ForgotPasswordRequest{
		Email: "bob@example.com",
	})
	require.NoError(t, err)

	second, err := env.service.Auth.RequestPasswordReset(ctx, &request.ForgotPasswordRequest{
		Email: "bob@example.com",
	})
	require.NoError(t, err)
	require.NotEqual(t, first.DebugCode, second.DebugCode)

	// The first code was replaced by the second request.
	err = env.service.Auth.ResetPassword(ctx, &request.ResetPasswordRequest{
		Email:       "bob@example.com",
		Code:        first.DebugCode,
		NewPassword: "new-password",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))

	err = env.service.Auth.ResetPassword(ctx, &request.ResetPasswordRequest{
		Email:       "bob@example.com",
		Code:        second.DebugCode,
		NewPassword: "new-password",
	})
	require.NoError(t, err)
}

func TestPasswordResetUnknownEmail(t *testing.T) {
	env := newTestEnv()

	// Same answer whether or not the account exists.
	resp, err := env.service.Auth.RequestPasswordReset(context.Background(), &request.ForgotPasswordRequest{
		Email: "nobody@example.com",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.DebugCode)
	assert.Empty(t, env.mail.resetCodes)
}
