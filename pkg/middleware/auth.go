package middleware

import (
	"net/http"
	"strings"

	"game-ghor/internal/data/entity"
	"game-ghor/internal/data/repository"
	"game-ghor/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession validates the opaque session token and puts the resolved
// user id into the request context.
func AuthSession(sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session")
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetUserContext(r.Context(), session.UserID)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin re-resolves the caller's role from the users table on every
// request. The client-held profile is advisory; only the stored role
// grants access.
func Admin(userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Admin check: failed to get user",
					zap.Error(err), zap.String("user_id", userID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil || user.Role != entity.RoleAdmin || !user.IsActive {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
