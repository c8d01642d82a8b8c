package middlewares

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/youssofmousssa/luxestorebackeend/entity"
	"github.com/youssofmousssa/luxestorebackeend/pkg/apperr"
	"github.com/youssofmousssa/luxestorebackeend/pkg/resp"
	"github.com/youssofmousssa/luxestorebackeend/utils"
)

// UserLookup resolves a token subject to the stored user. It returns an
// apperr.ErrNotFound error when the user is gone.
type UserLookup interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// AuthMiddleware checks the bearer token, reloads the user and, when roles
// are given, requires one of them.
func AuthMiddleware(secret string, users UserLookup, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			resp.Unauthorized(c, "Unauthorized: Token missing")
			return
		}
		if !authenticate(c, tokenStr, secret, users) {
			return
		}
		if len(requiredRoles) > 0 && !slices.Contains(requiredRoles, utils.CurrentRole(c)) {
			resp.Forbidden(c, forbiddenMessage(requiredRoles))
			return
		}
		c.Next()
	}
}

// authenticate verifies tokenStr and stores the fresh user in the context.
// It writes the error response itself and reports whether to continue.
func authenticate(c *gin.Context, tokenStr, secret string, users UserLookup) bool {
	claims, err := utils.ParseToken(tokenStr, secret)
	if err != nil {
		slog.DebugContext(c.Request.Context(), "token rejected",
			slog.String("requestId", c.GetString(resp.RequestIDKey)),
			slog.Any("err", err),
		)
		if errors.Is(err, jwt.ErrTokenExpired) {
			resp.Unauthorized(c, "Unauthorized: Token expired")
		} else {
			resp.Unauthorized(c, "Unauthorized: Invalid token")
		}
		return false
	}

	user, err := users.FindByID(c.Request.Context(), claims.UserID)
	if errors.Is(err, apperr.ErrNotFound) {
		resp.Unauthorized(c, "Unauthorized: User not found")
		return false
	}
	if err != nil {
		resp.ServerError(c, err)
		return false
	}

	utils.SetCurrentUser(c, *user)
	return true
}

func bearerToken(c *gin.Context) (string, bool) {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", false
	}
	tok := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	return tok, tok != ""
}

func forbiddenMessage(roles []string) string {
	if len(roles) == 1 && roles[0] == entity.RoleAdmin {
		return "Forbidden: Admins only"
	}
	return "Forbidden"
}
