package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/youssofmousssa/luxestorebackeend/entity"
	"github.com/youssofmousssa/luxestorebackeend/pkg/resp"
	"github.com/youssofmousssa/luxestorebackeend/utils"
)

// WSAuthMiddleware accepts the token from ?token= (browsers cannot set headers
// on a websocket handshake) or from the Authorization header. Admins only.
func WSAuthMiddleware(secret string, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := strings.TrimSpace(c.Query("token"))
		if tokenStr == "" {
			tokenStr, _ = bearerToken(c)
		}
		if tokenStr == "" {
			resp.Unauthorized(c, "Unauthorized: Token missing")
			return
		}
		if !authenticate(c, tokenStr, secret, users) {
			return
		}
		if utils.CurrentRole(c) != entity.RoleAdmin {
			resp.Forbidden(c, "Forbidden: Admins only")
			return
		}
		c.Next()
	}
}
