package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/youssofmousssa/luxestorebackeend/entity"
)

// Context keys set by the auth middlewares.
const (
	UserKey   = "user"
	UserIDKey = "userId"
	RoleKey   = "role"
)

func SetCurrentUser(c *gin.Context, u entity.User) {
	c.Set(UserKey, u)
	c.Set(UserIDKey, u.ID)
	c.Set(RoleKey, u.Role)
}

// CurrentUser returns the identity resolved by AuthMiddleware for this request.
func CurrentUser(c *gin.Context) (entity.User, bool) {
	v, ok := c.Get(UserKey)
	if !ok {
		return entity.User{}, false
	}
	u, ok := v.(entity.User)
	return u, ok
}

func CurrentUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

func CurrentRole(c *gin.Context) string {
	return c.GetString(RoleKey)
}
