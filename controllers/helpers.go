package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/youssofmousssa/luxestorebackeend/entity"
	"github.com/youssofmousssa/luxestorebackeend/pkg/resp"
	"github.com/youssofmousssa/luxestorebackeend/utils"
)

// bindJSON decodes the body into dst. On failure it answers 400 with msg
// instead of the decoder's own text.
func bindJSON(c *gin.Context, dst any, msg string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		resp.BadRequest(c, msg)
		return false
	}
	return true
}

// requester returns the authenticated user or answers 401.
func requester(c *gin.Context) (entity.User, bool) {
	u, ok := utils.CurrentUser(c)
	if !ok || u.ID == "" {
		resp.Unauthorized(c, "Unauthorized")
		return entity.User{}, false
	}
	return u, true
}
