package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youssofmousssa/luxestorebackeend/pkg/resp"
)

// BodyLimit caps request bodies at limit bytes. A declared Content-Length
// over the cap gets 413 up front; bodies without one are cut off by
// http.MaxBytesReader and fail to bind.
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			resp.Error(c, http.StatusRequestEntityTooLarge, "Payload too large")
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
