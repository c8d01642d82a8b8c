package middlewares

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/youssofmousssa/luxestorebackeend/pkg/resp"
)

// Recovery turns a panic into the generic 500 envelope. The stack goes to
// the log only.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, rec any) {
		log.ErrorContext(c.Request.Context(), "panic recovered",
			slog.String("requestId", c.GetString(resp.RequestIDKey)),
			slog.String("path", c.Request.URL.Path),
			slog.String("panic", fmt.Sprint(rec)),
			slog.String("stack", string(debug.Stack())),
		)
		resp.Error(c, http.StatusInternalServerError, "Internal server error")
	})
}
