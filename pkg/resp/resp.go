package resp

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youssofmousssa/luxestorebackeend/pkg/apperr"
)

const internalMessage = "Internal server error"

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func Error(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
func BadRequest(c *gin.Context, msg string) {
	Error(c, http.StatusBadRequest, msg)
}
func Unauthorized(c *gin.Context, msg string) {
	Error(c, http.StatusUnauthorized, msg)
}
func Forbidden(c *gin.Context, msg string) {
	Error(c, http.StatusForbidden, msg)
}
func NotFound(c *gin.Context, msg string) {
	Error(c, http.StatusNotFound, msg)
}

// ServerError logs err and answers with the generic 500 envelope.
func ServerError(c *gin.Context, err error) {
	slog.ErrorContext(c.Request.Context(), "unhandled error",
		slog.String("requestId", c.GetString(RequestIDKey)),
		slog.String("method", c.Request.Method),
		slog.String("path", c.FullPath()),
		slog.Any("err", err),
	)
	Error(c, http.StatusInternalServerError, internalMessage)
}

// Fail is the single place where service errors become HTTP responses.
func Fail(c *gin.Context, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		ServerError(c, err)
		return
	}
	if status == http.StatusBadGateway {
		slog.ErrorContext(c.Request.Context(), "upstream failure",
			slog.String("requestId", c.GetString(RequestIDKey)),
			slog.String("path", c.FullPath()),
			slog.Any("err", err),
		)
	}
	Error(c, status, apperr.Message(err))
}

// StatusOf maps an error to its HTTP status. Unknown errors are 500.
func StatusOf(err error) int {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		return http.StatusInternalServerError
	}
	switch {
	case errors.Is(ae, apperr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(ae, apperr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(ae, apperr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(ae, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(ae, apperr.ErrConflict):
		return http.StatusConflict
	case errors.Is(ae, apperr.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// RequestIDKey is the gin context key holding the request id set by the
// logging middleware.
const RequestIDKey = "requestId"
