package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

type Options struct {
	Service   string
	Env       string
	Level     string
	AddSource bool
	Output    io.Writer // stdout when nil
}

// New builds the process JSON logger and installs it as the slog default.
func New(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	h := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level:     ParseLevel(opts.Level),
		AddSource: opts.AddSource,
	})

	base := slog.New(h).With(
		"service", opts.Service,
		"env", opts.Env,
	)

	slog.SetDefault(base)
	return base
}

// Gin sends gin's own output through log. Route registrations and debug
// prints go out at debug level, framework errors at warn. Outside dev gin
// is switched to release mode.
func Gin(log *slog.Logger, dev bool) {
	if !dev {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = ginWriter{log: log, level: slog.LevelDebug}
	gin.DefaultErrorWriter = ginWriter{log: log, level: slog.LevelWarn}
	gin.DebugPrintRouteFunc = func(method, path, handler string, handlers int) {
		log.Debug("route registered",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("handler", handler),
			slog.Int("handlers", handlers),
		)
	}
}

type ginWriter struct {
	log   *slog.Logger
	level slog.Level
}

func (w ginWriter) Write(p []byte) (int, error) {
	msg := strings.TrimSpace(strings.TrimPrefix(string(p), "[GIN-debug]"))
	if msg != "" {
		w.log.Log(context.Background(), w.level, msg, slog.String("component", "gin"))
	}
	return len(p), nil
}

func ParseLevel(lvl string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
