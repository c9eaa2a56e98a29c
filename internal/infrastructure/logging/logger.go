package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldURI       = "uri"
	FieldStatus    = "status"
	FieldLatency   = "latency_ms"
	FieldError     = "error"
	FieldMode      = "mode"
)

const (
	ComponentApp        = "app"
	ComponentHTTP       = "http"
	ComponentCalculator = "calculator"
	ComponentDebt       = "debt"
	ComponentCache      = "cache"
)

// ParseLevel maps LOG_LEVEL values to slog levels, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// New builds the root text logger. Components tag themselves via Component.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Component returns a child logger for a named component.
func Component(l *slog.Logger, name string) *slog.Logger {
	return l.With(FieldComponent, name)
}

// RequestLogger writes one access-log line per request through l.
func RequestLogger(l *slog.Logger) echo.MiddlewareFunc {
	httpLog := Component(l, ComponentHTTP)
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				FieldMethod, v.Method,
				FieldURI, v.URI,
				FieldStatus, v.Status,
				FieldLatency, v.Latency.Milliseconds(),
			}
			if v.RequestID != "" {
				attrs = append(attrs, FieldRequestID, v.RequestID)
			}
			if v.Error != nil {
				httpLog.Error("request", append(attrs, FieldError, v.Error.Error())...)
				return nil
			}
			httpLog.Info("request", attrs...)
			return nil
		},
	})
}
