package util

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// LogFromContext returns the request-scoped logger previously attached by
// the logger middleware. Falls back to the zerolog default context logger.
func LogFromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// LogFromEchoContext returns the request-scoped logger of an echo context.
func LogFromEchoContext(c echo.Context) *zerolog.Logger {
	return LogFromContext(c.Request().Context())
}
