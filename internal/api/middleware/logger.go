package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github/chapool/eth-payout/internal/config"
)

// Logger attaches a request scoped zerolog logger (enriched with the request
// id) to the request context and logs request completion.
func Logger(cfg config.LoggerServer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			l := log.With().
				Str("request_id", id).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Logger()

			c.SetRequest(req.WithContext(l.WithContext(req.Context())))

			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			l.WithLevel(cfg.RequestLevel).
				Int("status", c.Response().Status).
				Dur("latency", time.Since(start)).
				Msg("Request handled")

			return nil
		}
	}
}
