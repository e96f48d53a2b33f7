package common

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"

	"github/chapool/eth-payout/internal/api"
)

// GetMetricsRoute exposes the server's own prometheus registry. Guarded by
// the mgmt secret like the other management endpoints.
func GetMetricsRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: s.Metrics.Registry(),
	}))
}
