package handlers

import (
	"github.com/labstack/echo/v4"

	"github/chapool/eth-payout/internal/api"
	"github/chapool/eth-payout/internal/api/handlers/common"
	"github/chapool/eth-payout/internal/api/handlers/payout"
)

// AttachAllRoutes attaches all registered routes to the server.
func AttachAllRoutes(s *api.Server) {
	s.Router.Routes = []*echo.Route{}

	s.Router.Routes = append(s.Router.Routes, payout.PostTransferRoutes(s)...)

	s.Router.Routes = append(s.Router.Routes,
		payout.GetBalanceRoute(s),
		payout.GetStatusRoute(s),
		payout.GetHealthRoute(s),

		common.GetReadyRoute(s),
		common.GetHealthyRoute(s),
		common.GetMetricsRoute(s),
	)
}
