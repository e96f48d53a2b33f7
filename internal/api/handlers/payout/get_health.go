package payout

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github/chapool/eth-payout/internal/api"
	"github/chapool/eth-payout/internal/types"
	"github/chapool/eth-payout/internal/util"
)

func GetHealthRoute(s *api.Server) *echo.Route {
	return s.Router.Root.GET("/health", getHealthHandler())
}

func getHealthHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		response := &types.HealthResponse{
			Status: swag.String("ok"),
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
