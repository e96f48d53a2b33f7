package payout

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github/chapool/eth-payout/internal/api"
	"github/chapool/eth-payout/internal/types"
	"github/chapool/eth-payout/internal/util"
)

func GetStatusRoute(s *api.Server) *echo.Route {
	return s.Router.Root.GET("/status", getStatusHandler(s))
}

// getStatusHandler reports liveness unconditionally. Signer address and
// balance are best effort: a failing upstream connection must not turn the
// status endpoint into an error.
func getStatusHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		response := &types.StatusResponse{
			Alive:     swag.Bool(true),
			Endpoints: TransferPaths,
		}

		snapshot, err := s.Balance.Snapshot(ctx)
		if err != nil {
			log.Debug().Err(err).Msg("Status snapshot degraded, reporting liveness only")
		} else {
			response.Signer = snapshot.Address.Hex()
			response.BalanceETH = swag.Float64(snapshot.ETH)
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
