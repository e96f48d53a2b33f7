package payout

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github/chapool/eth-payout/internal/api"
	"github/chapool/eth-payout/internal/api/httperrors"
	"github/chapool/eth-payout/internal/types"
	"github/chapool/eth-payout/internal/util"
)

func GetBalanceRoute(s *api.Server) *echo.Route {
	return s.Router.Root.GET("/balance", getBalanceHandler(s))
}

func getBalanceHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		snapshot, err := s.Balance.Snapshot(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Failed to read signer balance")
			return httperrors.NewHTTPError(http.StatusInternalServerError, "Failed to read signer balance").
				WithInternal(err)
		}

		response := &types.BalanceResponse{
			Address:      swag.String(snapshot.Address.Hex()),
			BalanceETH:   swag.Float64(snapshot.ETH),
			BalanceUSD:   swag.Float64(snapshot.USD),
			Treasury:     swag.String(s.Config.Payout.DefaultTreasury),
			FeeRecipient: swag.String(snapshot.Address.Hex()),
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
