package payout

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github/chapool/eth-payout/internal/api"
	"github/chapool/eth-payout/internal/api/httperrors"
	"github/chapool/eth-payout/internal/types"
	"github/chapool/eth-payout/internal/util"
	"github/chapool/eth-payout/internal/wallet/transfer"
)

// TransferPaths 转账操作的全部路由别名。所有别名共享同一个处理器，
// 行为完全一致，仅为兼容历史调用方而保留。
var TransferPaths = []string{
	"/convert",
	"/send-eth",
	"/withdraw",
	"/transfer",
	"/coinbase-withdraw",
	"/convert-earnings-to-eth",
	"/fund-from-earnings",
	"/earnings-to-treasury",
	"/withdraw-profits-to-treasury",
	"/claim-mev-profits",
	"/execute",
	"/direct-transfer",
	"/batch-transfer",
	"/eip1559-transfer",
}

func PostTransferRoutes(s *api.Server) []*echo.Route {
	handler := postTransferHandler(s)

	routes := make([]*echo.Route, 0, len(TransferPaths))
	for _, path := range TransferPaths {
		routes = append(routes, s.Router.Root.POST(path, handler))
	}

	return routes
}

func postTransferHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostTransferPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		req := &transfer.Request{
			Amount:     body.Amount,
			AmountETH:  body.AmountETH,
			AmountUSD:  body.AmountUSD,
			Value:      body.Value,
			Eth:        body.Eth,
			Percentage: body.Percentage,

			To:             body.To,
			ToAddress:      body.ToAddress,
			Treasury:       body.Treasury,
			Recipient:      body.Recipient,
			CoinbaseWallet: body.CoinbaseWallet,
			FeeRecipient:   body.FeeRecipient,
		}

		result, err := s.Transfer.Transfer(ctx, req)
		if err != nil {
			return mapTransferError(log, err)
		}

		response := &types.TransferResponse{
			Success:         swag.Bool(true),
			TxHash:          swag.String(result.Hash.Hex()),
			Hash:            swag.String(result.Hash.Hex()),
			TransactionHash: swag.String(result.Hash.Hex()),
			From:            swag.String(result.From.Hex()),
			To:              swag.String(result.To.Hex()),
			Amount:          swag.Float64(util.WeiToEth(result.AmountWei)),
			AmountUSD:       swag.Float64(util.WeiToUSD(result.AmountWei, s.Config.Payout.ETHUSDRate)),
			BlockNumber:     swag.Int64(int64(result.BlockNumber)),
			GasUsed:         swag.Int64(int64(result.GasUsed)),
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}

// mapTransferError 把转账管线的类型化错误映射为公开的 HTTP 错误。
// 余额不足与无效目标地址是调用方错误（400），其余一律 500。
func mapTransferError(log *zerolog.Logger, err error) error {
	var insufficientFundsErr *transfer.InsufficientFundsError
	var broadcastErr *transfer.BroadcastError
	var configurationErr *transfer.ConfigurationError
	var networkErr *transfer.NetworkError
	var signingErr *transfer.SigningError

	switch {
	case errors.As(err, &insufficientFundsErr):
		log.Info().Err(err).Msg("Transfer rejected: insufficient funds")

		return httperrors.NewHTTPError(http.StatusBadRequest, "Insufficient funds").
			WithBalance(
				util.FormatEthBalance(insufficientFundsErr.Balance),
				"fund the signer address or lower the gas reserve",
			)

	case errors.As(err, &broadcastErr):
		log.Error().Err(err).Int("provider_code", broadcastErr.Code).Msg("Failed to broadcast transaction")

		return httperrors.NewHTTPError(http.StatusInternalServerError, "Failed to broadcast transaction").
			WithProviderCode(broadcastErr.Code).
			WithInternal(err)

	case errors.As(err, &configurationErr):
		return httperrors.NewHTTPError(http.StatusInternalServerError, "Signer is not configured").
			WithInternal(err)

	case errors.As(err, &networkErr):
		log.Error().Err(err).Str("op", networkErr.Op).Msg("RPC interaction failed")

		return httperrors.NewHTTPError(http.StatusInternalServerError, "Upstream RPC endpoint failed").
			WithInternal(err)

	case errors.As(err, &signingErr):
		return httperrors.NewHTTPError(http.StatusInternalServerError, "Failed to sign transaction").
			WithInternal(err)

	default:
		// destination resolution returns untyped errors for malformed
		// addresses, which are caller mistakes.
		return httperrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
}
