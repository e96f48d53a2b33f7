package payout_test

import (
	"net/http"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/chapool/eth-payout/internal/api"
	"github/chapool/eth-payout/internal/test"
	internaltypes "github/chapool/eth-payout/internal/types"
	"github/chapool/eth-payout/internal/util"
)

const testSignerAddress = "0x96216849c49358B10257cb55b28eA603c874b05E"

func TestPostTransferSuccess(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		payload := test.GenericPayload{
			"amount": 0.5,
		}

		res := test.PerformRequest(t, s, "POST", "/transfer", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode, res.Body.String())

		var response internaltypes.TransferResponse
		test.ParseResponseBody(t, res, &response)

		require.NotNil(t, response.Success)
		assert.True(t, *response.Success)

		require.NotNil(t, response.TxHash)
		require.NotNil(t, response.Hash)
		require.NotNil(t, response.TransactionHash)
		assert.NotEmpty(t, *response.TxHash)
		assert.Equal(t, *response.TxHash, *response.Hash)
		assert.Equal(t, *response.TxHash, *response.TransactionHash)

		require.NotNil(t, response.From)
		assert.Equal(t, testSignerAddress, *response.From)
		require.NotNil(t, response.To)
		assert.Equal(t, s.Config.Payout.DefaultTreasury, *response.To)

		require.NotNil(t, response.Amount)
		assert.InDelta(t, 0.5, *response.Amount, 1e-12)
		require.NotNil(t, response.AmountUSD)
		assert.InDelta(t, 0.5*s.Config.Payout.ETHUSDRate, *response.AmountUSD, 1e-6)

		require.NotNil(t, response.BlockNumber)
		assert.EqualValues(t, 123, *response.BlockNumber)
		require.NotNil(t, response.GasUsed)
		assert.EqualValues(t, params.TxGas, *response.GasUsed)

		tx := test.BackendFromServer(t, s).LastSentTx()
		require.NotNil(t, tx)
		assert.Equal(t, uint8(types.DynamicFeeTxType), tx.Type())
		assert.Equal(t, uint64(7), tx.Nonce())
		assert.Equal(t, params.TxGas, tx.Gas())
		assert.Equal(t, util.EthToWei(0.5), tx.Value())
	})
}

func TestPostTransferAliasRoutes(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		for _, path := range []string{"/send-eth", "/claim-mev-profits", "/eip1559-transfer"} {
			res := test.PerformRequest(t, s, "POST", path, test.GenericPayload{"amount": 0.1}, nil)
			require.Equal(t, http.StatusOK, res.Result().StatusCode, "path %s: %s", path, res.Body.String())
		}
	})
}

func TestPostTransferAmountModePriority(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		// percentage must win over the fiat and native aliases
		payload := test.GenericPayload{
			"percentage": 50,
			"amountUSD":  30,
			"amount":     0.1,
		}

		res := test.PerformRequest(t, s, "POST", "/convert", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode, res.Body.String())

		var response internaltypes.TransferResponse
		test.ParseResponseBody(t, res, &response)

		// 50% of the 1 ETH stub balance minus the 0.002 ETH gas reserve
		require.NotNil(t, response.Amount)
		assert.InDelta(t, 0.498, *response.Amount, 1e-12)
	})
}

func TestPostTransferDestinationAlias(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		recipient := "0x8ba1f109551bD432803012645Ac136ddd64DBA72"

		payload := test.GenericPayload{
			"recipient": recipient,
			"amount":    0.1,
		}

		res := test.PerformRequest(t, s, "POST", "/withdraw", payload, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode, res.Body.String())

		var response internaltypes.TransferResponse
		test.ParseResponseBody(t, res, &response)

		require.NotNil(t, response.To)
		assert.Equal(t, recipient, *response.To)
	})
}

func TestPostTransferFallbackAmount(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/transfer", test.GenericPayload{}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode, res.Body.String())

		var response internaltypes.TransferResponse
		test.ParseResponseBody(t, res, &response)

		require.NotNil(t, response.Amount)
		assert.InDelta(t, s.Config.Payout.FallbackAmountETH, *response.Amount, 1e-9)
	})
}

func TestPostTransferInsufficientFunds(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		backend := test.BackendFromServer(t, s)
		backend.Balance = util.EthToWei(0.001)

		res := test.PerformRequest(t, s, "POST", "/transfer", test.GenericPayload{"percentage": 100}, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		assert.Contains(t, res.Body.String(), `"balance":"0.001000"`)
		assert.Nil(t, backend.LastSentTx(), "no transaction may be broadcast on insufficient funds")
	})
}

func TestPostTransferInvalidDestination(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		payload := test.GenericPayload{
			"to":     "not-an-address",
			"amount": 0.1,
		}

		res := test.PerformRequest(t, s, "POST", "/transfer", payload, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)
		assert.Contains(t, res.Body.String(), "invalid destination address")
	})
}

func TestPostTransferBroadcastError(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		backend := test.BackendFromServer(t, s)
		backend.SendErr = &test.RPCError{Code: -32000, Message: "insufficient funds for gas * price + value"}

		res := test.PerformRequest(t, s, "POST", "/transfer", test.GenericPayload{"amount": 0.1}, nil)
		require.Equal(t, http.StatusInternalServerError, res.Result().StatusCode)
		assert.Contains(t, res.Body.String(), `"code":-32000`)
	})
}
