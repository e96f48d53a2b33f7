package payout_test

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/chapool/eth-payout/internal/api"
	"github/chapool/eth-payout/internal/test"
	internaltypes "github/chapool/eth-payout/internal/types"
)

func TestGetBalance(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/balance", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode, res.Body.String())

		var response internaltypes.BalanceResponse
		test.ParseResponseBody(t, res, &response)

		require.NotNil(t, response.Address)
		assert.Equal(t, testSignerAddress, *response.Address)

		require.NotNil(t, response.BalanceETH)
		assert.InDelta(t, 1.0, *response.BalanceETH, 1e-12)

		require.NotNil(t, response.BalanceUSD)
		assert.InDelta(t, s.Config.Payout.ETHUSDRate, *response.BalanceUSD, 1e-6)

		require.NotNil(t, response.Treasury)
		assert.Equal(t, s.Config.Payout.DefaultTreasury, *response.Treasury)

		require.NotNil(t, response.FeeRecipient)
		assert.Equal(t, testSignerAddress, *response.FeeRecipient)
	})
}

func TestGetBalanceUpstreamBroken(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		test.BackendFromServer(t, s).BalanceErr = errors.New("connection refused")

		res := test.PerformRequest(t, s, "GET", "/balance", nil, nil)
		require.Equal(t, http.StatusInternalServerError, res.Result().StatusCode)
	})
}
