package common_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github/chapool/eth-payout/internal/api"
	"github/chapool/eth-payout/internal/test"
)

func TestGetHealthy(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		path := fmt.Sprintf("/-/healthy?mgmt-secret=%s", s.Config.Management.Secret)

		res := test.PerformRequest(t, s, "GET", path, nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode, res.Body.String())
		assert.Contains(t, res.Body.String(), "Healthy.")
	})
}

func TestGetHealthyWrongSecret(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/-/healthy?mgmt-secret=wrong", nil, nil)
		require.Equal(t, http.StatusUnauthorized, res.Result().StatusCode)
	})
}

func TestGetHealthyUpstreamBroken(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		test.BackendFromServer(t, s).BalanceErr = errors.New("connection refused")

		path := fmt.Sprintf("/-/healthy?mgmt-secret=%s", s.Config.Management.Secret)

		res := test.PerformRequest(t, s, "GET", path, nil, nil)
		require.Equal(t, 521, res.Result().StatusCode)
		assert.Contains(t, res.Body.String(), "Not healthy.")
	})
}
