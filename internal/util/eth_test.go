package util_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github/chapool/eth-payout/internal/util"
)

func TestEthToWei(t *testing.T) {
	assert.Equal(t, big.NewInt(1000000000000000000), util.EthToWei(1))
	assert.Equal(t, big.NewInt(2000000000000000), util.EthToWei(0.002))
	assert.Equal(t, big.NewInt(0), util.EthToWei(0))
}

func TestWeiToEthRoundTrip(t *testing.T) {
	assert.InDelta(t, 0.008, util.WeiToEth(util.EthToWei(0.008)), 1e-12)
	assert.InDelta(t, 1.5, util.WeiToEth(util.EthToWei(1.5)), 1e-12)
}

func TestFormatEthBalance(t *testing.T) {
	assert.Equal(t, "0.001000", util.FormatEthBalance(util.EthToWei(0.001)))
	assert.Equal(t, "0.000000", util.FormatEthBalance(big.NewInt(0)))
}

func TestWeiToUSD(t *testing.T) {
	assert.InDelta(t, 30.0, util.WeiToUSD(util.EthToWei(0.01), 3000), 1e-9)
}
