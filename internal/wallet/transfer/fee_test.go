package transfer_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github/chapool/eth-payout/internal/wallet/chain"
	"github/chapool/eth-payout/internal/wallet/transfer"
)

func TestSelectFeeStrategyDynamic(t *testing.T) {
	strategy := transfer.SelectFeeStrategy(&chain.FeeData{
		GasPrice:             big.NewInt(20_000_000_000),
		MaxFeePerGas:         big.NewInt(42_000_000_000),
		MaxPriorityFeePerGas: big.NewInt(1_500_000_000),
	})

	assert.True(t, strategy.Dynamic)
	assert.Equal(t, big.NewInt(42_000_000_000), strategy.MaxFeePerGas)
	assert.Equal(t, big.NewInt(1_500_000_000), strategy.MaxPriorityFeePerGas)
	assert.Nil(t, strategy.GasPrice)
}

func TestSelectFeeStrategyLegacyOnlyNeverDynamic(t *testing.T) {
	strategy := transfer.SelectFeeStrategy(&chain.FeeData{
		GasPrice: big.NewInt(20_000_000_000),
	})

	assert.False(t, strategy.Dynamic)
	assert.Equal(t, big.NewInt(20_000_000_000), strategy.GasPrice)
	assert.Nil(t, strategy.MaxFeePerGas)
	assert.Nil(t, strategy.MaxPriorityFeePerGas)
}
