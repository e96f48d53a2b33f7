package transfer

import (
	"math/big"

	"github/chapool/eth-payout/internal/wallet/chain"
)

// Strategy carries the fee fields of the chosen transaction shape. Dynamic
// selects the EIP-1559 shape, otherwise a legacy transaction with GasPrice
// is built.
type Strategy struct {
	Dynamic              bool
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
	GasPrice             *big.Int
}

// SelectFeeStrategy 根据当前费率数据选择交易形态：节点报告
// MaxFeePerGas 时使用动态费率（EIP-1559），否则回退 legacy GasPrice。
// 这是数据驱动的选择，每个请求都会重新评估。
func SelectFeeStrategy(feeData *chain.FeeData) Strategy {
	if feeData.MaxFeePerGas != nil {
		return Strategy{
			Dynamic:              true,
			MaxFeePerGas:         feeData.MaxFeePerGas,
			MaxPriorityFeePerGas: feeData.MaxPriorityFeePerGas,
		}
	}

	return Strategy{GasPrice: feeData.GasPrice}
}
