package transfer

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Request 未经解析的多别名转账请求。所有字段均可选，
// 别名之间的优先级由 NewAmountSpec / ResolveDestination 决定。
type Request struct {
	Amount     *float64
	AmountETH  *float64
	AmountUSD  *float64
	Value      *float64
	Eth        *float64
	Percentage *float64

	To             *string
	ToAddress      *string
	Treasury       *string
	Recipient      *string
	CoinbaseWallet *string
	FeeRecipient   *string
}

// AmountMode tags the three mutually exclusive amount conventions.
type AmountMode int

const (
	// ModeNative 原生币种金额（默认模式）。
	ModeNative AmountMode = iota
	// ModePercentage 余额百分比。
	ModePercentage
	// ModeFiat 法币金额，按固定汇率折算。
	ModeFiat
)

// AmountSpec 在请求边界解析一次得到的金额变体。Value 的含义由
// Mode 决定：百分比、美元金额或 ETH 金额。
type AmountSpec struct {
	Mode  AmountMode
	Value float64
}

// Policy 金额解析策略：gas 预留与法币汇率，来自配置。
type Policy struct {
	ReserveWei *big.Int
	USDPerETH  float64
}

// Plan 完全解析后的转账计划。金额恒大于零。
type Plan struct {
	To        common.Address
	AmountWei *big.Int
	Fee       Strategy
}

// Result 规范化的提交结果。
type Result struct {
	Hash        common.Hash
	From        common.Address
	To          common.Address
	AmountWei   *big.Int
	BlockNumber uint64
	GasUsed     uint64
}
