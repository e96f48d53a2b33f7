package transfer

import (
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github/chapool/eth-payout/internal/util"
)

const (
	percentageMin = 0.0
	percentageMax = 100.0
)

// NewAmountSpec 按固定优先级把多别名请求收敛为一个金额变体：
// percentage > amountUSD > 第一个非空的原生金额别名 > 固定回退金额。
// 低优先级字段即使同时给出也会被忽略。
func NewAmountSpec(req *Request, fallbackETH float64) AmountSpec {
	if req.Percentage != nil {
		return AmountSpec{Mode: ModePercentage, Value: *req.Percentage}
	}

	if req.AmountUSD != nil {
		return AmountSpec{Mode: ModeFiat, Value: *req.AmountUSD}
	}

	for _, alias := range []*float64{req.Amount, req.AmountETH, req.Value, req.Eth} {
		if alias != nil {
			return AmountSpec{Mode: ModeNative, Value: *alias}
		}
	}

	return AmountSpec{Mode: ModeNative, Value: fallbackETH}
}

// ResolveDestination 按固定优先级取第一个非空的目标地址别名，
// 全部为空时回退到配置的默认金库地址。
func ResolveDestination(req *Request, defaultTreasury string) (common.Address, error) {
	for _, alias := range []*string{req.To, req.ToAddress, req.Treasury, req.Recipient, req.CoinbaseWallet, req.FeeRecipient} {
		if alias != nil && *alias != "" {
			if !common.IsHexAddress(*alias) {
				return common.Address{}, errors.Errorf("invalid destination address: %s", *alias)
			}

			return common.HexToAddress(*alias), nil
		}
	}

	if !common.IsHexAddress(defaultTreasury) {
		return common.Address{}, errors.Errorf("invalid default treasury address: %s", defaultTreasury)
	}

	return common.HexToAddress(defaultTreasury), nil
}

// ResolveAmount 根据金额变体和当前余额计算实际转账金额（wei）。
// 余额必须覆盖 gas 预留，解析结果必须严格大于零，
// 否则返回 InsufficientFundsError。
func ResolveAmount(spec AmountSpec, balance *big.Int, policy Policy) (*big.Int, error) {
	if balance.Cmp(policy.ReserveWei) < 0 {
		return nil, &InsufficientFundsError{Balance: balance, Reserve: policy.ReserveWei}
	}

	available := new(big.Int).Sub(balance, policy.ReserveWei)

	var amount *big.Int

	switch spec.Mode {
	case ModePercentage:
		amount = percentageOf(balance, clampPercentage(spec.Value))
		amount.Sub(amount, policy.ReserveWei)

	case ModeFiat:
		amount = minWei(util.EthToWei(spec.Value/policy.USDPerETH), available)

	case ModeNative:
		amount = minWei(util.EthToWei(spec.Value), available)
	}

	if amount.Sign() <= 0 {
		return nil, &InsufficientFundsError{Balance: balance, Reserve: policy.ReserveWei}
	}

	return amount, nil
}

func clampPercentage(p float64) float64 {
	if p < percentageMin {
		return percentageMin
	}

	if p > percentageMax {
		return percentageMax
	}

	return p
}

// percentagePrecision keeps four decimals of a percent when scaling to
// integer math.
const percentagePrecision = 10_000

// percentageOf computes balance * p / 100 in wei, rounding down.
func percentageOf(balance *big.Int, p float64) *big.Int {
	scaled := int64(math.Round(p * percentagePrecision))

	return new(big.Int).Div(
		new(big.Int).Mul(balance, big.NewInt(scaled)),
		big.NewInt(100*percentagePrecision),
	)
}

func minWei(a, b *big.Int) *big.Int {
	if a.Cmp(b) > 0 {
		return new(big.Int).Set(b)
	}

	return new(big.Int).Set(a)
}
