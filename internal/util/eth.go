package util

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/params"
)

const (
	// balanceDecimals is the precision used when reporting balances in
	// error bodies, e.g. "0.001000".
	balanceDecimals = 6
)

// EthToWei converts a human readable ETH amount to wei.
func EthToWei(eth float64) *big.Int {
	wei, _ := new(big.Float).Mul(
		big.NewFloat(eth),
		new(big.Float).SetInt(big.NewInt(params.Ether)),
	).Int(nil)

	return wei
}

// WeiToEth converts wei to a human readable ETH amount. Precision loss is
// acceptable here, the result is for display only.
func WeiToEth(wei *big.Int) float64 {
	eth, _ := new(big.Float).Quo(
		new(big.Float).SetInt(wei),
		new(big.Float).SetInt(big.NewInt(params.Ether)),
	).Float64()

	return eth
}

// FormatEthBalance renders a wei balance with the fixed precision used in
// insufficient funds responses.
func FormatEthBalance(wei *big.Int) string {
	return fmt.Sprintf("%.*f", balanceDecimals, WeiToEth(wei))
}

// WeiToUSD converts a wei amount to its fiat estimate at the given rate.
func WeiToUSD(wei *big.Int, usdPerETH float64) float64 {
	return WeiToEth(wei) * usdPerETH
}
