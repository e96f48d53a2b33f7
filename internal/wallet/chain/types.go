package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Backend is the read/write surface of a bound chain connection, as consumed
// by the transfer pipeline. *Client implements it; tests stub it.
type Backend interface {
	// BalanceAt returns the native balance of the address at the latest block.
	BalanceAt(ctx context.Context, address common.Address) (*big.Int, error)

	// PendingNonceAt returns the next usable nonce including pending
	// (unmined) transactions of the address.
	PendingNonceAt(ctx context.Context, address common.Address) (uint64, error)

	// FeeData reports the current fee market data. MaxFeePerGas is nil on
	// chains without EIP-1559 support.
	FeeData(ctx context.Context) (*FeeData, error)

	// SendTransaction broadcasts a signed transaction.
	SendTransaction(ctx context.Context, tx *types.Transaction) error

	// TransactionReceipt returns the receipt of a mined transaction, or
	// ethereum.NotFound while it is still pending.
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)

	// CodeAt is required by bind.WaitMined (bind.DeployBackend).
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)

	// BlockNumber returns the latest block height.
	BlockNumber(ctx context.Context) (uint64, error)

	// ChainID returns the fixed chain identifier of the bound network.
	ChainID() *big.Int
}

// FeeData mirrors what the provider reports about current network fees.
// MaxFeePerGas and MaxPriorityFeePerGas are set when the chain exposes a fee
// market (EIP-1559), GasPrice is always set as the legacy fallback figure.
type FeeData struct {
	GasPrice             *big.Int
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
}
