package test

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"

	"github/chapool/eth-payout/internal/util"
	"github/chapool/eth-payout/internal/wallet/chain"
	"github/chapool/eth-payout/internal/wallet/signer"
)

// StubBackend is an in-memory chain.Backend. Broadcast transactions get an
// immediate receipt, so confirmation waits return on the first poll.
type StubBackend struct {
	mu sync.Mutex

	Balance      *big.Int
	Nonce        uint64
	Fee          *chain.FeeData
	ChainIDValue *big.Int

	BalanceErr error
	NonceErr   error
	FeeErr     error
	SendErr    error

	ReceiptBlockNumber uint64
	ReceiptGasUsed     uint64

	SentTxs  []*types.Transaction
	receipts map[common.Hash]*types.Receipt
}

// NewStubBackend returns a backend with one funded ETH, a pending nonce of 7
// and EIP-1559 fee data.
func NewStubBackend() *StubBackend {
	return &StubBackend{
		Balance: util.EthToWei(1),
		Nonce:   7,
		Fee: &chain.FeeData{
			GasPrice:             big.NewInt(20_000_000_000),
			MaxFeePerGas:         big.NewInt(42_000_000_000),
			MaxPriorityFeePerGas: big.NewInt(1_500_000_000),
		},
		ChainIDValue:       big.NewInt(1),
		ReceiptBlockNumber: 123,
		ReceiptGasUsed:     params.TxGas,
		receipts:           make(map[common.Hash]*types.Receipt),
	}
}

func (b *StubBackend) BalanceAt(_ context.Context, _ common.Address) (*big.Int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.BalanceErr != nil {
		return nil, b.BalanceErr
	}

	return new(big.Int).Set(b.Balance), nil
}

func (b *StubBackend) PendingNonceAt(_ context.Context, _ common.Address) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.NonceErr != nil {
		return 0, b.NonceErr
	}

	return b.Nonce, nil
}

func (b *StubBackend) FeeData(_ context.Context) (*chain.FeeData, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.FeeErr != nil {
		return nil, b.FeeErr
	}

	return b.Fee, nil
}

func (b *StubBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.SendErr != nil {
		return b.SendErr
	}

	b.SentTxs = append(b.SentTxs, tx)
	b.receipts[tx.Hash()] = &types.Receipt{
		Status:      types.ReceiptStatusSuccessful,
		TxHash:      tx.Hash(),
		BlockNumber: new(big.Int).SetUint64(b.ReceiptBlockNumber),
		GasUsed:     b.ReceiptGasUsed,
	}

	return nil
}

func (b *StubBackend) TransactionReceipt(_ context.Context, txHash common.Hash) (*types.Receipt, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	receipt, ok := b.receipts[txHash]
	if !ok {
		return nil, ethereum.NotFound
	}

	return receipt, nil
}

func (b *StubBackend) CodeAt(_ context.Context, _ common.Address, _ *big.Int) ([]byte, error) {
	return nil, nil
}

func (b *StubBackend) BlockNumber(_ context.Context) (uint64, error) {
	return 100, nil
}

func (b *StubBackend) ChainID() *big.Int {
	return new(big.Int).Set(b.ChainIDValue)
}

// LastSentTx returns the most recently broadcast transaction, nil if none.
func (b *StubBackend) LastSentTx() *types.Transaction {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.SentTxs) == 0 {
		return nil
	}

	return b.SentTxs[len(b.SentTxs)-1]
}

// StubConnector hands out a fixed backend and identity, or a fixed error.
type StubConnector struct {
	Backend  chain.Backend
	Identity *signer.Identity
	Err      error
}

func (c *StubConnector) Ensure(_ context.Context) (chain.Backend, *signer.Identity, error) {
	if c.Err != nil {
		return nil, nil, c.Err
	}

	return c.Backend, c.Identity, nil
}

// RPCError mimics a provider error carrying a JSON-RPC error code.
type RPCError struct {
	Code    int
	Message string
}

func (e *RPCError) Error() string {
	return e.Message
}

func (e *RPCError) ErrorCode() int {
	return e.Code
}
