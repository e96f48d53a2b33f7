package chain

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	// eip1559FeeMultiplier: MaxFee = BaseFee * 2 + TipCap, leaving headroom
	// for base fee growth until inclusion.
	eip1559FeeMultiplier = 2
)

// Client 封装以太坊 RPC 客户端，按固定顺序对候选节点做故障转移。
// 第一个在探测超时内响应的候选节点被绑定，之后的请求直接复用，
// 不再重新探测。
type Client struct {
	urls         []string
	probeTimeout time.Duration
	chainID      *big.Int

	mu       sync.RWMutex
	eth      *ethclient.Client
	boundURL string
}

// NewClient 创建新的 RPC 客户端。urls 的顺序即故障转移优先级。
func NewClient(urls []string, chainID int64, probeTimeout time.Duration) *Client {
	return &Client{
		urls:         urls,
		probeTimeout: probeTimeout,
		chainID:      big.NewInt(chainID),
	}
}

// Connect 按列表顺序依次尝试候选节点：拨号并以最新区块高度作为存活探测，
// 第一个在超时内成功的节点成为绑定节点，其余不再尝试。
// 全部失败时返回最后一个探测错误，由调用方决定是否在下个请求重试。
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.eth != nil {
		return nil
	}

	if len(c.urls) == 0 {
		return errors.New("no RPC endpoints configured")
	}

	var lastErr error

	for _, url := range c.urls {
		probeCtx, cancel := context.WithTimeout(ctx, c.probeTimeout)

		eth, err := ethclient.DialContext(probeCtx, url)
		if err != nil {
			cancel()
			lastErr = err
			log.Warn().Str("url", url).Err(err).Msg("Failed to dial RPC endpoint, trying next candidate")

			continue
		}

		height, err := eth.BlockNumber(probeCtx)
		cancel()

		if err != nil {
			eth.Close()
			lastErr = err
			log.Warn().Str("url", url).Err(err).Msg("RPC endpoint liveness probe failed, trying next candidate")

			continue
		}

		c.eth = eth
		c.boundURL = url

		log.Info().
			Str("url", url).
			Uint64("block_number", height).
			Int64("chain_id", c.chainID.Int64()).
			Msg("Bound RPC endpoint")

		return nil
	}

	return errors.Wrap(lastErr, "all RPC endpoint candidates failed")
}

// Bound reports whether a live endpoint is currently bound.
func (c *Client) Bound() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.eth != nil
}

// BoundURL returns the URL of the bound endpoint, empty if unbound.
func (c *Client) BoundURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.boundURL
}

// Close 关闭绑定的客户端连接。
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.eth != nil {
		c.eth.Close()
		c.eth = nil
		c.boundURL = ""
	}
}

// ChainID returns the configured chain identifier. It never changes after
// the client is created.
func (c *Client) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

func (c *Client) client() (*ethclient.Client, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.eth == nil {
		return nil, errors.New("RPC client is not connected")
	}

	return c.eth, nil
}

// BalanceAt returns the balance of an address at the latest known block.
func (c *Client) BalanceAt(ctx context.Context, address common.Address) (*big.Int, error) {
	eth, err := c.client()
	if err != nil {
		return nil, err
	}

	balance, err := eth.BalanceAt(ctx, address, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get balance")
	}

	return balance, nil
}

// PendingNonceAt returns the pending nonce for the given address.
func (c *Client) PendingNonceAt(ctx context.Context, address common.Address) (uint64, error) {
	eth, err := c.client()
	if err != nil {
		return 0, err
	}

	nonce, err := eth.PendingNonceAt(ctx, address)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get pending nonce")
	}

	return nonce, nil
}

// FeeData 查询当前费率数据。支持 EIP-1559 的链返回
// MaxFeePerGas/MaxPriorityFeePerGas，否则只返回 legacy GasPrice。
func (c *Client) FeeData(ctx context.Context) (*FeeData, error) {
	eth, err := c.client()
	if err != nil {
		return nil, err
	}

	header, err := eth.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get latest header")
	}

	gasPrice, err := eth.SuggestGasPrice(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to suggest gas price")
	}

	feeData := &FeeData{GasPrice: gasPrice}

	if header.BaseFee != nil {
		tipCap, err := eth.SuggestGasTipCap(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to suggest gas tip cap")
		}

		feeData.MaxPriorityFeePerGas = tipCap
		feeData.MaxFeePerGas = new(big.Int).Add(
			new(big.Int).Mul(header.BaseFee, big.NewInt(eip1559FeeMultiplier)),
			tipCap,
		)
	}

	return feeData, nil
}

// SendTransaction 发送已签名的交易。
func (c *Client) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	eth, err := c.client()
	if err != nil {
		return err
	}

	if err := eth.SendTransaction(ctx, tx); err != nil {
		return errors.Wrap(err, "failed to send transaction")
	}

	return nil
}

// TransactionReceipt 获取交易回执。
func (c *Client) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	eth, err := c.client()
	if err != nil {
		return nil, err
	}

	receipt, err := eth.TransactionReceipt(ctx, txHash)
	if err != nil {
		// bind.WaitMined relies on ethereum.NotFound passing through here.
		return nil, err
	}

	return receipt, nil
}

// CodeAt returns the contract code of the given account.
func (c *Client) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	eth, err := c.client()
	if err != nil {
		return nil, err
	}

	code, err := eth.CodeAt(ctx, account, blockNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get code")
	}

	return code, nil
}

// BlockNumber 获取最新区块号。
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	eth, err := c.client()
	if err != nil {
		return 0, err
	}

	blockNumber, err := eth.BlockNumber(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get latest block number")
	}

	return blockNumber, nil
}
