//nolint:ireturn
package transfer

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/params"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"

	"github/chapool/eth-payout/internal/config"
	"github/chapool/eth-payout/internal/metrics"
	"github/chapool/eth-payout/internal/util"
	"github/chapool/eth-payout/internal/wallet/chain"
	"github/chapool/eth-payout/internal/wallet/signer"
)

// Connector yields the bound connection and signer identity, bootstrapping
// them lazily on first use.
type Connector interface {
	Ensure(ctx context.Context) (chain.Backend, *signer.Identity, error)
}

// Service 转账服务接口
type Service interface {
	// Transfer 执行完整转账管线：解析金额与目标地址、选择费率形态、
	// 签名、广播并等待一次确认。
	Transfer(ctx context.Context, req *Request) (*Result, error)
}

type service struct {
	connector       Connector
	policy          Policy
	defaultTreasury string
	fallbackETH     float64
	metrics         *metrics.Service

	// nonceMu serializes nonce fetch through broadcast per signer, so two
	// concurrent requests can not observe the same pending nonce.
	nonceMu sync.Mutex
}

// NewService 创建转账服务
//
//nolint:ireturn // 返回接口类型是预期的设计
func NewService(connector Connector, cfg config.PayoutServer, m *metrics.Service) Service {
	return &service{
		connector: connector,
		policy: Policy{
			ReserveWei: util.EthToWei(cfg.GasReserveETH),
			USDPerETH:  cfg.ETHUSDRate,
		},
		defaultTreasury: cfg.DefaultTreasury,
		fallbackETH:     cfg.FallbackAmountETH,
		metrics:         m,
	}
}

// Transfer 执行转账管线
func (s *service) Transfer(ctx context.Context, req *Request) (*Result, error) {
	log := util.LogFromContext(ctx)

	// 1. 确保连接与签名身份已绑定
	backend, identity, err := s.connector.Ensure(ctx)
	if err != nil {
		s.metrics.ObserveTransfer("connection_error")
		return nil, err
	}

	// 2. 解析目标地址
	to, err := ResolveDestination(req, s.defaultTreasury)
	if err != nil {
		s.metrics.ObserveTransfer("invalid_destination")
		return nil, err
	}

	// 3. 读取余额并解析金额
	balance, err := backend.BalanceAt(ctx, identity.Address())
	if err != nil {
		s.metrics.ObserveTransfer("network_error")
		return nil, &NetworkError{Op: "fetch balance", Err: err}
	}

	spec := NewAmountSpec(req, s.fallbackETH)

	amount, err := ResolveAmount(spec, balance, s.policy)
	if err != nil {
		s.metrics.ObserveTransfer("insufficient_funds")
		return nil, err
	}

	// 4. 每个请求重新评估费率形态
	feeData, err := backend.FeeData(ctx)
	if err != nil {
		s.metrics.ObserveTransfer("network_error")
		return nil, &NetworkError{Op: "fetch fee data", Err: err}
	}

	plan := &Plan{To: to, AmountWei: amount, Fee: SelectFeeStrategy(feeData)}

	log.Info().
		Str("to", plan.To.Hex()).
		Str("amount_wei", plan.AmountWei.String()).
		Bool("dynamic_fee", plan.Fee.Dynamic).
		Msg("Transfer plan resolved")

	// 5. 签名并广播（nonce 获取到广播之间串行化）
	signedTx, err := s.signAndBroadcast(ctx, backend, identity, plan)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("tx_hash", signedTx.Hash().Hex()).
		Msg("Transaction broadcasted, waiting for confirmation")

	// 6. 等待一次确认。没有超时：网络停滞时请求一直挂起（已知风险）。
	broadcastAt := time.Now()

	receipt, err := bind.WaitMined(ctx, backend, signedTx)
	if err != nil {
		s.metrics.ObserveTransfer("confirmation_error")
		return nil, &NetworkError{Op: "wait for confirmation", Err: err}
	}

	s.metrics.ObserveTransfer("confirmed")
	s.metrics.ObserveConfirmation(time.Since(broadcastAt))

	log.Info().
		Str("tx_hash", signedTx.Hash().Hex()).
		Uint64("block_number", receipt.BlockNumber.Uint64()).
		Uint64("gas_used", receipt.GasUsed).
		Msg("Transfer confirmed")

	return &Result{
		Hash:        signedTx.Hash(),
		From:        identity.Address(),
		To:          plan.To,
		AmountWei:   plan.AmountWei,
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
	}, nil
}

// signAndBroadcast 获取 pending nonce（包含未上链交易）、构建固定
// gas 上限的普通转账交易、本地签名并广播。
func (s *service) signAndBroadcast(ctx context.Context, backend chain.Backend, identity *signer.Identity, plan *Plan) (*types.Transaction, error) {
	s.nonceMu.Lock()
	defer s.nonceMu.Unlock()

	nonce, err := backend.PendingNonceAt(ctx, identity.Address())
	if err != nil {
		s.metrics.ObserveTransfer("network_error")
		return nil, &NetworkError{Op: "fetch nonce", Err: err}
	}

	tx := buildTransferTx(backend.ChainID().Int64(), nonce, plan)

	signedTx, err := identity.SignTx(tx, backend.ChainID())
	if err != nil {
		s.metrics.ObserveTransfer("signing_error")
		return nil, &SigningError{Err: err}
	}

	if err := backend.SendTransaction(ctx, signedTx); err != nil {
		s.metrics.ObserveTransfer("broadcast_error")
		return nil, &BroadcastError{Code: rpcErrorCode(err), Err: err}
	}

	return signedTx, nil
}

// buildTransferTx builds the transaction for the chosen fee strategy with
// the fixed gas limit of a plain value transfer.
func buildTransferTx(chainID int64, nonce uint64, plan *Plan) *types.Transaction {
	if plan.Fee.Dynamic {
		return types.NewTx(&types.DynamicFeeTx{
			ChainID:   new(big.Int).SetInt64(chainID),
			Nonce:     nonce,
			GasTipCap: plan.Fee.MaxPriorityFeePerGas,
			GasFeeCap: plan.Fee.MaxFeePerGas,
			Gas:       params.TxGas,
			To:        &plan.To,
			Value:     plan.AmountWei,
		})
	}

	return types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: plan.Fee.GasPrice,
		Gas:      params.TxGas,
		To:       &plan.To,
		Value:    plan.AmountWei,
	})
}

// rpcErrorCode extracts the provider specific error code, if any.
func rpcErrorCode(err error) int {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return rpcErr.ErrorCode()
	}

	return 0
}
