//nolint:ireturn
package balance

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github/chapool/eth-payout/internal/util"
	"github/chapool/eth-payout/internal/wallet/chain"
	"github/chapool/eth-payout/internal/wallet/signer"
	"github/chapool/eth-payout/internal/wallet/transfer"
)

// Connector yields the bound connection and signer identity.
type Connector interface {
	Ensure(ctx context.Context) (chain.Backend, *signer.Identity, error)
}

// Snapshot 签名地址当前余额（wei）及其展示值。
type Snapshot struct {
	Address common.Address
	Wei     *big.Int
	ETH     float64
	USD     float64
}

// Service 余额服务接口
type Service interface {
	// Snapshot 读取签名地址的链上余额并折算展示值。
	Snapshot(ctx context.Context) (*Snapshot, error)
}

type service struct {
	connector Connector
	usdPerETH float64
}

// NewService 创建余额服务
//
//nolint:ireturn // 返回接口类型是预期的设计
func NewService(connector Connector, usdPerETH float64) Service {
	return &service{
		connector: connector,
		usdPerETH: usdPerETH,
	}
}

func (s *service) Snapshot(ctx context.Context) (*Snapshot, error) {
	backend, identity, err := s.connector.Ensure(ctx)
	if err != nil {
		return nil, err
	}

	wei, err := backend.BalanceAt(ctx, identity.Address())
	if err != nil {
		return nil, &transfer.NetworkError{Op: "fetch balance", Err: err}
	}

	return &Snapshot{
		Address: identity.Address(),
		Wei:     wei,
		ETH:     util.WeiToEth(wei),
		USD:     util.WeiToUSD(wei, s.usdPerETH),
	}, nil
}
