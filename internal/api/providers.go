package api

import (
	"github/chapool/eth-payout/internal/config"
	"github/chapool/eth-payout/internal/metrics"
	"github/chapool/eth-payout/internal/wallet"
	"github/chapool/eth-payout/internal/wallet/balance"
	"github/chapool/eth-payout/internal/wallet/transfer"
)

// NewConnector provides the process wide connection manager.
func NewConnector(cfg config.Server) *wallet.Service {
	return wallet.NewService(cfg.Payout)
}

// NewTransferService provides the transfer pipeline.
//
//nolint:ireturn
func NewTransferService(cfg config.Server, connector *wallet.Service, m *metrics.Service) TransferService {
	return transfer.NewService(connector, cfg.Payout, m)
}

// NewBalanceService provides balance snapshots of the signer address.
//
//nolint:ireturn
func NewBalanceService(cfg config.Server, connector *wallet.Service) BalanceService {
	return balance.NewService(connector, cfg.Payout.ETHUSDRate)
}

// NewMetrics provides the prometheus metrics service.
func NewMetrics() *metrics.Service {
	return metrics.New()
}
