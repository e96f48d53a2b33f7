//go:build wireinject

package api

import (
	"github.com/google/wire"
	"github/chapool/eth-payout/internal/config"
	"github/chapool/eth-payout/internal/wallet"
	"github/chapool/eth-payout/internal/wallet/transfer"
)

// INJECTORS - https://github.com/google/wire/blob/main/docs/guide.md#injectors

// serviceSet groups the default set of providers that are required for initing a server
var serviceSet = wire.NewSet(
	newServerWithComponents,
	NewMetrics,
	NewConnector,
	NewTransferService,
	NewBalanceService,
	wire.Bind(new(transfer.Connector), new(*wallet.Service)),
)

// InitNewServer returns a new Server instance.
func InitNewServer(
	_ config.Server,
) (*Server, error) {
	wire.Build(serviceSet)
	return new(Server), nil
}
