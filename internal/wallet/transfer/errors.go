package transfer

import (
	"fmt"
	"math/big"

	"github/chapool/eth-payout/internal/util"
)

// ConfigurationError means no signer key is configured. Fatal for all
// transfer requests until the process is reconfigured.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// InsufficientFundsError means the resolved amount was not positive, or the
// balance does not cover the gas reserve. Recoverable by the caller.
type InsufficientFundsError struct {
	Balance *big.Int // wei
	Reserve *big.Int // wei
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf(
		"insufficient funds: balance %s ETH does not cover the %s ETH gas reserve",
		util.FormatEthBalance(e.Balance),
		util.FormatEthBalance(e.Reserve),
	)
}

// NetworkError wraps a failed RPC interaction with the bound endpoint.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// SigningError means the transaction could not be signed locally.
type SigningError struct {
	Err error
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("signing error: %v", e.Err)
}

func (e *SigningError) Unwrap() error {
	return e.Err
}

// BroadcastError means the bound endpoint rejected the signed payload.
// Code carries the provider specific error code when one was reported.
type BroadcastError struct {
	Code int
	Err  error
}

func (e *BroadcastError) Error() string {
	return fmt.Sprintf("broadcast error: %v", e.Err)
}

func (e *BroadcastError) Unwrap() error {
	return e.Err
}
