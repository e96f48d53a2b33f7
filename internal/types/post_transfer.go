package types

import (
	"github.com/go-openapi/strfmt"
)

// PostTransferPayload is the multi-alias transfer request body. All fields
// are optional; alias precedence is resolved by the transfer pipeline, not
// here.
type PostTransferPayload struct {
	// native or fiat amount aliases
	Amount    *float64 `json:"amount,omitempty"`
	AmountETH *float64 `json:"amountETH,omitempty"`
	AmountUSD *float64 `json:"amountUSD,omitempty"`
	Value     *float64 `json:"value,omitempty"`
	Eth       *float64 `json:"eth,omitempty"`

	// percentage of the current balance, clamped to [0,100]
	Percentage *float64 `json:"percentage,omitempty"`

	// destination aliases
	To             *string `json:"to,omitempty"`
	ToAddress      *string `json:"toAddress,omitempty"`
	Treasury       *string `json:"treasury,omitempty"`
	Recipient      *string `json:"recipient,omitempty"`
	CoinbaseWallet *string `json:"coinbaseWallet,omitempty"`
	FeeRecipient   *string `json:"feeRecipient,omitempty"`
}

// Validate validates this post transfer payload. Every field is optional
// and out-of-range percentages are clamped downstream, so there is nothing
// to reject here.
func (m *PostTransferPayload) Validate(_ strfmt.Registry) error {
	return nil
}
