package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// TransferResponse is the normalized success body of the transfer pipeline.
// TxHash, Hash and TransactionHash repeat the same value for caller
// compatibility.
type TransferResponse struct {
	Success         *bool    `json:"success"`
	TxHash          *string  `json:"txHash"`
	Hash            *string  `json:"hash"`
	TransactionHash *string  `json:"transactionHash"`
	From            *string  `json:"from"`
	To              *string  `json:"to"`
	Amount          *float64 `json:"amount"`
	AmountUSD       *float64 `json:"amountUSD"`
	BlockNumber     *int64   `json:"blockNumber"`
	GasUsed         *int64   `json:"gasUsed"`
}

// Validate validates this transfer response
func (m *TransferResponse) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("success", "body", m.Success); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("txHash", "body", m.TxHash); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("hash", "body", m.Hash); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("transactionHash", "body", m.TransactionHash); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("from", "body", m.From); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("to", "body", m.To); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("amount", "body", m.Amount); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("amountUSD", "body", m.AmountUSD); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("blockNumber", "body", m.BlockNumber); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("gasUsed", "body", m.GasUsed); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}
