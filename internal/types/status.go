package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// BalanceResponse reports the signer balance in native units and its fiat
// estimate, plus the treasury and fee recipient addresses.
type BalanceResponse struct {
	Address      *string  `json:"address"`
	BalanceETH   *float64 `json:"balance"`
	BalanceUSD   *float64 `json:"balanceUSD"`
	Treasury     *string  `json:"treasury"`
	FeeRecipient *string  `json:"feeRecipient"`
}

// Validate validates this balance response
func (m *BalanceResponse) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("address", "body", m.Address); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("balance", "body", m.BalanceETH); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("balanceUSD", "body", m.BalanceUSD); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("treasury", "body", m.Treasury); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("feeRecipient", "body", m.FeeRecipient); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// StatusResponse reports process liveness, the bound signer and the
// supported transfer endpoints. Signer and balance are best effort: they
// stay empty while no connection is bound.
type StatusResponse struct {
	Alive      *bool    `json:"alive"`
	Signer     string   `json:"signer,omitempty"`
	BalanceETH *float64 `json:"balance,omitempty"`
	Endpoints  []string `json:"endpoints"`
}

// Validate validates this status response
func (m *StatusResponse) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("alive", "body", m.Alive); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("endpoints", "body", m.Endpoints); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

// HealthResponse is the static liveness marker.
type HealthResponse struct {
	Status *string `json:"status"`
}

// Validate validates this health response
func (m *HealthResponse) Validate(_ strfmt.Registry) error {
	if err := validate.Required("status", "body", m.Status); err != nil {
		return err
	}

	return nil
}
