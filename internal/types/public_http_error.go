package types

import (
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// PublicHTTPError is the JSON error envelope of all failure responses.
// Balance and Hint are only set on insufficient funds responses, Code only
// when the provider reported an error code.
type PublicHTTPError struct {
	Error *string `json:"error"`

	// provider specific error code, if any
	Code int64 `json:"code,omitempty"`

	// current balance in ETH, fixed six decimals
	Balance string `json:"balance,omitempty"`

	// recovery hint for the caller
	Hint string `json:"hint,omitempty"`
}

// Validate validates this public Http error
func (m *PublicHTTPError) Validate(_ strfmt.Registry) error {
	if err := validate.Required("error", "body", m.Error); err != nil {
		return err
	}

	return nil
}
