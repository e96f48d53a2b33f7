package httperrors

import (
	"fmt"

	"github.com/go-openapi/swag"
	"github/chapool/eth-payout/internal/types"
)

// HTTPError carries an HTTP status code and the public error payload. The
// router's error handler renders it as JSON without leaking internals.
type HTTPError struct {
	Code     int
	Payload  *types.PublicHTTPError
	Internal error
}

// NewHTTPError creates a new HTTPError with the given status code and
// public message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code: code,
		Payload: &types.PublicHTTPError{
			Error: swag.String(message),
		},
	}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTPError %d: %s", e.Code, swag.StringValue(e.Payload.Error))
}

func (e *HTTPError) Unwrap() error {
	return e.Internal
}

// WithInternal attaches the causing error for logging purposes.
func (e *HTTPError) WithInternal(err error) *HTTPError {
	e.Internal = err
	return e
}

// WithProviderCode attaches a provider specific error code, skipped when
// the provider reported none.
func (e *HTTPError) WithProviderCode(code int) *HTTPError {
	e.Payload.Code = int64(code)
	return e
}

// WithBalance attaches the current balance and a recovery hint, used on
// insufficient funds responses.
func (e *HTTPError) WithBalance(balance string, hint string) *HTTPError {
	e.Payload.Balance = balance
	e.Payload.Hint = hint

	return e
}
