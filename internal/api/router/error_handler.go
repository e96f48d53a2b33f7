package router

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github/chapool/eth-payout/internal/api/httperrors"
	"github/chapool/eth-payout/internal/types"
	"github/chapool/eth-payout/internal/util"
)

type HTTPErrorHandlerConfig struct {
	HideInternalServerErrorDetails bool
}

// HTTPErrorHandlerWithConfig returns the central echo error handler. It
// renders *httperrors.HTTPError payloads as-is and normalizes everything
// else into the public error envelope.
func HTTPErrorHandlerWithConfig(config HTTPErrorHandlerConfig) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		log := util.LogFromEchoContext(c)

		var code int
		var payload *types.PublicHTTPError

		var httpError *httperrors.HTTPError
		var echoHTTPError *echo.HTTPError

		switch {
		case errors.As(err, &httpError):
			code = httpError.Code
			payload = httpError.Payload

			if httpError.Internal != nil {
				log.Error().Err(httpError.Internal).Int("status", code).Msg("Request failed")
			}
		case errors.As(err, &echoHTTPError):
			code = echoHTTPError.Code

			message := http.StatusText(code)
			if msg, ok := echoHTTPError.Message.(string); ok {
				message = msg
			}

			if code == http.StatusInternalServerError && config.HideInternalServerErrorDetails {
				message = http.StatusText(http.StatusInternalServerError)
			}

			payload = &types.PublicHTTPError{
				Error: swag.String(message),
			}
		default:
			code = http.StatusInternalServerError

			message := http.StatusText(http.StatusInternalServerError)
			if !config.HideInternalServerErrorDetails {
				message = err.Error()
			}

			log.Error().Err(err).Msg("Unhandled error in request")

			payload = &types.PublicHTTPError{
				Error: swag.String(message),
			}
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, payload)
		}

		if writeErr != nil {
			log.Error().Err(writeErr).Msg("Failed to write error response")
		}
	}
}
