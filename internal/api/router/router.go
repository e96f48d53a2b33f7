package router

import (
	"crypto/subtle"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github/chapool/eth-payout/internal/api"
	"github/chapool/eth-payout/internal/api/handlers"
	apiMiddleware "github/chapool/eth-payout/internal/api/middleware"
)

// Init 初始化 echo 实例、全局中间件和所有路由。
// 必须在 Server.Start 之前调用。
func Init(s *api.Server) {
	s.Echo = echo.New()

	s.Echo.Debug = s.Config.Echo.Debug
	s.Echo.HideBanner = true
	s.Echo.HidePort = true

	s.Echo.HTTPErrorHandler = HTTPErrorHandlerWithConfig(HTTPErrorHandlerConfig{
		HideInternalServerErrorDetails: s.Config.Echo.HideInternalServerErrorDetails,
	})

	// middleware order matters: recover first, request id before the
	// request scoped logger so the id ends up in every log line.
	if s.Config.Echo.EnableRecoverMiddleware {
		s.Echo.Use(middleware.Recover())
	}

	if s.Config.Echo.EnableRequestIDMiddleware {
		s.Echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Generator: func() string {
				return uuid.New().String()
			},
		}))
	}

	if s.Config.Echo.EnableLoggerMiddleware {
		s.Echo.Use(apiMiddleware.Logger(s.Config.Logger))
	}

	if s.Config.Echo.EnableCORSMiddleware {
		s.Echo.Use(middleware.CORS())
	}

	s.Echo.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Registerer: s.Metrics.Registry(),
		Subsystem:  "payout",
	}))

	s.Router = &api.Router{
		Routes: nil, // will be populated by handlers.AttachAllRoutes(s)

		// Root group is intentionally unauthenticated: signer auth is out of
		// scope here, the service is meant to sit behind a private network
		// boundary.
		Root: s.Echo.Group(""),

		// Management endpoints are secured via the mgmt secret, except for
		// the readiness probe which load balancers hit without credentials.
		Management: s.Echo.Group("/-", middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
			KeyLookup: "query:mgmt-secret",
			Validator: func(key string, _ echo.Context) (bool, error) {
				return subtle.ConstantTimeCompare([]byte(key), []byte(s.Config.Management.Secret)) == 1, nil
			},
			Skipper: func(c echo.Context) bool {
				return c.Path() == "/-/ready"
			},
		})),
	}

	handlers.AttachAllRoutes(s)
}
