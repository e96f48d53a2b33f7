package common

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github/chapool/eth-payout/internal/api"
)

func GetReadyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/ready", getReadyHandler(s))
}

// getReadyHandler 就绪探针：只检查进程内组件是否全部初始化，
// 不触碰上游 RPC 节点。
func getReadyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			return c.String(521, "Not ready.")
		}

		return c.String(http.StatusOK, "Ready.")
	}
}
