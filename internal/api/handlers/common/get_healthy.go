package common

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github/chapool/eth-payout/internal/api"
)

// upstreamProbeTimeout bounds the chain round trip of the health probe so a
// stalled RPC endpoint can not hang monitoring.
const upstreamProbeTimeout = 10 * time.Second

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s))
}

// getHealthyHandler 健康探针：在就绪检查之上额外验证上游 RPC 节点
// 可达（通过读取签名地址余额）。受管理密钥保护。
func getHealthyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		var str strings.Builder

		if !s.Ready() {
			str.WriteString("Not ready.")
			return c.String(521, str.String())
		}

		str.WriteString("Ready.\n")

		ctx, cancel := context.WithTimeout(c.Request().Context(), upstreamProbeTimeout)
		defer cancel()

		snapshot, err := s.Balance.Snapshot(ctx)
		if err != nil {
			fmt.Fprintf(&str, "Probe upstream RPC: %v\n", err)
			str.WriteString("Not healthy.")

			return c.String(521, str.String())
		}

		fmt.Fprintf(&str, "Probe upstream RPC: OK (signer %s, balance %.6f ETH)\n", snapshot.Address.Hex(), snapshot.ETH)
		str.WriteString("Healthy.")

		return c.String(http.StatusOK, str.String())
	}
}
