package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github/chapool/eth-payout/internal/config"
	"github/chapool/eth-payout/internal/util/command"
)

// probeTimeout bounds the local HTTP round trip so a wedged server fails
// the probe instead of hanging the orchestrator.
const probeTimeout = 5 * time.Second

func New() *cobra.Command {
	return command.NewSubcommandGroup("probe",
		newReadiness(),
		newLiveness(),
	)
}

func newReadiness() *cobra.Command {
	return &cobra.Command{
		Use:   "readiness",
		Short: "Checks the readiness endpoint of the local server",
		Run: func(_ *cobra.Command, _ []string) {
			runProbe("/-/ready", false)
		},
	}
}

func newLiveness() *cobra.Command {
	return &cobra.Command{
		Use:   "liveness",
		Short: "Checks the health endpoint of the local server",
		Run: func(_ *cobra.Command, _ []string) {
			runProbe("/-/healthy", true)
		},
	}
}

func runProbe(path string, withSecret bool) {
	cfg := config.DefaultServiceConfigFromEnv()

	target := fmt.Sprintf("http://localhost%s%s", cfg.Echo.ListenAddress, path)
	if withSecret {
		target += "?mgmt-secret=" + url.QueryEscape(cfg.Management.Secret)
	}

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build probe request")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Probe request failed")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read probe response")
	}

	fmt.Println(string(body))

	if res.StatusCode != http.StatusOK {
		os.Exit(1)
	}
}
