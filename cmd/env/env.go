package env

import (
	"github.com/spf13/cobra"

	"github/chapool/eth-payout/internal/config"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Prints the resolved server environment",
		Run: func(_ *cobra.Command, _ []string) {
			config.PrintServiceEnv()
		},
	}
}
