package auth

import (
	"github.com/cpkurotori/qiskit-ibm-runtime/internal/config"
	"github.com/spf13/cobra"
)

func New(api *config.API) *cobra.Command {
	cfg := &config.Auth{API: api}

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Inspect the configured credentials",
	}

	// Subcommands
	cmd.AddCommand(
		newStatus(cfg),
		newHeaders(cfg),
	)

	return cmd
}
