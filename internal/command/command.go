package command

import (
	"github.com/cpkurotori/qiskit-ibm-runtime/internal/buildinfo"
	"github.com/cpkurotori/qiskit-ibm-runtime/internal/command/auth"
	"github.com/cpkurotori/qiskit-ibm-runtime/internal/command/request"
	"github.com/cpkurotori/qiskit-ibm-runtime/internal/config"
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	cfg := &config.API{}
	cobra.OnInitialize(cfg.Init)

	cmd := &cobra.Command{
		Use:     "qiskit-auth",
		Short:   "Attach IBM Cloud or IBM Quantum credentials to API requests",
		Version: buildinfo.String(),

		// Don't print usage info automatically when errors occur.
		// Most of the time, the errors are not related to usage.
		SilenceUsage: true,
	}
	cfg.AddFlags(cmd)

	// Subcommands
	cmd.AddCommand(
		auth.New(cfg),
		request.New(cfg),
	)

	return cmd
}
