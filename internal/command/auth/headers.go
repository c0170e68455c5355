package auth

import (
	"fmt"
	"io"
	"strings"

	"github.com/cpkurotori/qiskit-ibm-runtime/internal/auth"
	"github.com/cpkurotori/qiskit-ibm-runtime/internal/config"
	"github.com/cpkurotori/qiskit-ibm-runtime/internal/print"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newHeaders(cfg *config.Auth) *cobra.Command {
	headersCfg := &config.AuthHeaders{Auth: cfg}

	cmd := &cobra.Command{
		Use:   "headers",
		Short: "Compute the headers that would be attached to a request",
		Long: `Compute the headers that would be attached to a request.

For the ibm_cloud channel this exchanges the API key for an IAM bearer token.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeaders(headersCfg, cmd.OutOrStdout())
		},
	}
	headersCfg.AddFlags(cmd)

	return cmd
}

func runHeaders(cfg *config.AuthHeaders, out io.Writer) error {
	if err := cfg.InitAPIConfig(); err != nil {
		return print.Error(out, err, cfg.OutputFormat)
	}

	headers, err := cfg.Authenticator.Headers()
	if err != nil {
		return print.Error(out, fmt.Errorf("could not compute headers: %w", err), cfg.OutputFormat)
	}
	if !cfg.Reveal {
		headers = maskHeaders(headers)
	}

	switch cfg.OutputFormat {
	case config.OutputFormatDefault:
		if err := print.Headers(out, headers); err != nil {
			return err
		}
		if !cfg.Reveal {
			faint := color.New(color.Faint).SprintFunc()
			fmt.Fprintln(out, faint("(credentials masked, use --reveal to show them)"))
		}
		return nil
	case config.OutputFormatJSON:
		return print.RawJSON(out, headers)
	case config.OutputFormatYAML:
		return print.RawYAML(out, headers)
	default:
		return fmt.Errorf("unsupported output format: %q", cfg.OutputFormat)
	}
}

// maskHeaders masks every credential value. The CRN only names an instance
// and is shown as is.
func maskHeaders(headers map[string]string) map[string]string {
	masked := make(map[string]string, len(headers))
	for name, value := range headers {
		switch {
		case name == auth.ServiceCRNHeader:
			masked[name] = value
		case strings.HasPrefix(value, "Bearer "):
			masked[name] = "Bearer " + config.MaskSecret(strings.TrimPrefix(value, "Bearer "))
		default:
			masked[name] = config.MaskSecret(value)
		}
	}
	return masked
}
