package auth

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cpkurotori/qiskit-ibm-runtime/internal/config"
	"github.com/cpkurotori/qiskit-ibm-runtime/internal/print"
	"github.com/cpkurotori/qiskit-ibm-runtime/internal/utils"
	"github.com/spf13/cobra"
)

func newStatus(cfg *config.Auth) *cobra.Command {
	statusCfg := &config.AuthStatus{Auth: cfg}

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the configured channel and credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(statusCfg, cmd.OutOrStdout())
		},
	}

	return cmd
}

type statusInfo struct {
	Channel     config.Channel `json:"channel"`
	Instance    string         `json:"instance,omitempty"`
	URL         string         `json:"url"`
	IAMURL      string         `json:"iamURL,omitempty"`
	MaskedToken string         `json:"token"`
}

func runStatus(cfg *config.AuthStatus, out io.Writer) error {
	if err := cfg.InitAPIConfig(); err != nil {
		return print.Error(out, err, cfg.OutputFormat)
	}

	info := &statusInfo{
		Channel:     cfg.Channel,
		Instance:    cfg.Instance,
		URL:         cfg.URL,
		MaskedToken: cfg.MaskedToken,
	}
	if cfg.Channel == config.ChannelCloud {
		iamURL, err := utils.IAMAPIURL(cfg.URL)
		if err != nil {
			return print.Error(out, err, cfg.OutputFormat)
		}
		info.IAMURL = iamURL
	}

	switch cfg.OutputFormat {
	case config.OutputFormatDefault:
		return printStatus(out, info)
	case config.OutputFormatJSON:
		return print.RawJSON(out, info)
	case config.OutputFormatYAML:
		return print.RawYAML(out, info)
	default:
		return fmt.Errorf("unsupported output format: %q", cfg.OutputFormat)
	}
}

func printStatus(out io.Writer, info *statusInfo) error {
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)

	fmt.Fprintf(tw, "Channel:\t%s\n", info.Channel)
	if info.Instance != "" {
		fmt.Fprintf(tw, "Instance:\t%s\n", info.Instance)
	}
	fmt.Fprintf(tw, "URL:\t%s\n", info.URL)
	if info.IAMURL != "" {
		fmt.Fprintf(tw, "IAM URL:\t%s\n", info.IAMURL)
	}
	if info.Channel == config.ChannelCloud {
		fmt.Fprintf(tw, "API Key:\t%s\n", info.MaskedToken)
	} else {
		fmt.Fprintf(tw, "Access Token:\t%s\n", info.MaskedToken)
	}

	return tw.Flush()
}
