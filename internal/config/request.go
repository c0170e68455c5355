package config

import (
	"time"

	"github.com/spf13/cobra"
)

type Request struct {
	*API

	Method   string
	Data     string
	DataFile string
	Headers  []string
	Timeout  time.Duration
}

func (c *Request) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.Method, "method", "X", "GET", "HTTP method")
	cmd.Flags().StringVarP(&c.Data, "data", "d", "", "request body")
	cmd.Flags().StringVarP(&c.DataFile, "data-file", "f", "", "YAML or JSON file sent as a JSON request body ('-' for stdin)")
	cmd.Flags().StringArrayVarP(&c.Headers, "header", "H", nil, "extra request header as 'Name: value' (repeatable)")
	cmd.Flags().DurationVar(&c.Timeout, "timeout", 30*time.Second, "request timeout")
}
