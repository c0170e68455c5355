package config

import (
	"fmt"

	"github.com/cpkurotori/qiskit-ibm-runtime/internal/auth"
)

type OutputFormat string

const (
	OutputFormatDefault OutputFormat = ""
	OutputFormatYAML    OutputFormat = "yaml"
	OutputFormatJSON    OutputFormat = "json"
)

func (o *OutputFormat) String() string {
	return string(*o)
}

// Set implements the pflag.Value interface.
func (o *OutputFormat) Set(v string) error {
	switch OutputFormat(v) {
	case OutputFormatDefault, OutputFormatYAML, OutputFormatJSON:
		*o = OutputFormat(v)
	default:
		return fmt.Errorf("unknown output format: %v", v)
	}
	return nil
}

// Type implements the pflag.Value interface.
func (o *OutputFormat) Type() string {
	return "string"
}

type Channel string

const (
	ChannelCloud   Channel = auth.CloudChannel
	ChannelQuantum Channel = auth.QuantumChannel
)

func (c *Channel) String() string {
	return string(*c)
}

// Set implements the pflag.Value interface.
func (c *Channel) Set(v string) error {
	switch Channel(v) {
	case ChannelCloud, ChannelQuantum:
		*c = Channel(v)
	default:
		return fmt.Errorf("unknown channel: %v (must be %s or %s)", v, ChannelCloud, ChannelQuantum)
	}
	return nil
}

// Type implements the pflag.Value interface.
func (c *Channel) Type() string {
	return "string"
}
