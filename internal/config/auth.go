package config

import "github.com/spf13/cobra"

type Auth struct {
	*API
}

type AuthStatus struct {
	*Auth
}

type AuthHeaders struct {
	*Auth

	Reveal bool
}

func (c *AuthHeaders) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&c.Reveal, "reveal", false, "print header values in full instead of masking credentials")
}
