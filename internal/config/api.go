package config

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cpkurotori/qiskit-ibm-runtime/internal/auth"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"
)

type API struct {
	Root

	// Config file values
	Channel     Channel
	Instance    string
	URL         string
	MaskedToken string

	// Runtime values
	Authenticator auth.Authenticator `json:"-"`
}

// for error reporting, we select the config that
// the user controls. sigs.k8s.io/yaml goes through this too.
func (a *API) MarshalJSON() ([]byte, error) {
	type T struct {
		Debug       bool
		ConfigFile  string
		Channel     Channel
		Instance    string
		URL         string
		MaskedToken string
	}
	t := &T{
		Debug:       a.Debug,
		ConfigFile:  a.ConfigFile,
		Channel:     a.Channel,
		Instance:    a.Instance,
		URL:         a.URL,
		MaskedToken: a.MaskedToken,
	}
	return json.Marshal(t)
}

// InitAPIConfig reads the credentials and builds the matching authenticator.
// It is a no-op once an authenticator is set.
func (a *API) InitAPIConfig() error {
	if a.Authenticator != nil {
		return nil
	}

	token := viper.GetString("token")
	if err := a.load(token); err != nil {
		return err
	}

	authn, err := auth.ForChannel(string(a.Channel), token, a.Instance, a.URL)
	if err != nil {
		return fmt.Errorf("could not set up %s credentials: %w", a.Channel, err)
	}
	a.Authenticator = authn
	return nil
}

func (a *API) load(token string) error {
	var result *multierror.Error

	channel := viper.GetString("channel")
	if channel == "" {
		channel = string(ChannelQuantum)
	}
	if err := a.Channel.Set(channel); err != nil {
		result = multierror.Append(result, err)
	}

	if token == "" {
		result = multierror.Append(result, errors.New("token must be specified through either the QISKIT_IBM_TOKEN env var or the 'token' field in ~/.qiskit/config.yaml"))
	} else {
		a.MaskedToken = MaskSecret(token)
	}

	a.Instance = viper.GetString("instance")
	if a.Channel == ChannelCloud && a.Instance == "" {
		result = multierror.Append(result, errors.New("the ibm_cloud channel requires a service CRN through either the QISKIT_IBM_INSTANCE env var or the 'instance' field in ~/.qiskit/config.yaml"))
	}

	// Allow the URL to be overridden (e.g. for talking to staging).
	if url := viper.GetString("url"); url != "" {
		a.URL = url
	} else {
		a.URL = auth.DefaultURL(string(a.Channel))
	}

	return result.ErrorOrNil()
}

// MaskSecret keeps the first 6 characters of s.
func MaskSecret(s string) string {
	if len(s) > 6 {
		return s[:6] + "..."
	}
	return s
}
