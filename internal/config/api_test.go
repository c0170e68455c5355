package config

import (
	"strings"
	"testing"

	"github.com/cpkurotori/qiskit-ibm-runtime/internal/auth"
	"github.com/spf13/viper"
)

func TestInitAPIConfigQuantum(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("token", "abc123456789")

	cfg := &API{}
	if err := cfg.InitAPIConfig(); err != nil {
		t.Fatalf("InitAPIConfig failed: %v", err)
	}
	if cfg.Channel != ChannelQuantum {
		t.Errorf("expected the default channel %s, got %s", ChannelQuantum, cfg.Channel)
	}
	if cfg.URL != auth.DefaultQuantumURL {
		t.Errorf("unexpected url %q", cfg.URL)
	}
	if cfg.MaskedToken != "abc123..." {
		t.Errorf("unexpected masked token %q", cfg.MaskedToken)
	}
	if !cfg.Authenticator.Equal(auth.NewQuantumAuth("abc123456789")) {
		t.Errorf("unexpected authenticator %#v", cfg.Authenticator)
	}
}

func TestInitAPIConfigCloud(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("channel", "ibm_cloud")
	viper.Set("token", "my-api-key")
	viper.Set("instance", "crn:v1:x")
	viper.Set("url", "https://test.cloud.ibm.com")

	cfg := &API{}
	if err := cfg.InitAPIConfig(); err != nil {
		t.Fatalf("InitAPIConfig failed: %v", err)
	}
	ca, ok := cfg.Authenticator.(*auth.CloudAuth)
	if !ok {
		t.Fatalf("expected a cloud authenticator, got %T", cfg.Authenticator)
	}
	if ca.CRN() != "crn:v1:x" {
		t.Errorf("unexpected crn %q", ca.CRN())
	}
	if cfg.URL != "https://test.cloud.ibm.com" {
		t.Errorf("unexpected url %q", cfg.URL)
	}
}

func TestInitAPIConfigErrors(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("channel", "ibm_cloud")

	cfg := &API{}
	err := cfg.InitAPIConfig()
	if err == nil {
		t.Fatal("expected an error")
	}
	// every problem is reported at once
	for _, want := range []string{"QISKIT_IBM_TOKEN", "QISKIT_IBM_INSTANCE"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %s, got %v", want, err)
		}
	}
	if cfg.Authenticator != nil {
		t.Error("no authenticator should be set on error")
	}

	viper.Set("channel", "ibm_classic")
	viper.Set("token", "abc")
	if err := (&API{}).InitAPIConfig(); err == nil || !strings.Contains(err.Error(), "unknown channel") {
		t.Errorf("expected an unknown channel error, got %v", err)
	}
}

func TestInitAPIConfigKeepsAuthenticator(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	preset := auth.NewQuantumAuth("preset")
	cfg := &API{Authenticator: preset}
	if err := cfg.InitAPIConfig(); err != nil {
		t.Fatalf("InitAPIConfig failed: %v", err)
	}
	if cfg.Authenticator != preset {
		t.Error("a preset authenticator should be kept")
	}
}

func TestMaskSecret(t *testing.T) {
	if got := MaskSecret("abcdefghij"); got != "abcdef..." {
		t.Errorf("unexpected mask %q", got)
	}
	if got := MaskSecret("abc"); got != "abc" {
		t.Errorf("short secrets are returned as is, got %q", got)
	}
}
