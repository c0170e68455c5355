package config

import "testing"

func TestChannelSet(t *testing.T) {
	var c Channel
	if err := c.Set("ibm_cloud"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if c != ChannelCloud {
		t.Errorf("expected %s, got %s", ChannelCloud, c)
	}
	if err := c.Set("ibm_classic"); err == nil {
		t.Error("expected an error for an unknown channel")
	}
	if c != ChannelCloud {
		t.Errorf("a failed Set should keep the old value, got %s", c)
	}
}

func TestOutputFormatSet(t *testing.T) {
	var o OutputFormat
	for _, v := range []string{"", "json", "yaml"} {
		if err := o.Set(v); err != nil {
			t.Errorf("Set(%q) failed: %v", v, err)
		}
	}
	if err := o.Set("xml"); err == nil {
		t.Error("expected an error for xml")
	}
}
