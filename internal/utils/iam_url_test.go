package utils

import "testing"

func TestIAMAPIURL(t *testing.T) {
	tests := []struct {
		in       string
		expected string
		wantErr  bool
	}{
		{in: "https://cloud.ibm.com", expected: "https://iam.cloud.ibm.com"},
		{in: "https://test.cloud.ibm.com:443/some/path", expected: "https://iam.test.cloud.ibm.com"},
		{in: "http://localhost:8080", expected: "http://iam.localhost"},
		{in: "cloud.ibm.com", wantErr: true},
		{in: "", wantErr: true},
		{in: "https://%zz", wantErr: true},
	}
	for _, tt := range tests {
		got, err := IAMAPIURL(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("IAMAPIURL(%q): expected an error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("IAMAPIURL(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("IAMAPIURL(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}
