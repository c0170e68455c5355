package clio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadJSONBody(t *testing.T) {
	file := filepath.Join(t.TempDir(), "job.yaml")
	content := `program_id: sampler
backend: ibm_brisbane
params:
  shots: 1024
`
	if err := os.WriteFile(file, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	body, err := LoadJSONBody(file, nil)
	if err != nil {
		t.Fatalf("LoadJSONBody failed: %v", err)
	}
	expected := `{"backend":"ibm_brisbane","params":{"shots":1024},"program_id":"sampler"}`
	if string(body) != expected {
		t.Errorf("expected %s, got %s", expected, body)
	}
}

func TestLoadJSONBodyStdin(t *testing.T) {
	body, err := LoadJSONBody("-", strings.NewReader(`{"program_id": "estimator"}`))
	if err != nil {
		t.Fatalf("LoadJSONBody failed: %v", err)
	}
	if string(body) != `{"program_id":"estimator"}` {
		t.Errorf("unexpected body %s", body)
	}
}

func TestLoadJSONBodyErrors(t *testing.T) {
	if _, err := LoadJSONBody(filepath.Join(t.TempDir(), "missing.yaml"), nil); err == nil {
		t.Error("expected an error for a missing file")
	}
	if _, err := LoadJSONBody("-", strings.NewReader("a: [1, 2")); err == nil {
		t.Error("expected an error for invalid yaml")
	}
}
