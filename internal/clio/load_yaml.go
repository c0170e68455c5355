package clio

import (
	"fmt"
	"io"
	"os"

	"sigs.k8s.io/yaml"
)

// LoadJSONBody reads a YAML (or JSON) document from filename and returns it
// as JSON, ready to be sent as a request body. The filename "-" means stdin.
func LoadJSONBody(filename string, stdin io.Reader) ([]byte, error) {
	var in io.Reader
	if filename == "-" {
		in = stdin
	} else {
		file, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		in = file
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}

	body, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%s is not valid YAML or JSON: %w", filename, err)
	}
	return body, nil
}
