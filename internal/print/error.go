package print

import (
	"fmt"
	"io"

	"github.com/cpkurotori/qiskit-ibm-runtime/internal/config"
)

// Error renders err in the requested output format. For the default format
// err is returned so cobra reports it.
func Error(out io.Writer, err error, outputFormat config.OutputFormat) error {
	type errorResponse struct {
		Error string `json:"error"`
	}

	rawResponse := errorResponse{Error: err.Error()}

	switch outputFormat {
	case config.OutputFormatDefault:
		return err
	case config.OutputFormatJSON:
		return RawJSON(out, rawResponse)
	case config.OutputFormatYAML:
		return RawYAML(out, rawResponse)
	default:
		return fmt.Errorf("unsupported output format: %q", outputFormat)
	}
}
