package print

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
)

// Headers prints one header per line, sorted by name.
func Headers(out io.Writer, headers map[string]string) error {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(tw, "%s:\t%s\n", name, headers[name])
	}
	return tw.Flush()
}
