package buildinfo

import "fmt"

// These vars are set by -ldflags at build time.
var (
	Version   = "dev"
	GitCommit string
	BuildDate string
)

func String() string {
	return fmt.Sprintf("%v (%v) - %v", Version, GitCommit, BuildDate)
}

// UserAgent is sent with every request made by the CLI.
func UserAgent() string {
	return "qiskit-auth/" + Version
}
