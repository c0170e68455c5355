// Package config holds everything users can set through flags, QISKIT_IBM_*
// environment variables or ~/.qiskit/config.yaml.
//
// Structs mirror the subcommand tree: each one embeds its parent's config and
// registers its own flags. They live apart from 'internal/command' so nested
// commands can share inherited config without an import loop.
package config
