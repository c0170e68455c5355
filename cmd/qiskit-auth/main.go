package main

import (
	"os"

	"github.com/cpkurotori/qiskit-ibm-runtime/internal/command"
)

func main() {
	if err := command.New().Execute(); err != nil {
		os.Exit(1)
	}
}
