package cmd

import (
	"fmt"
	"os"
)

// These variables are set by the main package, which owns configuration and
// dependency wiring. The cmd package only parses flags and delegates.
var (
	RunServe func(port int) error
	RunAsk   func(question, schoolID string) error
)

// HandleError prints error and exits
func HandleError(err error, message string) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, err)
	os.Exit(1)
}
