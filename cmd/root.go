package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "schoolpulse",
	Short: "Analytics em linguagem natural para gestão escolar",
	Long: `SchoolPulse answers free-text questions from school administrators by
generating scoped, read-only SQL with an LLM provider chain, executing it and
narrating the results.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
