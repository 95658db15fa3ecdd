package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia o servidor HTTP da API de analytics",
	Long: `Starts the HTTP server exposing the analytics pipeline:

  POST /api/questions/sql      - generate scoped SQL for a question
  POST /api/questions/explain  - narrate result rows
  POST /api/questions/answer   - full question-to-answer flow`,
	Run: func(cmd *cobra.Command, args []string) {
		if RunServe == nil {
			HandleError(errors.New("not initialized"), "serve command not wired")
		}
		if err := RunServe(servePort); err != nil {
			HandleError(err, "Server failed")
		}
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (default from config)")
	rootCmd.AddCommand(serveCmd)
}
