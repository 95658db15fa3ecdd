package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

var askSchoolID string

var askCmd = &cobra.Command{
	Use:   "ask [pergunta]",
	Short: "Faz uma pergunta em linguagem natural sobre os dados da escola",
	Long: `Asks a free-text question about one school's data. The question goes
through the safety gates, the SQL generation chain and the explanation chain.

Requires ANTHROPIC_API_KEY and/or GEMINI_API_KEY plus DATABASE_URL.

Example:
  schoolpulse ask "Quais foram as últimas 3 ocorrências?" --school 42`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		question := args[0]

		if RunAsk == nil {
			HandleError(errors.New("not initialized"), "ask command not wired")
		}
		if err := RunAsk(question, askSchoolID); err != nil {
			HandleError(err, "Failed to answer question")
		}
	},
}

func init() {
	askCmd.Flags().StringVar(&askSchoolID, "school", "", "school (tenant) identifier")
	_ = askCmd.MarkFlagRequired("school")
	rootCmd.AddCommand(askCmd)
}
