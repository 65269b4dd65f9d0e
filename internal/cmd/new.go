package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vanpelt/handoff/internal/logger"
	"github.com/vanpelt/handoff/internal/services"
)

var newCmd = &cobra.Command{
	Use:   "new [title...]",
	Short: "✨ Start a new session file",
	Long: `# ✨ New Session

**Create a fresh session file** named with today's date and a generated short
id, pre-filled with the standard sections.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		service := services.NewSessionService()
		path, err := service.CreateSession("", strings.Join(args, " "))
		if err != nil {
			return err
		}
		logger.Infof("created %s", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}
