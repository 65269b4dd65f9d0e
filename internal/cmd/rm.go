package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vanpelt/handoff/internal/config"
	"github.com/vanpelt/handoff/internal/logger"
	"github.com/vanpelt/handoff/internal/services"
	"github.com/vanpelt/handoff/internal/session/paths"
)

var rmCmd = &cobra.Command{
	Use:   "rm [session]",
	Short: "🗑  Delete a session file",
	Long: `# 🗑 Remove a Session

**Delete a session file.** Removing a file that does not exist is reported,
not treated as an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := paths.ResolveSessionPath(args[0], config.Runtime.SessionsDir)
		if err != nil {
			return err
		}

		service := services.NewSessionService()
		if !service.DeleteSession(path) {
			fmt.Printf("nothing to delete at %s\n", path)
			return nil
		}
		logger.Infof("deleted %s", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
