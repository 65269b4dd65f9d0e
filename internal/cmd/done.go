package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vanpelt/handoff/internal/config"
	"github.com/vanpelt/handoff/internal/logger"
	"github.com/vanpelt/handoff/internal/services"
	"github.com/vanpelt/handoff/internal/session/paths"
)

var doneCmd = &cobra.Command{
	Use:   "done [session] [item...]",
	Short: "✅ Record a completed item",
	Long: `# ✅ Done

**Add a checked checklist item to a session's Completed section** and refresh
its Last Updated timestamp. The section is created if the file does not have
one yet.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := paths.ResolveSessionPath(args[0], config.Runtime.SessionsDir)
		if err != nil {
			return err
		}

		service := services.NewSessionService()
		if !service.AddCompletedItem(path, strings.Join(args[1:], " ")) {
			return fmt.Errorf("failed to update %s", path)
		}
		if !service.TouchLastUpdated(path) {
			logger.Debugf("no Last Updated line to refresh in %s", path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
}
