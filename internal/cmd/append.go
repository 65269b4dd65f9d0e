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

var appendCmd = &cobra.Command{
	Use:   "append [session] [text...]",
	Short: "➕ Append a line to a session file",
	Long: `# ➕ Append

**Append a line of text to a session file** and refresh its Last Updated
timestamp.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := paths.ResolveSessionPath(args[0], config.Runtime.SessionsDir)
		if err != nil {
			return err
		}

		service := services.NewSessionService()
		line := strings.Join(args[1:], " ") + "\n"
		if !service.AppendContent(path, line) {
			return fmt.Errorf("failed to append to %s", path)
		}
		if !service.TouchLastUpdated(path) {
			logger.Debugf("no Last Updated line to refresh in %s", path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(appendCmd)
}
