package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/vanpelt/handoff/internal/config"
	"github.com/vanpelt/handoff/internal/services"
	"github.com/vanpelt/handoff/internal/session/paths"
)

var showCmd = &cobra.Command{
	Use:   "show [session]",
	Short: "📖 Render a session file in the terminal",
	Long: `# 📖 Show a Session

**Render a session's markdown in the terminal.** The argument can be a path or
a bare session filename resolved against the sessions directory.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := paths.ResolveSessionPath(args[0], config.Runtime.SessionsDir)
		if err != nil {
			return err
		}

		service := services.NewSessionService()
		content, ok := service.ReadContent(path)
		if !ok {
			return fmt.Errorf("failed to read session file: %s", path)
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			fmt.Print(content)
			return nil
		}
		rendered, err := renderer.Render(content)
		if err != nil {
			fmt.Print(content)
			return nil
		}
		fmt.Print(rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
