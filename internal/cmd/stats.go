package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vanpelt/handoff/internal/config"
	"github.com/vanpelt/handoff/internal/services"
	"github.com/vanpelt/handoff/internal/session/parser"
	"github.com/vanpelt/handoff/internal/session/paths"
)

var statsCmd = &cobra.Command{
	Use:   "stats [session]",
	Short: "📊 Show item and line counts for a session",
	Long: `# 📊 Session Stats

**Print the completed / in-progress / total item counts and line count** for a
session file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := paths.ResolveSessionPath(args[0], config.Runtime.SessionsDir)
		if err != nil {
			return err
		}

		service := services.NewSessionService()
		stats := parser.Stats(path)
		fmt.Printf("%s (%s)\n", service.Title(path), service.Size(path))
		fmt.Printf("  completed:   %d\n", stats.CompletedItems)
		fmt.Printf("  in progress: %d\n", stats.InProgressItems)
		fmt.Printf("  total items: %d\n", stats.TotalItems)
		fmt.Printf("  lines:       %d\n", stats.LineCount)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
