package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/vanpelt/handoff/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "handoff",
	Short: "📝 Handoff - developer session notes",
	Long: `# 📝 Handoff

**Capture and pick up work-session notes from the command line.**

Session notes are plain markdown files named ` + "`YYYY-MM-DD-<id>-session.md`" + `
with a title, timestamps, checklists of completed and in-progress work, and
free-form notes for the next session.

## 🚀 Getting Started

Run **handoff new "Fix the flaky importer"** to start a session file, then
**handoff list** to see what you have.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Configure(logger.LevelFromEnv(), true)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Render help through glamour so the markdown descriptions read well
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		renderMarkdownHelp(cmd)
	})
}

func renderMarkdownHelp(cmd *cobra.Command) {
	var helpContent strings.Builder

	if cmd.Long != "" {
		helpContent.WriteString(cmd.Long)
		helpContent.WriteString("\n\n")
	} else if cmd.Short != "" {
		helpContent.WriteString("# " + cmd.Short)
		helpContent.WriteString("\n\n")
	}

	helpContent.WriteString("## 📖 Usage\n\n")
	helpContent.WriteString("```bash\n")
	helpContent.WriteString(cmd.UseLine())
	helpContent.WriteString("\n```\n\n")

	if cmd.HasAvailableSubCommands() {
		helpContent.WriteString("## 🔧 Available Commands\n\n")
		for _, subCmd := range cmd.Commands() {
			if subCmd.IsAvailableCommand() {
				helpContent.WriteString(fmt.Sprintf("- **%s** - %s\n", subCmd.Name(), subCmd.Short))
			}
		}
		helpContent.WriteString("\n")
	}

	if cmd.HasAvailableFlags() {
		helpContent.WriteString("## ⚙️  Flags\n\n")
		flagUsages := cmd.Flags().FlagUsages()
		if flagUsages != "" {
			helpContent.WriteString("```\n")
			helpContent.WriteString(flagUsages)
			helpContent.WriteString("```\n\n")
		}
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fallbackHelp(cmd)
		return
	}

	rendered, err := renderer.Render(helpContent.String())
	if err != nil {
		fallbackHelp(cmd)
		return
	}

	fmt.Print(rendered)
}

// fallbackHelp prints plain usage when markdown rendering is unavailable.
// It must not call cmd.Help(), which re-enters the custom help func.
func fallbackHelp(cmd *cobra.Command) {
	if cmd.Long != "" {
		fmt.Fprintln(cmd.OutOrStdout(), cmd.Long)
	}
	fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
}
