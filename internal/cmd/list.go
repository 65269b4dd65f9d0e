package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vanpelt/handoff/internal/services"
)

var (
	listDir string

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	todoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "📋 List session files, newest first",
	Long: `# 📋 List Sessions

**Show every session file in the sessions directory, newest first**, with its
title, item counts, and size.`,
	Run: func(cmd *cobra.Command, args []string) {
		service := services.NewSessionService()
		summaries := service.ListSessions(listDir)
		if len(summaries) == 0 {
			fmt.Println(mutedStyle.Render("No sessions found."))
			return
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("%d session(s)", len(summaries))))
		for _, summary := range summaries {
			fmt.Printf("%s  %s %s\n",
				mutedStyle.Render(summary.Ref.Date),
				titleStyle.Render(summary.Title),
				mutedStyle.Render("("+summary.Ref.ShortID+", "+summary.Size+")"),
			)
			fmt.Printf("            %s  %s\n",
				doneStyle.Render(fmt.Sprintf("✔ %d done", summary.Stats.CompletedItems)),
				todoStyle.Render(fmt.Sprintf("… %d in progress", summary.Stats.InProgressItems)),
			)
		}
	},
}

func init() {
	listCmd.Flags().StringVarP(&listDir, "dir", "d", "", "Sessions directory (defaults to the configured one)")
	rootCmd.AddCommand(listCmd)
}
