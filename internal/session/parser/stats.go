package parser

import (
	"os"
	"strings"

	"github.com/vanpelt/handoff/internal/models"
)

// Stats derives item and line counts for a session. The input is treated as a
// file path only when it stats to an existing regular file; anything else is
// counted literally as content. A string that merely looks like a path (e.g.
// ends in a file suffix) must not be misclassified, so no shape heuristics
// are applied.
func Stats(input string) models.SessionStats {
	content := input
	if info, err := os.Stat(input); err == nil && info.Mode().IsRegular() {
		if data, err := os.ReadFile(input); err == nil {
			content = string(data)
		}
	}
	return statsFromContent(content)
}

func statsFromContent(content string) models.SessionStats {
	stats := models.SessionStats{}
	if content == "" {
		return stats
	}

	lines := strings.Split(content, "\n")
	stats.LineCount = len(lines)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, checkedMarker):
			stats.CompletedItems++
		case strings.HasPrefix(trimmed, uncheckedMarker):
			stats.InProgressItems++
		}
	}
	stats.TotalItems = stats.CompletedItems + stats.InProgressItems
	return stats
}
