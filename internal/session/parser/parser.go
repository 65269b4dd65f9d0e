// Package parser extracts structured metadata and statistics from session
// file bodies. Session files are a restricted markdown subset: a single `# `
// title, bold-labeled timestamp lines, and `### ` sections holding checklist
// items and free text.
package parser

import (
	"regexp"
	"strings"

	"github.com/vanpelt/handoff/internal/models"
)

const (
	checkedMarker   = "- [x] "
	uncheckedMarker = "- [ ] "

	sectionCompleted  = "### Completed"
	sectionInProgress = "### In Progress"
	sectionNotes      = "### Notes for Next Session"
	sectionContext    = "### Context to Load"
)

var (
	dateLineRe        = regexp.MustCompile(`(?m)^\*\*Date:\*\*(.*)$`)
	startedLineRe     = regexp.MustCompile(`(?m)^\*\*Started:\*\*(.*)$`)
	lastUpdatedLineRe = regexp.MustCompile(`(?m)^\*\*Last Updated:\*\*(.*)$`)
)

// ParseMetadata extracts session metadata from raw content. Every extraction
// is independent; missing sections degrade to zero values and no input can
// produce an error. Sections may appear in any order.
func ParseMetadata(content string) models.SessionMetadata {
	meta := models.SessionMetadata{}
	if content == "" {
		return meta
	}

	meta.Title = extractTitle(content)
	meta.Date = extractLabel(dateLineRe, content)
	meta.Started = extractLabel(startedLineRe, content)
	meta.LastUpdated = extractLabel(lastUpdatedLineRe, content)
	meta.Completed = extractItems(content, sectionCompleted, checkedMarker)
	meta.InProgress = extractItems(content, sectionInProgress, uncheckedMarker)
	meta.Notes = strings.TrimSpace(sectionBody(content, sectionNotes))
	meta.Context = strings.TrimSpace(stripFences(sectionBody(content, sectionContext)))
	return meta
}

// extractTitle returns the first level-1 heading, trimmed.
func extractTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return ""
}

func extractLabel(re *regexp.Regexp, content string) string {
	m := re.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// extractItems collects checklist item text under the given section heading,
// in document order.
func extractItems(content, heading, marker string) []string {
	var items []string
	for _, line := range strings.Split(sectionBody(content, heading), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, marker) {
			items = append(items, strings.TrimSpace(strings.TrimPrefix(trimmed, marker)))
		}
	}
	return items
}

// sectionBody returns the lines between the given heading and the next
// heading of equal-or-higher level (or end of content). Empty string when the
// heading is absent.
func sectionBody(content, heading string) string {
	lines := strings.Split(content, "\n")
	level := headingLevel(heading)

	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == heading {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return ""
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		if l := headingLevel(lines[i]); l > 0 && l <= level {
			end = i
			break
		}
	}
	return strings.Join(lines[start:end], "\n")
}

// headingLevel returns the markdown heading level of a line, or 0 when the
// line is not a heading.
func headingLevel(line string) int {
	trimmed := strings.TrimSpace(line)
	n := 0
	for n < len(trimmed) && trimmed[n] == '#' {
		n++
	}
	if n == 0 || n >= len(trimmed) || trimmed[n] != ' ' {
		return 0
	}
	return n
}

// stripFences removes fenced-code delimiter lines, keeping the fenced text.
func stripFences(s string) string {
	var kept []string
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
