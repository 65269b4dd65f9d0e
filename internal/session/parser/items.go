package parser

import "strings"

// AddCompleted returns content with a checked checklist line appended to the
// Completed section, creating the section at the end when absent.
func AddCompleted(content, item string) string {
	return addChecklistItem(content, sectionCompleted, checkedMarker, item)
}

// AddInProgress returns content with an unchecked checklist line appended to
// the In Progress section, creating the section at the end when absent.
func AddInProgress(content, item string) string {
	return addChecklistItem(content, sectionInProgress, uncheckedMarker, item)
}

func addChecklistItem(content, heading, marker, item string) string {
	line := marker + item
	lines := strings.Split(content, "\n")
	level := headingLevel(heading)

	start := -1
	for i, l := range lines {
		if strings.TrimSpace(l) == heading {
			start = i + 1
			break
		}
	}
	if start < 0 {
		if content == "" {
			return heading + "\n" + line + "\n"
		}
		if !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		return content + "\n" + heading + "\n" + line + "\n"
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		if l := headingLevel(lines[i]); l > 0 && l <= level {
			end = i
			break
		}
	}

	// Insert after the last non-blank line of the section so the new item
	// sits with any existing ones rather than after trailing blank lines.
	insert := start
	for i := start; i < end; i++ {
		if strings.TrimSpace(lines[i]) != "" {
			insert = i + 1
		}
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:insert]...)
	out = append(out, line)
	out = append(out, lines[insert:]...)
	return strings.Join(out, "\n")
}
