package services

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"github.com/vanpelt/handoff/internal/config"
	"github.com/vanpelt/handoff/internal/logger"
	"github.com/vanpelt/handoff/internal/models"
	"github.com/vanpelt/handoff/internal/session/parser"
	"github.com/vanpelt/handoff/internal/session/paths"
)

// UntitledSession is returned by Title when a session file is missing, empty,
// or has no title heading.
const UntitledSession = "Untitled Session"

var lastUpdatedRe = regexp.MustCompile(`(?m)^\*\*Last Updated:\*\*.*$`)

// SessionService performs the file-level operations on session files. Every
// operation is total: filesystem failures become sentinel return values and
// are never propagated. No locking is provided; concurrent writers against
// the same path are last-writer-wins.
type SessionService struct {
	sessionsDir string
	extension   string
	now         func() time.Time
}

// NewSessionService creates a session service bound to the configured
// sessions directory.
func NewSessionService() *SessionService {
	return &SessionService{
		sessionsDir: config.Runtime.SessionsDir,
		extension:   config.Runtime.Extension,
		now:         time.Now,
	}
}

// SessionsDir returns the directory this service operates on by default.
func (s *SessionService) SessionsDir() string {
	return s.sessionsDir
}

// ReadContent returns the file text, or ok=false if the file does not exist
// or cannot be read.
func (s *SessionService) ReadContent(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// WriteContent creates or overwrites the file. The parent directory must
// already exist; it is not created here.
func (s *SessionService) WriteContent(path, content string) bool {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		logger.Debugf("write failed for %s: %v", path, err)
		return false
	}
	return true
}

// AppendContent appends to the file, creating it if absent. Reads after a
// successful append observe the original and appended text in write order.
func (s *SessionService) AppendContent(path, content string) bool {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logger.Debugf("append failed for %s: %v", path, err)
		return false
	}
	defer file.Close()

	if _, err := file.WriteString(content); err != nil {
		logger.Debugf("append write failed for %s: %v", path, err)
		return false
	}
	return true
}

// DeleteSession removes the file. Deleting a non-existent file is a no-op
// reported as false, not an error.
func (s *SessionService) DeleteSession(path string) bool {
	if err := os.Remove(path); err != nil {
		return false
	}
	return true
}

// SessionExists reports whether the path exists and is a regular file. A
// directory at the path is false.
func (s *SessionService) SessionExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Size returns a human-readable size string for the file, or "0 B" when the
// path does not exist.
func (s *SessionService) Size(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "0 B"
	}
	return formatSize(info.Size())
}

// Title returns the session's title heading, or UntitledSession when the file
// is missing, empty, or has no title line.
func (s *SessionService) Title(path string) string {
	content, ok := s.ReadContent(path)
	if !ok {
		return UntitledSession
	}
	if title := parser.ParseMetadata(content).Title; title != "" {
		return title
	}
	return UntitledSession
}

// CreateSession writes a fresh session file into dir, named with today's date
// and a new short id, and returns its path.
func (s *SessionService) CreateSession(dir, title string) (string, error) {
	if dir == "" {
		dir = s.sessionsDir
	}
	if title == "" {
		title = UntitledSession
	}

	now := s.now()
	date := now.Format("2006-01-02")
	clock := now.Format("15:04")
	name := paths.BuildFilename(date, paths.NewShortID(), s.extension)
	path := filepath.Join(dir, name)

	content := fmt.Sprintf(`# %s

**Date:** %s
**Started:** %s
**Last Updated:** %s

### Completed

### In Progress

### Notes for Next Session

### Context to Load
`, title, date, clock, clock)

	if !s.WriteContent(path, content) {
		return "", fmt.Errorf("failed to write session file: %s", path)
	}
	return path, nil
}

// AddCompletedItem appends a checked checklist line to the session's
// Completed section, creating the section when absent. Returns false when
// the file cannot be read or written.
func (s *SessionService) AddCompletedItem(path, item string) bool {
	content, ok := s.ReadContent(path)
	if !ok {
		return false
	}
	return s.WriteContent(path, parser.AddCompleted(content, item))
}

// AddInProgressItem appends an unchecked checklist line to the session's
// In Progress section, creating the section when absent.
func (s *SessionService) AddInProgressItem(path, item string) bool {
	content, ok := s.ReadContent(path)
	if !ok {
		return false
	}
	return s.WriteContent(path, parser.AddInProgress(content, item))
}

// TouchLastUpdated rewrites the "**Last Updated:**" line with the current
// clock time. Returns false when the file is unreadable or has no such line.
func (s *SessionService) TouchLastUpdated(path string) bool {
	content, ok := s.ReadContent(path)
	if !ok || !lastUpdatedRe.MatchString(content) {
		return false
	}
	stamp := "**Last Updated:** " + s.now().Format("15:04")
	return s.WriteContent(path, lastUpdatedRe.ReplaceAllString(content, stamp))
}

// ListSessions scans dir for session files and returns their summaries,
// newest first. Entries whose names do not parse as session filenames are
// skipped. A missing or unreadable directory yields an empty list.
func (s *SessionService) ListSessions(dir string) []models.SessionSummary {
	if dir == "" {
		dir = s.sessionsDir
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Debugf("failed to read sessions directory %s: %v", dir, err)
		return nil
	}

	var summaries []models.SessionSummary
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ref := paths.ParseFilename(entry.Name())
		if ref == nil {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		summaries = append(summaries, models.SessionSummary{
			Ref:   *ref,
			Path:  path,
			Title: s.Title(path),
			Size:  s.Size(path),
			Stats: parser.Stats(path),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Ref.Date != summaries[j].Ref.Date {
			return summaries[i].Ref.Date > summaries[j].Ref.Date
		}
		return summaries[i].Ref.Filename > summaries[j].Ref.Filename
	})
	return summaries
}

// formatSize formats a byte count with binary units, switching units at the
// 1024 threshold.
func formatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
