// Package paths provides shared utilities for working with session file names
// and locations.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/vanpelt/handoff/internal/models"
)

// Session filenames come in two shapes:
//   - current: 2026-08-29-a1b2c3d4e5f6-session.md
//   - legacy:  2026-08-29-session.md
//
// The date segment is syntactic only; calendar validity is not enforced.
var (
	currentNameRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-([A-Za-z0-9]{8,})-session\.(.+)$`)
	legacyNameRe  = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-session\.(.+)$`)
)

// ParseFilename extracts the date and short id from a session filename.
// Legacy names without an id segment get the "no-id" sentinel. Returns nil
// for anything that is not a session filename.
func ParseFilename(name string) *models.SessionFileRef {
	if m := currentNameRe.FindStringSubmatch(name); m != nil {
		return &models.SessionFileRef{
			Filename: name,
			Date:     m[1],
			ShortID:  m[2],
		}
	}
	if m := legacyNameRe.FindStringSubmatch(name); m != nil {
		return &models.SessionFileRef{
			Filename: name,
			Date:     m[1],
			ShortID:  models.NoID,
		}
	}
	return nil
}

// BuildFilename composes a current-format session filename. An empty or
// sentinel shortID yields a legacy-format name.
func BuildFilename(date, shortID, ext string) string {
	if shortID == "" || shortID == models.NoID {
		return fmt.Sprintf("%s-session.%s", date, ext)
	}
	return fmt.Sprintf("%s-%s-session.%s", date, shortID, ext)
}

// NewShortID returns a fresh 12-character alphanumeric session id.
func NewShortID() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return hex[:12]
}

// ResolveSessionPath resolves a session identifier to a full file path.
// The identifier can be:
// - A path to an existing file
// - A bare session filename (resolved against the given sessions dir)
//
// Returns the full path to the session file and any error encountered.
func ResolveSessionPath(identifier string, sessionsDir string) (string, error) {
	if info, err := os.Stat(identifier); err == nil && info.Mode().IsRegular() {
		return identifier, nil
	}

	if ParseFilename(filepath.Base(identifier)) == nil {
		return "", fmt.Errorf("invalid session file: %q is not a session filename", identifier)
	}

	candidate := filepath.Join(sessionsDir, filepath.Base(identifier))
	if _, err := os.Stat(candidate); os.IsNotExist(err) {
		return "", fmt.Errorf("session file not found: %s", candidate)
	}
	return candidate, nil
}
