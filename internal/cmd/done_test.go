package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanpelt/handoff/internal/config"
	"github.com/vanpelt/handoff/internal/session/parser"
)

// withSessionsDir points the runtime config at a temp sessions directory for
// the duration of the test.
func withSessionsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig := config.Runtime.SessionsDir
	config.Runtime.SessionsDir = dir
	t.Cleanup(func() { config.Runtime.SessionsDir = orig })
	return dir
}

func TestDoneCommand(t *testing.T) {
	dir := withSessionsDir(t)
	name := "2026-08-29-a1b2c3d4e5f6-session.md"
	path := filepath.Join(dir, name)
	content := "# Checklist\n\n**Last Updated:** 09:00\n\n### Completed\n- [x] earlier\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	require.NoError(t, doneCmd.RunE(doneCmd, []string{name, "land", "the", "fix"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	meta := parser.ParseMetadata(string(data))
	assert.Equal(t, []string{"earlier", "land the fix"}, meta.Completed)
	assert.Regexp(t, `^\d{2}:\d{2}$`, meta.LastUpdated)
}

func TestTodoCommand(t *testing.T) {
	dir := withSessionsDir(t)
	name := "2026-08-29-a1b2c3d4e5f6-session.md"
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("# Checklist\n"), 0644))

	require.NoError(t, todoCmd.RunE(todoCmd, []string{name, "start", "the", "backfill"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	meta := parser.ParseMetadata(string(data))
	assert.Equal(t, []string{"start the backfill"}, meta.InProgress)
}

func TestDoneCommandMissingSession(t *testing.T) {
	withSessionsDir(t)
	err := doneCmd.RunE(doneCmd, []string{"2020-01-01-session.md", "item"})
	assert.Error(t, err)
}
