package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendCommand(t *testing.T) {
	dir := withSessionsDir(t)
	name := "2026-08-29-a1b2c3d4e5f6-session.md"
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("# Notes\n\n**Last Updated:** 09:00\n"), 0644))

	require.NoError(t, appendCmd.RunE(appendCmd, []string{name, "checked", "the", "pool"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "checked the pool\n")
	assert.Regexp(t, `\*\*Last Updated:\*\* \d{2}:\d{2}`, string(data))
}

func TestAppendCommandWithoutTimestampLine(t *testing.T) {
	dir := withSessionsDir(t)
	name := "2026-08-29-session.md"
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("# Bare\n"), 0644))

	// A session without a Last Updated line still gets the appended text;
	// the skipped timestamp refresh is not an error.
	require.NoError(t, appendCmd.RunE(appendCmd, []string{name, "late", "addition"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "late addition\n")
}
