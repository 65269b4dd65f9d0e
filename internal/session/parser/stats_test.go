package parser

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStatsFromContent(t *testing.T) {
	t.Run("empty content", func(t *testing.T) {
		stats := Stats("")
		if stats.TotalItems != 0 || stats.CompletedItems != 0 || stats.InProgressItems != 0 || stats.LineCount != 0 {
			t.Errorf("stats = %+v, want all zero", stats)
		}
	})

	t.Run("mixed items", func(t *testing.T) {
		stats := Stats(sampleSession)
		if stats.CompletedItems != 2 {
			t.Errorf("completed = %d, want 2", stats.CompletedItems)
		}
		if stats.InProgressItems != 2 {
			t.Errorf("in progress = %d, want 2", stats.InProgressItems)
		}
		if stats.TotalItems != 4 {
			t.Errorf("total = %d, want 4", stats.TotalItems)
		}
		if stats.LineCount == 0 {
			t.Error("line count should not be zero")
		}
	})

	t.Run("single line without newline", func(t *testing.T) {
		stats := Stats("just one line")
		if stats.LineCount != 1 {
			t.Errorf("line count = %d, want 1", stats.LineCount)
		}
	})

	t.Run("string resembling a path is treated as content", func(t *testing.T) {
		stats := Stats("text ending with test.tmp")
		if stats.LineCount != 1 || stats.TotalItems != 0 {
			t.Errorf("stats = %+v, want 1 line and no items", stats)
		}
	})
}

func TestStatsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "2026-08-29-a1b2c3d4e5f6-session.md")
	content := "# T\n- [x] a\n- [ ] b\n- [ ] c\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	stats := Stats(path)
	if stats.CompletedItems != 1 || stats.InProgressItems != 2 || stats.TotalItems != 3 {
		t.Errorf("stats = %+v", stats)
	}

	// The path itself is one line of text once the file is gone.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	stats = Stats(path)
	if stats.LineCount != 1 || stats.TotalItems != 0 {
		t.Errorf("stats after remove = %+v, want literal-content counts", stats)
	}
}
