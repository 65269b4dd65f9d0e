package parser

import (
	"reflect"
	"testing"
)

const sampleSession = `# Fix the flaky importer

**Date:** 2026-08-29
**Started:** 09:15
**Last Updated:** 17:40

### Completed
- [x] Reproduce the timeout locally
- [x] Add retry around the bulk insert

### In Progress
- [ ] Backfill the failed batches
- [ ] Write the regression test

### Notes for Next Session
The retry masks the root cause; check the connection pool settings
before closing this out.

### Context to Load
` + "```" + `
internal/importer/bulk.go
internal/importer/pool.go
` + "```" + `
`

func TestParseMetadata(t *testing.T) {
	meta := ParseMetadata(sampleSession)

	if meta.Title != "Fix the flaky importer" {
		t.Errorf("title = %q", meta.Title)
	}
	if meta.Date != "2026-08-29" {
		t.Errorf("date = %q", meta.Date)
	}
	if meta.Started != "09:15" {
		t.Errorf("started = %q", meta.Started)
	}
	if meta.LastUpdated != "17:40" {
		t.Errorf("last updated = %q", meta.LastUpdated)
	}

	wantCompleted := []string{
		"Reproduce the timeout locally",
		"Add retry around the bulk insert",
	}
	if !reflect.DeepEqual(meta.Completed, wantCompleted) {
		t.Errorf("completed = %v, want %v", meta.Completed, wantCompleted)
	}

	wantInProgress := []string{
		"Backfill the failed batches",
		"Write the regression test",
	}
	if !reflect.DeepEqual(meta.InProgress, wantInProgress) {
		t.Errorf("in progress = %v, want %v", meta.InProgress, wantInProgress)
	}

	if meta.Notes == "" || meta.Notes[:9] != "The retry" {
		t.Errorf("notes = %q", meta.Notes)
	}

	wantContext := "internal/importer/bulk.go\ninternal/importer/pool.go"
	if meta.Context != wantContext {
		t.Errorf("context = %q, want %q", meta.Context, wantContext)
	}
}

func TestParseMetadataEmpty(t *testing.T) {
	meta := ParseMetadata("")

	if meta.Title != "" || meta.Date != "" || meta.Started != "" || meta.LastUpdated != "" {
		t.Errorf("expected empty scalar fields, got %+v", meta)
	}
	if len(meta.Completed) != 0 || len(meta.InProgress) != 0 {
		t.Errorf("expected empty item lists, got %+v", meta)
	}
	if meta.Notes != "" || meta.Context != "" {
		t.Errorf("expected empty text blocks, got %+v", meta)
	}
}

func TestParseMetadataPartial(t *testing.T) {
	t.Run("title only", func(t *testing.T) {
		meta := ParseMetadata("# Just a title\n\nsome prose\n")
		if meta.Title != "Just a title" {
			t.Errorf("title = %q", meta.Title)
		}
		if meta.Date != "" || len(meta.Completed) != 0 || meta.Notes != "" {
			t.Errorf("unexpected fields: %+v", meta)
		}
	})

	t.Run("level two heading is not a title", func(t *testing.T) {
		meta := ParseMetadata("## Not a title\n# Real title\n")
		if meta.Title != "Real title" {
			t.Errorf("title = %q", meta.Title)
		}
	})

	t.Run("sections in reverse order", func(t *testing.T) {
		content := "### In Progress\n- [ ] later\n\n### Completed\n- [x] earlier\n\n# Title Last\n"
		meta := ParseMetadata(content)
		if meta.Title != "Title Last" {
			t.Errorf("title = %q", meta.Title)
		}
		if len(meta.Completed) != 1 || meta.Completed[0] != "earlier" {
			t.Errorf("completed = %v", meta.Completed)
		}
		if len(meta.InProgress) != 1 || meta.InProgress[0] != "later" {
			t.Errorf("in progress = %v", meta.InProgress)
		}
	})

	t.Run("section ends at next heading", func(t *testing.T) {
		content := "### Notes for Next Session\nremember the pool\n### Completed\n- [x] done thing\n"
		meta := ParseMetadata(content)
		if meta.Notes != "remember the pool" {
			t.Errorf("notes = %q", meta.Notes)
		}
		if len(meta.Completed) != 1 {
			t.Errorf("completed = %v", meta.Completed)
		}
	})

	t.Run("unchecked items outside their section are ignored", func(t *testing.T) {
		content := "### Completed\n- [x] real\n- [ ] mislabeled\n"
		meta := ParseMetadata(content)
		if len(meta.Completed) != 1 || len(meta.InProgress) != 0 {
			t.Errorf("completed = %v, in progress = %v", meta.Completed, meta.InProgress)
		}
	})

	t.Run("context without fences", func(t *testing.T) {
		meta := ParseMetadata("### Context to Load\njust/a/path.go\n")
		if meta.Context != "just/a/path.go" {
			t.Errorf("context = %q", meta.Context)
		}
	})
}
