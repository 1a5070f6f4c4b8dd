package workspacecontext

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vswrite/extensions-go/spec"
)

func newTestWorkspace(t *testing.T) *Workspace {
	t.Helper()
	root := t.TempDir()

	files := map[string]string{
		"entities/mara.yaml": "id: e-mara\nname: Mara\ntype: character\ndescription: Protagonist\naliases:\n  - The Wanderer\n",
		"entities/keep.yaml": "id: e-keep\nname: The Keep\ntype: Location\ndescription: Fortress\n",
		"entities/bad.yaml":  ": not yaml [\n",
		"sections/001-intro.md": "---\nid: s-intro\ntitle: Intro\norder: 1\nentity_ids:\n  - e-mara\n---\nMara arrives.\n",
		"sections/002-keep.md": "---\nid: s-keep\ntitle: The Keep\norder: 2\ntags:\n  - id: t-1\n    entity_id: e-keep\n    from: 3\n    to: 11\n---\nThe Keep looms.\n",
		"notes/scratch.txt": "loose note\n",
	}
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}

	w, err := New(root)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	if _, err := New(""); !errors.Is(err, spec.ErrInvalidArgument) {
		t.Fatalf("empty path: got %v", err)
	}
	if _, err := New(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatalf("missing dir must fail")
	}

	file := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := New(file); !errors.Is(err, spec.ErrInvalidArgument) {
		t.Fatalf("file as workspace: got %v", err)
	}
}

func TestEntities(t *testing.T) {
	t.Parallel()

	w := newTestWorkspace(t)

	chars, err := w.ListEntitiesByType(t.Context(), "character")
	if err != nil {
		t.Fatalf("ListEntitiesByType: %v", err)
	}
	if len(chars) != 1 || chars[0].Name != "Mara" || chars[0].Aliases[0] != "The Wanderer" {
		t.Fatalf("unexpected characters: %+v", chars)
	}

	// Type match is case-insensitive; stored type is normalized lowercase.
	locs, err := w.ListEntitiesByType(t.Context(), "LOCATION")
	if err != nil || len(locs) != 1 || locs[0].Type != spec.EntityTypeLocation {
		t.Fatalf("unexpected locations: %+v, %v", locs, err)
	}

	e, err := w.GetEntityByID(t.Context(), "e-keep")
	if err != nil || e == nil || e.Name != "The Keep" {
		t.Fatalf("GetEntityByID: %+v, %v", e, err)
	}
	missing, err := w.GetEntityByID(t.Context(), "nope")
	if err != nil || missing != nil {
		t.Fatalf("missing entity: %+v, %v", missing, err)
	}
}

func TestRelationships(t *testing.T) {
	t.Parallel()

	w := newTestWorkspace(t)

	// Referenced via entity_ids.
	rel, err := w.GetEntityRelationships(t.Context(), "e-mara")
	if err != nil {
		t.Fatalf("GetEntityRelationships: %v", err)
	}
	if rel.Entity == nil || rel.Entity.Name != "Mara" {
		t.Fatalf("entity: %+v", rel.Entity)
	}
	if len(rel.Sections) != 1 || rel.Sections[0].ID != "s-intro" {
		t.Fatalf("sections: %+v", rel.Sections)
	}

	// Referenced via a tag.
	rel, err = w.GetEntityRelationships(t.Context(), "e-keep")
	if err != nil || len(rel.Sections) != 1 || rel.Sections[0].ID != "s-keep" {
		t.Fatalf("tag-referenced sections: %+v, %v", rel.Sections, err)
	}
}

func TestTagRoundTrip(t *testing.T) {
	t.Parallel()

	w := newTestWorkspace(t)

	tag, err := w.AddTag(t.Context(), "s-intro", "e-mara", 0, 4)
	if err != nil {
		t.Fatalf("AddTag: %v", err)
	}
	if tag.ID == "" {
		t.Fatalf("tag id not assigned: %+v", tag)
	}

	// Persisted: visible through a fresh read.
	tags, err := w.GetTagsBySection(t.Context(), "s-intro")
	if err != nil || len(tags) != 1 || tags[0].ID != tag.ID {
		t.Fatalf("GetTagsBySection: %+v, %v", tags, err)
	}

	// Section body survives the frontmatter rewrite.
	content, err := w.ReadFile(t.Context(), "sections/001-intro.md")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(content, "Mara arrives.\n") {
		t.Fatalf("section body lost:\n%s", content)
	}

	if err := w.RemoveTag(t.Context(), "s-intro", tag.ID); err != nil {
		t.Fatalf("RemoveTag: %v", err)
	}
	tags, err = w.GetTagsBySection(t.Context(), "s-intro")
	if err != nil || len(tags) != 0 {
		t.Fatalf("expected no tags after removal: %+v, %v", tags, err)
	}
}

func TestTagErrors(t *testing.T) {
	t.Parallel()

	w := newTestWorkspace(t)

	if _, err := w.AddTag(t.Context(), "s-intro", "e-mara", 9, 3); !errors.Is(err, spec.ErrInvalidArgument) {
		t.Fatalf("from>to: got %v", err)
	}
	if _, err := w.AddTag(t.Context(), "missing", "e-mara", 0, 1); !errors.Is(err, spec.ErrSectionNotFound) {
		t.Fatalf("unknown section: got %v", err)
	}
	if err := w.RemoveTag(t.Context(), "s-intro", "no-such-tag"); !errors.Is(err, spec.ErrTagNotFound) {
		t.Fatalf("unknown tag: got %v", err)
	}
	if _, err := w.GetTagsBySection(t.Context(), "missing"); !errors.Is(err, spec.ErrSectionNotFound) {
		t.Fatalf("tags of unknown section: got %v", err)
	}
}

func TestGlobAndReadFile(t *testing.T) {
	t.Parallel()

	w := newTestWorkspace(t)

	got, err := w.Glob(t.Context(), "sections/*.md", "")
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	if len(got) != 2 || got[0] != "sections/001-intro.md" || got[1] != "sections/002-keep.md" {
		t.Fatalf("unexpected matches: %v", got)
	}

	// Rooted glob returns workspace-relative paths usable with ReadFile.
	rooted, err := w.Glob(t.Context(), "*.txt", "notes")
	if err != nil || len(rooted) != 1 || rooted[0] != "notes/scratch.txt" {
		t.Fatalf("rooted glob: %v, %v", rooted, err)
	}
	content, err := w.ReadFile(t.Context(), rooted[0])
	if err != nil || content != "loose note\n" {
		t.Fatalf("ReadFile(%s): %q, %v", rooted[0], content, err)
	}

	if _, err := w.ReadFile(t.Context(), "../outside.txt"); err == nil {
		t.Fatalf("escaping path must fail")
	}
	if _, err := w.Glob(t.Context(), "", ""); err == nil {
		t.Fatalf("empty pattern must fail")
	}
}
