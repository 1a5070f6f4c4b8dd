package tagext

import (
	"errors"
	"strings"
	"testing"

	"github.com/vswrite/extensions-go/memcontext"
	"github.com/vswrite/extensions-go/spec"
)

func newTestContext(t *testing.T) *memcontext.Context {
	t.Helper()
	mc := memcontext.New()
	mc.AddEntity(spec.Entity{ID: "ent-hero", Name: "Aria", Type: spec.EntityTypeCharacter})
	mc.AddSection(spec.Section{ID: "sec-1", Title: "Opening", Order: 1})
	return mc
}

func TestManifestMatchesHandlers(t *testing.T) {
	t.Parallel()

	ext := New()
	if err := ext.Manifest.Validate(); err != nil {
		t.Fatalf("manifest validate: %v", err)
	}
	for _, tool := range ext.Manifest.Tools {
		if _, ok := ext.Tools[tool.Name]; !ok {
			t.Errorf("declared tool %q has no handler", tool.Name)
		}
	}
	if len(ext.Tools) != len(ext.Manifest.Tools) {
		t.Errorf("handler count %d, declared %d", len(ext.Tools), len(ext.Manifest.Tools))
	}
}

func TestAddEntityTag(t *testing.T) {
	t.Parallel()

	mc := newTestContext(t)
	out, err := addEntityTag(t.Context(), mc, spec.ToolArgs{
		"section_id": "sec-1",
		"entity_id":  "ent-hero",
		"from":       int64(10),
		"to":         int64(24),
	})
	if err != nil {
		t.Fatalf("addEntityTag: %v", err)
	}
	want := "Tag tag-0001 added for entity ent-hero in section sec-1."
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}

	tags, err := mc.GetTagsBySection(t.Context(), "sec-1")
	if err != nil {
		t.Fatalf("GetTagsBySection: %v", err)
	}
	if len(tags) != 1 || tags[0].From != 10 || tags[0].To != 24 {
		t.Fatalf("stored tags = %+v", tags)
	}
}

func TestAddEntityTagErrors(t *testing.T) {
	t.Parallel()

	valid := spec.ToolArgs{
		"section_id": "sec-1",
		"entity_id":  "ent-hero",
		"from":       int64(0),
		"to":         int64(5),
	}
	for _, key := range []string{"section_id", "entity_id", "from", "to"} {
		args := spec.ToolArgs{}
		for k, v := range valid {
			if k != key {
				args[k] = v
			}
		}
		if _, err := addEntityTag(t.Context(), newTestContext(t), args); !errors.Is(err, spec.ErrInvalidArgument) {
			t.Errorf("missing %q: err = %v, want ErrInvalidArgument", key, err)
		}
	}

	mc := newTestContext(t)
	if _, err := addEntityTag(t.Context(), mc, spec.ToolArgs{
		"section_id": "sec-missing",
		"entity_id":  "ent-hero",
		"from":       int64(0),
		"to":         int64(5),
	}); !errors.Is(err, spec.ErrSectionNotFound) {
		t.Errorf("unknown section: err = %v, want ErrSectionNotFound", err)
	}
}

func TestRemoveEntityTag(t *testing.T) {
	t.Parallel()

	mc := newTestContext(t)
	tag, err := mc.AddTag(t.Context(), "sec-1", "ent-hero", 0, 4)
	if err != nil {
		t.Fatalf("AddTag: %v", err)
	}

	out, err := removeEntityTag(t.Context(), mc, spec.ToolArgs{
		"section_id": "sec-1",
		"tag_id":     tag.ID,
	})
	if err != nil {
		t.Fatalf("removeEntityTag: %v", err)
	}
	want := "Tag " + tag.ID + " removed from section sec-1."
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}

	if _, err := removeEntityTag(t.Context(), mc, spec.ToolArgs{
		"section_id": "sec-1",
		"tag_id":     tag.ID,
	}); !errors.Is(err, spec.ErrTagNotFound) {
		t.Fatalf("second remove: err = %v, want ErrTagNotFound", err)
	}
}

func TestTagOverview(t *testing.T) {
	t.Parallel()

	mc := newTestContext(t)

	out, err := tagOverview(t.Context(), mc, spec.ToolArgs{"section_id": "sec-1"})
	if err != nil {
		t.Fatalf("tagOverview: %v", err)
	}
	if out != "No tags found for this section." {
		t.Fatalf("empty section output = %q", out)
	}

	if _, err := mc.AddTag(t.Context(), "sec-1", "ent-hero", 3, 9); err != nil {
		t.Fatalf("AddTag: %v", err)
	}
	if _, err := mc.AddTag(t.Context(), "sec-1", "ent-ghost", 20, 28); err != nil {
		t.Fatalf("AddTag: %v", err)
	}

	out, err = tagOverview(t.Context(), mc, spec.ToolArgs{"section_id": "sec-1"})
	if err != nil {
		t.Fatalf("tagOverview: %v", err)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("line count = %d, output %q", len(lines), out)
	}
	if lines[0] != "- Aria: 3..9 (tag tag-0001)" {
		t.Errorf("resolved line = %q", lines[0])
	}
	// Unknown entity falls back to the raw id.
	if lines[1] != "- ent-ghost: 20..28 (tag tag-0002)" {
		t.Errorf("fallback line = %q", lines[1])
	}
}

func TestTagOverviewMissingArg(t *testing.T) {
	t.Parallel()

	if _, err := tagOverview(t.Context(), newTestContext(t), spec.ToolArgs{}); !errors.Is(err, spec.ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}
