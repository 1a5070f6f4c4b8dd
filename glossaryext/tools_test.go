package glossaryext

import (
	"errors"
	"strings"
	"testing"

	"github.com/vswrite/extensions-go/memcontext"
	"github.com/vswrite/extensions-go/spec"
)

func seededContext() *memcontext.Context {
	ec := memcontext.New()
	ec.AddEntity(spec.Entity{ID: "e-mara", Name: "Mara", Type: spec.EntityTypeCharacter, Description: "Protagonist", Aliases: []string{"The Wanderer"}})
	ec.AddEntity(spec.Entity{ID: "e-brin", Name: "Brin", Type: spec.EntityTypeCharacter})
	ec.AddEntity(spec.Entity{ID: "e-keep", Name: "The Keep", Type: spec.EntityTypeLocation, Description: "Fortress"})
	return ec
}

func TestEntityGlossary(t *testing.T) {
	t.Parallel()

	ec := seededContext()

	got, err := entityGlossary(t.Context(), ec, spec.ToolArgs{})
	if err != nil {
		t.Fatalf("entityGlossary: %v", err)
	}
	want := strings.Join([]string{
		"## Character",
		"- **Brin**",
		"- **Mara**: Protagonist",
		"",
		"## Location",
		"- **The Keep**: Fortress",
	}, "\n")
	if got != want {
		t.Fatalf("glossary mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}

	// Every entity appears exactly once.
	for _, name := range []string{"**Brin**", "**Mara**", "**The Keep**"} {
		if strings.Count(got, name) != 1 {
			t.Fatalf("entity %s not listed exactly once:\n%s", name, got)
		}
	}
}

func TestEntityGlossary_AliasesAndTypeFilter(t *testing.T) {
	t.Parallel()

	ec := seededContext()

	got, err := entityGlossary(t.Context(), ec, spec.ToolArgs{
		"types":           []string{"character"},
		"include_aliases": true,
	})
	if err != nil {
		t.Fatalf("entityGlossary: %v", err)
	}
	if strings.Contains(got, "Location") {
		t.Fatalf("filtered type leaked:\n%s", got)
	}
	if !strings.Contains(got, "- **Mara**: Protagonist (aliases: The Wanderer)") {
		t.Fatalf("aliases missing:\n%s", got)
	}
	// Entities without aliases get no suffix.
	if strings.Contains(got, "Brin** (") {
		t.Fatalf("unexpected alias suffix:\n%s", got)
	}
}

func TestEntityGlossary_MultiWordTypeHeading(t *testing.T) {
	t.Parallel()

	ec := memcontext.New()
	ec.AddEntity(spec.Entity{ID: "e-vex", Name: "Vex", Type: "dark lord"})

	got, err := entityGlossary(t.Context(), ec, spec.ToolArgs{"types": []string{"dark lord"}})
	if err != nil {
		t.Fatalf("entityGlossary: %v", err)
	}
	if !strings.Contains(got, "## Dark Lord") {
		t.Fatalf("heading not title-cased per word:\n%s", got)
	}
}

func TestTitleCase(t *testing.T) {
	t.Parallel()

	tests := []struct{ in, want string }{
		{"character", "Character"},
		{"dark lord", "Dark Lord"},
		{"DARK lord", "Dark Lord"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEntityGlossary_Empty(t *testing.T) {
	t.Parallel()

	got, err := entityGlossary(t.Context(), memcontext.New(), spec.ToolArgs{})
	if err != nil || got != "No entities found for the selected types." {
		t.Fatalf("empty glossary: %q, %v", got, err)
	}
}

func TestEntityRelationships(t *testing.T) {
	t.Parallel()

	ec := seededContext()
	ec.AddSection(spec.Section{ID: "s2", Title: "The Keep", Order: 2, EntityIDs: []string{"e-mara"}})
	ec.AddSection(spec.Section{ID: "s1", Title: "Intro", Order: 1, Tags: []spec.Tag{{ID: "t1", EntityID: "e-mara", From: 0, To: 4}}})

	got, err := entityRelationships(t.Context(), ec, spec.ToolArgs{"entity_id": "e-mara"})
	if err != nil {
		t.Fatalf("entityRelationships: %v", err)
	}
	want := strings.Join([]string{
		"# Mara",
		"Type: character",
		"",
		"## Sections",
		"- 1. Intro",
		"- 2. The Keep",
	}, "\n")
	if got != want {
		t.Fatalf("relationships mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestEntityRelationships_UnknownAndMissingArg(t *testing.T) {
	t.Parallel()

	ec := seededContext()

	got, err := entityRelationships(t.Context(), ec, spec.ToolArgs{"entity_id": "ghost"})
	if err != nil {
		t.Fatalf("unknown entity: %v", err)
	}
	if !strings.HasPrefix(got, "# Entity\nType: unknown") || !strings.Contains(got, "No linked sections found.") {
		t.Fatalf("unknown entity output:\n%s", got)
	}

	if _, err := entityRelationships(t.Context(), ec, spec.ToolArgs{}); !errors.Is(err, spec.ErrInvalidArgument) {
		t.Fatalf("missing entity_id: got %v", err)
	}
}
