package statsext

import (
	"strings"
	"testing"

	"github.com/vswrite/extensions-go/memcontext"
	"github.com/vswrite/extensions-go/spec"
)

func TestEntityStats(t *testing.T) {
	t.Parallel()

	ec := memcontext.New()
	ec.AddEntity(spec.Entity{ID: "e1", Name: "Mara", Type: spec.EntityTypeCharacter})
	ec.AddEntity(spec.Entity{ID: "e2", Name: "Brin", Type: spec.EntityTypeCharacter})
	ec.AddEntity(spec.Entity{ID: "e3", Name: "The Keep", Type: spec.EntityTypeLocation})

	got, err := entityStats(t.Context(), ec, spec.ToolArgs{})
	if err != nil {
		t.Fatalf("entityStats: %v", err)
	}
	want := strings.Join([]string{
		"- character: 2",
		"- location: 1",
		"- concept: 0",
		"- item: 0",
		"- rule: 0",
		"- custom: 0",
		"",
		"Total: 3",
	}, "\n")
	if got != want {
		t.Fatalf("stats mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestEntityStats_Empty(t *testing.T) {
	t.Parallel()

	got, err := entityStats(t.Context(), memcontext.New(), spec.ToolArgs{})
	if err != nil {
		t.Fatalf("entityStats: %v", err)
	}
	if !strings.HasSuffix(got, "Total: 0") {
		t.Fatalf("expected zero total:\n%s", got)
	}
}
