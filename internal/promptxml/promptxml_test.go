package promptxml

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/vswrite/extensions-go/spec"
)

func TestAvailableToolsXML(t *testing.T) {
	t.Parallel()

	manifests := []spec.ExtensionManifest{
		{
			ID: "tag-manager", Name: "Tag Manager", Version: "1",
			Tools: []spec.ToolDefinition{
				{Name: "tag_overview", Description: "List tags for a section"},
			},
		},
		{
			ID: "entity-stats", Name: "Entity Stats", Version: "1",
			Tools: []spec.ToolDefinition{
				{
					Name:        "entity_stats",
					Description: "Count entities per type",
					Schema:      json.RawMessage(`{"type":"object"}`),
				},
			},
		},
	}

	got, err := AvailableToolsXML(manifests, true)
	if err != nil {
		t.Fatalf("AvailableToolsXML: %v", err)
	}
	if !strings.HasPrefix(got, "<available_tools>") {
		t.Fatalf("unexpected root: %q", got)
	}
	// Sorted by qualified name: entity-stats before tag-manager.
	if strings.Index(got, "entity-stats:entity_stats") > strings.Index(got, "tag-manager:tag_overview") {
		t.Fatalf("tools not sorted:\n%s", got)
	}
	if !strings.Contains(got, `<![CDATA[{"type":"object"}]]>`) {
		t.Fatalf("schema CDATA missing:\n%s", got)
	}

	noSchema, err := AvailableToolsXML(manifests, false)
	if err != nil {
		t.Fatalf("AvailableToolsXML(no schema): %v", err)
	}
	if strings.Contains(noSchema, "CDATA") {
		t.Fatalf("schema leaked:\n%s", noSchema)
	}
}
