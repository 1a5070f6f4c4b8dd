// Package starterext is the minimal template extension: one project hook
// and two tools covering the common context operations (entity listing,
// tag creation).
package starterext

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	writeext "github.com/vswrite/extensions-go"
	"github.com/vswrite/extensions-go/spec"
)

const ID = "starter-extension"

func New() writeext.Extension {
	return writeext.Extension{
		Manifest: spec.ExtensionManifest{
			ID:          ID,
			Name:        "Starter Extension",
			Version:     "1.0.0",
			Description: "Template extension with a project hook and basic tools.",
			Tools: []spec.ToolDefinition{
				{
					Name:        "list_entities",
					Description: "List entity names of a given type.",
					Schema: json.RawMessage(`{
					  "type":"object",
					  "properties":{"type":{"type":"string"}},
					  "required":["type"],
					  "additionalProperties":false
					}`),
				},
				{
					Name:        "tag_range",
					Description: "Tag a character range of a section with an entity.",
					Schema: json.RawMessage(`{
					  "type":"object",
					  "properties":{
					    "section_id":{"type":"string"},
					    "entity_id":{"type":"string"},
					    "from":{"type":"integer"},
					    "to":{"type":"integer"}
					  },
					  "required":["section_id","entity_id","from","to"],
					  "additionalProperties":false
					}`),
				},
			},
			Lifecycle: &spec.LifecycleConfig{OnProjectOpen: true},
		},
		Hooks: map[spec.HookEvent]spec.HookHandler{
			spec.HookProjectOpen: onProjectOpen,
		},
		Tools: map[string]spec.ToolHandler{
			"list_entities": listEntities,
			"tag_range":     tagRange,
		},
	}
}

func onProjectOpen(ctx context.Context, ec spec.ExtensionContext, args spec.HookArgs) (string, error) {
	name := "Untitled Project"
	if args.Project != nil && args.Project.Name != "" {
		name = args.Project.Name
	}
	return fmt.Sprintf("Starter Extension active for %s.", name), nil
}

func listEntities(ctx context.Context, ec spec.ExtensionContext, args spec.ToolArgs) (string, error) {
	entityType, err := args.String("type")
	if err != nil {
		return "", err
	}

	entities, err := ec.ListEntitiesByType(ctx, entityType)
	if err != nil {
		return "", err
	}
	if len(entities) == 0 {
		return fmt.Sprintf("No entities found for type '%s'.", entityType), nil
	}

	lines := make([]string, 0, len(entities))
	for _, e := range entities {
		name := e.Name
		if name == "" {
			name = "Untitled"
		}
		lines = append(lines, "- "+name)
	}
	return strings.Join(lines, "\n"), nil
}

func tagRange(ctx context.Context, ec spec.ExtensionContext, args spec.ToolArgs) (string, error) {
	sectionID, err := args.String("section_id")
	if err != nil {
		return "", err
	}
	entityID, err := args.String("entity_id")
	if err != nil {
		return "", err
	}
	from, err := args.Int("from")
	if err != nil {
		return "", err
	}
	to, err := args.Int("to")
	if err != nil {
		return "", err
	}

	tag, err := ec.AddTag(ctx, sectionID, entityID, from, to)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Tagged %s in %s as %d..%d.", entityID, sectionID, tag.From, tag.To), nil
}
