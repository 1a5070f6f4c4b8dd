// Package tagext manages entity tags on sections: adding, removing, and
// summarizing them.
package tagext

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	writeext "github.com/vswrite/extensions-go"
	"github.com/vswrite/extensions-go/spec"
)

const ID = "tag-manager"

func New() writeext.Extension {
	return writeext.Extension{
		Manifest: spec.ExtensionManifest{
			ID:          ID,
			Name:        "Tag Manager",
			Version:     "1.0.0",
			Description: "Add, remove, and summarize entity tags on sections.",
			Tools: []spec.ToolDefinition{
				{
					Name:        "add_entity_tag",
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
				{
					Name:        "remove_entity_tag",
					Description: "Remove a tag from a section.",
					Schema: json.RawMessage(`{
					  "type":"object",
					  "properties":{
					    "section_id":{"type":"string"},
					    "tag_id":{"type":"string"}
					  },
					  "required":["section_id","tag_id"],
					  "additionalProperties":false
					}`),
				},
				{
					Name:        "tag_overview",
					Description: "List a section's tags with resolved entity names.",
					Schema: json.RawMessage(`{
					  "type":"object",
					  "properties":{"section_id":{"type":"string"}},
					  "required":["section_id"],
					  "additionalProperties":false
					}`),
				},
			},
		},
		Tools: map[string]spec.ToolHandler{
			"add_entity_tag":    addEntityTag,
			"remove_entity_tag": removeEntityTag,
			"tag_overview":      tagOverview,
		},
	}
}

func addEntityTag(ctx context.Context, ec spec.ExtensionContext, args spec.ToolArgs) (string, error) {
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
	return fmt.Sprintf("Tag %s added for entity %s in section %s.", tag.ID, entityID, sectionID), nil
}

func removeEntityTag(ctx context.Context, ec spec.ExtensionContext, args spec.ToolArgs) (string, error) {
	sectionID, err := args.String("section_id")
	if err != nil {
		return "", err
	}
	tagID, err := args.String("tag_id")
	if err != nil {
		return "", err
	}

	if err := ec.RemoveTag(ctx, sectionID, tagID); err != nil {
		return "", err
	}
	return fmt.Sprintf("Tag %s removed from section %s.", tagID, sectionID), nil
}

// tagOverview lists a section's tags, resolving entity names where the
// entity still exists and falling back to the raw entity id otherwise.
func tagOverview(ctx context.Context, ec spec.ExtensionContext, args spec.ToolArgs) (string, error) {
	sectionID, err := args.String("section_id")
	if err != nil {
		return "", err
	}

	tags, err := ec.GetTagsBySection(ctx, sectionID)
	if err != nil {
		return "", err
	}
	if len(tags) == 0 {
		return "No tags found for this section.", nil
	}

	lines := make([]string, 0, len(tags))
	for _, tag := range tags {
		name := tag.EntityID
		entity, err := ec.GetEntityByID(ctx, tag.EntityID)
		if err != nil {
			return "", err
		}
		if entity != nil && entity.Name != "" {
			name = entity.Name
		}
		lines = append(lines, fmt.Sprintf("- %s: %d..%d (tag %s)", name, tag.From, tag.To, tag.ID))
	}
	return strings.Join(lines, "\n"), nil
}
