// Package statsext counts entities per type.
package statsext

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	writeext "github.com/vswrite/extensions-go"
	"github.com/vswrite/extensions-go/spec"
)

const ID = "entity-stats"

func New() writeext.Extension {
	return writeext.Extension{
		Manifest: spec.ExtensionManifest{
			ID:          ID,
			Name:        "Entity Stats",
			Version:     "1.0.0",
			Description: "Aggregate entity counts per type.",
			Tools: []spec.ToolDefinition{
				{
					Name:        "entity_stats",
					Description: "Count entities of every type.",
					Schema:      json.RawMessage(`{"type":"object","additionalProperties":false}`),
				},
			},
		},
		Tools: map[string]spec.ToolHandler{
			"entity_stats": entityStats,
		},
	}
}

func entityStats(ctx context.Context, ec spec.ExtensionContext, args spec.ToolArgs) (string, error) {
	total := 0
	var lines []string
	for _, entityType := range spec.EntityTypes() {
		entities, err := ec.ListEntitiesByType(ctx, entityType)
		if err != nil {
			return "", err
		}
		lines = append(lines, fmt.Sprintf("- %s: %d", entityType, len(entities)))
		total += len(entities)
	}
	lines = append(lines, fmt.Sprintf("\nTotal: %d", total))
	return strings.Join(lines, "\n"), nil
}
