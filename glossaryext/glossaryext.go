// Package glossaryext renders entity glossaries: a grouped, sorted
// markdown listing of the project's entities, and a per-entity view of
// the sections that reference it.
package glossaryext

import (
	"encoding/json"

	writeext "github.com/vswrite/extensions-go"
	"github.com/vswrite/extensions-go/spec"
)

const ID = "entity-glossary"

func New() writeext.Extension {
	return writeext.Extension{
		Manifest: spec.ExtensionManifest{
			ID:          ID,
			Name:        "Entity Glossary",
			Version:     "1.0.0",
			Description: "Render grouped glossaries and entity relationship views.",
			Tools: []spec.ToolDefinition{
				{
					Name:        "entity_glossary",
					Description: "Render a grouped, alphabetized glossary of entities.",
					Schema: json.RawMessage(`{
					  "type":"object",
					  "properties":{
					    "types":{"type":"array","items":{"type":"string"}},
					    "include_aliases":{"type":"boolean","default":false}
					  },
					  "additionalProperties":false
					}`),
				},
				{
					Name:        "entity_relationships",
					Description: "Show the sections linked to an entity.",
					Schema: json.RawMessage(`{
					  "type":"object",
					  "properties":{"entity_id":{"type":"string"}},
					  "required":["entity_id"],
					  "additionalProperties":false
					}`),
				},
			},
		},
		Tools: map[string]spec.ToolHandler{
			"entity_glossary":      entityGlossary,
			"entity_relationships": entityRelationships,
		},
	}
}
