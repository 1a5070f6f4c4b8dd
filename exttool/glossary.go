package exttool

import llmtoolsgoSpec "github.com/flexigpt/llmtools-go/spec"

func EntityGlossaryTool() llmtoolsgoSpec.Tool {
	return llmtoolsgoSpec.Tool{
		SchemaVersion: llmtoolsgoSpec.SchemaVersion,
		ID:            "01a14c02-9be0-7412-8f33-0c27d1a0e405",
		Slug:          "ext.entity-glossary.entity_glossary",
		Version:       "v1.0.0",
		DisplayName:   "Entity Glossary",
		Description:   "Render a grouped, alphabetized glossary of entities.",
		Tags:          []string{"extensions", "entities", "glossary"},
		ArgSchema: llmtoolsgoSpec.JSONSchema(`{
		  "$schema":"http://json-schema.org/draft-07/schema#",
		  "type":"object",
		  "properties":{
		    "types":{"type":"array","items":{"type":"string"},"description":"Entity types to include. Defaults to all types."}
		  },
		  "additionalProperties":false
		}`),
		GoImpl:     llmtoolsgoSpec.GoToolImpl{FuncID: FuncIDEntityGlossary},
		CreatedAt:  llmtoolsgoSpec.SchemaStartTime,
		ModifiedAt: llmtoolsgoSpec.SchemaStartTime,
	}
}

func EntityRelationshipsTool() llmtoolsgoSpec.Tool {
	return llmtoolsgoSpec.Tool{
		SchemaVersion: llmtoolsgoSpec.SchemaVersion,
		ID:            "01a14c02-9be0-7412-8f33-0c27d1a0e406",
		Slug:          "ext.entity-glossary.entity_relationships",
		Version:       "v1.0.0",
		DisplayName:   "Entity Relationships",
		Description:   "Show the sections linked to an entity.",
		Tags:          []string{"extensions", "entities"},
		ArgSchema: llmtoolsgoSpec.JSONSchema(`{
		  "$schema":"http://json-schema.org/draft-07/schema#",
		  "type":"object",
		  "properties":{
		    "entity_id":{"type":"string"}
		  },
		  "required":["entity_id"],
		  "additionalProperties":false
		}`),
		GoImpl:     llmtoolsgoSpec.GoToolImpl{FuncID: FuncIDEntityRelationships},
		CreatedAt:  llmtoolsgoSpec.SchemaStartTime,
		ModifiedAt: llmtoolsgoSpec.SchemaStartTime,
	}
}
