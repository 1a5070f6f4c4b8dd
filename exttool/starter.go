package exttool

import llmtoolsgoSpec "github.com/flexigpt/llmtools-go/spec"

func ListEntitiesTool() llmtoolsgoSpec.Tool {
	return llmtoolsgoSpec.Tool{
		SchemaVersion: llmtoolsgoSpec.SchemaVersion,
		ID:            "01a14c02-9be0-7412-8f33-0c27d1a0e403",
		Slug:          "ext.starter-extension.list_entities",
		Version:       "v1.0.0",
		DisplayName:   "List Entities",
		Description:   "List entity names of a given type.",
		Tags:          []string{"extensions", "entities"},
		ArgSchema: llmtoolsgoSpec.JSONSchema(`{
		  "$schema":"http://json-schema.org/draft-07/schema#",
		  "type":"object",
		  "properties":{
		    "type":{"type":"string","description":"Entity type, e.g. character or location."}
		  },
		  "required":["type"],
		  "additionalProperties":false
		}`),
		GoImpl:     llmtoolsgoSpec.GoToolImpl{FuncID: FuncIDListEntities},
		CreatedAt:  llmtoolsgoSpec.SchemaStartTime,
		ModifiedAt: llmtoolsgoSpec.SchemaStartTime,
	}
}

func TagRangeTool() llmtoolsgoSpec.Tool {
	return llmtoolsgoSpec.Tool{
		SchemaVersion: llmtoolsgoSpec.SchemaVersion,
		ID:            "01a14c02-9be0-7412-8f33-0c27d1a0e404",
		Slug:          "ext.starter-extension.tag_range",
		Version:       "v1.0.0",
		DisplayName:   "Tag Range",
		Description:   "Tag a character range of a section with an entity.",
		Tags:          []string{"extensions", "tags"},
		ArgSchema: llmtoolsgoSpec.JSONSchema(`{
		  "$schema":"http://json-schema.org/draft-07/schema#",
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
		GoImpl:     llmtoolsgoSpec.GoToolImpl{FuncID: FuncIDTagRange},
		CreatedAt:  llmtoolsgoSpec.SchemaStartTime,
		ModifiedAt: llmtoolsgoSpec.SchemaStartTime,
	}
}
