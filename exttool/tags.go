package exttool

import llmtoolsgoSpec "github.com/flexigpt/llmtools-go/spec"

func AddEntityTagTool() llmtoolsgoSpec.Tool {
	return llmtoolsgoSpec.Tool{
		SchemaVersion: llmtoolsgoSpec.SchemaVersion,
		ID:            "01a14c02-9be0-7412-8f33-0c27d1a0e408",
		Slug:          "ext.tag-manager.add_entity_tag",
		Version:       "v1.0.0",
		DisplayName:   "Add Entity Tag",
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
		GoImpl:     llmtoolsgoSpec.GoToolImpl{FuncID: FuncIDAddEntityTag},
		CreatedAt:  llmtoolsgoSpec.SchemaStartTime,
		ModifiedAt: llmtoolsgoSpec.SchemaStartTime,
	}
}

func RemoveEntityTagTool() llmtoolsgoSpec.Tool {
	return llmtoolsgoSpec.Tool{
		SchemaVersion: llmtoolsgoSpec.SchemaVersion,
		ID:            "01a14c02-9be0-7412-8f33-0c27d1a0e409",
		Slug:          "ext.tag-manager.remove_entity_tag",
		Version:       "v1.0.0",
		DisplayName:   "Remove Entity Tag",
		Description:   "Remove a tag from a section.",
		Tags:          []string{"extensions", "tags"},
		ArgSchema: llmtoolsgoSpec.JSONSchema(`{
		  "$schema":"http://json-schema.org/draft-07/schema#",
		  "type":"object",
		  "properties":{
		    "section_id":{"type":"string"},
		    "tag_id":{"type":"string"}
		  },
		  "required":["section_id","tag_id"],
		  "additionalProperties":false
		}`),
		GoImpl:     llmtoolsgoSpec.GoToolImpl{FuncID: FuncIDRemoveEntityTag},
		CreatedAt:  llmtoolsgoSpec.SchemaStartTime,
		ModifiedAt: llmtoolsgoSpec.SchemaStartTime,
	}
}

func TagOverviewTool() llmtoolsgoSpec.Tool {
	return llmtoolsgoSpec.Tool{
		SchemaVersion: llmtoolsgoSpec.SchemaVersion,
		ID:            "01a14c02-9be0-7412-8f33-0c27d1a0e40a",
		Slug:          "ext.tag-manager.tag_overview",
		Version:       "v1.0.0",
		DisplayName:   "Tag Overview",
		Description:   "List a section's tags with resolved entity names.",
		Tags:          []string{"extensions", "tags"},
		ArgSchema: llmtoolsgoSpec.JSONSchema(`{
		  "$schema":"http://json-schema.org/draft-07/schema#",
		  "type":"object",
		  "properties":{
		    "section_id":{"type":"string"}
		  },
		  "required":["section_id"],
		  "additionalProperties":false
		}`),
		GoImpl:     llmtoolsgoSpec.GoToolImpl{FuncID: FuncIDTagOverview},
		CreatedAt:  llmtoolsgoSpec.SchemaStartTime,
		ModifiedAt: llmtoolsgoSpec.SchemaStartTime,
	}
}
