package exttool

import llmtoolsgoSpec "github.com/flexigpt/llmtools-go/spec"

func SectionOutlineTool() llmtoolsgoSpec.Tool {
	return llmtoolsgoSpec.Tool{
		SchemaVersion: llmtoolsgoSpec.SchemaVersion,
		ID:            "01a14c02-9be0-7412-8f33-0c27d1a0e40b",
		Slug:          "ext.section-outline.section_outline",
		Version:       "v1.0.0",
		DisplayName:   "Section Outline",
		Description:   "List section titles in reading order.",
		Tags:          []string{"extensions", "sections"},
		ArgSchema: llmtoolsgoSpec.JSONSchema(`{
		  "$schema":"http://json-schema.org/draft-07/schema#",
		  "type":"object",
		  "properties":{
		    "pattern":{"type":"string","description":"Glob for section files, default sections/*.md"}
		  },
		  "additionalProperties":false
		}`),
		GoImpl:     llmtoolsgoSpec.GoToolImpl{FuncID: FuncIDSectionOutline},
		CreatedAt:  llmtoolsgoSpec.SchemaStartTime,
		ModifiedAt: llmtoolsgoSpec.SchemaStartTime,
	}
}
