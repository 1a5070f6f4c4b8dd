package exttool

import llmtoolsgoSpec "github.com/flexigpt/llmtools-go/spec"

func EntityStatsTool() llmtoolsgoSpec.Tool {
	return llmtoolsgoSpec.Tool{
		SchemaVersion: llmtoolsgoSpec.SchemaVersion,
		ID:            "01a14c02-9be0-7412-8f33-0c27d1a0e407",
		Slug:          "ext.entity-stats.entity_stats",
		Version:       "v1.0.0",
		DisplayName:   "Entity Stats",
		Description:   "Count entities of every type.",
		Tags:          []string{"extensions", "entities", "stats"},
		ArgSchema: llmtoolsgoSpec.JSONSchema(`{
		  "$schema":"http://json-schema.org/draft-07/schema#",
		  "type":"object",
		  "additionalProperties":false
		}`),
		GoImpl:     llmtoolsgoSpec.GoToolImpl{FuncID: FuncIDEntityStats},
		CreatedAt:  llmtoolsgoSpec.SchemaStartTime,
		ModifiedAt: llmtoolsgoSpec.SchemaStartTime,
	}
}
