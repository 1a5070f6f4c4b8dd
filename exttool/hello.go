package exttool

import llmtoolsgoSpec "github.com/flexigpt/llmtools-go/spec"

func SayHelloTool() llmtoolsgoSpec.Tool {
	return llmtoolsgoSpec.Tool{
		SchemaVersion: llmtoolsgoSpec.SchemaVersion,
		ID:            "01a14c02-9be0-7412-8f33-0c27d1a0e401",
		Slug:          "ext.hello-extension.say_hello",
		Version:       "v1.0.0",
		DisplayName:   "Say Hello",
		Description:   "Say hello with an optional name.",
		Tags:          []string{"extensions", "hello"},
		ArgSchema: llmtoolsgoSpec.JSONSchema(`{
		  "$schema":"http://json-schema.org/draft-07/schema#",
		  "type":"object",
		  "properties":{
		    "name":{"type":"string","description":"Name to greet. Defaults to 'World'."}
		  },
		  "additionalProperties":false
		}`),
		GoImpl:     llmtoolsgoSpec.GoToolImpl{FuncID: FuncIDSayHello},
		CreatedAt:  llmtoolsgoSpec.SchemaStartTime,
		ModifiedAt: llmtoolsgoSpec.SchemaStartTime,
	}
}

func CountFilesTool() llmtoolsgoSpec.Tool {
	return llmtoolsgoSpec.Tool{
		SchemaVersion: llmtoolsgoSpec.SchemaVersion,
		ID:            "01a14c02-9be0-7412-8f33-0c27d1a0e402",
		Slug:          "ext.hello-extension.count_files",
		Version:       "v1.0.0",
		DisplayName:   "Count Files",
		Description:   "Count workspace files matching a glob pattern.",
		Tags:          []string{"extensions", "hello", "fs"},
		ArgSchema: llmtoolsgoSpec.JSONSchema(`{
		  "$schema":"http://json-schema.org/draft-07/schema#",
		  "type":"object",
		  "properties":{
		    "pattern":{"type":"string","default":"*"}
		  },
		  "additionalProperties":false
		}`),
		GoImpl:     llmtoolsgoSpec.GoToolImpl{FuncID: FuncIDCountFiles},
		CreatedAt:  llmtoolsgoSpec.SchemaStartTime,
		ModifiedAt: llmtoolsgoSpec.SchemaStartTime,
	}
}
