// Package helloext is the demonstration extension: it subscribes to every
// lifecycle hook and ships two toy tools (say_hello, count_files). Its
// main job is to show what hook and tool handlers look like.
package helloext

import (
	"encoding/json"

	writeext "github.com/vswrite/extensions-go"
	"github.com/vswrite/extensions-go/spec"
)

const ID = "hello-extension"

func New() writeext.Extension {
	return writeext.Extension{
		Manifest: spec.ExtensionManifest{
			ID:          ID,
			Name:        "Hello Extension",
			Version:     "1.0.0",
			Description: "Demonstrates lifecycle hooks and simple tools.",
			Tools: []spec.ToolDefinition{
				{
					Name:        "say_hello",
					Description: "Say hello with an optional name.",
					Schema: json.RawMessage(`{
					  "type":"object",
					  "properties":{"name":{"type":"string"}},
					  "additionalProperties":false
					}`),
				},
				{
					Name:        "count_files",
					Description: "Count workspace files matching a glob pattern.",
					Schema: json.RawMessage(`{
					  "type":"object",
					  "properties":{"pattern":{"type":"string","default":"*"}},
					  "additionalProperties":false
					}`),
				},
			},
			Lifecycle: &spec.LifecycleConfig{
				OnActivate:      true,
				OnDeactivate:    true,
				OnProjectOpen:   true,
				OnProjectClose:  true,
				OnSectionSave:   true,
				OnSectionDelete: true,
				OnEntityChange:  true,
			},
		},
		Hooks: map[spec.HookEvent]spec.HookHandler{
			spec.HookActivate:      onActivate,
			spec.HookDeactivate:    onDeactivate,
			spec.HookProjectOpen:   onProjectOpen,
			spec.HookProjectClose:  onProjectClose,
			spec.HookSectionSave:   onSectionSave,
			spec.HookSectionDelete: onSectionDelete,
			spec.HookEntityChange:  onEntityChange,
		},
		Tools: map[string]spec.ToolHandler{
			"say_hello":   sayHello,
			"count_files": countFiles,
		},
	}
}
