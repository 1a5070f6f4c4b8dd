// Package exttool exposes runtime extension tools through an
// llmtools-go Registry so LLM agents can call them by slug.
package exttool

import (
	"context"
	"errors"

	"github.com/flexigpt/llmtools-go"
	llmtoolsgoSpec "github.com/flexigpt/llmtools-go/spec"

	writeext "github.com/vswrite/extensions-go"
	"github.com/vswrite/extensions-go/spec"
)

const (
	FuncIDSayHello            llmtoolsgoSpec.FuncID = "github.com/vswrite/extensions-go/exttool.SayHello"
	FuncIDCountFiles          llmtoolsgoSpec.FuncID = "github.com/vswrite/extensions-go/exttool.CountFiles"
	FuncIDListEntities        llmtoolsgoSpec.FuncID = "github.com/vswrite/extensions-go/exttool.ListEntities"
	FuncIDTagRange            llmtoolsgoSpec.FuncID = "github.com/vswrite/extensions-go/exttool.TagRange"
	FuncIDEntityGlossary      llmtoolsgoSpec.FuncID = "github.com/vswrite/extensions-go/exttool.EntityGlossary"
	FuncIDEntityRelationships llmtoolsgoSpec.FuncID = "github.com/vswrite/extensions-go/exttool.EntityRelationships"
	FuncIDEntityStats         llmtoolsgoSpec.FuncID = "github.com/vswrite/extensions-go/exttool.EntityStats"
	FuncIDAddEntityTag        llmtoolsgoSpec.FuncID = "github.com/vswrite/extensions-go/exttool.AddEntityTag"
	FuncIDRemoveEntityTag     llmtoolsgoSpec.FuncID = "github.com/vswrite/extensions-go/exttool.RemoveEntityTag"
	FuncIDTagOverview         llmtoolsgoSpec.FuncID = "github.com/vswrite/extensions-go/exttool.TagOverview"
	FuncIDSectionOutline      llmtoolsgoSpec.FuncID = "github.com/vswrite/extensions-go/exttool.SectionOutline"
)

// TextResult wraps an extension tool's formatted text output.
type TextResult struct {
	Text string `json:"text"`
}

// Register registers every extension tool into an existing llmtools-go
// Registry. Invocation is routed through the runtime, so only tools of
// active extensions succeed at call time.
func Register(r *llmtools.Registry, rt *writeext.Runtime) error {
	if r == nil {
		return errors.New("nil registry")
	}
	if rt == nil {
		return errors.New("nil runtime")
	}

	bindings := []struct {
		tool llmtoolsgoSpec.Tool
		name string
	}{
		{SayHelloTool(), "hello-extension:say_hello"},
		{CountFilesTool(), "hello-extension:count_files"},
		{ListEntitiesTool(), "starter-extension:list_entities"},
		{TagRangeTool(), "starter-extension:tag_range"},
		{EntityGlossaryTool(), "entity-glossary:entity_glossary"},
		{EntityRelationshipsTool(), "entity-glossary:entity_relationships"},
		{EntityStatsTool(), "entity-stats:entity_stats"},
		{AddEntityTagTool(), "tag-manager:add_entity_tag"},
		{RemoveEntityTagTool(), "tag-manager:remove_entity_tag"},
		{TagOverviewTool(), "tag-manager:tag_overview"},
		{SectionOutlineTool(), "section-outline:section_outline"},
	}
	for _, b := range bindings {
		if err := registerInvoke(r, rt, b.tool, b.name); err != nil {
			return err
		}
	}
	return nil
}

// registerInvoke binds one tool spec to a runtime invocation by
// qualified "<extension>:<tool>" name.
func registerInvoke(r *llmtools.Registry, rt *writeext.Runtime, tool llmtoolsgoSpec.Tool, name string) error {
	return llmtools.RegisterTypedAsTextTool[spec.ToolArgs, TextResult](
		r,
		tool,
		func(ctx context.Context, args spec.ToolArgs) (TextResult, error) {
			out, err := rt.InvokeTool(ctx, name, args)
			if err != nil {
				return TextResult{}, err
			}
			return TextResult{Text: out}, nil
		},
	)
}

func Tools() []llmtoolsgoSpec.Tool {
	return []llmtoolsgoSpec.Tool{
		SayHelloTool(),
		CountFilesTool(),
		ListEntitiesTool(),
		TagRangeTool(),
		EntityGlossaryTool(),
		EntityRelationshipsTool(),
		EntityStatsTool(),
		AddEntityTagTool(),
		RemoveEntityTagTool(),
		TagOverviewTool(),
		SectionOutlineTool(),
	}
}
