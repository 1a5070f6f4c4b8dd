package spec

import "context"

// HookEvent names a host lifecycle event, using the host's on-disk
// manifest spelling.
type HookEvent string

const (
	HookActivate      HookEvent = "on_activate"
	HookDeactivate    HookEvent = "on_deactivate"
	HookProjectOpen   HookEvent = "on_project_open"
	HookProjectClose  HookEvent = "on_project_close"
	HookSectionSave   HookEvent = "on_section_save"
	HookSectionDelete HookEvent = "on_section_delete"
	HookEntityChange  HookEvent = "on_entity_change"
)

// HookEvents returns all lifecycle events in firing-documentation order.
func HookEvents() []HookEvent {
	return []HookEvent{
		HookActivate,
		HookDeactivate,
		HookProjectOpen,
		HookProjectClose,
		HookSectionSave,
		HookSectionDelete,
		HookEntityChange,
	}
}

// HookArgs carries the event payload. Which field is set depends on the
// event: Project for project open, Section for section save, Entity for
// entity change, SectionID for section delete. Activate/deactivate/close
// events carry nothing.
type HookArgs struct {
	Project   *Project
	Section   *Section
	Entity    *Entity
	SectionID string
}

// HookHandler reacts to a lifecycle event and returns an informational
// status string. Hook handlers have no side effects beyond logging.
type HookHandler func(ctx context.Context, ec ExtensionContext, args HookArgs) (string, error)

// ToolHandler implements a named extension tool: a pure transformation of
// validated arguments plus context-provided data into formatted text.
// Missing or invalid required arguments return an error wrapping
// ErrInvalidArgument.
type ToolHandler func(ctx context.Context, ec ExtensionContext, args ToolArgs) (string, error)

// HookResult is the per-extension outcome of one hook dispatch.
type HookResult struct {
	Extension string
	Event     HookEvent
	Output    string
	Err       error
}
