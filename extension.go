// Package writeext provides the runtime glue for VS Write extensions:
// registering compiled-in extensions, activating and deactivating them,
// dispatching lifecycle hooks, and invoking named tools against a
// host-supplied ExtensionContext.
//
// Discovery and loading of extension packages from disk is the host's
// job; this package only works with Extension values handed to it.
package writeext

import (
	"fmt"

	"github.com/vswrite/extensions-go/spec"
)

// Extension bundles an extension's manifest with its compiled handlers.
// It is a pure data object; Runtime methods operate on these values but
// Extension itself has no behavior.
type Extension struct {
	// Manifest describes the extension: id, tools, subscribed hooks.
	Manifest spec.ExtensionManifest

	// Hooks maps lifecycle events to handlers. A hook only fires when
	// the manifest lifecycle config also subscribes to the event.
	Hooks map[spec.HookEvent]spec.HookHandler

	// Tools maps tool names (unqualified) to handlers. Every manifest
	// tool definition must have a matching handler here.
	Tools map[string]spec.ToolHandler
}

func (e Extension) validate() error {
	if err := e.Manifest.Validate(); err != nil {
		return err
	}
	for _, def := range e.Manifest.Tools {
		if e.Tools[def.Name] == nil {
			return fmt.Errorf("%w: tool %q declared but has no handler", spec.ErrInvalidArgument, def.Name)
		}
	}
	for name := range e.Tools {
		found := false
		for _, def := range e.Manifest.Tools {
			if def.Name == name {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: tool %q has a handler but no manifest definition", spec.ErrInvalidArgument, name)
		}
	}
	for event, h := range e.Hooks {
		if h == nil {
			return fmt.Errorf("%w: nil handler for hook %q", spec.ErrInvalidArgument, event)
		}
	}
	return nil
}
