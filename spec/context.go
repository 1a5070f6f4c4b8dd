package spec

import "context"

// ExtensionContext is the capability object the host injects into every
// hook and tool invocation. Implementations must be safe for concurrent
// use; handlers themselves hold no state between calls.
//
// GetEntityByID returns (nil, nil) when no entity has the given id.
// Glob's root is a workspace-relative directory; empty means the workspace
// root. Returned paths are workspace-relative and valid ReadFile inputs.
type ExtensionContext interface {
	ListEntitiesByType(ctx context.Context, entityType string) ([]Entity, error)
	GetEntityByID(ctx context.Context, entityID string) (*Entity, error)
	GetEntityRelationships(ctx context.Context, entityID string) (EntityRelationships, error)

	AddTag(ctx context.Context, sectionID, entityID string, from, to int64) (Tag, error)
	RemoveTag(ctx context.Context, sectionID, tagID string) error
	GetTagsBySection(ctx context.Context, sectionID string) ([]Tag, error)

	Glob(ctx context.Context, pattern, root string) ([]string, error)
	ReadFile(ctx context.Context, path string) (string, error)
}
