package spec

import (
	"encoding/json"
	"fmt"
	"strings"
)

// LifecycleConfig declares which lifecycle hooks an extension subscribes
// to. The manifest uses camelCase keys; absent keys default to false.
type LifecycleConfig struct {
	OnActivate      bool `json:"onActivate,omitempty"`
	OnDeactivate    bool `json:"onDeactivate,omitempty"`
	OnProjectOpen   bool `json:"onProjectOpen,omitempty"`
	OnProjectClose  bool `json:"onProjectClose,omitempty"`
	OnSectionSave   bool `json:"onSectionSave,omitempty"`
	OnSectionDelete bool `json:"onSectionDelete,omitempty"`
	OnEntityChange  bool `json:"onEntityChange,omitempty"`
}

// Enabled reports whether the config subscribes to the given event.
func (c LifecycleConfig) Enabled(event HookEvent) bool {
	switch event {
	case HookActivate:
		return c.OnActivate
	case HookDeactivate:
		return c.OnDeactivate
	case HookProjectOpen:
		return c.OnProjectOpen
	case HookProjectClose:
		return c.OnProjectClose
	case HookSectionSave:
		return c.OnSectionSave
	case HookSectionDelete:
		return c.OnSectionDelete
	case HookEntityChange:
		return c.OnEntityChange
	default:
		return false
	}
}

// ToolDefinition describes one callable tool of an extension.
// Schema is an optional JSON schema for the tool's argument mapping.
type ToolDefinition struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Schema      json.RawMessage `json:"schema,omitempty"`
}

// ExtensionManifest is the manifest.json of an extension directory.
type ExtensionManifest struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Version     string           `json:"version"`
	Description string           `json:"description,omitempty"`
	Tools       []ToolDefinition `json:"tools,omitempty"`
	Lifecycle   *LifecycleConfig `json:"lifecycle,omitempty"`
}

// HookEnabled reports whether the manifest subscribes to the given event.
// A manifest without a lifecycle block subscribes to nothing.
func (m ExtensionManifest) HookEnabled(event HookEvent) bool {
	if m.Lifecycle == nil {
		return false
	}
	return m.Lifecycle.Enabled(event)
}

// ParseManifest decodes and validates a manifest.json payload.
func ParseManifest(data []byte) (ExtensionManifest, error) {
	var m ExtensionManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return ExtensionManifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return ExtensionManifest{}, err
	}
	return m, nil
}

// Validate checks the structural manifest rules.
func (m ExtensionManifest) Validate() error {
	if err := ValidateExtensionID(m.ID); err != nil {
		return err
	}
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: manifest name is required", ErrInvalidArgument)
	}
	if strings.TrimSpace(m.Version) == "" {
		return fmt.Errorf("%w: manifest version is required", ErrInvalidArgument)
	}
	seen := map[string]struct{}{}
	for _, t := range m.Tools {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			return fmt.Errorf("%w: tool name is required", ErrInvalidArgument)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: duplicate tool name %q", ErrInvalidArgument, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// ValidateExtensionID enforces the host rules for extension ids: 1..64
// characters, alphanumeric/hyphen/underscore only. The character rules
// also rule out path traversal, since ids name directories on disk.
func ValidateExtensionID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: extension id is required", ErrInvalidArgument)
	}
	if len(id) > 64 {
		return fmt.Errorf("%w: extension id longer than 64 characters", ErrInvalidArgument)
	}
	for _, r := range id {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			continue
		}
		return fmt.Errorf("%w: extension id contains invalid character %q", ErrInvalidArgument, string(r))
	}
	return nil
}
