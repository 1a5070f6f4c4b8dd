package writeext

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/vswrite/extensions-go/internal/promptxml"
	"github.com/vswrite/extensions-go/spec"
)

// Runtime dispatches hook and tool invocations to registered extensions.
// All state lives in the Runtime; handlers themselves are stateless.
type Runtime struct {
	mu     sync.RWMutex
	logger *slog.Logger

	host spec.ExtensionContext

	// Registry (extension id -> extension).
	exts   map[string]Extension
	active map[string]struct{}

	maxActive int
}

// New creates a Runtime bound to the given host context.
func New(host spec.ExtensionContext, opts ...Option) (*Runtime, error) {
	if host == nil {
		return nil, fmt.Errorf("%w: nil host context", spec.ErrInvalidArgument)
	}
	rt := &Runtime{
		logger:    slog.Default(),
		host:      host,
		exts:      map[string]Extension{},
		active:    map[string]struct{}{},
		maxActive: 32,
	}
	for _, o := range opts {
		if o == nil {
			continue
		}
		if err := o(rt); err != nil {
			return nil, err
		}
	}
	if rt.logger == nil {
		rt.logger = slog.Default()
	}
	return rt, nil
}

// Host returns the ExtensionContext the runtime injects into handlers.
func (r *Runtime) Host() spec.ExtensionContext { return r.host }

// Register adds an extension to the registry. The extension starts
// inactive; call Activate to enable its tools and hooks.
func (r *Runtime) Register(ext Extension) error {
	if err := ext.validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := ext.Manifest.ID
	if _, ok := r.exts[id]; ok {
		return fmt.Errorf("%w: %s", spec.ErrExtensionExists, id)
	}
	r.exts[id] = ext
	r.logger.Debug("extension registered", "extension", id, "tools", len(ext.Tools))
	return nil
}

// Remove deletes an extension from the registry, deactivating it first
// without firing on_deactivate.
func (r *Runtime) Remove(id string) (Extension, error) {
	id = strings.TrimSpace(id)

	r.mu.Lock()
	defer r.mu.Unlock()

	ext, ok := r.exts[id]
	if !ok {
		return Extension{}, fmt.Errorf("%w: %s", spec.ErrExtensionNotFound, id)
	}
	delete(r.exts, id)
	delete(r.active, id)
	return ext, nil
}

// List returns the manifests of all registered extensions, sorted by id.
func (r *Runtime) List() []spec.ExtensionManifest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]spec.ExtensionManifest, 0, len(r.exts))
	for _, ext := range r.exts {
		out = append(out, ext.Manifest)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Active returns the ids of active extensions, sorted.
func (r *Runtime) Active() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.active))
	for id := range r.active {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Activate marks an extension active and fires its on_activate hook.
// Activating an already-active extension is a no-op. The returned string
// is the hook output ("" when the extension has no on_activate hook).
func (r *Runtime) Activate(ctx context.Context, id string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.Lock()
	ext, ok := r.exts[id]
	if !ok {
		r.mu.Unlock()
		return "", fmt.Errorf("%w: %s", spec.ErrExtensionNotFound, id)
	}
	if _, already := r.active[id]; already {
		r.mu.Unlock()
		return "", nil
	}
	if r.maxActive > 0 && len(r.active)+1 > r.maxActive {
		r.mu.Unlock()
		return "", fmt.Errorf("too many active extensions (%d > %d)", len(r.active)+1, r.maxActive)
	}
	r.active[id] = struct{}{}
	r.mu.Unlock()

	r.logger.Info("extension activated", "extension", id)
	return r.fireLifecycle(ctx, ext, spec.HookActivate)
}

// Deactivate marks an extension inactive and fires its on_deactivate
// hook. Deactivating an inactive extension is a no-op.
func (r *Runtime) Deactivate(ctx context.Context, id string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.Lock()
	ext, ok := r.exts[id]
	if !ok {
		r.mu.Unlock()
		return "", fmt.Errorf("%w: %s", spec.ErrExtensionNotFound, id)
	}
	if _, isActive := r.active[id]; !isActive {
		r.mu.Unlock()
		return "", nil
	}
	delete(r.active, id)
	r.mu.Unlock()

	r.logger.Info("extension deactivated", "extension", id)
	return r.fireLifecycle(ctx, ext, spec.HookDeactivate)
}

func (r *Runtime) fireLifecycle(ctx context.Context, ext Extension, event spec.HookEvent) (string, error) {
	h := ext.Hooks[event]
	if h == nil || !ext.Manifest.HookEnabled(event) {
		return "", nil
	}
	out, err := h(ctx, r.host, spec.HookArgs{})
	if err != nil {
		r.logger.Error("lifecycle hook failed", "extension", ext.Manifest.ID, "event", string(event), "err", err)
		return "", err
	}
	return out, nil
}

// InvokeTool runs the tool named "<ext-id>:<tool>" with the given
// argument mapping and returns the formatted text.
func (r *Runtime) InvokeTool(ctx context.Context, name string, args spec.ToolArgs) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	extID, toolName, ok := strings.Cut(name, ":")
	if !ok || strings.TrimSpace(extID) == "" || strings.TrimSpace(toolName) == "" {
		return "", fmt.Errorf("%w: tool name must be \"<extension>:<tool>\", got %q", spec.ErrInvalidArgument, name)
	}

	r.mu.RLock()
	ext, regOK := r.exts[extID]
	_, isActive := r.active[extID]
	r.mu.RUnlock()

	if !regOK {
		return "", fmt.Errorf("%w: %s", spec.ErrExtensionNotFound, extID)
	}
	if !isActive {
		return "", fmt.Errorf("%w: %s", spec.ErrExtensionInactive, extID)
	}
	h := ext.Tools[toolName]
	if h == nil {
		return "", fmt.Errorf("%w: %s", spec.ErrToolNotFound, name)
	}

	if args == nil {
		args = spec.ToolArgs{}
	}
	out, err := h(ctx, r.host, args)
	if err != nil {
		r.logger.Debug("tool failed", "tool", name, "err", err)
		return "", err
	}
	return out, nil
}

// FireHook dispatches a lifecycle event to every active extension that
// subscribes to it, in id order. A failing handler is reported in its
// HookResult and never aborts the remaining extensions.
func (r *Runtime) FireHook(ctx context.Context, event spec.HookEvent, args spec.HookArgs) []spec.HookResult {
	r.mu.RLock()
	ids := make([]string, 0, len(r.active))
	for id := range r.active {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	exts := make([]Extension, 0, len(ids))
	for _, id := range ids {
		exts = append(exts, r.exts[id])
	}
	r.mu.RUnlock()

	var results []spec.HookResult
	for _, ext := range exts {
		h := ext.Hooks[event]
		if h == nil || !ext.Manifest.HookEnabled(event) {
			continue
		}
		res := spec.HookResult{Extension: ext.Manifest.ID, Event: event}
		if err := ctx.Err(); err != nil {
			res.Err = err
			results = append(results, res)
			continue
		}
		res.Output, res.Err = h(ctx, r.host, args)
		if res.Err != nil {
			r.logger.Error("hook failed", "extension", res.Extension, "event", string(event), "err", res.Err)
		}
		results = append(results, res)
	}
	return results
}

// AvailableToolsPromptXML builds <available_tools> XML for system
// prompts, covering the tools of active extensions.
func (r *Runtime) AvailableToolsPromptXML(includeSchema bool) (string, error) {
	r.mu.RLock()
	manifests := make([]spec.ExtensionManifest, 0, len(r.active))
	for id := range r.active {
		manifests = append(manifests, r.exts[id].Manifest)
	}
	r.mu.RUnlock()

	return promptxml.AvailableToolsXML(manifests, includeSchema)
}
