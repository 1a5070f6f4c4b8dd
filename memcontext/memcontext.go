// Package memcontext provides an in-memory spec.ExtensionContext for
// tests and examples. Seed it with entities, sections, and files, then
// hand it to a writeext.Runtime or directly to handlers.
package memcontext

import (
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/vswrite/extensions-go/spec"
)

type Context struct {
	mu sync.Mutex

	entities []spec.Entity
	sections map[string]*spec.Section
	files    map[string]string

	nextTag int

	// GlobFunc/ReadFileFunc override the built-in file behavior when
	// non-nil, e.g. to inject failures.
	GlobFunc     func(pattern, root string) ([]string, error)
	ReadFileFunc func(path string) (string, error)
}

var _ spec.ExtensionContext = (*Context)(nil)

func New() *Context {
	return &Context{
		sections: map[string]*spec.Section{},
		files:    map[string]string{},
	}
}

func (c *Context) AddEntity(e spec.Entity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entities = append(c.entities, e)
}

func (c *Context) AddSection(s spec.Section) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := s
	cp.Tags = append([]spec.Tag(nil), s.Tags...)
	cp.EntityIDs = append([]string(nil), s.EntityIDs...)
	c.sections[s.ID] = &cp
}

func (c *Context) AddFile(path, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[path] = content
}

func (c *Context) ListEntitiesByType(ctx context.Context, entityType string) ([]spec.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []spec.Entity
	for _, e := range c.entities {
		if strings.EqualFold(e.Type, entityType) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (c *Context) GetEntityByID(ctx context.Context, entityID string) (*spec.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entities {
		if e.ID == entityID {
			cp := e
			return &cp, nil
		}
	}
	return nil, nil
}

func (c *Context) GetEntityRelationships(ctx context.Context, entityID string) (spec.EntityRelationships, error) {
	entity, err := c.GetEntityByID(ctx, entityID)
	if err != nil {
		return spec.EntityRelationships{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var related []spec.Section
	for _, s := range c.sections {
		if sectionReferences(s, entityID) {
			related = append(related, *s)
		}
	}
	sort.Slice(related, func(i, j int) bool {
		if related[i].Order != related[j].Order {
			return related[i].Order < related[j].Order
		}
		return related[i].ID < related[j].ID
	})
	return spec.EntityRelationships{Entity: entity, Sections: related}, nil
}

func sectionReferences(s *spec.Section, entityID string) bool {
	for _, id := range s.EntityIDs {
		if id == entityID {
			return true
		}
	}
	for _, t := range s.Tags {
		if t.EntityID == entityID {
			return true
		}
	}
	return false
}

func (c *Context) AddTag(ctx context.Context, sectionID, entityID string, from, to int64) (spec.Tag, error) {
	if err := ctx.Err(); err != nil {
		return spec.Tag{}, err
	}
	if from > to {
		return spec.Tag{}, fmt.Errorf("%w: from %d greater than to %d", spec.ErrInvalidArgument, from, to)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.sections[sectionID]
	if !ok {
		return spec.Tag{}, fmt.Errorf("%w: %s", spec.ErrSectionNotFound, sectionID)
	}
	c.nextTag++
	tag := spec.Tag{
		ID:       fmt.Sprintf("tag-%04d", c.nextTag),
		EntityID: entityID,
		From:     from,
		To:       to,
	}
	s.Tags = append(s.Tags, tag)
	return tag, nil
}

func (c *Context) RemoveTag(ctx context.Context, sectionID, tagID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.sections[sectionID]
	if !ok {
		return fmt.Errorf("%w: %s", spec.ErrSectionNotFound, sectionID)
	}
	kept := s.Tags[:0]
	found := false
	for _, t := range s.Tags {
		if t.ID == tagID {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return fmt.Errorf("%w: %s", spec.ErrTagNotFound, tagID)
	}
	s.Tags = kept
	return nil
}

func (c *Context) GetTagsBySection(ctx context.Context, sectionID string) ([]spec.Tag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.sections[sectionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", spec.ErrSectionNotFound, sectionID)
	}
	return append([]spec.Tag(nil), s.Tags...), nil
}

func (c *Context) Glob(ctx context.Context, pattern, root string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	globFn := c.GlobFunc
	paths := make([]string, 0, len(c.files))
	for p := range c.files {
		paths = append(paths, p)
	}
	c.mu.Unlock()

	if globFn != nil {
		return globFn(pattern, root)
	}

	prefix := strings.Trim(root, "/")
	var out []string
	for _, p := range paths {
		candidate := p
		if prefix != "" {
			if !strings.HasPrefix(p, prefix+"/") {
				continue
			}
			candidate = strings.TrimPrefix(p, prefix+"/")
		}
		ok, err := doublestar.Match(pattern, candidate)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		if ok {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (c *Context) ReadFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.mu.Lock()
	readFn := c.ReadFileFunc
	content, ok := c.files[path]
	c.mu.Unlock()

	if readFn != nil {
		return readFn(path)
	}
	if !ok {
		return "", fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}
	return content, nil
}
