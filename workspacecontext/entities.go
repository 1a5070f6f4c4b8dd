package workspacecontext

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vswrite/extensions-go/spec"
)

// entityFile mirrors the on-disk YAML shape of entities/*.yaml.
type entityFile struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Type        string         `yaml:"type"`
	Description string         `yaml:"description"`
	Aliases     []string       `yaml:"aliases"`
	CreatedAt   string         `yaml:"created_at,omitempty"`
	ModifiedAt  string         `yaml:"modified_at,omitempty"`
	Metadata    map[string]any `yaml:"metadata,omitempty"`
}

func (ef entityFile) toEntity() spec.Entity {
	t := strings.ToLower(strings.TrimSpace(ef.Type))
	if t == "" {
		t = spec.EntityTypeCustom
	}
	return spec.Entity{
		ID:          ef.ID,
		Name:        ef.Name,
		Type:        t,
		Description: ef.Description,
		Aliases:     append([]string(nil), ef.Aliases...),
		Metadata:    ef.Metadata,
	}
}

func (w *Workspace) ListEntitiesByType(ctx context.Context, entityType string) ([]spec.Entity, error) {
	all, err := w.listEntities(ctx)
	if err != nil {
		return nil, err
	}
	var out []spec.Entity
	for _, e := range all {
		if strings.EqualFold(e.Type, entityType) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (w *Workspace) GetEntityByID(ctx context.Context, entityID string) (*spec.Entity, error) {
	all, err := w.listEntities(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range all {
		if e.ID == entityID {
			cp := e
			return &cp, nil
		}
	}
	return nil, nil
}

func (w *Workspace) GetEntityRelationships(ctx context.Context, entityID string) (spec.EntityRelationships, error) {
	entity, err := w.GetEntityByID(ctx, entityID)
	if err != nil {
		return spec.EntityRelationships{}, err
	}

	sections, err := w.listSections(ctx)
	if err != nil {
		return spec.EntityRelationships{}, err
	}

	var related []spec.Section
	for _, s := range sections {
		if sectionReferences(s, entityID) {
			related = append(related, s)
		}
	}
	return spec.EntityRelationships{Entity: entity, Sections: related}, nil
}

func sectionReferences(s spec.Section, entityID string) bool {
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

// listEntities reads every entities/*.yaml record. Files that fail to
// parse are skipped with a warning rather than failing the whole listing,
// matching the host's tolerance for in-progress edits.
func (w *Workspace) listEntities(ctx context.Context) ([]spec.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := filepath.Join(w.root, entitiesDir)
	ents, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read entities directory: %w", err)
	}

	var out []spec.Entity
	for _, de := range ents {
		if de.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(de.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		ef, err := w.readEntityFile(filepath.Join(dir, de.Name()))
		if err != nil {
			w.logger.Warn("skipping unreadable entity file", "file", de.Name(), "err", err)
			continue
		}
		out = append(out, ef.toEntity())
	}
	return out, nil
}

func (w *Workspace) readEntityFile(path string) (entityFile, error) {
	b, err := readFileLimited(path)
	if err != nil {
		return entityFile{}, err
	}
	var ef entityFile
	if err := yaml.Unmarshal(b, &ef); err != nil {
		return entityFile{}, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	if strings.TrimSpace(ef.ID) == "" {
		return entityFile{}, fmt.Errorf("entity file %s has no id", filepath.Base(path))
	}
	return ef, nil
}
