package workspacecontext

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/vswrite/extensions-go/internal/frontmatter"
	"github.com/vswrite/extensions-go/spec"
)

// tagFile and sectionFrontmatter mirror the YAML frontmatter of
// sections/*.md.
type tagFile struct {
	ID       string `yaml:"id"`
	EntityID string `yaml:"entity_id"`
	From     int64  `yaml:"from"`
	To       int64  `yaml:"to"`
}

type sectionFrontmatter struct {
	ID         string    `yaml:"id"`
	Title      string    `yaml:"title"`
	Order      int64     `yaml:"order"`
	ParentID   string    `yaml:"parent_id,omitempty"`
	EntityIDs  []string  `yaml:"entity_ids,omitempty"`
	Tags       []tagFile `yaml:"tags,omitempty"`
	CreatedAt  string    `yaml:"created_at,omitempty"`
	ModifiedAt string    `yaml:"modified_at,omitempty"`
}

func (fm sectionFrontmatter) toSection(content string) spec.Section {
	tags := make([]spec.Tag, 0, len(fm.Tags))
	for _, t := range fm.Tags {
		tags = append(tags, spec.Tag{ID: t.ID, EntityID: t.EntityID, From: t.From, To: t.To})
	}
	return spec.Section{
		ID:        fm.ID,
		Title:     fm.Title,
		Order:     fm.Order,
		Content:   content,
		ParentID:  fm.ParentID,
		EntityIDs: append([]string(nil), fm.EntityIDs...),
		Tags:      tags,
	}
}

func (w *Workspace) GetTagsBySection(ctx context.Context, sectionID string) ([]spec.Tag, error) {
	_, fm, _, err := w.findSection(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	tags := make([]spec.Tag, 0, len(fm.Tags))
	for _, t := range fm.Tags {
		tags = append(tags, spec.Tag{ID: t.ID, EntityID: t.EntityID, From: t.From, To: t.To})
	}
	return tags, nil
}

func (w *Workspace) AddTag(ctx context.Context, sectionID, entityID string, from, to int64) (spec.Tag, error) {
	if strings.TrimSpace(entityID) == "" {
		return spec.Tag{}, fmt.Errorf("%w: entity id is required", spec.ErrInvalidArgument)
	}
	if from > to {
		return spec.Tag{}, fmt.Errorf("%w: from %d greater than to %d", spec.ErrInvalidArgument, from, to)
	}

	path, fm, body, err := w.findSection(ctx, sectionID)
	if err != nil {
		return spec.Tag{}, err
	}

	tag := spec.Tag{ID: uuid.NewString(), EntityID: entityID, From: from, To: to}
	fm.Tags = append(fm.Tags, tagFile{ID: tag.ID, EntityID: tag.EntityID, From: tag.From, To: tag.To})
	fm.ModifiedAt = nowStamp()

	if err := w.writeSection(path, fm, body); err != nil {
		return spec.Tag{}, err
	}
	w.logger.Debug("tag added", "section", sectionID, "entity", entityID, "tag", tag.ID)
	return tag, nil
}

func (w *Workspace) RemoveTag(ctx context.Context, sectionID, tagID string) error {
	path, fm, body, err := w.findSection(ctx, sectionID)
	if err != nil {
		return err
	}

	kept := fm.Tags[:0]
	found := false
	for _, t := range fm.Tags {
		if t.ID == tagID {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return fmt.Errorf("%w: %s", spec.ErrTagNotFound, tagID)
	}
	fm.Tags = kept
	fm.ModifiedAt = nowStamp()

	if err := w.writeSection(path, fm, body); err != nil {
		return err
	}
	w.logger.Debug("tag removed", "section", sectionID, "tag", tagID)
	return nil
}

// listSections parses every sections/*.md document, sorted by order.
func (w *Workspace) listSections(ctx context.Context) ([]spec.Section, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := filepath.Join(w.root, sectionsDir)
	ents, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read sections directory: %w", err)
	}

	var out []spec.Section
	for _, de := range ents {
		if de.IsDir() || strings.ToLower(filepath.Ext(de.Name())) != ".md" {
			continue
		}
		fm, body, err := w.parseSectionFile(filepath.Join(dir, de.Name()))
		if err != nil {
			w.logger.Warn("skipping unreadable section file", "file", de.Name(), "err", err)
			continue
		}
		out = append(out, fm.toSection(body))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

// findSection locates the section file whose frontmatter id matches.
func (w *Workspace) findSection(ctx context.Context, sectionID string) (string, sectionFrontmatter, string, error) {
	if err := ctx.Err(); err != nil {
		return "", sectionFrontmatter{}, "", err
	}
	if strings.TrimSpace(sectionID) == "" {
		return "", sectionFrontmatter{}, "", fmt.Errorf("%w: section id is required", spec.ErrInvalidArgument)
	}

	dir := filepath.Join(w.root, sectionsDir)
	ents, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", sectionFrontmatter{}, "", fmt.Errorf("%w: %s", spec.ErrSectionNotFound, sectionID)
		}
		return "", sectionFrontmatter{}, "", fmt.Errorf("read sections directory: %w", err)
	}

	for _, de := range ents {
		if de.IsDir() || strings.ToLower(filepath.Ext(de.Name())) != ".md" {
			continue
		}
		path := filepath.Join(dir, de.Name())
		fm, body, err := w.parseSectionFile(path)
		if err != nil {
			continue
		}
		if fm.ID == sectionID {
			return path, fm, body, nil
		}
	}
	return "", sectionFrontmatter{}, "", fmt.Errorf("%w: %s", spec.ErrSectionNotFound, sectionID)
}

func (w *Workspace) parseSectionFile(path string) (sectionFrontmatter, string, error) {
	b, err := readFileLimited(path)
	if err != nil {
		return sectionFrontmatter{}, "", err
	}
	fmBlock, body, has, err := frontmatter.Split(string(b))
	if err != nil {
		return sectionFrontmatter{}, "", fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	if !has {
		return sectionFrontmatter{}, "", fmt.Errorf("section %s has no frontmatter", filepath.Base(path))
	}
	var fm sectionFrontmatter
	if err := yaml.Unmarshal([]byte(fmBlock), &fm); err != nil {
		return sectionFrontmatter{}, "", fmt.Errorf("parse %s frontmatter: %w", filepath.Base(path), err)
	}
	if strings.TrimSpace(fm.ID) == "" {
		return sectionFrontmatter{}, "", fmt.Errorf("section %s has no id", filepath.Base(path))
	}
	return fm, body, nil
}

func (w *Workspace) writeSection(path string, fm sectionFrontmatter, body string) error {
	fmBytes, err := yaml.Marshal(fm)
	if err != nil {
		return fmt.Errorf("encode frontmatter: %w", err)
	}
	doc := frontmatter.Compose(string(fmBytes), body)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write section: %w", err)
	}
	return nil
}

func nowStamp() string { return time.Now().UTC().Format(time.RFC3339) }
