// Package outlineext renders a project outline from section files.
package outlineext

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	writeext "github.com/vswrite/extensions-go"
	"github.com/vswrite/extensions-go/internal/frontmatter"
	"github.com/vswrite/extensions-go/spec"
)

const ID = "section-outline"

const defaultPattern = "sections/*.md"

func New() writeext.Extension {
	return writeext.Extension{
		Manifest: spec.ExtensionManifest{
			ID:          ID,
			Name:        "Section Outline",
			Version:     "1.0.0",
			Description: "Build an ordered outline from section markdown files.",
			Tools: []spec.ToolDefinition{
				{
					Name:        "section_outline",
					Description: "List section titles in reading order.",
					Schema: json.RawMessage(`{
					  "type":"object",
					  "properties":{
					    "pattern":{"type":"string","description":"Glob for section files, default sections/*.md"}
					  },
					  "additionalProperties":false
					}`),
				},
			},
		},
		Tools: map[string]spec.ToolHandler{
			"section_outline": sectionOutline,
		},
	}
}

type outlineEntry struct {
	order int64
	title string
}

func sectionOutline(ctx context.Context, ec spec.ExtensionContext, args spec.ToolArgs) (string, error) {
	pattern := args.StringOr("pattern", defaultPattern)

	files, err := ec.Glob(ctx, pattern, "")
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "No section files found.", nil
	}

	entries := make([]outlineEntry, 0, len(files))
	for _, file := range files {
		content, err := ec.ReadFile(ctx, file)
		if err != nil {
			return "", fmt.Errorf("read section %q: %w", file, err)
		}
		entries = append(entries, parseEntry(file, content))
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].order < entries[j].order })

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%d. %s", e.order, e.title))
	}
	return strings.Join(lines, "\n"), nil
}

// parseEntry extracts title and order from a section file. Missing or
// unparseable frontmatter falls back to the file path as title and, for
// the order, a numeric filename prefix before the first "-", else 0.
func parseEntry(file, content string) outlineEntry {
	entry := outlineEntry{title: file, order: filenameOrder(file)}

	meta, _, has, err := frontmatter.Split(content)
	if err != nil || !has {
		return entry
	}
	var fm struct {
		Title string `yaml:"title"`
		Order *int64 `yaml:"order"`
	}
	if err := yaml.Unmarshal([]byte(meta), &fm); err != nil {
		return entry
	}
	if fm.Title != "" {
		entry.title = fm.Title
	}
	if fm.Order != nil {
		entry.order = *fm.Order
	}
	return entry
}

func filenameOrder(file string) int64 {
	base := path.Base(file)
	prefix, _, ok := strings.Cut(base, "-")
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(prefix, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
