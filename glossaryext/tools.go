package glossaryext

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/vswrite/extensions-go/spec"
)

// entityGlossary groups entities by type in canonical type order, sorted
// by name within each group. Types with no entities are skipped entirely.
func entityGlossary(ctx context.Context, ec spec.ExtensionContext, args spec.ToolArgs) (string, error) {
	types := args.StringSlice("types")
	if len(types) == 0 {
		types = spec.EntityTypes()
	}
	includeAliases := args.Bool("include_aliases")

	var lines []string
	for _, entityType := range types {
		entities, err := ec.ListEntitiesByType(ctx, entityType)
		if err != nil {
			return "", err
		}
		if len(entities) == 0 {
			continue
		}

		sort.Slice(entities, func(i, j int) bool { return entities[i].Name < entities[j].Name })

		lines = append(lines, "## "+titleCase(entityType))
		for _, e := range entities {
			name := e.Name
			if name == "" {
				name = "Untitled"
			}
			line := fmt.Sprintf("- **%s**", name)
			if e.Description != "" {
				line += ": " + e.Description
			}
			if includeAliases && len(e.Aliases) > 0 {
				line += fmt.Sprintf(" (aliases: %s)", strings.Join(e.Aliases, ", "))
			}
			lines = append(lines, line)
		}
		lines = append(lines, "")
	}

	if len(lines) == 0 {
		return "No entities found for the selected types.", nil
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

func entityRelationships(ctx context.Context, ec spec.ExtensionContext, args spec.ToolArgs) (string, error) {
	entityID, err := args.String("entity_id")
	if err != nil {
		return "", err
	}

	rel, err := ec.GetEntityRelationships(ctx, entityID)
	if err != nil {
		return "", err
	}

	name, typ := "Entity", "unknown"
	if rel.Entity != nil {
		if rel.Entity.Name != "" {
			name = rel.Entity.Name
		}
		if rel.Entity.Type != "" {
			typ = rel.Entity.Type
		}
	}

	lines := []string{"# " + name, "Type: " + typ, ""}
	if len(rel.Sections) == 0 {
		lines = append(lines, "No linked sections found.")
		return strings.Join(lines, "\n"), nil
	}

	lines = append(lines, "## Sections")
	for _, s := range rel.Sections {
		title := s.Title
		if title == "" {
			title = "Untitled"
		}
		lines = append(lines, fmt.Sprintf("- %d. %s", s.Order, title))
	}
	return strings.Join(lines, "\n"), nil
}

// titleCase capitalizes the first letter of every word, so multi-word
// custom type names ("dark lord") render as headings ("Dark Lord").
func titleCase(s string) string {
	r := []rune(s)
	inWord := false
	for i, c := range r {
		if !unicode.IsLetter(c) {
			inWord = false
			continue
		}
		if inWord {
			r[i] = unicode.ToLower(c)
		} else {
			r[i] = unicode.ToUpper(c)
		}
		inWord = true
	}
	return string(r)
}
