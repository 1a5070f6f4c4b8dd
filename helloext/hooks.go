package helloext

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vswrite/extensions-go/spec"
)

func onActivate(ctx context.Context, ec spec.ExtensionContext, args spec.HookArgs) (string, error) {
	slog.Info("hello-extension activated")
	return "Hello Extension activated successfully", nil
}

func onDeactivate(ctx context.Context, ec spec.ExtensionContext, args spec.HookArgs) (string, error) {
	slog.Info("hello-extension deactivated")
	return "Hello Extension deactivated", nil
}

func onProjectOpen(ctx context.Context, ec spec.ExtensionContext, args spec.HookArgs) (string, error) {
	name := "Unknown"
	if args.Project != nil && args.Project.Name != "" {
		name = args.Project.Name
	}
	slog.Info("hello-extension: project opened", "project", name)
	return fmt.Sprintf("Noted project open: %s", name), nil
}

func onProjectClose(ctx context.Context, ec spec.ExtensionContext, args spec.HookArgs) (string, error) {
	slog.Info("hello-extension: project closed")
	return "Project close acknowledged", nil
}

func onSectionSave(ctx context.Context, ec spec.ExtensionContext, args spec.HookArgs) (string, error) {
	title := "Unknown"
	chars := 0
	if args.Section != nil {
		if args.Section.Title != "" {
			title = args.Section.Title
		}
		chars = len(args.Section.Content)
	}
	slog.Info("hello-extension: section saved", "section", title, "chars", chars)
	return fmt.Sprintf("Tracked save: %s", title), nil
}

func onSectionDelete(ctx context.Context, ec spec.ExtensionContext, args spec.HookArgs) (string, error) {
	id := args.SectionID
	if id == "" {
		id = "Unknown"
	}
	slog.Info("hello-extension: section deleted", "section", id)
	return fmt.Sprintf("Noted deletion: %s", id), nil
}

func onEntityChange(ctx context.Context, ec spec.ExtensionContext, args spec.HookArgs) (string, error) {
	name, typ := "Unknown", "unknown"
	if args.Entity != nil {
		if args.Entity.Name != "" {
			name = args.Entity.Name
		}
		if args.Entity.Type != "" {
			typ = args.Entity.Type
		}
	}
	slog.Info("hello-extension: entity changed", "entity", name, "type", typ)
	return fmt.Sprintf("Tracked entity change: %s", name), nil
}
