package helloext

import (
	"context"
	"fmt"
	"strings"

	"github.com/vswrite/extensions-go/spec"
)

func sayHello(ctx context.Context, ec spec.ExtensionContext, args spec.ToolArgs) (string, error) {
	name := args.StringOr("name", "World")
	return fmt.Sprintf("Hello, %s! This message is from the hello-extension tool.", name), nil
}

// countFiles reports matches for a glob pattern, listing at most the
// first ten. File-access failures are reported inline rather than
// returned, so a bad pattern still produces a readable tool response.
func countFiles(ctx context.Context, ec spec.ExtensionContext, args spec.ToolArgs) (string, error) {
	pattern := args.StringOr("pattern", "*")

	files, err := ec.Glob(ctx, pattern, "")
	if err != nil {
		return fmt.Sprintf("ERROR: Failed to count files: %v", err), nil
	}

	switch len(files) {
	case 0:
		return fmt.Sprintf("No files found matching pattern: %s", pattern), nil
	case 1:
		return fmt.Sprintf("Found 1 file matching pattern: %s\n\nFile: %s", pattern, files[0]), nil
	}

	shown := files
	if len(shown) > 10 {
		shown = shown[:10]
	}
	var b strings.Builder
	for i, f := range shown {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "  - %s", f)
	}
	if len(files) > 10 {
		fmt.Fprintf(&b, "\n  ... and %d more", len(files)-10)
	}
	return fmt.Sprintf("Found %d files matching pattern: %s\n\nFiles:\n%s", len(files), pattern, b.String()), nil
}
