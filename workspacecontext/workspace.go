// Package workspacecontext implements spec.ExtensionContext over a VS
// Write project workspace on disk: entities/*.yaml records and
// sections/*.md documents whose YAML frontmatter carries title, order,
// entity references, and tags.
package workspacecontext

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vswrite/extensions-go/spec"
)

const (
	entitiesDir = "entities"
	sectionsDir = "sections"

	// Per-file read cap; workspace files are hand-written text.
	maxFileBytes = 2 << 20 // 2 MiB
)

type Workspace struct {
	root   string
	logger *slog.Logger
}

var _ spec.ExtensionContext = (*Workspace)(nil)

type Option func(*Workspace) error

func WithLogger(l *slog.Logger) Option {
	return func(w *Workspace) error {
		w.logger = l
		return nil
	}
}

// New opens a workspace rooted at dir. The directory must exist; the
// entities/ and sections/ subdirectories may be absent (treated as empty).
func New(dir string, opts ...Option) (*Workspace, error) {
	root, err := canonicalRoot(dir)
	if err != nil {
		return nil, err
	}
	w := &Workspace{root: root, logger: slog.Default()}
	for _, o := range opts {
		if o == nil {
			continue
		}
		if err := o(w); err != nil {
			return nil, err
		}
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}
	return w, nil
}

// Root returns the canonical absolute workspace directory.
func (w *Workspace) Root() string { return w.root }

func canonicalRoot(p string) (string, error) {
	root := strings.TrimSpace(p)
	if root == "" {
		return "", fmt.Errorf("%w: empty workspace path", spec.ErrInvalidArgument)
	}
	if strings.ContainsRune(root, '\x00') {
		return "", fmt.Errorf("%w: path contains NUL byte", spec.ErrInvalidArgument)
	}

	abs, err := filepath.Abs(filepath.Clean(filepath.FromSlash(root)))
	if err != nil {
		return "", fmt.Errorf("%w: invalid workspace path %q: %v", spec.ErrInvalidArgument, p, err)
	}
	if resolved, rerr := filepath.EvalSymlinks(abs); rerr == nil && strings.TrimSpace(resolved) != "" {
		abs = resolved
	}

	st, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: workspace %q: %v", spec.ErrInvalidArgument, p, err)
	}
	if !st.IsDir() {
		return "", fmt.Errorf("%w: not a directory: %q", spec.ErrInvalidArgument, p)
	}
	return abs, nil
}
