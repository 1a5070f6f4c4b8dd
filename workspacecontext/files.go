package workspacecontext

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/vswrite/extensions-go/internal/pathutil"
)

// Glob matches files under the workspace. root is a workspace-relative
// directory ("" or "." for the workspace itself); returned paths are
// workspace-relative with forward slashes, sorted, and valid ReadFile
// inputs.
func (w *Workspace) Glob(ctx context.Context, pattern, root string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(pattern) == "" {
		return nil, errors.New("glob pattern is required")
	}

	dir, err := pathutil.JoinDirUnderRoot(w.root, root)
	if err != nil {
		return nil, err
	}

	matches, err := doublestar.Glob(os.DirFS(dir), filepath.ToSlash(pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}

	prefix := strings.Trim(filepath.ToSlash(strings.TrimSpace(root)), "/")
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if prefix != "" && prefix != "." {
			m = path.Join(prefix, m)
		}
		out = append(out, m)
	}
	sort.Strings(out)
	return out, nil
}

// ReadFile returns the text of a workspace-relative file. Paths that
// escape the workspace, symlinks, and files over the size cap are
// rejected.
func (w *Workspace) ReadFile(ctx context.Context, p string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	abs, err := pathutil.JoinUnderRoot(w.root, p)
	if err != nil {
		return "", err
	}

	b, err := readFileLimited(abs)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func readFileLimited(path string) ([]byte, error) {
	if lst, lerr := os.Lstat(path); lerr == nil {
		if lst.Mode()&os.ModeSymlink != 0 {
			return nil, fmt.Errorf("%s must not be a symlink", filepath.Base(path))
		}
		if !lst.Mode().IsRegular() {
			return nil, fmt.Errorf("%s must be a regular file", filepath.Base(path))
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, int64(maxFileBytes)+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) > maxFileBytes {
		return nil, fmt.Errorf("%s too large (max %d bytes)", filepath.Base(path), maxFileBytes)
	}
	return data, nil
}
