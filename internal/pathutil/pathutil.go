package pathutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// JoinUnderRoot joins root + rel and ensures rel does not escape root.
// Root should be absolute/canonical-ish.
func JoinUnderRoot(root, rel string) (string, error) {
	root = strings.TrimSpace(root)
	rel = strings.TrimSpace(rel)
	if root == "" {
		return "", errors.New("invalid root")
	}
	if rel == "" {
		return "", errors.New("invalid path")
	}
	if strings.ContainsRune(rel, '\x00') {
		return "", errors.New("path contains NUL byte")
	}
	if filepath.IsAbs(rel) {
		return "", errors.New("path must be relative")
	}

	cleanRel := filepath.Clean(filepath.FromSlash(rel))
	if cleanRel == "." {
		return "", errors.New("path must not be '.'")
	}
	joined := filepath.Join(root, cleanRel)

	abs, err := filepath.Abs(joined)
	if err != nil {
		return "", err
	}
	ok, err := withinRoot(root, abs)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("path escapes root: %q", rel)
	}
	return abs, nil
}

// JoinDirUnderRoot is JoinUnderRoot that also accepts "" or "." as "the
// root itself", for workspace-relative directory arguments.
func JoinDirUnderRoot(root, rel string) (string, error) {
	rel = strings.TrimSpace(rel)
	if rel == "" || rel == "." {
		return root, nil
	}
	return JoinUnderRoot(root, rel)
}

func withinRoot(root, p string) (bool, error) {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return false, err
	}
	rel = filepath.Clean(rel)
	if rel == "." {
		return true, nil
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return false, nil
	}
	return true, nil
}
