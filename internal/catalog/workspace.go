package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/renameio"
	"github.com/spf13/afero"
)

// Workspace gives access to the files below a project root. All paths are
// slash-separated and relative to the root.
type Workspace struct {
	root string
	fs   afero.Fs
	// atomic is set for workspaces backed by the OS filesystem; their
	// writes go through renameio.
	atomic bool
}

// NewWorkspace returns a workspace rooted at dir on the OS filesystem.
func NewWorkspace(dir string) (*Workspace, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	fi, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}
	return &Workspace{
		root:   root,
		fs:     afero.NewBasePathFs(afero.NewOsFs(), root),
		atomic: true,
	}, nil
}

// NewWorkspaceFs returns a workspace on an arbitrary filesystem. Writes are
// plain afero writes.
func NewWorkspaceFs(fsys afero.Fs) *Workspace {
	return &Workspace{fs: fsys}
}

func (w *Workspace) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(w.fs, filepath.FromSlash(path))
}

// WriteFile replaces the content of path, keeping its permissions. On the
// OS filesystem the file is either fully replaced or left untouched.
func (w *Workspace) WriteFile(path string, data []byte) error {
	perm := os.FileMode(0644)
	if fi, err := w.fs.Stat(filepath.FromSlash(path)); err == nil {
		perm = fi.Mode().Perm()
	}
	if w.atomic {
		return renameio.WriteFile(filepath.Join(w.root, filepath.FromSlash(path)), data, perm)
	}
	return afero.WriteFile(w.fs, filepath.FromSlash(path), data, perm)
}

// Glob returns the sorted, de-duplicated regular files matching any of
// patterns and none of exclude. Patterns use doublestar syntax
// ("src/**/*.java").
func (w *Workspace) Glob(patterns, exclude []string) ([]string, error) {
	fsys := afero.NewIOFS(w.fs)
	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			if seen[m] || excluded(m, exclude) {
				continue
			}
			seen[m] = true
			paths = append(paths, m)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func excluded(path string, exclude []string) bool {
	for _, pattern := range exclude {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}
