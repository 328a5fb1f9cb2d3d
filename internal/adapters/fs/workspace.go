// Package fs provides the filesystem workspace adapter.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
)

// Workspace implements ports.Workspace on the local filesystem.
type Workspace struct{}

// NewWorkspace creates a new Workspace.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// Entries lists the direct children of dir in lexicographic order.
func (w *Workspace) Entries(dir string) ([]ports.Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read directory"), "path", dir)
	}

	entries := make([]ports.Entry, 0, len(des))
	for _, d := range des {
		entries = append(entries, ports.Entry{
			Name:  d.Name(),
			Path:  filepath.Join(dir, d.Name()),
			IsDir: d.IsDir(),
		})
	}
	return entries, nil
}

// Remove deletes path recursively. Read-only files block removal on some
// platforms, so a failed attempt makes the tree writable and retries once.
func (w *Workspace) Remove(path string) error {
	err := os.RemoveAll(path)
	if err == nil {
		return nil
	}

	makeWritable(path)
	if retryErr := os.RemoveAll(path); retryErr != nil {
		return zerr.With(zerr.Wrap(retryErr, "failed to remove"), "path", path)
	}
	return nil
}

// Executables lists the runnable files directly inside dir in lexicographic order.
func (w *Workspace) Executables(dir string) ([]string, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read directory"), "path", dir)
	}

	var names []string
	for _, d := range des {
		if !d.Type().IsRegular() {
			continue
		}
		info, err := d.Info()
		if err != nil {
			// Entry vanished between listing and stat.
			continue
		}
		if isExecutable(d.Name(), info.Mode()) {
			names = append(names, d.Name())
		}
	}
	return names, nil
}

// Reset removes dir if it exists and creates it empty.
func (w *Workspace) Reset(dir string) error {
	if err := w.Remove(dir); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dir)
	}
	return nil
}

// makeWritable grants the owner write permission on every entry under root.
func makeWritable(root string) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			// Unreadable directory: try to open it up and keep walking.
			_ = os.Chmod(path, 0o700)
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		mode := info.Mode().Perm() | 0o200
		if d.IsDir() {
			mode |= 0o500
		}
		_ = os.Chmod(path, mode)
		return nil
	})
}
