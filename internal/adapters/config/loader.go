// Package config provides the dependency manifest loader.
package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileManifestLoader implements ports.ManifestLoader for JSON and YAML files.
type FileManifestLoader struct{}

// NewLoader creates a new FileManifestLoader.
func NewLoader() *FileManifestLoader {
	return &FileManifestLoader{}
}

// Load reads the manifest at path, relative to cwd. An empty path selects the
// first existing default manifest in cwd.
func (l *FileManifestLoader) Load(cwd, path string) (*domain.Manifest, error) {
	if path == "" {
		found, err := discover(cwd)
		if err != nil {
			return nil, err
		}
		path = found
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Join(domain.ErrManifestNotFound, zerr.With(zerr.Wrap(err, "manifest missing"), "path", path))
		}
		return nil, errors.Join(domain.ErrManifestReadFailed, zerr.With(zerr.Wrap(err, "read failed"), "path", path))
	}

	return Parse(path, data)
}

// Parse decodes manifest data. The decoder is picked by the extension of
// path: ".json" is read as JSON, anything else as YAML.
func Parse(path string, data []byte) (*domain.Manifest, error) {
	manifest, err := decode(path, data)
	if err != nil {
		return nil, errors.Join(domain.ErrManifestParseFailed, zerr.With(zerr.Wrap(err, "decode failed"), "path", path))
	}

	names := make([]string, 0, len(manifest))
	for name := range manifest {
		names = append(names, name)
	}
	slices.Sort(names)

	specs := make([]domain.RepoSpec, 0, len(names))
	for _, name := range names {
		spec, err := toSpec(name, manifest[name])
		if err != nil {
			return nil, errors.Join(domain.ErrInvalidRepoSpec, zerr.With(err, "path", path))
		}
		specs = append(specs, spec)
	}

	return domain.NewManifest(specs...), nil
}

// decode reads JSON with encoding/json: yaml.v3 rejects valid JSON such as
// "\/" escapes and repeated keys, where the last entry must win.
func decode(path string, data []byte) (Manifest, error) {
	var manifest Manifest
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err := json.Unmarshal(data, &manifest)
		return manifest, err
	}
	err := yaml.Unmarshal(data, &manifest)
	return manifest, err
}

func toSpec(name string, dto *RepoDTO) (domain.RepoSpec, error) {
	if dto == nil {
		return domain.RepoSpec{}, zerr.With(zerr.New("entry is empty"), "repo", name)
	}
	if dto.Link == "" {
		return domain.RepoSpec{}, zerr.With(zerr.New("link is required"), "repo", name)
	}
	if dto.Depth < 0 {
		return domain.RepoSpec{}, zerr.With(zerr.With(zerr.New("depth must not be negative"), "repo", name), "depth", dto.Depth)
	}

	spec := domain.RepoSpec{
		Name:      name,
		Link:      dto.Link,
		Branch:    dto.Branch,
		Depth:     dto.Depth,
		Unshallow: dto.Unshallow,
	}

	// The clone must get its own directory under the destination.
	if dir := spec.CloneDir(); dir == "" || dir == "." || dir == ".." {
		return domain.RepoSpec{}, zerr.With(zerr.With(zerr.New("link has no repository name"), "repo", name), "link", dto.Link)
	}
	return spec, nil
}

func discover(cwd string) (string, error) {
	for _, name := range domain.ManifestCandidates() {
		candidate := filepath.Join(cwd, name)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", errors.Join(domain.ErrManifestNotFound, zerr.With(zerr.New("no manifest in directory"), "dir", cwd))
}
