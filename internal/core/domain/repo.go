package domain

import (
	"path"
	"slices"
	"strings"
)

// RepoSpec describes one external repository the dependency fetcher can clone.
type RepoSpec struct {
	Name      string
	Link      string
	Branch    string
	Depth     int
	Unshallow bool
}

// Shallow reports whether the clone is truncated to Depth commits.
func (r RepoSpec) Shallow() bool {
	return r.Depth > 0
}

// CloneDir returns the directory name the repository is cloned into: the last
// element of the link with a trailing ".git" removed.
func (r RepoSpec) CloneDir() string {
	link := strings.TrimRight(r.Link, "/")
	// Links may be URLs, scp-style "host:owner/repo" or local paths.
	if i := strings.LastIndexAny(link, `/\:`); i >= 0 {
		link = link[i+1:]
	}
	return strings.TrimSuffix(path.Clean(link), ".git")
}

// CloneOptions are batch-wide clone settings.
type CloneOptions struct {
	// ShallowSubmodules clones nested submodules with depth 1.
	ShallowSubmodules bool
}

// Manifest is the set of repositories the dependency fetcher knows about, keyed by name.
type Manifest struct {
	repos map[string]RepoSpec
}

// NewManifest creates a Manifest from the given specs. Later specs with the
// same name replace earlier ones.
func NewManifest(specs ...RepoSpec) *Manifest {
	m := &Manifest{repos: make(map[string]RepoSpec, len(specs))}
	for _, s := range specs {
		m.repos[s.Name] = s
	}
	return m
}

// Lookup returns the spec registered under name.
func (m *Manifest) Lookup(name string) (RepoSpec, bool) {
	spec, ok := m.repos[name]
	return spec, ok
}

// Names returns all registered names in sorted order.
func (m *Manifest) Names() []string {
	names := make([]string, 0, len(m.repos))
	for name := range m.repos {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered repositories.
func (m *Manifest) Len() int {
	return len(m.repos)
}

// FetchStatus is the outcome of one requested name.
type FetchStatus string

const (
	// FetchCloned means the repository was cloned.
	FetchCloned FetchStatus = "cloned"
	// FetchNotFound means the name is not in the manifest.
	FetchNotFound FetchStatus = "not_found"
	// FetchFailed means cloning was attempted and failed.
	FetchFailed FetchStatus = "failed"
	// FetchSkipped means the batch was interrupted before this name was processed.
	FetchSkipped FetchStatus = "skipped"
)

// FetchOutcome records what happened to one requested name.
type FetchOutcome struct {
	Name   string
	Status FetchStatus
	Dir    string
	Err    error
}

// FetchReport lists outcomes in request order.
type FetchReport struct {
	Outcomes []FetchOutcome
}

// Count returns the number of outcomes with the given status.
func (r *FetchReport) Count(status FetchStatus) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// UniqueNames drops repeated names while preserving first-seen order.
func UniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
