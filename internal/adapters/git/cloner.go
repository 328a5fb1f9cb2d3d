// Package git provides the repository cloner adapter backed by the git client.
package git

import (
	"context"
	"errors"
	"strconv"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
)

// Cloner implements ports.Cloner by running git through a ports.Executor.
type Cloner struct {
	executor ports.Executor
	git      string
}

// Option configures a Cloner.
type Option func(*Cloner)

// WithGitPath sets a custom git executable path.
func WithGitPath(path string) Option {
	return func(c *Cloner) {
		c.git = path
	}
}

// NewCloner creates a new Cloner.
func NewCloner(executor ports.Executor, opts ...Option) *Cloner {
	c := &Cloner{executor: executor, git: domain.GitTool}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clone clones spec into dest with submodules, then fetches the full history
// when spec.Unshallow is set and the clone was shallow.
func (c *Cloner) Clone(ctx context.Context, spec domain.RepoSpec, dest string, opts domain.CloneOptions) error {
	if err := c.executor.Run(ctx, c.CloneCommand(spec, dest, opts)); err != nil {
		return errors.Join(domain.ErrCloneFailed, zerr.With(zerr.Wrap(err, "git clone failed"), "repo", spec.Name))
	}

	if !spec.Unshallow || !spec.Shallow() {
		return nil
	}

	if err := c.executor.Run(ctx, c.UnshallowCommand(dest)); err != nil {
		return errors.Join(domain.ErrUnshallowFailed, zerr.With(zerr.Wrap(err, "git fetch failed"), "repo", spec.Name))
	}
	return nil
}

// CloneCommand returns the git clone invocation for spec.
func (c *Cloner) CloneCommand(spec domain.RepoSpec, dest string, opts domain.CloneOptions) domain.Command {
	args := []string{"clone", "--recurse-submodules"}
	if spec.Branch != "" {
		args = append(args, "--branch", spec.Branch)
	}
	if spec.Shallow() {
		args = append(args, "--depth", strconv.Itoa(spec.Depth))
	}
	if opts.ShallowSubmodules {
		args = append(args, "--shallow-submodules")
	}
	args = append(args, spec.Link, dest)

	return domain.NewCommand("", c.git, args...)
}

// UnshallowCommand returns the invocation converting the clone in dir to full history.
func (c *Cloner) UnshallowCommand(dir string) domain.Command {
	return domain.NewCommand(dir, c.git, "fetch", "--unshallow")
}
