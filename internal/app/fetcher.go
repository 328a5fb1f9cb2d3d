package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// FetchOptions configures a dependency fetch.
type FetchOptions struct {
	// Dir is the directory relative paths are resolved against.
	Dir string
	// ManifestPath selects the manifest. Empty searches Dir for the default names.
	ManifestPath string
	// DestDir receives the clones. It is emptied before cloning. Defaults to domain.DefaultDepsDir.
	DestDir string
	// ShallowSubmodules clones nested submodules with depth 1.
	ShallowSubmodules bool
	// Jobs bounds concurrent clones. Values below 1 mean sequential.
	Jobs int
}

// Fetcher clones the repositories named on the command line.
type Fetcher struct {
	locator   ports.ToolLocator
	loader    ports.ManifestLoader
	workspace ports.Workspace
	cloner    ports.Cloner
	tracer    ports.Tracer
	logger    ports.Logger
}

// NewFetcher creates a new Fetcher.
func NewFetcher(
	locator ports.ToolLocator,
	loader ports.ManifestLoader,
	workspace ports.Workspace,
	cloner ports.Cloner,
	tracer ports.Tracer,
	logger ports.Logger,
) *Fetcher {
	return &Fetcher{
		locator:   locator,
		loader:    loader,
		workspace: workspace,
		cloner:    cloner,
		tracer:    tracer,
		logger:    logger,
	}
}

// Fetch loads the manifest, resets the destination and clones every known
// name once. Unknown names are reported and skipped. A failed clone does not
// stop the batch; it is recorded in the report and surfaces as
// domain.ErrFetchFailed once all clones have finished.
func (f *Fetcher) Fetch(ctx context.Context, names []string, opts FetchOptions) (*domain.FetchReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(domain.ErrInterrupted, err)
	}

	if _, err := f.locator.LookPath(domain.GitTool); err != nil {
		return nil, err
	}

	// The manifest is validated before anything on disk is touched.
	manifest, err := f.loader.Load(opts.Dir, opts.ManifestPath)
	if err != nil {
		return nil, err
	}

	dest := resolveDest(opts)
	if err := f.workspace.Reset(dest); err != nil {
		return nil, errors.Join(domain.ErrDestResetFailed, err)
	}

	names = domain.UniqueNames(names)
	report := &domain.FetchReport{Outcomes: make([]domain.FetchOutcome, len(names))}
	cloneOpts := domain.CloneOptions{ShallowSubmodules: opts.ShallowSubmodules}

	var g errgroup.Group
	g.SetLimit(max(opts.Jobs, 1))

	for i, name := range names {
		report.Outcomes[i] = domain.FetchOutcome{Name: name, Status: domain.FetchSkipped}
		if ctx.Err() != nil {
			continue
		}

		g.Go(func() error {
			report.Outcomes[i] = f.fetchOne(ctx, manifest, name, dest, cloneOpts)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return report, errors.Join(domain.ErrInterrupted, err)
	}

	if failed := report.Count(domain.FetchFailed); failed > 0 {
		return report, errors.Join(domain.ErrFetchFailed,
			zerr.With(zerr.New("some repositories could not be cloned"), "failed", failed))
	}
	return report, nil
}

func (f *Fetcher) fetchOne(
	ctx context.Context,
	manifest *domain.Manifest,
	name, dest string,
	opts domain.CloneOptions,
) domain.FetchOutcome {
	outcome := domain.FetchOutcome{Name: name, Status: domain.FetchSkipped}
	if ctx.Err() != nil {
		return outcome
	}

	spec, ok := manifest.Lookup(name)
	if !ok {
		f.logger.Info(fmt.Sprintf("Flag %s not found in configuration.", name))
		outcome.Status = domain.FetchNotFound
		return outcome
	}

	f.logger.Info("Cloning repository for flag: " + name)
	outcome.Dir = filepath.Join(dest, spec.CloneDir())

	ctx, span := f.tracer.Start(ctx, "clone "+name)
	defer span.End()
	span.SetAttribute("repo", name)
	span.SetAttribute("link", spec.Link)

	if err := f.cloner.Clone(ctx, spec, outcome.Dir, opts); err != nil {
		span.RecordError(err)
		f.logger.Error(err)
		outcome.Status = domain.FetchFailed
		outcome.Err = err
		return outcome
	}

	f.logger.Info(fmt.Sprintf("Repository cloned to %s on branch %s with depth %s.",
		outcome.Dir, describeBranch(spec), describeDepth(spec)))
	if spec.Unshallow && spec.Shallow() {
		f.logger.Info("Repository unshallowed.")
	}

	outcome.Status = domain.FetchCloned
	return outcome
}

func resolveDest(opts FetchOptions) string {
	dest := opts.DestDir
	if dest == "" {
		dest = domain.DefaultDepsDir
	}
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(opts.Dir, dest)
	}
	return dest
}

func describeBranch(spec domain.RepoSpec) string {
	if spec.Branch == "" {
		return "(default)"
	}
	return spec.Branch
}

func describeDepth(spec domain.RepoSpec) string {
	if !spec.Shallow() {
		return "full"
	}
	return fmt.Sprint(spec.Depth)
}
