package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner sequences the clean, configure, build and run stages.
type Runner struct {
	executor  ports.Executor
	locator   ports.ToolLocator
	workspace ports.Workspace
	console   ports.Console
	tracer    ports.Tracer
	logger    ports.Logger
	toolchain domain.Toolchain
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithToolchain replaces the default CMake + Ninja + clang-cl toolchain.
func WithToolchain(tc domain.Toolchain) RunnerOption {
	return func(r *Runner) {
		r.toolchain = tc
	}
}

// NewRunner creates a new Runner.
func NewRunner(
	executor ports.Executor,
	locator ports.ToolLocator,
	workspace ports.Workspace,
	console ports.Console,
	tracer ports.Tracer,
	logger ports.Logger,
	opts ...RunnerOption,
) *Runner {
	r := &Runner{
		executor:  executor,
		locator:   locator,
		workspace: workspace,
		console:   console,
		tracer:    tracer,
		logger:    logger,
		toolchain: domain.DefaultToolchain(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the stages selected by inv against wd. The returned error
// classifies the failure; use domain.ExitCode to map it to a process status.
func (r *Runner) Run(ctx context.Context, wd domain.Workdir, inv domain.Invocation) error {
	if inv.Compact {
		if err := r.console.Compact(ctx, domain.CompactCols, domain.CompactLines); err != nil {
			r.logger.Warn(fmt.Sprintf("could not compact console: %v", err))
		}
	}

	if inv.Clean {
		if err := r.stage(ctx, domain.StageClean, func(_ context.Context, span ports.Span) error {
			return r.clean(wd, span)
		}); err != nil {
			return err
		}
	}

	if err := r.requireTools(ctx, inv); err != nil {
		return err
	}

	if inv.ShouldConfigure() {
		if err := r.stage(ctx, domain.StageConfigure, func(ctx context.Context, span ports.Span) error {
			r.logger.Info("Running configure...")
			return r.exec(ctx, span, r.toolchain.ConfigureCommand(wd.Path), domain.ErrConfigureFailed)
		}); err != nil {
			return err
		}
	}

	if inv.NeedsBuild() {
		if err := r.stage(ctx, domain.StageBuild, func(ctx context.Context, span ports.Span) error {
			r.logger.Info("Building with " + r.toolchain.Executor + "...")
			return r.exec(ctx, span, r.toolchain.BuildCommand(wd.Path), domain.ErrBuildFailed)
		}); err != nil {
			return err
		}
	}

	if inv.ShouldRun() {
		if err := r.stage(ctx, domain.StageRun, func(ctx context.Context, span ports.Span) error {
			return r.launch(ctx, wd, span)
		}); err != nil {
			return err
		}
	}

	r.logger.Info("Done.")
	return nil
}

// stage runs fn inside a span named after s, unless ctx is already done.
func (r *Runner) stage(ctx context.Context, s domain.Stage, fn func(context.Context, ports.Span) error) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(domain.ErrInterrupted, err)
	}

	ctx, span := r.tracer.Start(ctx, s.String())
	defer span.End()
	span.SetAttribute("stage", s.String())

	if err := fn(ctx, span); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (r *Runner) requireTools(ctx context.Context, inv domain.Invocation) error {
	var tools []string
	if inv.ShouldConfigure() {
		tools = append(tools, r.toolchain.ConfigureTools()...)
	}
	if inv.NeedsBuild() {
		tools = append(tools, r.toolchain.BuildTools()...)
	}

	for _, tool := range tools {
		if err := ctx.Err(); err != nil {
			return errors.Join(domain.ErrInterrupted, err)
		}
		if _, err := r.locator.LookPath(tool); err != nil {
			if errors.Is(err, domain.ErrToolMissing) {
				return err
			}
			return errors.Join(domain.ErrToolMissing, err)
		}
	}
	return nil
}

// clean removes every entry of the working directory except the invoking
// program. Individual failures are reported and never abort the run.
func (r *Runner) clean(wd domain.Workdir, span ports.Span) error {
	entries, err := r.workspace.Entries(wd.Path)
	if err != nil {
		return errors.Join(domain.ErrWorkdirReadFailed, err)
	}

	r.logger.Info(fmt.Sprintf("Cleaning directory (excluding %s)...", strings.Join(wd.Self, ", ")))

	removals := make([]domain.Removal, 0, len(entries))
	for _, entry := range entries {
		if wd.IsSelf(entry.Name) {
			continue
		}
		removals = append(removals, domain.Removal{Path: entry.Path, Err: r.workspace.Remove(entry.Path)})
	}

	failed := domain.Failed(removals)
	for _, f := range failed {
		r.logger.Warn(fmt.Sprintf("could not remove %s: %v", f.Path, f.Err))
	}
	span.SetAttribute("removed", len(removals)-len(failed))
	span.SetAttribute("failed", len(failed))

	r.logger.Info("Clean complete.")
	return nil
}

// exec runs a collaborator tool and classifies its failure as failure.
func (r *Runner) exec(ctx context.Context, span ports.Span, cmd domain.Command, failure error) error {
	span.SetAttribute("command", cmd.String())

	err := r.executor.Run(ctx, cmd)
	if err == nil {
		return nil
	}

	var cmdErr *domain.CommandError
	if errors.As(err, &cmdErr) {
		span.SetAttribute("exit_code", cmdErr.ExitCode)
	}

	switch {
	case errors.Is(err, domain.ErrInterrupted):
		return err
	case errors.Is(err, domain.ErrCommandNotFound):
		return errors.Join(domain.ErrToolMissing, err)
	default:
		return errors.Join(failure, err)
	}
}

// launch starts the first produced executable in lexicographic order.
func (r *Runner) launch(ctx context.Context, wd domain.Workdir, span ports.Span) error {
	r.logger.Info(fmt.Sprintf("Scanning for executables in %s...", wd.Path))

	names, err := r.workspace.Executables(wd.Path)
	if err != nil {
		return errors.Join(domain.ErrWorkdirReadFailed, err)
	}

	var target string
	for _, name := range names {
		if !wd.IsSelf(name) {
			target = name
			break
		}
	}
	if target == "" {
		return errors.Join(domain.ErrNoExecutable, zerr.With(zerr.New("nothing to launch"), "dir", wd.Path))
	}

	r.logger.Info(fmt.Sprintf("Launching %s...", target))
	cmd := domain.NewCommand(wd.Path, filepath.Join(wd.Path, target))
	span.SetAttribute("command", cmd.String())

	err = r.executor.Run(ctx, cmd)
	if err == nil {
		return nil
	}

	var cmdErr *domain.CommandError
	switch {
	case errors.Is(err, domain.ErrInterrupted):
		return err
	case errors.As(err, &cmdErr):
		span.SetAttribute("exit_code", cmdErr.ExitCode)
		return errors.Join(domain.ErrExecutableFailed, err)
	default:
		return errors.Join(domain.ErrLaunchFailed, err)
	}
}
