// Package main is the entry point for the rig build orchestrator.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/rig/cmd/rig/commands"
	"go.trai.ch/rig/internal/app"
	"go.trai.ch/rig/internal/core/domain"
	_ "go.trai.ch/rig/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, defaultProvider))
}

func defaultProvider(ctx context.Context) (*app.Components, func(), error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		return nil, func() {}, err
	}
	return c, func() { c.Shutdown(ctx) }, nil
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Resolve the directory rig operates on
	wd, err := currentWorkdir()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return domain.ExitFailure
	}

	// 2. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return domain.ExitFailure
	}
	defer cleanup()

	// 3. Interface - CLI
	cli := commands.New(components.Runner, wd)
	cli.SetLogFormatHook(components.Logger.SetJSON)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 4. Execution
	if err := cli.Execute(ctx); err != nil {
		code := domain.ExitCode(err)
		// A child killed by the same signal may surface before the context is cancelled.
		if code == domain.ExitInterrupted || ctx.Err() != nil {
			code = domain.ExitInterrupted
			_, _ = fmt.Fprintln(stderr, "\nInterrupted by user.")
			return code
		}
		components.Logger.Error(err)
		return code
	}
	return domain.ExitSuccess
}

// currentWorkdir returns the process working directory and the base names of
// the running program, which clean and run leave alone. A launcher symlink
// and its resolved target are both kept.
func currentWorkdir() (domain.Workdir, error) {
	path, err := os.Getwd()
	if err != nil {
		return domain.Workdir{}, err
	}

	self := []string{filepath.Base(os.Args[0])}
	if exe, err := os.Executable(); err == nil {
		if name := filepath.Base(exe); !slices.Contains(self, name) {
			self = append(self, name)
		}
	}

	return domain.Workdir{Path: path, Self: self}, nil
}
