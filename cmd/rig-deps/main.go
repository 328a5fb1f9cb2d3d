// Package main is the entry point for rig-deps, the dependency fetcher.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/rig/cmd/rig-deps/commands"
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
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dir, err := os.Getwd()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return domain.ExitFailure
	}

	components, cleanup, err := provider(ctx)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return domain.ExitFailure
	}
	defer cleanup()

	cli := commands.New(components.Fetcher, dir)
	cli.SetLogFormatHook(components.Logger.SetJSON)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

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
