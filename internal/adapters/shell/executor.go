// Package shell provides the process executor and tool locator adapters.
package shell

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"runtime"
	"time"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultWaitDelay is how long a cancelled command may take to exit after the
// interrupt before it is killed.
const DefaultWaitDelay = 5 * time.Second

// Executor implements ports.Executor using os/exec with inherited standard streams.
type Executor struct {
	logger    ports.Logger
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	waitDelay time.Duration
}

// Option configures an Executor.
type Option func(*Executor)

// WithStreams replaces the inherited standard streams.
func WithStreams(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(e *Executor) {
		e.stdin = stdin
		e.stdout = stdout
		e.stderr = stderr
	}
}

// WithWaitDelay sets the grace period between interrupt and kill on cancellation.
func WithWaitDelay(d time.Duration) Option {
	return func(e *Executor) {
		e.waitDelay = d
	}
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger, opts ...Option) *Executor {
	e := &Executor{
		logger:    logger,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		waitDelay: DefaultWaitDelay,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run echoes the command line, starts the command and waits for it.
func (e *Executor) Run(ctx context.Context, cmd domain.Command) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(domain.ErrInterrupted, err)
	}

	e.logger.Info("$ " + cmd.String())

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec // commands are built by the application
	c.Dir = cmd.Dir
	c.Stdin = e.stdin
	c.Stdout = e.stdout
	c.Stderr = e.stderr
	c.Cancel = func() error {
		if runtime.GOOS == "windows" {
			return c.Process.Kill()
		}
		return c.Process.Signal(os.Interrupt)
	}
	c.WaitDelay = e.waitDelay

	if err := c.Start(); err != nil {
		return startError(ctx, cmd, err)
	}

	err := c.Wait()
	if err == nil {
		return nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return errors.Join(domain.ErrInterrupted, zerr.With(zerr.Wrap(err, "command interrupted"), "command", cmd.Name))
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &domain.CommandError{
			Command:  cmd,
			ExitCode: exitErr.ExitCode(),
			Err:      err,
		}
	}

	return zerr.With(zerr.Wrap(err, "command failed"), "command", cmd.Name)
}

func startError(ctx context.Context, cmd domain.Command, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return errors.Join(domain.ErrInterrupted, ctxErr)
	}

	wrapped := zerr.With(zerr.Wrap(err, "failed to start "+cmd.Name), "command", cmd.String())
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return errors.Join(domain.ErrCommandNotFound, wrapped)
	}
	return errors.Join(domain.ErrCommandStartFailed, wrapped)
}
