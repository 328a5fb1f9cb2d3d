// Package console provides the cosmetic console adapter.
package console

import (
	"context"
	"os"
	"runtime"
	"strconv"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// Console implements ports.Console. Resizing is only supported by the
// Windows console host; elsewhere Compact does nothing.
type Console struct {
	executor ports.Executor
	goos     string
	isTTY    func() bool
}

// Option configures a Console.
type Option func(*Console)

// WithGOOS overrides the detected operating system.
func WithGOOS(goos string) Option {
	return func(c *Console) {
		c.goos = goos
	}
}

// WithTerminalCheck overrides the interactive stdout check.
func WithTerminalCheck(isTTY func() bool) Option {
	return func(c *Console) {
		c.isTTY = isTTY
	}
}

// New creates a Console that resizes through executor.
func New(executor ports.Executor, opts ...Option) *Console {
	c := &Console{
		executor: executor,
		goos:     runtime.GOOS,
		isTTY:    stdoutIsTerminal,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compact resizes the console window to cols x lines.
func (c *Console) Compact(ctx context.Context, cols, lines int) error {
	if c.goos != "windows" || !c.isTTY() {
		return nil
	}

	if err := c.executor.Run(ctx, ResizeCommand(cols, lines)); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resize console"), "size", strconv.Itoa(cols)+"x"+strconv.Itoa(lines))
	}
	return nil
}

// ResizeCommand returns the console host invocation for the given size.
func ResizeCommand(cols, lines int) domain.Command {
	return domain.NewCommand("", "cmd", "/c", "mode", "con:",
		"cols="+strconv.Itoa(cols),
		"lines="+strconv.Itoa(lines),
	)
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // fd fits in int
}
