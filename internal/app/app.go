// Package app implements the application layer for rig.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/rig/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	Runner  *Runner
	Fetcher *Fetcher
	Logger  ports.Logger
	Tracer  ports.Tracer
}

// Shutdown stops the tracer so every stage span reaches the renderer. A
// failure is logged as a warning. It ignores cancellation of ctx.
func (c *Components) Shutdown(ctx context.Context) {
	if c.Tracer == nil {
		return
	}
	if err := c.Tracer.Shutdown(context.WithoutCancel(ctx)); err != nil && c.Logger != nil {
		c.Logger.Warn(fmt.Sprintf("could not stop tracer: %v", err))
	}
}
