// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/rig/internal/core/domain"
)

// Executor defines the interface for running collaborator tools.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run starts the command, waits for it and returns its failure, if any.
	//
	// Standard streams are inherited from the parent process; output is neither
	// captured nor parsed. A non-zero exit is reported as *domain.CommandError.
	Run(ctx context.Context, cmd domain.Command) error
}
