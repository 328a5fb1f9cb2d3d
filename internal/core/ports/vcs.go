package ports

import (
	"context"

	"go.trai.ch/rig/internal/core/domain"
)

// Cloner fetches external repositories.
//
//go:generate mockgen -source=vcs.go -destination=mocks/mock_vcs.go -package=mocks
type Cloner interface {
	// Clone clones spec into dest at the configured branch and depth, and
	// converts it to full history when spec.Unshallow is set.
	Clone(ctx context.Context, spec domain.RepoSpec, dest string, opts domain.CloneOptions) error
}
