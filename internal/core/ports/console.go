package ports

import "context"

// Console exposes cosmetic terminal capabilities.
//
//go:generate mockgen -source=console.go -destination=mocks/mock_console.go -package=mocks
type Console interface {
	// Compact resizes the console window. It is a no-op where unsupported.
	Compact(ctx context.Context, cols, lines int) error
}
