package shell

import (
	"errors"
	"os/exec"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/zerr"
)

// Locator implements ports.ToolLocator on top of exec.LookPath.
type Locator struct {
	lookPath func(string) (string, error)
}

// NewLocator creates a Locator that searches PATH.
func NewLocator() *Locator {
	return &Locator{lookPath: exec.LookPath}
}

// LookPath resolves name on PATH.
func (l *Locator) LookPath(name string) (string, error) {
	path, err := l.lookPath(name)
	if err != nil {
		return "", errors.Join(domain.ErrToolMissing, zerr.With(zerr.Wrap(err, "tool lookup failed"), "tool", name))
	}
	return path, nil
}
