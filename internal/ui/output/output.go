// Package output creates the termenv outputs rig writes its stderr log and
// stage lines through. NO_COLOR always yields plain text.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Mode selects how the color profile of an output is chosen.
type Mode int

const (
	// Detect asks the terminal for its capabilities.
	Detect Mode = iota
	// ANSI uses the 16-color palette, which CI log viewers render.
	ANSI
)

// Profile returns the color profile for mode.
func Profile(mode Mode) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if mode == ANSI {
		return termenv.ANSI
	}
	return termenv.EnvColorProfile()
}

// New creates an output writing to w with the profile of mode. A nil writer
// selects os.Stderr.
func New(w io.Writer, mode Mode) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(Profile(mode)), termenv.WithTTY(true))
}
