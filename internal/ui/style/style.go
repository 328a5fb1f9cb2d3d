// Package style holds the colors and icons shared by the stderr log and the
// stage renderer.
package style

import "github.com/charmbracelet/lipgloss"

// Log level colors.
var (
	Slate  = lipgloss.Color("#667085")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
)
