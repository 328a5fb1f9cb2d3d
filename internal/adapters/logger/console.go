package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/rig/internal/ui/output"
	"go.trai.ch/rig/internal/ui/style"
)

// ConsoleHandler is the slog.Handler behind the human-readable stderr log.
// A record is printed as its level icon followed by the message; continuation
// lines are indented to where the message starts, so multi-line tool errors
// stay aligned under the icon. Attributes follow as key=value pairs.
//
// Groups are flattened: rig never nests attributes.
type ConsoleHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
}

// NewConsoleHandler creates a ConsoleHandler writing to w. A nil writer selects
// os.Stderr and a nil level selects slog.LevelInfo.
func NewConsoleHandler(w io.Writer, level slog.Leveler) *ConsoleHandler {
	if w == nil {
		w = os.Stderr
	}
	if level == nil {
		level = slog.LevelInfo
	}
	return &ConsoleHandler{out: output.New(w, output.Detect), level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes one record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := levelStyle(r.Level)

	text := r.Message
	pairs := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, attr := range h.attrs {
		pairs = appendAttr(pairs, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		pairs = appendAttr(pairs, attr)
		return true
	})
	if len(pairs) > 0 {
		text += " " + strings.Join(pairs, " ")
	}

	prefix := ""
	if icon != "" {
		prefix = icon + " "
	}
	line := prefix + indentContinuation(text, utf8.RuneCountInString(prefix))

	styled := h.out.String(line).Foreground(termenv.RGBColor(string(color)))
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns a handler that prints attrs on every record.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return &ConsoleHandler{
		out:   h.out,
		level: h.level,
		attrs: append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...),
	}
}

// WithGroup returns h unchanged.
func (h *ConsoleHandler) WithGroup(string) slog.Handler {
	return h
}

func levelStyle(level slog.Level) (string, lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, style.Red
	case level >= slog.LevelWarn:
		return style.Warning, style.Yellow
	default:
		return "", style.Slate
	}
}

func appendAttr(pairs []string, attr slog.Attr) []string {
	if attr.Equal(slog.Attr{}) {
		return pairs
	}
	return append(pairs, attr.Key+"="+attr.Value.Resolve().String())
}

// indentContinuation pads every line after the first with width spaces.
// Blank lines are left empty.
func indentContinuation(s string, width int) string {
	if width == 0 || !strings.Contains(s, "\n") {
		return s
	}
	pad := strings.Repeat(" ", width)
	lines := strings.Split(s, "\n")
	for i := 1; i < len(lines); i++ {
		if lines[i] != "" {
			lines[i] = pad + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
