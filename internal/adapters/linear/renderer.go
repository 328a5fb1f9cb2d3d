// Package linear provides a synchronous, line-oriented stage renderer.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/rig/internal/ui/output"
	"go.trai.ch/rig/internal/ui/style"
)

// Renderer implements ports.Renderer. It prints one line when a stage starts
// and one when it finishes, to stderr, so it never interleaves with the output
// of collaborator tools on stdout.
type Renderer struct {
	stderr io.Writer
	output *termenv.Output

	mu     sync.Mutex
	stages map[string]stageState // spanID -> stage state
}

type stageState struct {
	name      string
	startTime time.Time
}

// NewRenderer creates a new Renderer writing to stderr. A nil writer selects os.Stderr.
func NewRenderer(stderr io.Writer) *Renderer {
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stderr: stderr,
		output: output.New(stderr, output.ANSI),
		stages: make(map[string]stageState),
	}
}

// OnStageStart prints a stage start message.
func (r *Renderer) OnStageStart(spanID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stages[spanID] = stageState{name: name, startTime: startTime}

	prefix := r.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s Starting...\n", prefix)
}

// OnStageComplete prints the completion status of a started stage.
func (r *Renderer) OnStageComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stage, ok := r.stages[spanID]
	if !ok {
		return
	}
	delete(r.stages, spanID)

	duration := endTime.Sub(stage.startTime).Round(time.Millisecond)
	prefix := fmt.Sprintf("[%s]", stage.name)

	if err != nil {
		symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v\n", prefix, symbol, duration)
		return
	}

	symbol := r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s Completed in %v\n", prefix, symbol, duration)
}
