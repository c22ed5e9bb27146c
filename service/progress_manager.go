package service

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// BuildProgress reports tree-construction progress to an interactive
// terminal. It is a no-op on a non-terminal writer (redirected output,
// CI) so piping antipole's stdout never pollutes a log file with
// carriage-return-driven bar frames.
type BuildProgress struct {
	mu          sync.Mutex
	bar         *progressbar.ProgressBar
	writer      io.Writer
	interactive bool
}

// NewBuildProgress creates a progress reporter writing to writer.
// enabled additionally gates display (the --progress flag / config); the
// bar is shown only when enabled is true AND writer is an interactive
// terminal.
func NewBuildProgress(writer io.Writer, enabled bool) *BuildProgress {
	if writer == nil {
		writer = os.Stderr
	}
	return &BuildProgress{
		writer:      writer,
		interactive: enabled && isInteractiveWriter(writer),
	}
}

// Start begins tracking progress toward total points processed.
func (p *BuildProgress) Start(total int, description string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.interactive {
		return
	}
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionSetWriter(p.writer),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(p.writer)
		}),
	)
}

// Add advances the bar by n (a no-op when Start was never called or the
// writer is non-interactive).
func (p *BuildProgress) Add(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar == nil {
		return
	}
	_ = p.bar.Add(n)
}

// Finish completes the bar, if any.
func (p *BuildProgress) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
}

func isInteractiveWriter(w io.Writer) bool {
	if os.Getenv("CI") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
