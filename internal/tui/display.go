package tui

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Display renders one build pass from a tape source, interactively on a
// terminal and with a Plain printer otherwise.
type Display struct {
	source      TapeSource
	out         io.Writer
	interactive bool

	mu   sync.Mutex
	done chan struct{}
}

// NewDisplay creates a Display for source writing to out.
func NewDisplay(source TapeSource, out io.Writer, interactive bool) *Display {
	return &Display{source: source, out: out, interactive: interactive}
}

// Start begins rendering in the background. Calling Start again has no effect.
func (d *Display) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.done != nil {
		return
	}
	d.done = make(chan struct{})

	go func() {
		defer close(d.done)
		if d.interactive {
			program := tea.NewProgram(NewModel(d.source),
				tea.WithOutput(d.out),
				tea.WithInput(nil),
				tea.WithoutSignalHandler(),
			)
			if _, err := program.Run(); err == nil {
				return
			}
		}
		NewPlain(d.out).Run(d.source)
	}()
}

// Stop ends the source and waits until everything it held has been rendered.
func (d *Display) Stop() {
	d.mu.Lock()
	done := d.done
	d.mu.Unlock()
	if done == nil {
		return
	}
	_ = d.source.Close()
	<-done
}
