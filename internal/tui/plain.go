package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/vito/progrock"
)

// Plain prints vertex output line by line, prefixed with the vertex name,
// and one status line per finished vertex. It is used when the output is not a terminal.
type Plain struct {
	out      io.Writer
	names    map[string]string
	partial  map[string]string
	finished map[string]bool
}

// NewPlain creates a Plain printer writing to out.
func NewPlain(out io.Writer) *Plain {
	return &Plain{
		out:      out,
		names:    make(map[string]string),
		partial:  make(map[string]string),
		finished: make(map[string]bool),
	}
}

// Run prints every update of source until it ends.
func (p *Plain) Run(source TapeSource) {
	for {
		update, err := source.Read()
		if err != nil {
			return
		}
		p.Handle(update)
	}
}

// Handle prints one update.
func (p *Plain) Handle(update *progrock.StatusUpdate) {
	for _, v := range update.Vertexes {
		p.names[v.Id] = v.Name
	}

	for _, l := range update.Logs {
		text := p.partial[l.Vertex] + string(l.Data)
		lines := strings.Split(text, "\n")
		for _, line := range lines[:len(lines)-1] {
			p.printf("%s | %s\n", p.names[l.Vertex], line)
		}
		p.partial[l.Vertex] = lines[len(lines)-1]
	}

	for _, v := range update.Vertexes {
		if v.Completed == nil || p.finished[v.Id] {
			continue
		}
		p.finished[v.Id] = true
		if rest := p.partial[v.Id]; rest != "" {
			p.printf("%s | %s\n", v.Name, rest)
			delete(p.partial, v.Id)
		}

		switch {
		case v.Error != nil:
			p.printf("✗ %s: %s\n", v.Name, *v.Error)
		case v.Cached:
			p.printf("= %s (up to date)\n", v.Name)
		default:
			p.printf("✓ %s\n", v.Name)
		}
	}
}

func (p *Plain) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}
