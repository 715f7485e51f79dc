package progrock

import (
	"fmt"
	"io"

	"github.com/vito/progrock"
	"go.trai.ch/cairn/internal/core/domain"
)

// Vertex implements ports.Vertex on a *progrock.VertexRecorder.
type Vertex struct {
	vertex   *progrock.VertexRecorder
	internal bool
}

// Stdout returns the vertex output stream.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns the vertex error stream.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Log writes a leveled line to the vertex. Debug lines of internal vertices are dropped.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	if v.internal && level == domain.LogLevelDebug {
		return
	}
	w := v.vertex.Stdout()
	if level >= domain.LogLevelWarn {
		w = v.vertex.Stderr()
	}
	_, _ = fmt.Fprintf(w, "[%s] %s\n", level.String(), msg)
}

// Complete finishes the vertex.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

// Cached marks the vertex as satisfied by recorded build information.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}
