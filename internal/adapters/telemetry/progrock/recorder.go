// Package progrock records build passes on a progrock tape.
package progrock

import (
	"context"
	"fmt"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/cairn/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on top of a progrock recorder.
// Vertex digests are derived from the vertex name and a per-recorder sequence number,
// so products recorded twice in one session get distinct vertices.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	mu  sync.Mutex
	seq map[string]int
}

// New creates a Recorder writing to an in-memory tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
		seq: make(map[string]int),
	}
}

// Record starts a vertex named name.
func (r *Recorder) Record(ctx context.Context, name string, opts ...ports.VertexOption) (context.Context, ports.Vertex) {
	cfg := ports.VertexConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	v := &Vertex{
		vertex:   r.rec.Vertex(r.digest(name), name),
		internal: cfg.Internal,
	}
	return ports.ContextWithVertex(ctx, v), v
}

func (r *Recorder) digest(name string) digest.Digest {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := r.seq[name]
	r.seq[name] = n + 1
	if n == 0 {
		return digest.FromString(name)
	}
	return digest.FromString(fmt.Sprintf("%s#%d", name, n))
}

// Close closes the underlying writer when it supports closing.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
