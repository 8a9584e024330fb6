// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"io"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"github.com/vito/progrock/console"
	"go.trai.ch/deparse/internal/core/ports"
)

var (
	_ ports.Telemetry = (*Recorder)(nil)
	_ progrock.Writer = (*Recorder)(nil)
)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
// Status updates go to a sink that can be swapped while recording: nothing is rendered
// until SetOutput is called.
type Recorder struct {
	mu   sync.RWMutex
	sink progrock.Writer
	rec  *progrock.Recorder
}

// New creates a new Recorder that discards updates until SetOutput is called.
func New() *Recorder {
	return NewRecorder(progrock.Discard{})
}

// NewRecorder creates a new Recorder writing status updates to w.
func NewRecorder(w progrock.Writer) *Recorder {
	r := &Recorder{sink: w}
	r.rec = progrock.NewRecorder(r)
	return r
}

// SetOutput renders every following status update to w as console text.
// The previous sink is closed.
func (r *Recorder) SetOutput(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = r.sink.Close()
	r.sink = console.NewWriter(w)
}

// WriteStatus forwards a status update to the current sink.
func (r *Recorder) WriteStatus(update *progrock.StatusUpdate) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sink.WriteStatus(update)
}

// Record starts recording a new vertex. The vertex digest is derived from its name, so
// recording the same phase twice updates one vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	vertex := &Vertex{vertex: v}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close flushes and closes the current sink.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sink.Close()
}
