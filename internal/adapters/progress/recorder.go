// Package progress provides ProgressSink implementations.
package progress

import (
	"fmt"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.seluk.ch/corekit/internal/core/domain"
	"go.seluk.ch/corekit/internal/core/ports"
)

var _ ports.ProgressSink = (*Recorder)(nil)

// Recorder renders progress onto a progrock tape: one vertex per worker
// slot plus a main vertex for the aggregate progress. Status texts become
// vertex output lines.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	mu      sync.Mutex
	workers map[int]*progrock.VertexRecorder
	main    *progrock.VertexRecorder
}

// New creates a Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:       w,
		rec:     progrock.NewRecorder(w),
		workers: make(map[int]*progrock.VertexRecorder),
	}
}

// Update renders a single worker's progress onto its vertex.
func (r *Recorder) Update(slot int, u domain.ProgressUpdate) {
	r.mu.Lock()
	v, ok := r.workers[slot]
	if !ok {
		name := fmt.Sprintf("worker %d", slot)
		v = r.rec.Vertex(digest.FromString(name), name)
		r.workers[slot] = v
	}
	r.mu.Unlock()

	r.render(v, u)
}

// UpdateMain renders the aggregate progress onto the main vertex.
func (r *Recorder) UpdateMain(u domain.ProgressUpdate) {
	r.mu.Lock()
	if r.main == nil {
		r.main = r.rec.Vertex(digest.FromString("main"), "total")
	}
	v := r.main
	r.mu.Unlock()

	r.render(v, u)
}

func (r *Recorder) render(v *progrock.VertexRecorder, u domain.ProgressUpdate) {
	switch {
	case u.Status != nil && u.Value != nil:
		_, _ = fmt.Fprintf(v.Stdout(), "%s\n", u.String())
	case u.Status != nil:
		_, _ = fmt.Fprintf(v.Stdout(), "%s\n", *u.Status)
	case u.Value != nil:
		_, _ = fmt.Fprintf(v.Stdout(), "%s\n", u.String())
	}
}

// Close completes all vertexes and flushes the underlying writer.
func (r *Recorder) Close() error {
	r.mu.Lock()
	for _, v := range r.workers {
		v.Done(nil)
	}
	if r.main != nil {
		r.main.Done(nil)
	}
	r.mu.Unlock()

	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
