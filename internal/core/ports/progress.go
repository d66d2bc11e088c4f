package ports

import "go.seluk.ch/corekit/internal/core/domain"

// ProgressSink consumes progress updates emitted by concurrent workers.
//
// Implementations must be safe for concurrent use: the sink is the hand-off
// point between worker goroutines and whatever renders the progress (a
// terminal tape, a log, a GUI event loop).
//
//go:generate go run go.uber.org/mock/mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks
type ProgressSink interface {
	// Update reports progress for a single worker slot. Slots are numbered
	// from 1 and remain stable for the lifetime of the pool.
	Update(slot int, u domain.ProgressUpdate)

	// UpdateMain reports aggregate progress across all workers.
	UpdateMain(u domain.ProgressUpdate)
}
