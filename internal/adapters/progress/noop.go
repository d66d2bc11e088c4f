package progress

import (
	"go.seluk.ch/corekit/internal/core/domain"
	"go.seluk.ch/corekit/internal/core/ports"
)

var _ ports.ProgressSink = Noop{}

// Noop discards all progress updates.
type Noop struct{}

func (Noop) Update(int, domain.ProgressUpdate) {}

func (Noop) UpdateMain(domain.ProgressUpdate) {}
