package progress

import (
	"fmt"

	"go.seluk.ch/corekit/internal/core/domain"
	"go.seluk.ch/corekit/internal/core/ports"
)

var _ ports.ProgressSink = (*LogSink)(nil)

// LogSink reports progress through the logger: worker updates at debug
// level, aggregate updates at info level.
type LogSink struct {
	log ports.Logger
}

// NewLogSink creates a LogSink.
func NewLogSink(log ports.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Update(slot int, u domain.ProgressUpdate) {
	s.log.Debug(fmt.Sprintf("worker %d: %s", slot, u))
}

func (s *LogSink) UpdateMain(u domain.ProgressUpdate) {
	s.log.Info(u.String())
}
