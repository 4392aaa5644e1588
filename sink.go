package txnlog

import (
	"strings"

	"github.com/kataras/golog"
)

// Sink accepts finalized event batches and guarantees their durability
// independently of the outcome of the unit of work that produced them.
// Batch order must be preserved.
type Sink interface {
	Publish(events []Event) error
}

// DiscardSink drops every batch. Used when a Logger is built without a sink.
type DiscardSink struct{}

func (DiscardSink) Publish([]Event) error { return nil }

// GologSink writes published events to a golog console logger. It is a
// development and test convenience, not a durable transport.
type GologSink struct {
	Logger *golog.Logger
}

// NewGologSink wraps the given golog logger; nil selects golog.Default.
func NewGologSink(l *golog.Logger) *GologSink {
	if l == nil {
		l = golog.Default
	}
	return &GologSink{Logger: l}
}

func (s *GologSink) Publish(events []Event) error {
	for _, e := range events {
		var line strings.Builder
		if e.ReferenceID != "" {
			line.WriteString("[" + e.ReferenceID + "] ")
		}
		line.WriteString(e.Message)

		switch ParseLevel(e.Level) {
		case LevelWarn:
			s.Logger.Warn(line.String())
		case LevelError:
			s.Logger.Error(line.String())
		default:
			s.Logger.Info(line.String())
		}
	}
	return nil
}
