package txnlog

import (
	"os/user"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Options configures a Logger instance.
type Options struct {
	// Immediate makes every accepted record flush synchronously before the
	// logging call returns. Deferred loggers flush only on explicit Flush.
	Immediate bool
	// Sink receives flushed event batches. Nil discards them.
	Sink Sink
	// Gate filters severities before any record is built. Nil enables all.
	Gate LevelGate
	// Caller resolves the originating method id. Nil uses the runtime
	// stack resolver.
	Caller CallerResolver
	// Principal supplies the acting user id stamped on events at flush
	// time. Nil resolves the current OS user.
	Principal func() string
}

// Logger buffers log records for one unit of work and commits them to a
// durable sink either immediately or in a deferred batch. Instances are
// not safe for concurrent use; create one per unit of work.
type Logger struct {
	opts  Options
	fmtr  Formatter
	buf   []Record
	stats Stats
}

// New creates a Logger with the given options, filling in defaults for
// absent collaborators.
func New(opts Options) *Logger {
	if opts.Sink == nil {
		opts.Sink = DiscardSink{}
	}
	if opts.Caller == nil {
		opts.Caller = RuntimeCallerResolver{}
	}
	if opts.Principal == nil {
		opts.Principal = currentPrincipal
	}
	return &Logger{opts: opts}
}

// Info logs in at INFO level.
func (l *Logger) Info(in LogInput) error { return l.Log(LevelInfo, in) }

// Warn logs in at WARN level.
func (l *Logger) Warn(in LogInput) error { return l.Log(LevelWarn, in) }

// Error logs in at ERROR level.
func (l *Logger) Error(in LogInput) error { return l.Log(LevelError, in) }

// Log builds a record from in and appends it to the buffer. When the gate
// rejects the level no record is built and no formatting runs. In
// immediate mode the buffer is flushed before returning; a returned error
// is always a sink failure, never malformed log content.
func (l *Logger) Log(level Level, in LogInput) error {
	if l.opts.Gate != nil && !l.opts.Gate.Enabled(level) {
		l.stats.Suppressed++
		return nil
	}

	rec := Record{
		CallerID:    l.opts.Caller.CallerID(),
		ReferenceID: in.refID(),
		Message:     in.buildMessage(l.fmtr),
		Level:       level,
		Timestamp:   time.Now().UnixNano(),
	}
	if p, ok := in.(Prebuilt); ok && p.Record.Timestamp != 0 {
		rec.Timestamp = p.Record.Timestamp
	}

	l.buf = append(l.buf, rec)
	l.stats.Accepted++

	if l.opts.Immediate {
		return l.Flush()
	}
	return nil
}

// AssertOrLog logs rec at ERROR level when cond is false and does nothing
// otherwise.
func (l *Logger) AssertOrLog(cond bool, rec Record) error {
	if cond {
		return nil
	}
	return l.Log(LevelError, Prebuilt{Record: rec})
}

// Flush converts the buffered records to events, stamps the acting
// principal, and hands the whole batch to the sink in FIFO order. The
// buffer is cleared only after a successful hand-off; on failure it is
// left unchanged for a future attempt. Flushing an empty buffer is a
// no-op.
func (l *Logger) Flush() error {
	if len(l.buf) == 0 {
		return nil
	}

	userID := l.opts.Principal()
	events := make([]Event, len(l.buf))
	for i, rec := range l.buf {
		events[i] = Event{
			EventID:     uuid.New().String(),
			CallerID:    rec.CallerID,
			ReferenceID: rec.ReferenceID,
			Message:     rec.Message,
			Level:       rec.Level.String(),
			UserID:      userID,
			Timestamp:   rec.Timestamp,
		}
	}

	if err := l.opts.Sink.Publish(events); err != nil {
		return errors.Wrap(err, "publish batch")
	}

	l.buf = l.buf[:0]
	l.stats.Batches++
	l.stats.Published += int64(len(events))
	return nil
}

// Pending returns the number of buffered records not yet flushed.
func (l *Logger) Pending() int {
	return len(l.buf)
}

// Stats returns a snapshot of the instance counters.
func (l *Logger) Stats() Stats {
	return l.stats
}

func currentPrincipal() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}
	return u.Username
}
