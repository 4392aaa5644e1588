package txnlog

// Record is the canonical unit of logging.
// CallerID and Level are set exactly once when a record leaves the builder;
// UserID stays empty until flush, when the principal identity is stamped on
// the outgoing event. Records are immutable once buffered apart from that.
type Record struct {
	CallerID    string
	ReferenceID string // optional correlation id, e.g. a transaction or request id
	Message     string
	Level       Level
	UserID      string
	Timestamp   int64 // unix nanoseconds, stamped at build time
}
