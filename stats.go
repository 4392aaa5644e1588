package txnlog

// Stats holds cumulative counters for one Logger instance. The buffer is
// single-threaded, so the counters need no synchronization.
type Stats struct {
	Accepted   int64 // records that passed the gate and entered the buffer
	Suppressed int64 // calls rejected by the level gate
	Batches    int64 // successful flushes with at least one record
	Published  int64 // events handed to the sink across all batches
}
