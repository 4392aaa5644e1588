// Package txnlog buffers structured log records in memory and commits them
// to a durable publication sink either immediately or in a deferred batch.
// Log creation is decoupled from persistence, so records published before a
// unit of work fails or rolls back stay durable.
//
// Each Logger instance owns a private FIFO buffer and serves one unit of
// work. Immediate-mode loggers flush synchronously on every accepted
// record; deferred-mode loggers flush only when the surrounding workflow
// calls Flush, which suits work containing external blocking calls where
// batching matters.
package txnlog
