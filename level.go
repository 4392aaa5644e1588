package txnlog

import "strings"

// Severity levels, dictionary encoded for compact wire representation.
const (
	LevelInfo  Level = 1
	LevelWarn  Level = 2
	LevelError Level = 3
)

// Level represents the severity of a log record.
type Level uint8

// String returns the canonical upper-case name of the level.
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLevel converts a level name to a Level. Unknown names map to INFO.
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// LevelGate decides whether records at a given severity should be built at all.
// Implementations must be pure and cheap; the gate runs on every logging call.
type LevelGate interface {
	Enabled(l Level) bool
}

// MinLevelGate enables every level at or above a minimum severity.
type MinLevelGate struct {
	Min Level
}

// Enabled reports whether l passes the minimum-severity threshold.
func (g MinLevelGate) Enabled(l Level) bool {
	return l >= g.Min
}
