package txnlog

import (
	"runtime"
	"strings"
)

const pkgPath = "github.com/coffersTech/txnlog"

// CallerResolver returns the identifier of the method that initiated the
// current logging call. Implementations must be safe at any stack depth.
type CallerResolver interface {
	CallerID() string
}

// RuntimeCallerResolver resolves the caller by walking runtime call frames
// and returning the first function outside this library.
type RuntimeCallerResolver struct{}

// CallerID returns the fully qualified name of the calling function, or
// "unknown" when the stack cannot be resolved.
func (RuntimeCallerResolver) CallerID() string {
	var pcs [16]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if f.Function != "" && !strings.HasPrefix(f.Function, pkgPath+".") {
			return f.Function
		}
		if !more {
			break
		}
	}
	return "unknown"
}
