package txnlog

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Formatter renders non-string log inputs as deterministic multi-line text.
// All methods are pure and nil-safe; absent fields render as empty sections.
type Formatter struct{}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// FormatError renders the error message, its concrete type, the origin
// location when a stack is attached, and the full cause chain.
func (Formatter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(err.Error())
	fmt.Fprintf(&b, "\ntype: %T", err)
	if origin := errorOrigin(err); origin != "" {
		fmt.Fprintf(&b, "\norigin: %s", origin)
	}
	for cause := unwrapOnce(err); cause != nil; cause = unwrapOnce(cause) {
		fmt.Fprintf(&b, "\nCaused by: %s (type: %T)", cause.Error(), cause)
	}
	return b.String()
}

// FormatClient renders an outbound request/response exchange. Either side
// may be nil and is then omitted.
func (Formatter) FormatClient(req *http.Request, resp *http.Response) string {
	var b strings.Builder
	if req != nil {
		b.WriteString("--- Callout Request ---\n")
		fmt.Fprintf(&b, "%s %s\n", req.Method, requestTarget(req))
		writeHeader(&b, req.Header)
		if body := requestBody(req); body != "" {
			b.WriteString(body)
			b.WriteByte('\n')
		}
	}
	if resp != nil {
		b.WriteString("--- Callout Response ---\n")
		status := resp.Status
		if status == "" {
			status = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		}
		b.WriteString(status)
		b.WriteByte('\n')
		writeHeader(&b, resp.Header)
	}
	return b.String()
}

// FormatServer renders an inbound request and the response served for it.
// Either side may be nil and is then omitted.
func (Formatter) FormatServer(req *http.Request, resp *ServedResponse) string {
	var b strings.Builder
	if req != nil {
		b.WriteString("--- Inbound Request ---\n")
		fmt.Fprintf(&b, "%s %s\n", req.Method, requestTarget(req))
		if req.URL != nil {
			writeParams(&b, req.URL.Query())
		}
		writeHeader(&b, req.Header)
	}
	if resp != nil {
		b.WriteString("--- Inbound Response ---\n")
		fmt.Fprintf(&b, "Status: %d\n", resp.Status)
		writeHeader(&b, resp.Header)
		if resp.Body != "" {
			b.WriteString(resp.Body)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// errorOrigin returns the deepest recorded stack frame in the chain, which
// is the closest to where the failure was raised.
func errorOrigin(err error) string {
	var st stackTracer
	for e := err; e != nil; e = unwrapOnce(e) {
		if t, ok := e.(stackTracer); ok {
			st = t
		}
	}
	if st == nil {
		return ""
	}
	frames := st.StackTrace()
	if len(frames) == 0 {
		return ""
	}
	return fmt.Sprintf("%+v", frames[0])
}

// unwrapOnce strips a single wrapping layer, supporting both the
// pkg/errors causer convention and the stdlib Unwrap convention.
func unwrapOnce(err error) error {
	switch e := err.(type) {
	case interface{ Cause() error }:
		return e.Cause()
	case interface{ Unwrap() error }:
		return e.Unwrap()
	}
	return nil
}

func requestTarget(req *http.Request) string {
	if req.URL == nil {
		return ""
	}
	return req.URL.String()
}

// requestBody reads a replayable copy of the request body without
// consuming the original stream. Streaming-only bodies are skipped.
func requestBody(req *http.Request) string {
	if req.GetBody == nil {
		return ""
	}
	rc, err := req.GetBody()
	if err != nil {
		return ""
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return ""
	}
	return string(data)
}

func writeHeader(b *strings.Builder, h http.Header) {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, "%s: %s\n", k, strings.Join(h[k], ", "))
	}
}

func writeParams(b *strings.Builder, params map[string][]string) {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, "param %s: %s\n", k, strings.Join(params[k], ", "))
	}
}
