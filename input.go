package txnlog

import "net/http"

// LogInput is a tagged input accepted by the record builder. Message
// rendering is deferred until after the level gate passes, so expensive
// formatting never runs for disabled levels.
type LogInput interface {
	buildMessage(f Formatter) string
	refID() string
}

// Message logs a bare message string.
type Message struct {
	Text string
	Ref  string
}

func (m Message) buildMessage(Formatter) string { return m.Text }
func (m Message) refID() string                 { return m.Ref }

// Prebuilt logs a caller-constructed record. The builder overlays only
// CallerID and Level; message and reference id come from the record.
type Prebuilt struct {
	Record Record
}

func (p Prebuilt) buildMessage(Formatter) string { return p.Record.Message }
func (p Prebuilt) refID() string                 { return p.Record.ReferenceID }

// Failure logs an error object; the message becomes the formatted error
// with its type, origin and cause chain.
type Failure struct {
	Err error
	Ref string
}

func (e Failure) buildMessage(f Formatter) string { return f.FormatError(e.Err) }
func (e Failure) refID() string                   { return e.Ref }

// ClientExchange logs an outbound request/response pair. Either side may
// be nil.
type ClientExchange struct {
	Request  *http.Request
	Response *http.Response
	Ref      string
}

func (c ClientExchange) buildMessage(f Formatter) string {
	return f.FormatClient(c.Request, c.Response)
}
func (c ClientExchange) refID() string { return c.Ref }

// ServedResponse is the captured view of a response produced by a server
// handler, used with ServerExchange.
type ServedResponse struct {
	Status int
	Header http.Header
	Body   string
}

// ServerExchange logs an inbound request and the response served for it.
// Either side may be nil.
type ServerExchange struct {
	Request  *http.Request
	Response *ServedResponse
	Ref      string
}

func (s ServerExchange) buildMessage(f Formatter) string {
	return f.FormatServer(s.Request, s.Response)
}
func (s ServerExchange) refID() string { return s.Ref }
