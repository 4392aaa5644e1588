package txnlog

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/valyala/fastjson"
)

// Event is the transient, wire-ready mirror of a Record handed to a Sink.
// The Sink is responsible for durably materializing accepted events; the
// decode helpers below let sink implementations reconstruct records from
// an encoded batch.
type Event struct {
	EventID     string `json:"event_id"`
	CallerID    string `json:"caller_id"`
	ReferenceID string `json:"reference_id,omitempty"`
	Message     string `json:"message"`
	Level       string `json:"level"`
	UserID      string `json:"user_id"`
	Timestamp   int64  `json:"timestamp"`
}

// Record converts the event back to its record form.
func (e Event) Record() Record {
	return Record{
		CallerID:    e.CallerID,
		ReferenceID: e.ReferenceID,
		Message:     e.Message,
		Level:       ParseLevel(e.Level),
		UserID:      e.UserID,
		Timestamp:   e.Timestamp,
	}
}

// EncodeEventBatch renders a batch as a JSON array: [ {}, {}, {} ]
func EncodeEventBatch(events []Event) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, e := range events {
		if i > 0 {
			buf.WriteByte(',')
		}
		data, err := json.Marshal(e)
		if err != nil {
			return nil, errors.Wrap(err, "encode event")
		}
		buf.Write(data)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

var eventParsers fastjson.ParserPool

// DecodeEvent parses a single encoded event.
func DecodeEvent(data []byte) (Event, error) {
	p := eventParsers.Get()
	defer eventParsers.Put(p)

	v, err := p.ParseBytes(data)
	if err != nil {
		return Event{}, errors.Wrap(err, "decode event")
	}
	return eventFromValue(v), nil
}

// DecodeEventBatch parses an encoded batch. A single object decodes as a
// batch of one, matching how ingest endpoints accept both shapes.
func DecodeEventBatch(data []byte) ([]Event, error) {
	p := eventParsers.Get()
	defer eventParsers.Put(p)

	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, errors.Wrap(err, "decode event batch")
	}

	if v.Type() != fastjson.TypeArray {
		return []Event{eventFromValue(v)}, nil
	}

	arr, _ := v.Array()
	events := make([]Event, 0, len(arr))
	for _, val := range arr {
		events = append(events, eventFromValue(val))
	}
	return events, nil
}

func eventFromValue(v *fastjson.Value) Event {
	return Event{
		EventID:     string(v.GetStringBytes("event_id")),
		CallerID:    string(v.GetStringBytes("caller_id")),
		ReferenceID: string(v.GetStringBytes("reference_id")),
		Message:     string(v.GetStringBytes("message")),
		Level:       string(v.GetStringBytes("level")),
		UserID:      string(v.GetStringBytes("user_id")),
		Timestamp:   v.GetInt64("timestamp"),
	}
}
