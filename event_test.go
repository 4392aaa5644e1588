package txnlog

import (
	"testing"
)

func TestEventBatchRoundTrip(t *testing.T) {
	batch := []Event{
		{
			EventID:     "e-1",
			CallerID:    "svc.Handler",
			ReferenceID: "txn-1",
			Message:     "first",
			Level:       "INFO",
			UserID:      "user-1",
			Timestamp:   1700000000000000001,
		},
		{
			EventID:   "e-2",
			CallerID:  "svc.Handler",
			Message:   "second",
			Level:     "ERROR",
			UserID:    "user-1",
			Timestamp: 1700000000000000002,
		},
	}

	data, err := EncodeEventBatch(batch)
	if err != nil {
		t.Fatalf("EncodeEventBatch failed: %v", err)
	}

	decoded, err := DecodeEventBatch(data)
	if err != nil {
		t.Fatalf("DecodeEventBatch failed: %v", err)
	}
	if len(decoded) != len(batch) {
		t.Fatalf("expected %d events, got %d", len(batch), len(decoded))
	}
	for i := range batch {
		if decoded[i] != batch[i] {
			t.Errorf("event %d: expected %+v, got %+v", i, batch[i], decoded[i])
		}
	}
}

func TestDecodeEventSingleObject(t *testing.T) {
	data := []byte(`{"event_id":"e-9","message":"solo","level":"WARN","timestamp":7}`)

	events, err := DecodeEventBatch(data)
	if err != nil {
		t.Fatalf("DecodeEventBatch failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected a batch of one, got %d", len(events))
	}
	if events[0].Message != "solo" || events[0].Level != "WARN" || events[0].Timestamp != 7 {
		t.Errorf("unexpected event: %+v", events[0])
	}
}

func TestDecodeEventInvalid(t *testing.T) {
	if _, err := DecodeEvent([]byte("{not json")); err == nil {
		t.Error("expected parse error")
	}
	if _, err := DecodeEventBatch([]byte("[{]")); err == nil {
		t.Error("expected parse error")
	}
}

func TestEventRecordConversion(t *testing.T) {
	e := Event{
		CallerID:    "svc.Do",
		ReferenceID: "r-1",
		Message:     "m",
		Level:       "ERROR",
		UserID:      "u-1",
		Timestamp:   42,
	}
	rec := e.Record()
	if rec.Level != LevelError {
		t.Errorf("expected ERROR, got %v", rec.Level)
	}
	if rec.CallerID != "svc.Do" || rec.ReferenceID != "r-1" || rec.Message != "m" || rec.UserID != "u-1" || rec.Timestamp != 42 {
		t.Errorf("unexpected record: %+v", rec)
	}
}
