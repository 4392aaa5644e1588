package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/coffersTech/txnlog"
)

func main() {
	sink := txnlog.NewGologSink(nil)

	// Immediate mode: every accepted record is durable before the logging
	// call returns. Suits short-lived request handling.
	reqLog := txnlog.New(txnlog.Options{Immediate: true, Sink: sink})
	_ = reqLog.Info(txnlog.Message{Text: "handling checkout", Ref: "req-1001"})

	req, _ := http.NewRequest(http.MethodPost, "https://rates.example.com/v1/quote", strings.NewReader(`{"currency":"EUR"}`))
	req.Header.Set("Content-Type", "application/json")
	_ = reqLog.Info(txnlog.ClientExchange{Request: req, Ref: "req-1001"})

	// Deferred mode: buffer across external callouts, flush once the
	// blocking work completes.
	jobLog := txnlog.New(txnlog.Options{
		Sink: sink,
		Gate: txnlog.MinLevelGate{Min: txnlog.LevelWarn},
	})
	_ = jobLog.Info(txnlog.Message{Text: "suppressed below the gate", Ref: "job-7"})
	_ = jobLog.Error(txnlog.Failure{Err: errors.New("rate provider unavailable"), Ref: "job-7"})

	var reserved []string
	_ = jobLog.AssertOrLog(len(reserved) > 0, txnlog.Record{Message: "no stock reserved", ReferenceID: "job-7"})

	if err := jobLog.Flush(); err != nil {
		fmt.Println("flush failed:", err)
	}

	fmt.Printf("job stats: %+v\n", jobLog.Stats())
}
