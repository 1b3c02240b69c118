package mailer

import (
	"context"
	"log"
)

// LogSink writes the message to the process log instead of delivering it.
// It sits last in the chain so verification and reset tokens stay reachable
// by an operator when no real transport is available.
type LogSink struct{}

func NewLogSink() *LogSink {
	return &LogSink{}
}

func (l *LogSink) Name() string {
	return "log"
}

func (l *LogSink) Send(ctx context.Context, to, subject, htmlBody string) error {
	log.Printf("[WARN] mail not delivered, logging instead: to=%s subject=%q body=%q", to, subject, htmlBody)
	return nil
}
