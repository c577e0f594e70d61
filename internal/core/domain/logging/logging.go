package logging

import (
	"context"
	"errors"
)

type LogEntry struct {
	Key   string
	Value interface{}
}

func Entry(k string, v interface{}) LogEntry {
	return LogEntry{Key: k, Value: v}
}

type Logger interface {
	Debug(ctx context.Context, msg string, entries ...LogEntry)
	Info(ctx context.Context, msg string, entries ...LogEntry)
	Warning(ctx context.Context, msg string, entries ...LogEntry)
	Error(ctx context.Context, msg string, entries ...LogEntry)
}

// ErrorReporter delivers failures to an operator-visible channel.
type ErrorReporter interface {
	Report(ctx context.Context, err error, entries ...LogEntry)
}

// Error logs err at error level unless the context has been canceled,
// in which case a warning is enough.
func Error(ctx context.Context, log Logger, err error, entries ...LogEntry) {
	entries = append(entries, Entry("err", err))
	if errors.Is(err, context.Canceled) {
		log.Warning(ctx, "Operation canceled.", entries...)
		return
	}
	log.Error(ctx, "Unexpected error occurred.", entries...)
}
