package logging

import (
	"context"
	"sync"
)

const (
	DEBUG   = "DEBUG"
	INFO    = "INFO"
	WARNING = "WARNING"
	ERROR   = "ERROR"
)

type FakeLoggerRecord struct {
	Level   string
	Msg     string
	Entries []LogEntry
}

type FakeLogger struct {
	Logged []FakeLoggerRecord
	lock   sync.RWMutex
}

func NewFakeLogger() *FakeLogger {
	return &FakeLogger{}
}

func (l *FakeLogger) Debug(ctx context.Context, msg string, entries ...LogEntry) {
	l.log(DEBUG, msg, entries...)
}

func (l *FakeLogger) Info(ctx context.Context, msg string, entries ...LogEntry) {
	l.log(INFO, msg, entries...)
}

func (l *FakeLogger) Warning(ctx context.Context, msg string, entries ...LogEntry) {
	l.log(WARNING, msg, entries...)
}

func (l *FakeLogger) Error(ctx context.Context, msg string, entries ...LogEntry) {
	l.log(ERROR, msg, entries...)
}

func (l *FakeLogger) log(level string, msg string, entries ...LogEntry) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.Logged = append(l.Logged, FakeLoggerRecord{Level: level, Msg: msg, Entries: entries})
}

// Count returns the number of records logged at the given level.
func (l *FakeLogger) Count(level string) int {
	l.lock.RLock()
	defer l.lock.RUnlock()
	n := 0
	for _, r := range l.Logged {
		if r.Level == level {
			n++
		}
	}
	return n
}

// Values returns every logged entry value, for asserting that something was never logged.
func (l *FakeLogger) Values() []interface{} {
	l.lock.RLock()
	defer l.lock.RUnlock()
	values := make([]interface{}, 0)
	for _, r := range l.Logged {
		for _, e := range r.Entries {
			values = append(values, e.Value)
		}
	}
	return values
}

type FakeErrorReporter struct {
	Reported []error
	lock     sync.Mutex
}

func NewFakeErrorReporter() *FakeErrorReporter {
	return &FakeErrorReporter{}
}

func (r *FakeErrorReporter) Report(ctx context.Context, err error, entries ...LogEntry) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Reported = append(r.Reported, err)
}
