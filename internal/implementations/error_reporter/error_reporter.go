package errorreporter

import (
	e "blogapi/internal/core/domain/errors"
	"blogapi/internal/core/domain/logging"
	"context"

	"github.com/getsentry/sentry-go"
)

// Sentry reports errors as Sentry exceptions. With an unconfigured client
// (empty DSN) events are dropped.
type Sentry struct {
	hub *sentry.Hub
}

func NewSentry(hub *sentry.Hub) *Sentry {
	if hub == nil {
		panic(e.NewNilArgumentError("hub"))
	}
	return &Sentry{hub: hub}
}

func (r *Sentry) Report(ctx context.Context, err error, entries ...logging.LogEntry) {
	hub := r.hub
	if ctxHub := sentry.GetHubFromContext(ctx); ctxHub != nil {
		hub = ctxHub
	}
	hub.WithScope(func(scope *sentry.Scope) {
		for _, entry := range entries {
			scope.SetExtra(entry.Key, entry.Value)
		}
		hub.CaptureException(err)
	})
}
