package postevents

import (
	e "blogapi/internal/core/domain/errors"
	"blogapi/internal/core/domain/logging"
	postevents "blogapi/internal/implementations/post_events"
	"net/http"

	"github.com/r3labs/sse/v2"
)

// Handler subscribes the client to the shared posts stream.
type Handler struct {
	log       logging.Logger
	sseServer *sse.Server
}

func New(
	log logging.Logger,
	sseServer *sse.Server,
) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	return &Handler{log: log, sseServer: sseServer}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	query.Set("stream", postevents.STREAM_ID)
	r.URL.RawQuery = query.Encode()

	go func() {
		<-r.Context().Done()
		h.log.Info(r.Context(), "Unsubscribed from post events.")
	}()

	h.log.Info(r.Context(), "Subscribed to post events.", logging.Entry("remoteAddr", r.RemoteAddr))
	h.sseServer.ServeHTTP(rw, r)
}
