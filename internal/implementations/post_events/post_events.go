package postevents

import (
	e "blogapi/internal/core/domain/errors"
	"blogapi/internal/core/domain/post"
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/r3labs/sse/v2"
)

const STREAM_ID = "posts"

// SSEPublisher broadcasts post events to every subscriber of the posts stream.
type SSEPublisher struct {
	sseServer *sse.Server
}

func NewSSE(sseServer *sse.Server) *SSEPublisher {
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	sseServer.CreateStream(STREAM_ID)
	return &SSEPublisher{sseServer: sseServer}
}

func (p *SSEPublisher) Publish(ctx context.Context, event post.Event) error {
	data, err := json.Marshal(encodeEvent(event))
	if err != nil {
		return err
	}
	p.sseServer.Publish(STREAM_ID, &sse.Event{
		Event: []byte(event.Type),
		Data:  data,
	})
	return nil
}

type postPayload struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type eventPayload struct {
	Type string      `json:"type"`
	Post postPayload `json:"post"`
}

func encodeEvent(event post.Event) eventPayload {
	p := postPayload{
		ID:        int64(event.Post.ID),
		UserID:    int64(event.Post.AuthorID),
		Title:     string(event.Post.Title),
		Content:   string(event.Post.Content),
		CreatedAt: event.Post.CreatedAt,
	}
	if event.Post.UpdatedAt.IsPresent {
		p.UpdatedAt = &event.Post.UpdatedAt.Value
	}
	return eventPayload{Type: string(event.Type), Post: p}
}
