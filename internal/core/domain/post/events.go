package post

import "context"

type EventType string

const (
	EventCreated EventType = "post-created"
	EventUpdated EventType = "post-updated"
	EventDeleted EventType = "post-deleted"
)

type Event struct {
	Type EventType
	Post Post
}

type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}
