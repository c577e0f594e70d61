package passwordresetnotifier

import (
	"blogapi/internal/core/domain/logging"
	"blogapi/internal/rabbitmq/schema"
	"context"
	"errors"
	"testing"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
)

type stubPublisher struct {
	exchange string
	key      string
	msg      amqp091.Publishing
	err      error
}

func (p *stubPublisher) PublishWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp091.Publishing,
) error {
	p.exchange = exchange
	p.key = key
	p.msg = msg
	return p.err
}

func TestNotifyPublishesTransientMessage(t *testing.T) {
	publisher := &stubPublisher{}
	log := logging.NewFakeLogger()
	notifier := newRabbitMQ(log, publisher, "password-reset-requested")

	err := notifier.Notify(context.Background(), "a@x.test", "abc123")

	assert := require.New(t)
	assert.Nil(err)
	assert.Equal("", publisher.exchange)
	assert.Equal("password-reset-requested", publisher.key)
	assert.Equal(amqp091.Transient, publisher.msg.DeliveryMode)
	assert.Equal("application/json", publisher.msg.ContentType)

	message := schema.PasswordResetRequested{}
	assert.Nil(message.Unmarshal(publisher.msg.Body))
	assert.Equal("a@x.test", message.Email)
	assert.Equal("abc123", message.Secret)

	for _, v := range log.Values() {
		assert.NotEqual("abc123", v)
	}
}

func TestNotifyReturnsPublishError(t *testing.T) {
	publisher := &stubPublisher{err: errors.New("channel closed")}
	log := logging.NewFakeLogger()
	notifier := newRabbitMQ(log, publisher, "password-reset-requested")

	err := notifier.Notify(context.Background(), "a@x.test", "abc123")

	assert := require.New(t)
	assert.EqualError(err, "channel closed")
	assert.Equal(1, log.Count(logging.ERROR))
}
