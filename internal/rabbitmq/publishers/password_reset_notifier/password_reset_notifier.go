package passwordresetnotifier

import (
	c "blogapi/internal/core/domain/common"
	e "blogapi/internal/core/domain/errors"
	"blogapi/internal/core/domain/logging"
	passwordreset "blogapi/internal/core/domain/password_reset"
	"blogapi/internal/rabbitmq"
	"blogapi/internal/rabbitmq/schema"
	"context"

	"github.com/rabbitmq/amqp091-go"
)

type amqpPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// RabbitMQ queues reset secrets for the mailer instead of sending them inline.
type RabbitMQ struct {
	log       logging.Logger
	publisher amqpPublisher
	queue     string
}

func NewRabbitMQ(log logging.Logger, channel *rabbitmq.Channel, queue string) *RabbitMQ {
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	return newRabbitMQ(log, channel, queue)
}

func newRabbitMQ(log logging.Logger, publisher amqpPublisher, queue string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	return &RabbitMQ{log: log, publisher: publisher, queue: queue}
}

func (p *RabbitMQ) Notify(ctx context.Context, email c.Email, secret passwordreset.Secret) error {
	message := schema.PasswordResetRequested{Email: string(email), Secret: string(secret)}
	body, err := message.Marshal()
	if err != nil {
		return err
	}

	err = p.publisher.PublishWithContext(ctx, "", p.queue, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Transient,
		Body:         body,
	})
	if err != nil {
		logging.Error(ctx, p.log, err, logging.Entry("queue", p.queue))
		return err
	}
	p.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("queue", p.queue),
		logging.Entry("email", email),
	)
	return nil
}
