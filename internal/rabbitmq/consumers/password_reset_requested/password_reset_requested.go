package passwordresetrequested

import (
	"blogapi/internal/core/domain/common"
	e "blogapi/internal/core/domain/errors"
	"blogapi/internal/core/domain/logging"
	passwordreset "blogapi/internal/core/domain/password_reset"
	"blogapi/internal/core/services"
	deliverpasswordreset "blogapi/internal/core/services/deliver_password_reset"
	"blogapi/internal/rabbitmq"
	"blogapi/internal/rabbitmq/schema"
	"context"

	"github.com/rabbitmq/amqp091-go"
)

type Consumer struct {
	log     logging.Logger
	channel *rabbitmq.Channel
	queue   string
	service services.Service[deliverpasswordreset.Input, deliverpasswordreset.Result]
}

func New(
	log logging.Logger,
	channel *rabbitmq.Channel,
	queue string,
	service services.Service[deliverpasswordreset.Input, deliverpasswordreset.Result],
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}

	return &Consumer{log: log, channel: channel, queue: queue, service: service}
}

func (c *Consumer) Consume() error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		c.log.Error(context.Background(), "Could not start consuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		for delivery := range deliveries {
			c.handle(context.Background(), delivery)
		}
	}()
	return nil
}

// handle acks every delivery. Failed deliveries are reported by the service
// and the user can request a new secret, so nothing is requeued.
func (c *Consumer) handle(ctx context.Context, delivery amqp091.Delivery) {
	defer c.Ack(delivery)

	message := &schema.PasswordResetRequested{}
	if err := message.Unmarshal(delivery.Body); err != nil {
		c.log.Error(
			ctx,
			"Could not unmarshal password reset message.",
			logging.Entry("err", err),
			logging.Entry("deliveryTag", delivery.DeliveryTag),
		)
		return
	}

	email := common.NewEmail(message.Email)
	c.log.Info(ctx, "Got password reset message.", logging.Entry("email", email))
	_, err := c.service.Run(
		ctx,
		deliverpasswordreset.Input{Email: email, Secret: passwordreset.Secret(message.Secret)},
	)
	if err != nil {
		c.log.Error(
			ctx,
			"Could not deliver password reset secret, service returned an error.",
			logging.Entry("email", email),
			logging.Entry("err", err),
		)
	}
}

func (c *Consumer) Ack(delivery amqp091.Delivery) {
	if err := delivery.Ack(false); err != nil {
		c.log.Error(context.Background(), "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}
