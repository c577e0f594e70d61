package passwordresetrequested

import (
	"blogapi/internal/core/domain/logging"
	passwordreset "blogapi/internal/core/domain/password_reset"
	deliverpasswordreset "blogapi/internal/core/services/deliver_password_reset"
	"blogapi/internal/rabbitmq/schema"
	"context"
	"testing"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
)

type fakeAcknowledger struct {
	acked    []uint64
	multiple bool
}

func (a *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	a.acked = append(a.acked, tag)
	a.multiple = multiple
	return nil
}

func (a *fakeAcknowledger) Nack(tag uint64, multiple bool, requeue bool) error {
	return nil
}

func (a *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return nil
}

type testSuite struct {
	suite.Suite
	log          *logging.FakeLogger
	notifier     *passwordreset.FakeNotifier
	acknowledger *fakeAcknowledger
	consumer     *Consumer
}

func (s *testSuite) SetupTest() {
	s.log = logging.NewFakeLogger()
	s.notifier = passwordreset.NewFakeNotifier()
	s.acknowledger = &fakeAcknowledger{}
	s.consumer = &Consumer{
		log:   s.log,
		queue: "password-reset-requested",
		service: deliverpasswordreset.New(
			s.log,
			logging.NewFakeErrorReporter(),
			s.notifier,
		),
	}
}

func TestConsumerSuite(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) delivery(tag uint64, body []byte) amqp091.Delivery {
	return amqp091.Delivery{Acknowledger: s.acknowledger, DeliveryTag: tag, Body: body}
}

func (s *testSuite) TestMessageIsDelivered() {
	message := schema.PasswordResetRequested{Email: " A@X.test", Secret: "abc123"}
	body, err := message.Marshal()
	s.Require().Nil(err)

	s.consumer.handle(context.Background(), s.delivery(7, body))

	s.Equal(1, s.notifier.SentCount())
	s.EqualValues("a@x.test", s.notifier.LastSent().Email)
	s.Equal(passwordreset.Secret("abc123"), s.notifier.LastSent().Secret)
	s.Equal([]uint64{7}, s.acknowledger.acked)
	s.False(s.acknowledger.multiple)
}

func (s *testSuite) TestMalformedMessageIsAcked() {
	s.consumer.handle(context.Background(), s.delivery(3, []byte("{not json")))

	s.Equal(0, s.notifier.SentCount())
	s.Equal([]uint64{3}, s.acknowledger.acked)
	s.Equal(1, s.log.Count(logging.ERROR))
}

func (s *testSuite) TestFailedDeliveryIsAcked() {
	s.notifier.ReturnError = true
	body, err := (&schema.PasswordResetRequested{Email: "a@x.test", Secret: "abc123"}).Marshal()
	s.Require().Nil(err)

	s.consumer.handle(context.Background(), s.delivery(9, body))

	s.Equal([]uint64{9}, s.acknowledger.acked)
	for _, v := range s.log.Values() {
		s.NotEqual("abc123", v)
		s.NotEqual(passwordreset.Secret("abc123"), v)
	}
}
