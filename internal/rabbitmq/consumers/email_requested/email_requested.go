package emailrequested

import (
	"context"
	"onboarding/internal/core/domain/common"
	e "onboarding/internal/core/domain/errors"
	"onboarding/internal/core/domain/logging"
	"onboarding/internal/core/domain/token"
	"onboarding/internal/core/domain/user"
	"onboarding/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

type deliverySource interface {
	Consume(
		queue, consumer string,
		autoAck, exclusive, noLocal, noWait bool,
		args amqp091.Table,
	) (<-chan amqp091.Delivery, error)
}

// Consumer delivers queued token emails through the configured senders.
type Consumer struct {
	log                     logging.Logger
	channel                 deliverySource
	queue                   string
	confirmationTokenSender user.ConfirmationTokenSender
	resetTokenSender        user.ResetTokenSender
}

func New(
	log logging.Logger,
	channel deliverySource,
	queue string,
	confirmationTokenSender user.ConfirmationTokenSender,
	resetTokenSender user.ResetTokenSender,
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
	if confirmationTokenSender == nil {
		panic(e.NewNilArgumentError("confirmationTokenSender"))
	}
	if resetTokenSender == nil {
		panic(e.NewNilArgumentError("resetTokenSender"))
	}

	return &Consumer{
		log:                     log,
		channel:                 channel,
		queue:                   queue,
		confirmationTokenSender: confirmationTokenSender,
		resetTokenSender:        resetTokenSender,
	}
}

// Consume starts a goroutine that handles deliveries until the channel is closed.
// The returned channel is closed when that goroutine exits.
func (c *Consumer) Consume() (<-chan struct{}, error) {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		c.log.Error(context.Background(), "Could not start consuming.", logging.Entry("err", err))
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for delivery := range deliveries {
			c.handleDelivery(delivery)
		}
	}()
	return done, nil
}

func (c *Consumer) handleDelivery(delivery amqp091.Delivery) {
	ctx := context.Background()

	msg := &schema.Email{}
	if err := msg.Unmarshal(delivery.Body); err != nil {
		c.log.Error(
			ctx,
			"Could not unmarshal email message.",
			logging.Entry("err", err),
			logging.Entry("body", string(delivery.Body)),
		)
		c.Ack(delivery)
		return
	}

	if err := c.Handle(ctx, msg); err != nil {
		c.log.Error(
			ctx,
			"Could not send email, dropping the message.",
			logging.Entry("kind", msg.Kind),
			logging.Entry("email", msg.To),
			logging.Entry("err", err),
		)
		c.Nack(delivery)
		return
	}
	c.Ack(delivery)
}

// Handle sends a single email message through the sender matching its kind.
func (c *Consumer) Handle(ctx context.Context, msg *schema.Email) error {
	email := common.Email(msg.To)
	value := token.Value(msg.Token)

	switch msg.Kind {
	case schema.EmailConfirmation:
		if err := c.confirmationTokenSender.SendConfirmationToken(ctx, email, value); err != nil {
			return user.ErrSendConfirmationEmail.Wrap(err)
		}
	case schema.EmailPasswordReset:
		if err := c.resetTokenSender.SendPasswordResetToken(ctx, email, value); err != nil {
			return user.ErrSendResetPasswordEmail.Wrap(err)
		}
	default:
		return e.NewInvalidStateError("unknown email kind " + string(msg.Kind))
	}

	c.log.Info(ctx, "Email sent.", logging.Entry("kind", msg.Kind), logging.Entry("email", msg.To))
	return nil
}

func (c *Consumer) Ack(delivery amqp091.Delivery) {
	if err := delivery.Ack(false); err != nil {
		c.log.Error(context.Background(), "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}

func (c *Consumer) Nack(delivery amqp091.Delivery) {
	if err := delivery.Nack(false, false); err != nil {
		c.log.Error(context.Background(), "Could not NACK AMQP message.", logging.Entry("err", err))
	}
}
