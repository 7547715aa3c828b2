package emailqueue

import (
	"context"
	c "onboarding/internal/core/domain/common"
	e "onboarding/internal/core/domain/errors"
	"onboarding/internal/core/domain/logging"
	"onboarding/internal/core/domain/token"
	"onboarding/internal/rabbitmq/schema"

	amqp "github.com/rabbitmq/amqp091-go"
)

type publisher interface {
	PublishWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp.Publishing,
	) error
}

// Publisher queues token emails for the mailer process.
type Publisher struct {
	log     logging.Logger
	channel publisher
	queue   string
}

func New(log logging.Logger, channel publisher, queue string) *Publisher {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue must not be empty")
	}
	return &Publisher{log: log, channel: channel, queue: queue}
}

func (p *Publisher) SendConfirmationToken(ctx context.Context, email c.Email, t token.Value) error {
	return p.publish(ctx, schema.Email{Kind: schema.EmailConfirmation, To: string(email), Token: string(t)})
}

func (p *Publisher) SendPasswordResetToken(ctx context.Context, email c.Email, t token.Value) error {
	return p.publish(ctx, schema.Email{Kind: schema.EmailPasswordReset, To: string(email), Token: string(t)})
}

func (p *Publisher) publish(ctx context.Context, msg schema.Email) error {
	body, err := msg.Marshal()
	if err != nil {
		p.log.Error(ctx, "Could not marshal email message.", logging.Entry("err", err))
		return err
	}

	err = p.channel.PublishWithContext(
		ctx,
		"",
		p.queue,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		p.log.Error(
			ctx,
			"Could not publish email message.",
			logging.Entry("queue", p.queue),
			logging.Entry("kind", msg.Kind),
			logging.Entry("err", err),
		)
		return err
	}

	p.log.Info(
		ctx,
		"Email message published.",
		logging.Entry("queue", p.queue),
		logging.Entry("kind", msg.Kind),
		logging.Entry("email", msg.To),
	)
	return nil
}
