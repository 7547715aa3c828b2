package consumers

import (
	"context"
	"onboarding/internal/app/deps"
	dl "onboarding/internal/core/domain/logging"
	emailrequested "onboarding/internal/rabbitmq/consumers/email_requested"
)

func initEmailRequestedConsumer(deps *deps.Deps) func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.RabbitmqEmailQueue
	if err := rabbitmqChannel.DeclareQueue(queue); err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}

	consumer := emailrequested.New(
		deps.Logger,
		rabbitmqChannel,
		queue,
		deps.EmailSender,
		deps.EmailSender,
	)
	done, err := consumer.Consume()
	if err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not start RabbitMQ consuming.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	deps.Logger.Info(context.Background(), "Consumer has started.", dl.Entry("queue", queue))
	return func() {
		rabbitmqChannel.Close()
		<-done
		deps.Logger.Info(context.Background(), "Consumer has stopped.", dl.Entry("queue", queue))
	}
}

func InitConsumers(deps *deps.Deps) func() {
	shutdownEmailRequestedConsumer := initEmailRequestedConsumer(deps)

	return func() {
		shutdownEmailRequestedConsumer()
	}
}
