package main

import (
	"context"
	"onboarding/internal/app/consumers"
	"onboarding/internal/app/deps"
	"os"
	"os/signal"
	"syscall"

	dl "onboarding/internal/core/domain/logging"
)

func main() {
	deps, shutdownDeps := deps.InitMailerDeps()
	defer shutdownDeps()

	shutdownConsumers := consumers.InitConsumers(deps)

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(stopCh)

	deps.Logger.Info(
		context.Background(),
		"Mailer has started.",
		dl.Entry("queue", deps.Config.RabbitmqEmailQueue),
	)
	<-stopCh

	deps.Logger.Info(context.Background(), "Mailer is stopping gracefully.")
	shutdownConsumers()
	deps.Logger.Info(context.Background(), "Mailer has stopped.")
}
