package main

import (
	"blogapi/internal/app/consumers"
	"blogapi/internal/app/deps"
	"blogapi/internal/app/services"
	"blogapi/internal/core/domain/logging"
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	log := deps.Logger
	defer shutdownDeps()

	services := services.InitServices(deps)
	shutdownConsumers := consumers.InitConsumers(deps, services)
	defer shutdownConsumers()

	stopCh, closeCh := createChannel()
	defer closeCh()

	log.Info(
		context.Background(),
		"Mailer is waiting for password reset messages.",
		logging.Entry("queue", deps.Config.PasswordResetQueue),
	)
	<-stopCh
	log.Info(context.Background(), "Stopping mailer.")
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
