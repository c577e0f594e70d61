package main

import (
	"blogapi/internal/app/deps"
	"blogapi/internal/app/services"
	"blogapi/internal/core/domain/logging"
	purgeexpiredpasswordresets "blogapi/internal/core/services/purge_expired_password_resets"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	log := deps.Logger
	defer shutdownDeps()

	services := services.InitServices(deps)

	ticker := time.NewTicker(deps.Config.PasswordResetPurgePeriod)
	defer ticker.Stop()

	stopCh, closeCh := createChannel()
	defer closeCh()

	log.Info(
		context.Background(),
		"Starting periodic password reset cleanup.",
		logging.Entry("periodSeconds", deps.Config.PasswordResetPurgePeriod.Seconds()),
		logging.Entry("tokenTTLMinutes", deps.Config.PasswordResetTokenTTLMinutes),
	)

loop:
	for {
		select {
		case <-stopCh:
			log.Info(context.Background(), "Stopping periodic password reset cleanup.")
			break loop
		case <-ticker.C:
			result, err := services.PurgeExpiredPasswordResets.Run(
				context.Background(),
				purgeexpiredpasswordresets.Input{},
			)
			if err != nil {
				log.Error(context.Background(), "Cleanup service returned an error.", logging.Entry("err", err))
				continue
			}
			log.Debug(context.Background(), "Cleanup tick finished.", logging.Entry("count", result.Count))
		}
	}
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
