package main

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"library-backend/internal/domains/circulation/job"
	"library-backend/pkg/container"
)

// startAsynqServer runs the task processor in a goroutine and returns the
// server for shutdown.
func startAsynqServer(c *container.Container) *asynq.Server {
	mux := asynq.NewServeMux()

	overdueScan := job.NewOverdueScanHandler(c.CirculationService)
	mux.HandleFunc(job.TypeOverdueScan, overdueScan.ProcessTask)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     c.Config.Redis.Host,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		},
		asynq.Config{
			Concurrency: c.Config.Worker.Concurrency,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).Msg("task failed")
			}),
		},
	)

	go func() {
		log.Info().Msg("worker starting")
		if err := srv.Run(mux); err != nil {
			log.Fatal().Err(err).Msg("worker failed")
		}
	}()

	return srv
}
