package main

import (
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"library-backend/internal/domains/circulation/job"
	"library-backend/pkg/container"
)

// startScheduler registers the cron entries and runs the scheduler in a
// goroutine.
func startScheduler(c *container.Container) *asynq.Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{
			Addr:     c.Config.Redis.Host,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		},
		&asynq.SchedulerOpts{
			Location: time.UTC,
		},
	)

	task, err := job.NewOverdueScanTask()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build overdue scan task")
	}

	_, err = scheduler.Register(
		c.Config.Worker.OverdueScanSchedule,
		task,
		asynq.MaxRetry(2),
		asynq.Timeout(5*time.Minute),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register overdue scan")
	}

	log.Info().
		Str("schedule", c.Config.Worker.OverdueScanSchedule).
		Msg("registered overdue scan")

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Fatal().Err(err).Msg("scheduler failed")
		}
	}()

	return scheduler
}
