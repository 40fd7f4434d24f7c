package queue

import (
	"time"

	"github.com/hibiken/asynq"

	"scribverse-backend/internal/shared"
	"scribverse-backend/pkg/logger"
)

// Scheduler registers the periodic background jobs.
type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddr, redisPassword string) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddr, Password: redisPassword},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{scheduler: scheduler}
}

// RegisterJobs wires every cron job. Called once at worker startup.
func (s *Scheduler) RegisterJobs() error {
	return s.registerRefreshTrendingTopicsJob()
}

// Refresh trending topics daily at 6 AM UTC, before the morning traffic,
// so the first reader of the day gets a warm cache.
func (s *Scheduler) registerRefreshTrendingTopicsJob() error {
	task := asynq.NewTask(shared.TypeRefreshTrendingTopics, nil)

	_, err := s.scheduler.Register(
		"0 6 * * *",
		task,
		asynq.Queue(shared.QueueDefault),
		asynq.MaxRetry(2),
		asynq.Timeout(2*time.Minute),
	)
	if err != nil {
		logger.Error("register RefreshTrendingTopics job", err)
		return err
	}

	logger.Info("registered RefreshTrendingTopics: daily at 6 AM UTC", nil)
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
