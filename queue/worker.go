package queue

import (
	"context"
	"encoding/json"
	"time"

	notificationRepo "pushhub/database/repository/notification"
	"pushhub/models"
	"pushhub/services/dispatch"
	"pushhub/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// StartDispatchWorker runs the asynq worker in the background. The worker
// is the error boundary for dispatches: nothing here propagates back to
// the HTTP request that queued the task.
func StartDispatchWorker(engine dispatch.Engine, notifs notificationRepo.NotificationRepository) {
	srv := asynq.NewServer(
		redisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeNotificationDispatch, handleDispatchTask(engine, notifs))

	go func() {
		logger := utils.GetLogger()
		logger.Info("Starting dispatch worker")

		const maxAttempts = 5
		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("Dispatch worker failed to start",
					zap.Int("attempt", attempts),
					zap.Int("maxAttempts", maxAttempts),
					zap.Error(err))
				if attempts == maxAttempts {
					logger.Fatal("Dispatch worker exhausted start attempts")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleDispatchTask loads the pending record and hands it to the engine.
// Task-level errors are logged and swallowed; the record's failed state is
// the only durable error surface.
func handleDispatchTask(engine dispatch.Engine, notifs notificationRepo.NotificationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		logger := utils.GetLogger()

		var p DispatchTaskPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			logger.Error("Malformed dispatch task payload", zap.Error(err))
			return nil
		}

		notif, err := notifs.GetByID(ctx, p.NotificationID)
		if err != nil {
			logger.Error("Queued notification record not found",
				zap.String("notificationId", p.NotificationID), zap.Error(err))
			return nil
		}
		if notif.Status != models.NotificationStatusPending {
			logger.Warn("Skipping already finalized notification",
				zap.String("notificationId", notif.ID),
				zap.String("status", notif.Status))
			return nil
		}

		engine.Dispatch(ctx, p.ClientID, *notif)
		return nil
	}
}
