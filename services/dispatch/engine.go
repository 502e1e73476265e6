package dispatch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pushhub/models"
	"pushhub/services/push"
	"pushhub/utils"

	"go.uber.org/zap"
)

// Dispatch sends one notification to every current subscriber of the
// client. The caller has already verified the client is active and has at
// least one subscriber; the subscription set is re-read here, so the final
// counts reflect the dispatch-time snapshot, which may differ from the
// count recorded at validation time.
//
// Per-subscriber delivery errors are contained here: they only affect that
// subscriber's outcome. Only an inability to run the dispatch at all
// (subscriber list unreadable, payload unbuildable) finalizes the record
// as failed.
func (e *DefaultDispatchEngine) Dispatch(ctx context.Context, clientID string, notif models.Notification) {
	logger := utils.GetLogger()

	subs, err := e.Subs.GetAllByClientID(ctx, clientID)
	if err != nil {
		e.fail(ctx, notif.ID, fmt.Errorf("failed to load subscriber list: %w", err))
		return
	}

	payload, err := BuildPayload(e.brandingIcon(ctx, clientID), notif)
	if err != nil {
		e.fail(ctx, notif.ID, fmt.Errorf("failed to build payload: %w", err))
		return
	}

	var (
		mu       sync.Mutex
		success  int
		failure  int
		goneSubs []string
	)

	// One attempt per subscriber, all concurrent, no retries. The join
	// below waits for every attempt to settle regardless of individual
	// failures; in-flight deliveries are never abandoned.
	var wg sync.WaitGroup
	for _, sub := range subs {
		wg.Add(1)
		go func(sub models.Subscription) {
			defer wg.Done()

			outcome, err := e.Deliverer.Deliver(ctx, sub, payload)

			mu.Lock()
			defer mu.Unlock()
			switch outcome {
			case push.OutcomeDelivered:
				success++
			case push.OutcomeGone:
				failure++
				goneSubs = append(goneSubs, sub.ID)
				logger.Info("Pruning dead push endpoint",
					zap.String("subscriptionId", sub.ID),
					zap.String("notificationId", notif.ID))
			default:
				failure++
				logger.Warn("Transient delivery failure, subscriber retained",
					zap.String("subscriptionId", sub.ID),
					zap.String("notificationId", notif.ID),
					zap.Error(err))
			}
		}(sub)
	}
	wg.Wait()

	if len(goneSubs) > 0 {
		removed, err := e.Subs.DeleteByIDs(ctx, goneSubs)
		if err != nil {
			logger.Error("Failed to prune dead subscriptions",
				zap.String("notificationId", notif.ID),
				zap.Int("count", len(goneSubs)),
				zap.Error(err))
		} else {
			logger.Info("Pruned dead subscriptions",
				zap.String("clientId", clientID),
				zap.Int64("removed", removed))
		}
	}

	if err := e.Notifs.MarkSent(ctx, notif.ID, len(subs), success, failure, time.Now()); err != nil {
		logger.Error("Failed to finalize notification record",
			zap.String("notificationId", notif.ID),
			zap.Error(err))
		return
	}

	logger.Info("Dispatch complete",
		zap.String("notificationId", notif.ID),
		zap.String("clientId", clientID),
		zap.Int("recipients", len(subs)),
		zap.Int("success", success),
		zap.Int("failure", failure))
}

// brandingIcon looks up the client's branding image for the payload icon.
// Branding is best-effort: a lookup failure degrades to an icon-less push.
func (e *DefaultDispatchEngine) brandingIcon(ctx context.Context, clientID string) string {
	client, err := e.Clients.GetByID(ctx, clientID)
	if err != nil {
		utils.GetLogger().Warn("Branding lookup failed, sending without icon",
			zap.String("clientId", clientID), zap.Error(err))
		return ""
	}
	return client.LogoURL
}

// fail finalizes the record as failed with the engine-level error. No
// partial success/failure counts are fabricated.
func (e *DefaultDispatchEngine) fail(ctx context.Context, notifID string, cause error) {
	logger := utils.GetLogger()
	logger.Error("Dispatch aborted", zap.String("notificationId", notifID), zap.Error(cause))

	if err := e.Notifs.MarkFailed(ctx, notifID, cause.Error(), time.Now()); err != nil {
		logger.Error("Failed to record dispatch failure",
			zap.String("notificationId", notifID), zap.Error(err))
	}
}
