package notificationRepo

import (
	"context"
	"time"

	"pushhub/database"
	"pushhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// NotificationRepository defines methods for notification record access.
// Records are created pending and finalized exactly once.
type NotificationRepository interface {
	// Create inserts a new record in pending state and returns its ID.
	Create(ctx context.Context, notif *models.Notification) (string, error)
	// GetByID retrieves a record by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Notification, error)
	// GetAllByClientID retrieves a client's records, newest first.
	GetAllByClientID(ctx context.Context, clientID string) ([]models.Notification, error)
	// MarkSent finalizes a pending record on the success path with the
	// per-subscriber outcome counts of the dispatch snapshot.
	MarkSent(ctx context.Context, id string, recipients, successes, failures int, completedAt time.Time) error
	// MarkFailed finalizes a pending record when the dispatch could not
	// run at all.
	MarkFailed(ctx context.Context, id string, errMsg string, completedAt time.Time) error
	// Delete removes a record by its ID (administrative deletion).
	Delete(ctx context.Context, id string) error
	// StatsByClientID aggregates delivery bookkeeping across a client's
	// finalized records.
	StatsByClientID(ctx context.Context, clientID string) (*models.NotificationStats, error)
}

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo returns a new NotificationRepository instance using MongoDB.
func NewMongoNotificationRepo() NotificationRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &mongoNotificationRepo{coll: db.Collection("notifications")}
	if err := repo.ensureIndexes(); err != nil {
		panic(err)
	}
	return repo
}
