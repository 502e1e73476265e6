package notificationRepo

import (
	"context"
	"errors"
	"time"

	"pushhub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotificationNotFound is returned when no record matches the given ID.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrAlreadyFinalized is returned when a terminal record is finalized again.
	ErrAlreadyFinalized = errors.New("notification already finalized")
)

// Create inserts a new record. Status is forced to pending; counts other
// than the recipient snapshot start at zero.
func (r *mongoNotificationRepo) Create(ctx context.Context, notif *models.Notification) (string, error) {
	if notif.ID == "" {
		notif.ID = uuid.New().String()
	}
	notif.Status = models.NotificationStatusPending
	notif.SuccessCount = 0
	notif.FailureCount = 0
	notif.ErrorMessage = ""
	notif.CompletedAt = nil
	notif.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, notif); err != nil {
		return "", err
	}
	return notif.ID, nil
}

// GetByID returns a record by its ID.
func (r *mongoNotificationRepo) GetByID(ctx context.Context, id string) (*models.Notification, error) {
	var notif models.Notification
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&notif)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notif, nil
}

// GetAllByClientID fetches a client's records, newest first.
func (r *mongoNotificationRepo) GetAllByClientID(ctx context.Context, clientID string) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"clientId": clientID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifs []models.Notification
	if err := cursor.All(ctx, &notifs); err != nil {
		return nil, err
	}
	return notifs, nil
}

// MarkSent finalizes a pending record on the success path. The pending
// filter makes the transition one-way; a second finalization matches
// nothing and reports ErrAlreadyFinalized.
func (r *mongoNotificationRepo) MarkSent(ctx context.Context, id string, recipients, successes, failures int, completedAt time.Time) error {
	filter := bson.M{"id": id, "status": models.NotificationStatusPending}
	update := bson.M{"$set": bson.M{
		"status":         models.NotificationStatusSent,
		"recipientCount": recipients,
		"successCount":   successes,
		"failureCount":   failures,
		"completedAt":    completedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return r.finalizeMissError(ctx, id)
	}
	return nil
}

// MarkFailed finalizes a pending record when the dispatch could not run.
func (r *mongoNotificationRepo) MarkFailed(ctx context.Context, id string, errMsg string, completedAt time.Time) error {
	filter := bson.M{"id": id, "status": models.NotificationStatusPending}
	update := bson.M{"$set": bson.M{
		"status":       models.NotificationStatusFailed,
		"errorMessage": errMsg,
		"completedAt":  completedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return r.finalizeMissError(ctx, id)
	}
	return nil
}

// finalizeMissError distinguishes a missing record from one that was
// already finalized.
func (r *mongoNotificationRepo) finalizeMissError(ctx context.Context, id string) error {
	count, err := r.coll.CountDocuments(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNotificationNotFound
	}
	return ErrAlreadyFinalized
}

// Delete removes a record by ID.
func (r *mongoNotificationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// StatsByClientID aggregates totals across a client's finalized records.
func (r *mongoNotificationRepo) StatsByClientID(ctx context.Context, clientID string) (*models.NotificationStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"clientId": clientID}}},
		{{Key: "$group", Value: bson.M{
			"_id": nil,
			"totalSent": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", models.NotificationStatusSent}}, 1, 0,
			}}},
			"totalFailed": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", models.NotificationStatusFailed}}, 1, 0,
			}}},
			"totalSuccess":  bson.M{"$sum": "$successCount"},
			"totalFailures": bson.M{"$sum": "$failureCount"},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.NotificationStats
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return &models.NotificationStats{}, nil
	}
	return &results[0], nil
}
