package subscriptionRepo

import (
	"context"
	"errors"
	"time"

	"pushhub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrSubscriptionNotFound is returned when no subscription matches the lookup.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// Upsert stores the subscription keyed by (clientId, endpoint). A
// re-subscribe refreshes keys and metadata on the existing record instead
// of creating a duplicate.
func (r *mongoSubscriptionRepo) Upsert(ctx context.Context, sub *models.Subscription) (*models.Subscription, error) {
	filter := bson.M{"clientId": sub.ClientID, "endpoint": sub.Endpoint}
	update := bson.M{
		"$set": bson.M{
			"p256dh":    sub.P256dh,
			"auth":      sub.Auth,
			"domain":    sub.Domain,
			"userAgent": sub.UserAgent,
		},
		"$setOnInsert": bson.M{
			"id":           uuid.New().String(),
			"clientId":     sub.ClientID,
			"endpoint":     sub.Endpoint,
			"subscribedAt": time.Now(),
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored models.Subscription
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored); err != nil {
		return nil, err
	}
	return &stored, nil
}

// GetAllByClientID returns the full current subscription set of a client.
func (r *mongoSubscriptionRepo) GetAllByClientID(ctx context.Context, clientID string) ([]models.Subscription, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"clientId": clientID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subs []models.Subscription
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// CountByClientID returns the number of subscriptions a client has.
func (r *mongoSubscriptionRepo) CountByClientID(ctx context.Context, clientID string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"clientId": clientID})
}

// DeleteByID removes a single subscription owned by the client.
func (r *mongoSubscriptionRepo) DeleteByID(ctx context.Context, clientID, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "clientId": clientID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrSubscriptionNotFound
	}
	return nil
}

// DeleteByIDs removes subscriptions in one batch delete and returns the
// number removed. An empty slice is a no-op.
func (r *mongoSubscriptionRepo) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := r.coll.DeleteMany(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByEndpoint removes the subscription matching (clientId, endpoint).
func (r *mongoSubscriptionRepo) DeleteByEndpoint(ctx context.Context, clientID, endpoint string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"clientId": clientID, "endpoint": endpoint})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrSubscriptionNotFound
	}
	return nil
}
