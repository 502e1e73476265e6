package subscriptionRepo

import (
	"context"

	"pushhub/database"
	"pushhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SubscriptionRepository defines methods for push subscription data access.
type SubscriptionRepository interface {
	// Upsert creates the subscription, or updates the existing record when
	// the (clientId, endpoint) pair is already registered. Returns the
	// stored subscription.
	Upsert(ctx context.Context, sub *models.Subscription) (*models.Subscription, error)
	// GetAllByClientID returns the full current subscription set of a client.
	GetAllByClientID(ctx context.Context, clientID string) ([]models.Subscription, error)
	// CountByClientID returns the number of subscriptions a client has.
	CountByClientID(ctx context.Context, clientID string) (int64, error)
	// DeleteByID removes a single subscription owned by the client.
	DeleteByID(ctx context.Context, clientID, id string) error
	// DeleteByIDs removes subscriptions in one batch; used for
	// post-dispatch pruning of permanently failed endpoints.
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)
	// DeleteByEndpoint removes the subscription matching (clientId, endpoint);
	// used for explicit unsubscribe.
	DeleteByEndpoint(ctx context.Context, clientID, endpoint string) error
}

type mongoSubscriptionRepo struct {
	coll *mongo.Collection
}

// NewMongoSubscriptionRepo returns a new SubscriptionRepository instance using MongoDB.
func NewMongoSubscriptionRepo() SubscriptionRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &mongoSubscriptionRepo{coll: db.Collection("subscriptions")}
	if err := repo.ensureIndexes(); err != nil {
		panic(err)
	}
	return repo
}
