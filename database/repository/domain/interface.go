package domainRepo

import (
	"context"

	"pushhub/database"
	"pushhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// DomainRepository defines methods for registered-origin data access.
type DomainRepository interface {
	// Create inserts a new domain record and returns its ID.
	Create(ctx context.Context, domain *models.Domain) (string, error)
	// GetByID retrieves a domain by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Domain, error)
	// GetAllByClientID retrieves all domains registered by one client.
	GetAllByClientID(ctx context.Context, clientID string) ([]models.Domain, error)
	// Delete removes a domain record by its ID.
	Delete(ctx context.Context, id string) error
}

type mongoDomainRepo struct {
	coll *mongo.Collection
}

// NewMongoDomainRepo returns a new DomainRepository instance using MongoDB.
func NewMongoDomainRepo() DomainRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &mongoDomainRepo{coll: db.Collection("domains")}
	if err := repo.ensureIndexes(); err != nil {
		panic(err)
	}
	return repo
}
