package clientRepo

import (
	"context"

	"pushhub/database"
	"pushhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ClientRepository defines methods for tenant data access.
type ClientRepository interface {
	// Create inserts a new client record and returns its ID.
	Create(ctx context.Context, client *models.Client) (string, error)
	// GetByID retrieves a client by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Client, error)
	// GetAll retrieves all clients.
	GetAll(ctx context.Context) ([]models.Client, error)
	// Update modifies name/branding of an existing client.
	Update(ctx context.Context, client *models.Client) error
	// SetActive flips the active status of a client.
	SetActive(ctx context.Context, id string, active bool) error
	// Delete removes a client record by its ID.
	Delete(ctx context.Context, id string) error
}

type mongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo returns a new ClientRepository instance using MongoDB.
func NewMongoClientRepo() ClientRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &mongoClientRepo{coll: db.Collection("clients")}
	if err := repo.ensureIndexes(); err != nil {
		panic(err)
	}
	return repo
}
