package userRepo

import (
	"context"

	"pushhub/database"
	"pushhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines methods for panel user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) (string, error)
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByTokenHash retrieves a user by the hash of its current token.
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.User, error)
	// SetTokenHash stores the hash of the user's current token; an empty
	// hash revokes the session.
	SetTokenHash(ctx context.Context, id, tokenHash string) error
	// Delete removes a user record by its ID.
	Delete(ctx context.Context, id string) error
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo returns a new UserRepository instance using MongoDB.
func NewMongoUserRepo() UserRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &mongoUserRepo{coll: db.Collection("users")}
	if err := repo.ensureIndexes(); err != nil {
		panic(err)
	}
	return repo
}
