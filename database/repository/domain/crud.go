package domainRepo

import (
	"context"
	"errors"
	"time"

	"pushhub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrDomainNotFound is returned when no domain matches the given ID.
	ErrDomainNotFound = errors.New("domain not found")
	// ErrDomainExists is returned when the (clientId, name) pair is already registered.
	ErrDomainExists = errors.New("domain already registered for this client")
)

// Create inserts a new domain record and returns its ID.
func (r *mongoDomainRepo) Create(ctx context.Context, domain *models.Domain) (string, error) {
	if domain.ID == "" {
		domain.ID = uuid.New().String()
	}
	domain.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, domain); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrDomainExists
		}
		return "", err
	}
	return domain.ID, nil
}

// GetByID returns a domain by its ID.
func (r *mongoDomainRepo) GetByID(ctx context.Context, id string) (*models.Domain, error) {
	var domain models.Domain
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&domain)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDomainNotFound
		}
		return nil, err
	}
	return &domain, nil
}

// GetAllByClientID fetches all domains registered by one client.
func (r *mongoDomainRepo) GetAllByClientID(ctx context.Context, clientID string) ([]models.Domain, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"clientId": clientID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var domains []models.Domain
	if err := cursor.All(ctx, &domains); err != nil {
		return nil, err
	}
	return domains, nil
}

// Delete removes a domain record by ID.
func (r *mongoDomainRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrDomainNotFound
	}
	return nil
}
