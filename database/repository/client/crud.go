package clientRepo

import (
	"context"
	"errors"
	"time"

	"pushhub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrClientNotFound is returned when no client matches the given ID.
var ErrClientNotFound = errors.New("client not found")

// Create inserts a new client record and returns its ID.
func (r *mongoClientRepo) Create(ctx context.Context, client *models.Client) (string, error) {
	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	client.CreatedAt = time.Now()
	client.UpdatedAt = client.CreatedAt

	if _, err := r.coll.InsertOne(ctx, client); err != nil {
		return "", err
	}
	return client.ID, nil
}

// GetByID returns a client by its ID.
func (r *mongoClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	var client models.Client
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&client)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

// GetAll returns all clients.
func (r *mongoClientRepo) GetAll(ctx context.Context) ([]models.Client, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// Update modifies name and branding of an existing client.
func (r *mongoClientRepo) Update(ctx context.Context, client *models.Client) error {
	update := bson.M{"$set": bson.M{
		"name":      client.Name,
		"logoUrl":   client.LogoURL,
		"updatedAt": time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": client.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrClientNotFound
	}
	return nil
}

// SetActive flips the active status of a client.
func (r *mongoClientRepo) SetActive(ctx context.Context, id string, active bool) error {
	update := bson.M{"$set": bson.M{"active": active, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrClientNotFound
	}
	return nil
}

// Delete removes a client record by ID.
func (r *mongoClientRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrClientNotFound
	}
	return nil
}
