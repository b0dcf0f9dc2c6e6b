// File: database/repository/client/interface.go
package clientRepo

import (
	"context"
	"errors"

	"clinic/database"
	"clinic/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no client exists for the given user id.
var ErrNotFound = errors.New("client not found")

// ClientRepository stores patient profiles.
type ClientRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.Client, error)
	// CreateIfAbsent inserts the client unless a profile with the same
	// user id already exists, then returns the stored profile either way.
	CreateIfAbsent(ctx context.Context, client models.Client) (*models.Client, error)
	UpdateProfile(ctx context.Context, userID, fullName, birthDate, phone string) error
}

type mongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo constructs a new MongoDB ClientRepository.
func NewMongoClientRepo() ClientRepository {
	db := database.MongoClient.Database("clinic")
	return &mongoClientRepo{
		coll: db.Collection("clients"),
	}
}
