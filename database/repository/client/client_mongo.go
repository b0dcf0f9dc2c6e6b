package clientRepo

import (
	"context"
	"errors"
	"fmt"

	"clinic/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *mongoClientRepo) GetByUserID(ctx context.Context, userID string) (*models.Client, error) {
	var client models.Client
	err := repo.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&client)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch client %s: %w", userID, err)
	}
	return &client, nil
}

func (repo *mongoClientRepo) CreateIfAbsent(ctx context.Context, client models.Client) (*models.Client, error) {
	// Equivalent of INSERT ... ON CONFLICT DO NOTHING on user_id.
	filter := bson.M{"user_id": client.UserID}
	update := bson.M{"$setOnInsert": client}
	opts := options.Update().SetUpsert(true)
	if _, err := repo.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return nil, fmt.Errorf("failed to upsert client %s: %w", client.UserID, err)
	}
	return repo.GetByUserID(ctx, client.UserID)
}

func (repo *mongoClientRepo) UpdateProfile(ctx context.Context, userID, fullName, birthDate, phone string) error {
	update := bson.M{
		"$set": bson.M{
			"full_name":  fullName,
			"birth_date": birthDate,
			"phone":      phone,
		},
	}
	if _, err := repo.coll.UpdateOne(ctx, bson.M{"user_id": userID}, update); err != nil {
		return fmt.Errorf("failed to update client %s: %w", userID, err)
	}
	return nil
}
