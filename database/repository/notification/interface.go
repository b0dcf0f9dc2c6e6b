// File: database/repository/notification/interface.go
package notificationRepo

import (
	"context"
	"fmt"

	"clinic/database"
	"clinic/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// NotificationRepository persists outbox notification records.
type NotificationRepository interface {
	Insert(ctx context.Context, n models.Notification) error
}

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo constructs a new MongoDB NotificationRepository.
func NewMongoNotificationRepo() NotificationRepository {
	db := database.MongoClient.Database("clinic")
	return &mongoNotificationRepo{
		coll: db.Collection("notifications"),
	}
}

func (repo *mongoNotificationRepo) Insert(ctx context.Context, n models.Notification) error {
	if _, err := repo.coll.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}
