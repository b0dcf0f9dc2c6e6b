// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"clinic/database"
	"clinic/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository exposes the recurring availability windows published
// for doctors, keyed by their ident staff identifiers.
type ScheduleRepository interface {
	// ResolveIdentities returns every ident staff identifier bound to the
	// given doctor. A doctor with no schedule resolves to an empty set.
	ResolveIdentities(ctx context.Context, doctorID string) ([]string, error)
	// GetOpenWindows returns open (is_available) windows for the given
	// identities within [from, to), sorted by date then start time.
	GetOpenWindows(ctx context.Context, identities []string, from, to string) ([]models.ScheduleWindow, error)
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.MongoClient.Database("clinic")
	return &mongoScheduleRepo{
		coll: db.Collection("doctor_schedule"),
	}
}
