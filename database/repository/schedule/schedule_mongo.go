package scheduleRepo

import (
	"context"
	"fmt"

	"clinic/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *mongoScheduleRepo) ResolveIdentities(ctx context.Context, doctorID string) ([]string, error) {
	raw, err := repo.coll.Distinct(ctx, "ident_staff_id", bson.M{"doctor_id": doctorID})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve ident staff ids for doctor %s: %w", doctorID, err)
	}

	identities := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			identities = append(identities, s)
		}
	}
	return identities, nil
}

func (repo *mongoScheduleRepo) GetOpenWindows(ctx context.Context, identities []string, from, to string) ([]models.ScheduleWindow, error) {
	filter := bson.M{
		"ident_staff_id": bson.M{"$in": identities},
		"date":           bson.M{"$gte": from, "$lt": to},
		"is_available":   true,
	}
	// Sort is for deterministic results, not correctness.
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})

	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule windows: %w", err)
	}
	defer cursor.Close(ctx)

	var windows []models.ScheduleWindow
	if err := cursor.All(ctx, &windows); err != nil {
		return nil, fmt.Errorf("failed to decode schedule windows: %w", err)
	}
	return windows, nil
}
