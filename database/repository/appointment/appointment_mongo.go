package appointmentRepo

import (
	"context"
	"fmt"

	"clinic/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (repo *mongoAppointmentRepo) GetActiveByPeriod(ctx context.Context, doctorID, from, to string) ([]models.Appointment, error) {
	filter := bson.M{
		"doctor_id": doctorID,
		"date":      bson.M{"$gte": from, "$lt": to},
		"status":    bson.M{"$nin": models.TerminalAppointmentStatuses},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})

	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appointments, nil
}
