// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"errors"

	"clinic/database"
	"clinic/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned when the requested slot already carries an
// active appointment. The booking service surfaces it as a conflict.
var ErrSlotTaken = errors.New("appointment slot already taken")

// AppointmentRepository stores first-party appointment records.
type AppointmentRepository interface {
	// GetActiveByPeriod returns non-terminal appointments for the doctor
	// with dates in [from, to).
	GetActiveByPeriod(ctx context.Context, doctorID, from, to string) ([]models.Appointment, error)
	// CreateWithConflictCheck atomically verifies that no active appointment
	// exists for the same (doctor, date, time) and inserts all records.
	// All records must share the same doctor, date and time. Returns
	// ErrSlotTaken if the slot was already claimed; on any failure nothing
	// is inserted.
	CreateWithConflictCheck(ctx context.Context, records []models.Appointment) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database("clinic")
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
