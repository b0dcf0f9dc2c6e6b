package appointmentRepo

import (
	"context"
	"errors"
	"fmt"

	"clinic/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (repo *mongoAppointmentRepo) CreateWithConflictCheck(ctx context.Context, records []models.Appointment) error {
	if len(records) == 0 {
		return errors.New("no appointment records to insert")
	}
	head := records[0]

	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		filter := bson.M{
			"doctor_id": head.DoctorID,
			"date":      head.Date,
			"time":      head.Time,
			"status":    bson.M{"$nin": models.TerminalAppointmentStatuses},
		}
		count, err := repo.coll.CountDocuments(sc, filter)
		if err != nil {
			return fmt.Errorf("conflict check failed: %w", err)
		}
		if count > 0 {
			return ErrSlotTaken
		}

		docs := make([]interface{}, 0, len(records))
		for _, rec := range records {
			docs = append(docs, rec)
		}
		if _, err := repo.coll.InsertMany(sc, docs); err != nil {
			return fmt.Errorf("insert appointments failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrSlotTaken) {
			return ErrSlotTaken
		}
		return fmt.Errorf("appointment transaction failed: %w", err)
	}

	return nil
}
