package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "clinic/database/repository/appointment"
	"clinic/models"
	"clinic/services/tasks"
	"clinic/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DefaultBookingService is the production booking writer front end.
type DefaultBookingService struct {
	Repo     appointmentRepo.AppointmentRepository
	Reminder *asynq.Client // nil disables reminder scheduling
}

func (s *DefaultBookingService) BookAppointment(ctx context.Context, req models.AppointmentRequest) ([]models.Appointment, error) {
	logger := utils.GetLogger()

	if req.DoctorID == "" {
		return nil, NewValidationError("doctor_id required")
	}
	if req.Date == "" {
		return nil, NewValidationError("date required")
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, NewValidationError("invalid date, expected YYYY-MM-DD")
	}
	if req.Time == "" {
		return nil, NewValidationError("time required")
	}
	if len(req.Items) == 0 {
		return nil, NewValidationError("at least one line item required")
	}
	for _, item := range req.Items {
		if item.Name == "" {
			return nil, NewValidationError("line item name required")
		}
	}

	status := req.Status
	if status == "" {
		status = models.AppointmentStatusActive
	}

	// One record per line item, all under the same booking transaction.
	now := time.Now()
	bookingID := uuid.New().String()
	records := make([]models.Appointment, 0, len(req.Items))
	for _, item := range req.Items {
		records = append(records, models.Appointment{
			ID:          uuid.New().String(),
			BookingID:   bookingID,
			DoctorID:    req.DoctorID,
			Date:        req.Date,
			Time:        req.Time,
			ServiceID:   item.ServiceID,
			ServiceName: item.Name,
			Price:       item.Price,
			Status:      status,
			CreatedAt:   now,
		})
	}

	if err := s.Repo.CreateWithConflictCheck(ctx, records); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			logger.Info("booking conflict",
				zap.String("doctorID", req.DoctorID),
				zap.String("date", req.Date),
				zap.String("time", req.Time))
			return nil, &ConflictError{DoctorID: req.DoctorID, Date: req.Date, Time: req.Time}
		}
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.scheduleReminder(bookingID, req)

	logger.Info("booking confirmed",
		zap.String("bookingID", bookingID),
		zap.String("doctorID", req.DoctorID),
		zap.String("date", req.Date),
		zap.String("time", req.Time),
		zap.Int("items", len(records)))
	return records, nil
}

// scheduleReminder enqueues a reminder an hour before the appointment.
// Best-effort: a queue failure never fails the booking.
func (s *DefaultBookingService) scheduleReminder(bookingID string, req models.AppointmentRequest) {
	if s.Reminder == nil {
		return
	}
	logger := utils.GetLogger()

	startAt, err := time.ParseInLocation("2006-01-02 15:04", req.Date+" "+req.Time, time.Local)
	if err != nil {
		logger.Warn("skipping reminder for unparseable start time",
			zap.String("bookingID", bookingID), zap.Error(err))
		return
	}

	payload := models.ReminderPayload{
		BookingID: bookingID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Time:      req.Time,
	}
	task, opts, err := tasks.NewReminderTask(payload, startAt.Add(-time.Hour))
	if err != nil {
		logger.Warn("failed to build reminder task", zap.String("bookingID", bookingID), zap.Error(err))
		return
	}
	if _, err := s.Reminder.Enqueue(task, opts...); err != nil {
		logger.Warn("failed to enqueue reminder", zap.String("bookingID", bookingID), zap.Error(err))
	}
}
