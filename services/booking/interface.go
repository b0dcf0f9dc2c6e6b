// File: services/booking/interface.go
package booking

import (
	"context"

	"clinic/models"
)

// BookingService persists new appointments with write-time conflict
// detection. Computed availability is advisory; the race between two
// bookings for the same slot is resolved here, not at read time.
type BookingService interface {
	BookAppointment(ctx context.Context, req models.AppointmentRequest) ([]models.Appointment, error)
}
