package models

import "time"

// Appointment statuses. Cancelled and rejected appointments are terminal
// and never block a slot.
const (
	AppointmentStatusActive    = "active"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusRejected  = "rejected"
)

// TerminalAppointmentStatuses lists statuses excluded from availability
// and conflict checks.
var TerminalAppointmentStatuses = []string{
	AppointmentStatusCancelled,
	AppointmentStatusRejected,
}

// Appointment is one persisted booking record. A booking with several line
// items produces several records sharing the same BookingID.
type Appointment struct {
	ID          string    `bson:"id" json:"id"`
	BookingID   string    `bson:"booking_id" json:"booking_id"`
	DoctorID    string    `bson:"doctor_id" json:"doctor_id"`
	Date        string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time        string    `bson:"time" json:"time"` // "HH:MM", implicit 30-minute duration
	ServiceID   int       `bson:"service_id" json:"service_id"`
	ServiceName string    `bson:"service_name" json:"service_name"`
	Price       float64   `bson:"price" json:"price"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// AppointmentLineItem is one service requested inside a booking.
type AppointmentLineItem struct {
	ServiceID int     `json:"service_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// AppointmentRequest is the booking input.
type AppointmentRequest struct {
	DoctorID string                `json:"doctor_id"`
	Date     string                `json:"date"`
	Time     string                `json:"time"`
	Status   string                `json:"status,omitempty"`
	Items    []AppointmentLineItem `json:"items"`
}
