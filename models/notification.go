package models

import "time"

// Notification is an outbox record produced by the reminder worker.
// Delivery channels (push, SMS) consume this collection downstream.
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id,omitempty" json:"user_id,omitempty"`
	BookingID string    `bson:"booking_id" json:"booking_id"`
	Title     string    `bson:"title" json:"title"`
	Body      string    `bson:"body" json:"body"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// ReminderPayload is the asynq task payload for appointment reminders.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	DoctorID  string `json:"doctorId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}
