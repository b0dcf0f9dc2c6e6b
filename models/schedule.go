package models

// ScheduleWindow is one recurring availability row from the doctor schedule.
// A single doctor may be published under several ident staff identifiers;
// all of them contribute to that doctor's availability.
type ScheduleWindow struct {
	DoctorID     string `bson:"doctor_id" json:"doctor_id"`
	IdentStaffID string `bson:"ident_staff_id" json:"ident_staff_id"`
	Date         string `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time         string `bson:"time" json:"time"` // "HH:MM-HH:MM"
	IsAvailable  bool   `bson:"is_available" json:"is_available"`
}
