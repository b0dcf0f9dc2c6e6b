package models

// Doctor is the provider metadata shown in the catalog.
type Doctor struct {
	ID           int    `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	SpecialtyID  int    `bson:"specialty_id" json:"specialty_id"`
	IdentStaffID string `bson:"ident_staff_id" json:"ident_staff_id"`
	PhotoFileID  string `bson:"photo_file_id,omitempty" json:"photo_file_id,omitempty"`
}

// Specialty is a medical specialty (e.g. cardiology).
type Specialty struct {
	ID   int    `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// Service is a billable clinic service.
type Service struct {
	ID          int     `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Price       float64 `bson:"price" json:"price"`
	Duration    int     `bson:"duration" json:"duration"` // minutes
	ClinicID    int     `bson:"clinic_id" json:"clinic_id"`
	Category    string  `bson:"category,omitempty" json:"category,omitempty"`
	Section     string  `bson:"section,omitempty" json:"section,omitempty"`
	SpecialtyID int     `bson:"specialty_id" json:"specialty_id"`
}

// DoctorService links a doctor to a service they perform.
type DoctorService struct {
	DoctorID  int `bson:"doctor_id" json:"doctor_id"`
	ServiceID int `bson:"service_id" json:"service_id"`
}
