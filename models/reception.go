package models

import "time"

// Reception is a busy interval from the legacy "ident" scheduling system.
// The table is owned by the external system and only read here.
type Reception struct {
	IdentStaffID string    `gorm:"column:id_staffs" json:"ident_staff_id"`
	PatientID    string    `gorm:"column:id_patients" json:"patient_id"`
	PlanStart    time.Time `gorm:"column:planstart" json:"plan_start"`
	PlanEnd      time.Time `gorm:"column:planend" json:"plan_end"`
}

// TableName maps Reception onto the legacy table.
func (Reception) TableName() string {
	return "ident_receptions"
}
