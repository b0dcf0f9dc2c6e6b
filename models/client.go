package models

import "time"

// Client represents a clinic patient profile.
type Client struct {
	UserID       string    `bson:"user_id" json:"user_id"`
	FullName     string    `bson:"full_name" json:"full_name"`
	Phone        string    `bson:"phone" json:"phone"`
	BirthDate    string    `bson:"birth_date" json:"birth_date"`
	ClientCode   string    `bson:"client_code" json:"client_code"`
	RefCode      string    `bson:"ref_code,omitempty" json:"ref_code,omitempty"`
	BonusBalance int       `bson:"bonus_balance" json:"bonus_balance"`
	Role         string    `bson:"role" json:"role"`
	RegDate      time.Time `bson:"reg_date" json:"reg_date"`
}
