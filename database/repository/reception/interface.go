// File: database/repository/reception/interface.go
package receptionRepo

import (
	"context"

	"clinic/database"
	"clinic/models"

	"gorm.io/gorm"
)

// ReceptionRepository reads busy intervals from the legacy "ident"
// scheduling system. We never write to that database.
type ReceptionRepository interface {
	// GetBusyIntervals returns receptions for the given identities whose
	// planned start falls within [from, to).
	GetBusyIntervals(ctx context.Context, identities []string, from, to string) ([]models.Reception, error)
}

type gormReceptionRepo struct {
	db *gorm.DB
}

// NewGormReceptionRepo constructs a ReceptionRepository over the legacy Postgres connection.
func NewGormReceptionRepo() ReceptionRepository {
	return &gormReceptionRepo{db: database.LegacyDB}
}
