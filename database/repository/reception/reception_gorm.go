package receptionRepo

import (
	"context"
	"fmt"

	"clinic/models"
)

func (repo *gormReceptionRepo) GetBusyIntervals(ctx context.Context, identities []string, from, to string) ([]models.Reception, error) {
	var receptions []models.Reception
	err := repo.db.WithContext(ctx).
		Where("id_staffs IN ?", identities).
		Where("planstart >= ? AND planstart < ?", from, to).
		Find(&receptions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query legacy receptions: %w", err)
	}
	return receptions, nil
}
