package repository

import (
	"context"
	"errors"

	"github.com/amirphl/Simorgh/models"
	"gorm.io/gorm"
)

// RiskFactorRepositoryImpl implements RiskFactorRepository
type RiskFactorRepositoryImpl struct {
	*BaseRepository[models.RiskFactorSnapshot, models.RiskFactorSnapshotFilter]
}

// NewRiskFactorRepository creates a new risk factor repository instance
func NewRiskFactorRepository(db *gorm.DB) RiskFactorRepository {
	return &RiskFactorRepositoryImpl{
		BaseRepository: NewBaseRepository[models.RiskFactorSnapshot, models.RiskFactorSnapshotFilter](db),
	}
}

// Latest returns the most recently inserted snapshot, or nil when the table
// is empty. Replacements insert new rows, so the newest row is the one in
// effect.
func (r *RiskFactorRepositoryImpl) Latest(ctx context.Context) (*models.RiskFactorSnapshot, error) {
	db := r.getDB(ctx)

	var snapshot models.RiskFactorSnapshot
	err := db.Order("id DESC").First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &snapshot, nil
}

// applyFilter applies filter conditions to the GORM query
func (r *RiskFactorRepositoryImpl) applyFilter(db *gorm.DB, filter models.RiskFactorSnapshotFilter) *gorm.DB {
	if filter.ID != nil {
		db = db.Where("id = ?", *filter.ID)
	}
	if filter.CreatedAfter != nil {
		db = db.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		db = db.Where("created_at <= ?", *filter.CreatedBefore)
	}
	return db
}

// ByFilter retrieves snapshots based on filter criteria
func (r *RiskFactorRepositoryImpl) ByFilter(ctx context.Context, filter models.RiskFactorSnapshotFilter, orderBy string, limit, offset int) ([]*models.RiskFactorSnapshot, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.RiskFactorSnapshot{}), filter)

	if orderBy == "" {
		orderBy = "id DESC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var snapshots []*models.RiskFactorSnapshot
	if err := query.Find(&snapshots).Error; err != nil {
		return nil, err
	}

	return snapshots, nil
}

// Count returns the number of snapshots matching the filter
func (r *RiskFactorRepositoryImpl) Count(ctx context.Context, filter models.RiskFactorSnapshotFilter) (int64, error) {
	db := r.getDB(ctx)

	var count int64
	err := r.applyFilter(db.Model(&models.RiskFactorSnapshot{}), filter).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Exists checks if any snapshot matching the filter exists
func (r *RiskFactorRepositoryImpl) Exists(ctx context.Context, filter models.RiskFactorSnapshotFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
