package repository

import (
	"context"
	"time"

	"github.com/amirphl/Simorgh/models"
	"gorm.io/gorm"
)

// AccidentRepositoryImpl implements AccidentRepository
type AccidentRepositoryImpl struct {
	*BaseRepository[models.Accident, models.AccidentFilter]
}

// NewAccidentRepository creates a new accident repository instance
func NewAccidentRepository(db *gorm.DB) AccidentRepository {
	return &AccidentRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Accident, models.AccidentFilter](db),
	}
}

// ListByCustomer returns all accident records for a customer
func (r *AccidentRepositoryImpl) ListByCustomer(ctx context.Context, customerID uint) ([]*models.Accident, error) {
	db := r.getDB(ctx)

	var accidents []*models.Accident
	err := db.Where("customer_id = ?", customerID).Order("date DESC").Find(&accidents).Error
	if err != nil {
		return nil, err
	}

	return accidents, nil
}

// CountSince counts a customer's accidents strictly after the given date
func (r *AccidentRepositoryImpl) CountSince(ctx context.Context, customerID uint, since time.Time) (int64, error) {
	db := r.getDB(ctx)

	var count int64
	err := db.Model(&models.Accident{}).
		Where("customer_id = ? AND date > ?", customerID, since).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// applyFilter applies filter conditions to the GORM query
func (r *AccidentRepositoryImpl) applyFilter(db *gorm.DB, filter models.AccidentFilter) *gorm.DB {
	if filter.ID != nil {
		db = db.Where("id = ?", *filter.ID)
	}
	if filter.CustomerID != nil {
		db = db.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.After != nil {
		db = db.Where("date >= ?", *filter.After)
	}
	if filter.Before != nil {
		db = db.Where("date <= ?", *filter.Before)
	}
	return db
}

// ByFilter retrieves accidents based on filter criteria
func (r *AccidentRepositoryImpl) ByFilter(ctx context.Context, filter models.AccidentFilter, orderBy string, limit, offset int) ([]*models.Accident, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Accident{}), filter)

	if orderBy == "" {
		orderBy = "date DESC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var accidents []*models.Accident
	if err := query.Find(&accidents).Error; err != nil {
		return nil, err
	}

	return accidents, nil
}

// Count returns the number of accidents matching the filter
func (r *AccidentRepositoryImpl) Count(ctx context.Context, filter models.AccidentFilter) (int64, error) {
	db := r.getDB(ctx)

	var count int64
	err := r.applyFilter(db.Model(&models.Accident{}), filter).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Exists checks if any accident matching the filter exists
func (r *AccidentRepositoryImpl) Exists(ctx context.Context, filter models.AccidentFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
