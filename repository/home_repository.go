package repository

import (
	"context"

	"github.com/amirphl/Simorgh/models"
	"gorm.io/gorm"
)

// HomeRepositoryImpl implements HomeRepository
type HomeRepositoryImpl struct {
	*BaseRepository[models.Home, models.HomeFilter]
}

// NewHomeRepository creates a new home repository instance
func NewHomeRepository(db *gorm.DB) HomeRepository {
	return &HomeRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Home, models.HomeFilter](db),
	}
}

// ListByCustomer returns all homes owned by a customer
func (r *HomeRepositoryImpl) ListByCustomer(ctx context.Context, customerID uint) ([]*models.Home, error) {
	db := r.getDB(ctx)

	var homes []*models.Home
	err := db.Where("customer_id = ?", customerID).Order("id ASC").Find(&homes).Error
	if err != nil {
		return nil, err
	}

	return homes, nil
}

// applyFilter applies filter conditions to the GORM query
func (r *HomeRepositoryImpl) applyFilter(db *gorm.DB, filter models.HomeFilter) *gorm.DB {
	if filter.ID != nil {
		db = db.Where("id = ?", *filter.ID)
	}
	if filter.UUID != nil {
		db = db.Where("uuid = ?", *filter.UUID)
	}
	if filter.CustomerID != nil {
		db = db.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.Location != nil {
		db = db.Where("location = ?", *filter.Location)
	}
	return db
}

// ByFilter retrieves homes based on filter criteria
func (r *HomeRepositoryImpl) ByFilter(ctx context.Context, filter models.HomeFilter, orderBy string, limit, offset int) ([]*models.Home, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Home{}), filter)

	if orderBy == "" {
		orderBy = "id ASC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var homes []*models.Home
	if err := query.Find(&homes).Error; err != nil {
		return nil, err
	}

	return homes, nil
}

// Count returns the number of homes matching the filter
func (r *HomeRepositoryImpl) Count(ctx context.Context, filter models.HomeFilter) (int64, error) {
	db := r.getDB(ctx)

	var count int64
	err := r.applyFilter(db.Model(&models.Home{}), filter).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Exists checks if any home matching the filter exists
func (r *HomeRepositoryImpl) Exists(ctx context.Context, filter models.HomeFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
