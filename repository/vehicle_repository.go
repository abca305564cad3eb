package repository

import (
	"context"

	"github.com/amirphl/Simorgh/models"
	"gorm.io/gorm"
)

// VehicleRepositoryImpl implements VehicleRepository
type VehicleRepositoryImpl struct {
	*BaseRepository[models.Vehicle, models.VehicleFilter]
}

// NewVehicleRepository creates a new vehicle repository instance
func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &VehicleRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Vehicle, models.VehicleFilter](db),
	}
}

// ListByCustomer returns all vehicles owned by a customer
func (r *VehicleRepositoryImpl) ListByCustomer(ctx context.Context, customerID uint) ([]*models.Vehicle, error) {
	db := r.getDB(ctx)

	var vehicles []*models.Vehicle
	err := db.Where("customer_id = ?", customerID).Order("id ASC").Find(&vehicles).Error
	if err != nil {
		return nil, err
	}

	return vehicles, nil
}

// applyFilter applies filter conditions to the GORM query
func (r *VehicleRepositoryImpl) applyFilter(db *gorm.DB, filter models.VehicleFilter) *gorm.DB {
	if filter.ID != nil {
		db = db.Where("id = ?", *filter.ID)
	}
	if filter.UUID != nil {
		db = db.Where("uuid = ?", *filter.UUID)
	}
	if filter.CustomerID != nil {
		db = db.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.ModelYear != nil {
		db = db.Where("model_year = ?", *filter.ModelYear)
	}
	return db
}

// ByFilter retrieves vehicles based on filter criteria
func (r *VehicleRepositoryImpl) ByFilter(ctx context.Context, filter models.VehicleFilter, orderBy string, limit, offset int) ([]*models.Vehicle, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.Vehicle{}), filter)

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

	var vehicles []*models.Vehicle
	if err := query.Find(&vehicles).Error; err != nil {
		return nil, err
	}

	return vehicles, nil
}

// Count returns the number of vehicles matching the filter
func (r *VehicleRepositoryImpl) Count(ctx context.Context, filter models.VehicleFilter) (int64, error) {
	db := r.getDB(ctx)

	var count int64
	err := r.applyFilter(db.Model(&models.Vehicle{}), filter).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Exists checks if any vehicle matching the filter exists
func (r *VehicleRepositoryImpl) Exists(ctx context.Context, filter models.VehicleFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
