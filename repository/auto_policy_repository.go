package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/amirphl/Simorgh/models"
	"github.com/amirphl/Simorgh/utils"
	"gorm.io/gorm"
)

// AutoPolicyRepositoryImpl implements AutoPolicyRepository
type AutoPolicyRepositoryImpl struct {
	*BaseRepository[models.AutoPolicy, models.AutoPolicyFilter]
}

// NewAutoPolicyRepository creates a new auto policy repository instance
func NewAutoPolicyRepository(db *gorm.DB) AutoPolicyRepository {
	return &AutoPolicyRepositoryImpl{
		BaseRepository: NewBaseRepository[models.AutoPolicy, models.AutoPolicyFilter](db),
	}
}

// ListByCustomer returns all auto policies for a customer, newest first
func (r *AutoPolicyRepositoryImpl) ListByCustomer(ctx context.Context, customerID uint) ([]*models.AutoPolicy, error) {
	return r.ByFilter(ctx, models.AutoPolicyFilter{CustomerID: &customerID}, "id DESC", 0, 0)
}

// ListActiveByCustomer returns the customer's auto policies that are in force
func (r *AutoPolicyRepositoryImpl) ListActiveByCustomer(ctx context.Context, customerID uint) ([]*models.AutoPolicy, error) {
	return r.ByFilter(ctx, models.AutoPolicyFilter{
		CustomerID: &customerID,
		Active:     utils.ToPtr(true),
	}, "id DESC", 0, 0)
}

// UpdateStatus updates a policy's active flag, optionally moving its end date
func (r *AutoPolicyRepositoryImpl) UpdateStatus(ctx context.Context, id uint, active bool, endDate *time.Time) error {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	updates := map[string]any{"active": active}
	if endDate != nil {
		updates["end_date"] = *endDate
	}

	err = db.Model(&models.AutoPolicy{}).Where("id = ?", id).Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to update auto policy status: %w", err)
	}

	return nil
}

// ListExpiredActive returns active auto policies whose term ended before asOf
func (r *AutoPolicyRepositoryImpl) ListExpiredActive(ctx context.Context, asOf time.Time) ([]*models.AutoPolicy, error) {
	return r.ByFilter(ctx, models.AutoPolicyFilter{
		Active:     utils.ToPtr(true),
		EndsBefore: &asOf,
	}, "end_date ASC", 0, 0)
}

// applyFilter applies filter conditions to the GORM query
func (r *AutoPolicyRepositoryImpl) applyFilter(db *gorm.DB, filter models.AutoPolicyFilter) *gorm.DB {
	if filter.ID != nil {
		db = db.Where("id = ?", *filter.ID)
	}
	if filter.UUID != nil {
		db = db.Where("uuid = ?", *filter.UUID)
	}
	if filter.CustomerID != nil {
		db = db.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.VehicleID != nil {
		db = db.Where("vehicle_id = ?", *filter.VehicleID)
	}
	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}
	if filter.EndsBefore != nil {
		db = db.Where("end_date < ?", *filter.EndsBefore)
	}
	return db
}

// ByFilter retrieves auto policies based on filter criteria
func (r *AutoPolicyRepositoryImpl) ByFilter(ctx context.Context, filter models.AutoPolicyFilter, orderBy string, limit, offset int) ([]*models.AutoPolicy, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.AutoPolicy{}), filter)

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

	var policies []*models.AutoPolicy
	if err := query.Find(&policies).Error; err != nil {
		return nil, err
	}

	return policies, nil
}

// Count returns the number of auto policies matching the filter
func (r *AutoPolicyRepositoryImpl) Count(ctx context.Context, filter models.AutoPolicyFilter) (int64, error) {
	db := r.getDB(ctx)

	var count int64
	err := r.applyFilter(db.Model(&models.AutoPolicy{}), filter).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Exists checks if any auto policy matching the filter exists
func (r *AutoPolicyRepositoryImpl) Exists(ctx context.Context, filter models.AutoPolicyFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
