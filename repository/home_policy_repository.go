package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/amirphl/Simorgh/models"
	"github.com/amirphl/Simorgh/utils"
	"gorm.io/gorm"
)

// HomePolicyRepositoryImpl implements HomePolicyRepository
type HomePolicyRepositoryImpl struct {
	*BaseRepository[models.HomePolicy, models.HomePolicyFilter]
}

// NewHomePolicyRepository creates a new home policy repository instance
func NewHomePolicyRepository(db *gorm.DB) HomePolicyRepository {
	return &HomePolicyRepositoryImpl{
		BaseRepository: NewBaseRepository[models.HomePolicy, models.HomePolicyFilter](db),
	}
}

// ListByCustomer returns all home policies for a customer, newest first
func (r *HomePolicyRepositoryImpl) ListByCustomer(ctx context.Context, customerID uint) ([]*models.HomePolicy, error) {
	return r.ByFilter(ctx, models.HomePolicyFilter{CustomerID: &customerID}, "id DESC", 0, 0)
}

// ListActiveByCustomer returns the customer's home policies that are in force
func (r *HomePolicyRepositoryImpl) ListActiveByCustomer(ctx context.Context, customerID uint) ([]*models.HomePolicy, error) {
	return r.ByFilter(ctx, models.HomePolicyFilter{
		CustomerID: &customerID,
		Active:     utils.ToPtr(true),
	}, "id DESC", 0, 0)
}

// UpdateStatus updates a policy's active flag, optionally moving its end date
func (r *HomePolicyRepositoryImpl) UpdateStatus(ctx context.Context, id uint, active bool, endDate *time.Time) error {
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

	err = db.Model(&models.HomePolicy{}).Where("id = ?", id).Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to update home policy status: %w", err)
	}

	return nil
}

// ListExpiredActive returns active home policies whose term ended before asOf
func (r *HomePolicyRepositoryImpl) ListExpiredActive(ctx context.Context, asOf time.Time) ([]*models.HomePolicy, error) {
	return r.ByFilter(ctx, models.HomePolicyFilter{
		Active:     utils.ToPtr(true),
		EndsBefore: &asOf,
	}, "end_date ASC", 0, 0)
}

// applyFilter applies filter conditions to the GORM query
func (r *HomePolicyRepositoryImpl) applyFilter(db *gorm.DB, filter models.HomePolicyFilter) *gorm.DB {
	if filter.ID != nil {
		db = db.Where("id = ?", *filter.ID)
	}
	if filter.UUID != nil {
		db = db.Where("uuid = ?", *filter.UUID)
	}
	if filter.CustomerID != nil {
		db = db.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.HomeID != nil {
		db = db.Where("home_id = ?", *filter.HomeID)
	}
	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}
	if filter.EndsBefore != nil {
		db = db.Where("end_date < ?", *filter.EndsBefore)
	}
	return db
}

// ByFilter retrieves home policies based on filter criteria
func (r *HomePolicyRepositoryImpl) ByFilter(ctx context.Context, filter models.HomePolicyFilter, orderBy string, limit, offset int) ([]*models.HomePolicy, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.HomePolicy{}), filter)

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

	var policies []*models.HomePolicy
	if err := query.Find(&policies).Error; err != nil {
		return nil, err
	}

	return policies, nil
}

// Count returns the number of home policies matching the filter
func (r *HomePolicyRepositoryImpl) Count(ctx context.Context, filter models.HomePolicyFilter) (int64, error) {
	db := r.getDB(ctx)

	var count int64
	err := r.applyFilter(db.Model(&models.HomePolicy{}), filter).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Exists checks if any home policy matching the filter exists
func (r *HomePolicyRepositoryImpl) Exists(ctx context.Context, filter models.HomePolicyFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
