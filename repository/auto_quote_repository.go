package repository

import (
	"context"
	"fmt"

	"github.com/amirphl/Simorgh/models"
	"github.com/amirphl/Simorgh/utils"
	"gorm.io/gorm"
)

// AutoQuoteRepositoryImpl implements AutoQuoteRepository
type AutoQuoteRepositoryImpl struct {
	*BaseRepository[models.AutoQuote, models.AutoQuoteFilter]
}

// NewAutoQuoteRepository creates a new auto quote repository instance
func NewAutoQuoteRepository(db *gorm.DB) AutoQuoteRepository {
	return &AutoQuoteRepositoryImpl{
		BaseRepository: NewBaseRepository[models.AutoQuote, models.AutoQuoteFilter](db),
	}
}

// ListByCustomer returns all auto quotes for a customer, newest first
func (r *AutoQuoteRepositoryImpl) ListByCustomer(ctx context.Context, customerID uint) ([]*models.AutoQuote, error) {
	return r.ByFilter(ctx, models.AutoQuoteFilter{CustomerID: &customerID}, "id DESC", 0, 0)
}

// ListActiveByCustomer returns the customer's auto quotes that are still active
func (r *AutoQuoteRepositoryImpl) ListActiveByCustomer(ctx context.Context, customerID uint) ([]*models.AutoQuote, error) {
	return r.ByFilter(ctx, models.AutoQuoteFilter{
		CustomerID: &customerID,
		Active:     utils.ToPtr(true),
	}, "id DESC", 0, 0)
}

// SetActive flips the active flag on a quote
func (r *AutoQuoteRepositoryImpl) SetActive(ctx context.Context, id uint, active bool) error {
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

	err = db.Model(&models.AutoQuote{}).Where("id = ?", id).Update("active", active).Error
	if err != nil {
		return fmt.Errorf("failed to update auto quote status: %w", err)
	}

	return nil
}

// applyFilter applies filter conditions to the GORM query
func (r *AutoQuoteRepositoryImpl) applyFilter(db *gorm.DB, filter models.AutoQuoteFilter) *gorm.DB {
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
	return db
}

// ByFilter retrieves auto quotes based on filter criteria
func (r *AutoQuoteRepositoryImpl) ByFilter(ctx context.Context, filter models.AutoQuoteFilter, orderBy string, limit, offset int) ([]*models.AutoQuote, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.AutoQuote{}), filter)

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

	var quotes []*models.AutoQuote
	if err := query.Find(&quotes).Error; err != nil {
		return nil, err
	}

	return quotes, nil
}

// Count returns the number of auto quotes matching the filter
func (r *AutoQuoteRepositoryImpl) Count(ctx context.Context, filter models.AutoQuoteFilter) (int64, error) {
	db := r.getDB(ctx)

	var count int64
	err := r.applyFilter(db.Model(&models.AutoQuote{}), filter).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Exists checks if any auto quote matching the filter exists
func (r *AutoQuoteRepositoryImpl) Exists(ctx context.Context, filter models.AutoQuoteFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
