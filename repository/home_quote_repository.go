package repository

import (
	"context"
	"fmt"

	"github.com/amirphl/Simorgh/models"
	"github.com/amirphl/Simorgh/utils"
	"gorm.io/gorm"
)

// HomeQuoteRepositoryImpl implements HomeQuoteRepository
type HomeQuoteRepositoryImpl struct {
	*BaseRepository[models.HomeQuote, models.HomeQuoteFilter]
}

// NewHomeQuoteRepository creates a new home quote repository instance
func NewHomeQuoteRepository(db *gorm.DB) HomeQuoteRepository {
	return &HomeQuoteRepositoryImpl{
		BaseRepository: NewBaseRepository[models.HomeQuote, models.HomeQuoteFilter](db),
	}
}

// ListByCustomer returns all home quotes for a customer, newest first
func (r *HomeQuoteRepositoryImpl) ListByCustomer(ctx context.Context, customerID uint) ([]*models.HomeQuote, error) {
	return r.ByFilter(ctx, models.HomeQuoteFilter{CustomerID: &customerID}, "id DESC", 0, 0)
}

// ListActiveByCustomer returns the customer's home quotes that are still active
func (r *HomeQuoteRepositoryImpl) ListActiveByCustomer(ctx context.Context, customerID uint) ([]*models.HomeQuote, error) {
	return r.ByFilter(ctx, models.HomeQuoteFilter{
		CustomerID: &customerID,
		Active:     utils.ToPtr(true),
	}, "id DESC", 0, 0)
}

// SetActive flips the active flag on a quote
func (r *HomeQuoteRepositoryImpl) SetActive(ctx context.Context, id uint, active bool) error {
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

	err = db.Model(&models.HomeQuote{}).Where("id = ?", id).Update("active", active).Error
	if err != nil {
		return fmt.Errorf("failed to update home quote status: %w", err)
	}

	return nil
}

// applyFilter applies filter conditions to the GORM query
func (r *HomeQuoteRepositoryImpl) applyFilter(db *gorm.DB, filter models.HomeQuoteFilter) *gorm.DB {
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
	return db
}

// ByFilter retrieves home quotes based on filter criteria
func (r *HomeQuoteRepositoryImpl) ByFilter(ctx context.Context, filter models.HomeQuoteFilter, orderBy string, limit, offset int) ([]*models.HomeQuote, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.HomeQuote{}), filter)

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

	var quotes []*models.HomeQuote
	if err := query.Find(&quotes).Error; err != nil {
		return nil, err
	}

	return quotes, nil
}

// Count returns the number of home quotes matching the filter
func (r *HomeQuoteRepositoryImpl) Count(ctx context.Context, filter models.HomeQuoteFilter) (int64, error) {
	db := r.getDB(ctx)

	var count int64
	err := r.applyFilter(db.Model(&models.HomeQuote{}), filter).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// Exists checks if any home quote matching the filter exists
func (r *HomeQuoteRepositoryImpl) Exists(ctx context.Context, filter models.HomeQuoteFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
