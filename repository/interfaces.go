// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"time"

	"github.com/amirphl/Simorgh/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	ByFilter(ctx context.Context, filter F, orderBy string, limit, offset int) ([]*T, error)
	Save(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Count(ctx context.Context, filter F) (int64, error)
	Exists(ctx context.Context, filter F) (bool, error)
}

// CustomerRepository defines operations for customers
type CustomerRepository interface {
	Repository[models.Customer, models.CustomerFilter]
	ByUUID(ctx context.Context, uuid string) (*models.Customer, error)
}

// VehicleRepository defines operations for vehicles
type VehicleRepository interface {
	Repository[models.Vehicle, models.VehicleFilter]
	ListByCustomer(ctx context.Context, customerID uint) ([]*models.Vehicle, error)
}

// HomeRepository defines operations for homes
type HomeRepository interface {
	Repository[models.Home, models.HomeFilter]
	ListByCustomer(ctx context.Context, customerID uint) ([]*models.Home, error)
}

// AccidentRepository defines operations for accident records
type AccidentRepository interface {
	Repository[models.Accident, models.AccidentFilter]
	ListByCustomer(ctx context.Context, customerID uint) ([]*models.Accident, error)
	CountSince(ctx context.Context, customerID uint, since time.Time) (int64, error)
}

// AutoQuoteRepository defines operations for auto quotes
type AutoQuoteRepository interface {
	Repository[models.AutoQuote, models.AutoQuoteFilter]
	ListByCustomer(ctx context.Context, customerID uint) ([]*models.AutoQuote, error)
	ListActiveByCustomer(ctx context.Context, customerID uint) ([]*models.AutoQuote, error)
	SetActive(ctx context.Context, id uint, active bool) error
}

// HomeQuoteRepository defines operations for home quotes
type HomeQuoteRepository interface {
	Repository[models.HomeQuote, models.HomeQuoteFilter]
	ListByCustomer(ctx context.Context, customerID uint) ([]*models.HomeQuote, error)
	ListActiveByCustomer(ctx context.Context, customerID uint) ([]*models.HomeQuote, error)
	SetActive(ctx context.Context, id uint, active bool) error
}

// AutoPolicyRepository defines operations for auto policies
type AutoPolicyRepository interface {
	Repository[models.AutoPolicy, models.AutoPolicyFilter]
	ListByCustomer(ctx context.Context, customerID uint) ([]*models.AutoPolicy, error)
	ListActiveByCustomer(ctx context.Context, customerID uint) ([]*models.AutoPolicy, error)
	UpdateStatus(ctx context.Context, id uint, active bool, endDate *time.Time) error
	ListExpiredActive(ctx context.Context, asOf time.Time) ([]*models.AutoPolicy, error)
}

// HomePolicyRepository defines operations for home policies
type HomePolicyRepository interface {
	Repository[models.HomePolicy, models.HomePolicyFilter]
	ListByCustomer(ctx context.Context, customerID uint) ([]*models.HomePolicy, error)
	ListActiveByCustomer(ctx context.Context, customerID uint) ([]*models.HomePolicy, error)
	UpdateStatus(ctx context.Context, id uint, active bool, endDate *time.Time) error
	ListExpiredActive(ctx context.Context, asOf time.Time) ([]*models.HomePolicy, error)
}

// RiskFactorRepository defines operations for risk factor snapshots
type RiskFactorRepository interface {
	Repository[models.RiskFactorSnapshot, models.RiskFactorSnapshotFilter]
	Latest(ctx context.Context) (*models.RiskFactorSnapshot, error)
}
