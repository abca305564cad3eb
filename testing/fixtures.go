// Package testing provides test utilities and database setup for testing the insurance system
package testing

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/amirphl/Simorgh/models"
	"github.com/amirphl/Simorgh/utils"
)

// TestFixtures provides helper methods for creating test data
type TestFixtures struct {
	DB *TestDB
}

// NewTestFixtures creates a new test fixtures instance
func NewTestFixtures(db *TestDB) *TestFixtures {
	return &TestFixtures{DB: db}
}

// CreateTestCustomer creates a test customer born the given number of years ago
func (tf *TestFixtures) CreateTestCustomer(ageYears int) (*models.Customer, error) {
	randomDigits := fmt.Sprintf("%09d", rand.Intn(900000000)+100000000)

	customer := &models.Customer{
		FirstName: "John",
		LastName:  "Doe",
		Email:     fmt.Sprintf("john.doe.%s@example.com", randomDigits),
		Birthday:  utils.UTCNow().AddDate(-ageYears, 0, 0),
	}

	if err := tf.DB.DB.Create(customer).Error; err != nil {
		return nil, fmt.Errorf("failed to create test customer: %w", err)
	}

	return customer, nil
}

// CreateTestVehicle creates a vehicle with the given model year for a customer
func (tf *TestFixtures) CreateTestVehicle(customerID uint, modelYear int) (*models.Vehicle, error) {
	vehicle := &models.Vehicle{
		CustomerID: customerID,
		Make:       "Toyota",
		Model:      "Corolla",
		ModelYear:  modelYear,
	}

	if err := tf.DB.DB.Create(vehicle).Error; err != nil {
		return nil, fmt.Errorf("failed to create test vehicle: %w", err)
	}

	return vehicle, nil
}

// CreateTestHome creates a home built the given number of years ago
func (tf *TestFixtures) CreateTestHome(customerID uint, value, ageYears int, heating models.HeatingType, location models.HomeLocation) (*models.Home, error) {
	home := &models.Home{
		CustomerID:   customerID,
		HomeValue:    value,
		DateBuilt:    utils.UTCNow().AddDate(-ageYears, 0, 0),
		HeatingType:  heating,
		Location:     location,
		DwellingType: models.DwellingStandalone,
	}

	if err := tf.DB.DB.Create(home).Error; err != nil {
		return nil, fmt.Errorf("failed to create test home: %w", err)
	}

	return home, nil
}

// CreateTestAccident records an accident for a customer at the given date
func (tf *TestFixtures) CreateTestAccident(customerID uint, date time.Time) (*models.Accident, error) {
	accident := &models.Accident{
		CustomerID:  customerID,
		Date:        date,
		Description: "Rear-end collision",
	}

	if err := tf.DB.DB.Create(accident).Error; err != nil {
		return nil, fmt.Errorf("failed to create test accident: %w", err)
	}

	return accident, nil
}

// CreateTestAutoQuote creates an active auto quote for a customer and vehicle
func (tf *TestFixtures) CreateTestAutoQuote(customerID, vehicleID uint, premium float64) (*models.AutoQuote, error) {
	quote := &models.AutoQuote{
		CustomerID:     customerID,
		VehicleID:      vehicleID,
		GenerationDate: utils.UTCNow(),
		BasePremium:    750,
		Premium:        premium,
		TaxRate:        0.15,
		Active:         true,
	}

	if err := tf.DB.DB.Create(quote).Error; err != nil {
		return nil, fmt.Errorf("failed to create test auto quote: %w", err)
	}

	return quote, nil
}

// CreateTestHomeQuote creates an active home quote for a customer and home
func (tf *TestFixtures) CreateTestHomeQuote(customerID, homeID uint, liabilityLimit int, premium float64) (*models.HomeQuote, error) {
	quote := &models.HomeQuote{
		CustomerID:     customerID,
		HomeID:         homeID,
		GenerationDate: utils.UTCNow(),
		LiabilityLimit: liabilityLimit,
		BasePremium:    500,
		Premium:        premium,
		TaxRate:        0.15,
		Active:         true,
	}

	if err := tf.DB.DB.Create(quote).Error; err != nil {
		return nil, fmt.Errorf("failed to create test home quote: %w", err)
	}

	return quote, nil
}

// CreateTestAutoPolicy creates an auto policy ending the given number of days from now
func (tf *TestFixtures) CreateTestAutoPolicy(quoteID, customerID, vehicleID uint, endsInDays int, active bool) (*models.AutoPolicy, error) {
	now := utils.UTCNow()
	policy := &models.AutoPolicy{
		QuoteID:       quoteID,
		CustomerID:    customerID,
		VehicleID:     vehicleID,
		EffectiveDate: now.AddDate(-1, 0, 0).AddDate(0, 0, endsInDays),
		EndDate:       now.AddDate(0, 0, endsInDays),
		BasePremium:   750,
		Premium:       862.50,
		TaxRate:       0.15,
		Active:        active,
	}

	if err := tf.DB.DB.Create(policy).Error; err != nil {
		return nil, fmt.Errorf("failed to create test auto policy: %w", err)
	}

	return policy, nil
}

// CreateTestHomePolicy creates a home policy ending the given number of days from now
func (tf *TestFixtures) CreateTestHomePolicy(quoteID, customerID, homeID uint, endsInDays int, active bool) (*models.HomePolicy, error) {
	now := utils.UTCNow()
	policy := &models.HomePolicy{
		QuoteID:        quoteID,
		CustomerID:     customerID,
		HomeID:         homeID,
		EffectiveDate:  now.AddDate(-1, 0, 0).AddDate(0, 0, endsInDays),
		EndDate:        now.AddDate(0, 0, endsInDays),
		LiabilityLimit: utils.LowLiabilityLimit,
		BasePremium:    500,
		Premium:        575.00,
		TaxRate:        0.15,
		Active:         active,
	}

	if err := tf.DB.DB.Create(policy).Error; err != nil {
		return nil, fmt.Errorf("failed to create test home policy: %w", err)
	}

	return policy, nil
}
