package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RiskFactorSnapshot stores one complete, immutable set of rating multipliers,
// base premiums and the tax rate. Admin updates insert a new row rather than
// mutating the current one; the latest row wins. Every rating calculation runs
// against exactly one snapshot, so a concurrent replace can never produce a
// premium computed from half-old, half-new multipliers.
type RiskFactorSnapshot struct {
	ID   uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null;default:gen_random_uuid()" json:"uuid"`

	DiscountForBoth float64 `gorm:"not null" json:"discount_for_both"`
	TaxRate         float64 `gorm:"not null" json:"tax_rate"`

	// Home factors
	HomeBasePremium       int     `gorm:"not null" json:"home_base_premium"`
	HomeValuePercentage   float64 `gorm:"not null" json:"home_value_percentage"`
	HomeValueBaseLine     int     `gorm:"not null" json:"home_value_base_line"`
	HighLiability         float64 `gorm:"not null" json:"high_liability"`
	LowLiability          float64 `gorm:"not null" json:"low_liability"`
	HomeOldAge            float64 `gorm:"not null" json:"home_old_age"`
	HomeMidAge            float64 `gorm:"not null" json:"home_mid_age"`
	HomeNewAge            float64 `gorm:"not null" json:"home_new_age"`
	HeatingOilFactor      float64 `gorm:"not null" json:"heating_oil"`
	HeatingWoodFactor     float64 `gorm:"not null" json:"heating_wood"`
	HeatingElectricFactor float64 `gorm:"not null" json:"heating_electric"`
	HeatingGasFactor      float64 `gorm:"not null" json:"heating_gas"`
	HeatingOtherFactor    float64 `gorm:"not null" json:"heating_other"`
	Rural                 float64 `gorm:"not null" json:"rural"`
	Urban                 float64 `gorm:"not null" json:"urban"`

	// Auto factors
	AutoBasePremium int     `gorm:"not null" json:"auto_base_premium"`
	DriverYoung     float64 `gorm:"not null" json:"driver_young"`
	DriverOld       float64 `gorm:"not null" json:"driver_old"`
	AccidentsMany   float64 `gorm:"not null" json:"accidents_many"`
	AccidentsFew    float64 `gorm:"not null" json:"accidents_few"`
	AccidentsNone   float64 `gorm:"not null" json:"accidents_none"`
	VehicleOld      float64 `gorm:"not null" json:"vehicle_old"`
	VehicleMid      float64 `gorm:"not null" json:"vehicle_mid"`
	VehicleNew      float64 `gorm:"not null" json:"vehicle_new"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (RiskFactorSnapshot) TableName() string { return "risk_factor_snapshots" }

// RiskFactorSnapshotFilter represents filter criteria for snapshot queries
type RiskFactorSnapshotFilter struct {
	ID            *uint      `json:"id,omitempty"`
	CreatedAfter  *time.Time `json:"created_after,omitempty"`
	CreatedBefore *time.Time `json:"created_before,omitempty"`
}

// BeforeCreate ensures UUID is set
func (s *RiskFactorSnapshot) BeforeCreate(tx *gorm.DB) error {
	if s.UUID == uuid.Nil {
		s.UUID = uuid.New()
	}
	return nil
}

// DefaultRiskFactorSnapshot returns the documented default factor set. It is
// persisted on first startup when no snapshot exists yet, and used as a
// fallback when the persisted table cannot be read.
func DefaultRiskFactorSnapshot() *RiskFactorSnapshot {
	return &RiskFactorSnapshot{
		DiscountForBoth: 0.9,
		TaxRate:         0.15,

		HomeBasePremium:       500,
		HomeValuePercentage:   0.002,
		HomeValueBaseLine:     250_000,
		HighLiability:         1.25,
		LowLiability:          1,
		HomeOldAge:            1.5,
		HomeMidAge:            1.25,
		HomeNewAge:            1,
		HeatingOilFactor:      2,
		HeatingWoodFactor:     1.25,
		HeatingElectricFactor: 1,
		HeatingGasFactor:      1,
		HeatingOtherFactor:    1,
		Rural:                 1.15,
		Urban:                 1,

		AutoBasePremium: 750,
		DriverYoung:     2,
		DriverOld:       1,
		AccidentsMany:   2.5,
		AccidentsFew:    1.25,
		AccidentsNone:   1,
		VehicleOld:      2,
		VehicleMid:      1.5,
		VehicleNew:      1,
	}
}

// HeatingFactors returns the heating multiplier lookup table for this snapshot.
func (s *RiskFactorSnapshot) HeatingFactors() map[HeatingType]float64 {
	return map[HeatingType]float64{
		HeatingOil:      s.HeatingOilFactor,
		HeatingWood:     s.HeatingWoodFactor,
		HeatingElectric: s.HeatingElectricFactor,
		HeatingGas:      s.HeatingGasFactor,
		HeatingOther:    s.HeatingOtherFactor,
	}
}

// HeatingFactor returns the multiplier for the given heating type. An
// unrecognized heating type leaves the factor chain unchanged (multiplier 1),
// matching the historical rating behavior.
func (s *RiskFactorSnapshot) HeatingFactor(t HeatingType) float64 {
	if f, ok := s.HeatingFactors()[t]; ok {
		return f
	}
	return 1
}

// LocationFactor returns the multiplier for the given home location. Any
// location other than rural rates as urban.
func (s *RiskFactorSnapshot) LocationFactor(l HomeLocation) float64 {
	if l == LocationRural {
		return s.Rural
	}
	return s.Urban
}

// LiabilityFactor returns the multiplier for the requested liability limit.
func (s *RiskFactorSnapshot) LiabilityFactor(limit int, highLimit int) float64 {
	if limit == highLimit {
		return s.HighLiability
	}
	return s.LowLiability
}

// Complete reports whether every multiplier and base premium is set to a
// usable value. A replace request must supply a complete table.
func (s *RiskFactorSnapshot) Complete() bool {
	multipliers := []float64{
		s.DiscountForBoth,
		s.HighLiability, s.LowLiability,
		s.HomeOldAge, s.HomeMidAge, s.HomeNewAge,
		s.HeatingOilFactor, s.HeatingWoodFactor, s.HeatingElectricFactor,
		s.HeatingGasFactor, s.HeatingOtherFactor,
		s.Rural, s.Urban,
		s.DriverYoung, s.DriverOld,
		s.AccidentsMany, s.AccidentsFew, s.AccidentsNone,
		s.VehicleOld, s.VehicleMid, s.VehicleNew,
	}
	for _, m := range multipliers {
		if m <= 0 {
			return false
		}
	}
	if s.TaxRate < 0 || s.HomeValuePercentage < 0 {
		return false
	}
	return s.HomeBasePremium > 0 && s.AutoBasePremium > 0 && s.HomeValueBaseLine > 0
}
