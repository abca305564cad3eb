package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AutoPolicy is a binding coverage record created by converting an active
// auto quote. Premium, base premium and tax rate are copied verbatim from the
// source quote at issuance; later risk factor changes never touch them.
type AutoPolicy struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null;default:gen_random_uuid()" json:"uuid"`
	QuoteID    uint      `gorm:"not null;index" json:"quote_id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	VehicleID  uint      `gorm:"not null;index" json:"vehicle_id"`

	EffectiveDate time.Time `gorm:"type:date;not null" json:"effective_date"`
	EndDate       time.Time `gorm:"type:date;not null" json:"end_date"`
	BasePremium   int       `gorm:"not null" json:"base_premium"`
	Premium       float64   `gorm:"not null" json:"premium"`
	TaxRate       float64   `gorm:"not null" json:"tax_rate"`
	Active        bool      `gorm:"not null;default:true;index" json:"active"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Customer *Customer  `gorm:"foreignKey:CustomerID;references:ID;constraint:OnDelete:CASCADE" json:"customer,omitempty"`
	Vehicle  *Vehicle   `gorm:"foreignKey:VehicleID;references:ID;constraint:OnDelete:CASCADE" json:"vehicle,omitempty"`
	Quote    *AutoQuote `gorm:"foreignKey:QuoteID;references:ID" json:"quote,omitempty"`
}

// AutoPolicyFilter represents filter criteria for auto policy queries
type AutoPolicyFilter struct {
	ID         *uint      `json:"id,omitempty"`
	UUID       *uuid.UUID `json:"uuid,omitempty"`
	CustomerID *uint      `json:"customer_id,omitempty"`
	VehicleID  *uint      `json:"vehicle_id,omitempty"`
	Active     *bool      `json:"active,omitempty"`
	EndsBefore *time.Time `json:"ends_before,omitempty"`
}

// BeforeCreate ensures UUID is set
func (p *AutoPolicy) BeforeCreate(tx *gorm.DB) error {
	if p.UUID == uuid.Nil {
		p.UUID = uuid.New()
	}
	return nil
}

// HomePolicy is a binding coverage record created by converting an active
// home quote. It additionally carries the liability limit chosen at quote time.
type HomePolicy struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null;default:gen_random_uuid()" json:"uuid"`
	QuoteID    uint      `gorm:"not null;index" json:"quote_id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	HomeID     uint      `gorm:"not null;index" json:"home_id"`

	EffectiveDate  time.Time `gorm:"type:date;not null" json:"effective_date"`
	EndDate        time.Time `gorm:"type:date;not null" json:"end_date"`
	LiabilityLimit int       `gorm:"not null" json:"liability_limit"`
	BasePremium    int       `gorm:"not null" json:"base_premium"`
	Premium        float64   `gorm:"not null" json:"premium"`
	TaxRate        float64   `gorm:"not null" json:"tax_rate"`
	Active         bool      `gorm:"not null;default:true;index" json:"active"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Customer *Customer  `gorm:"foreignKey:CustomerID;references:ID;constraint:OnDelete:CASCADE" json:"customer,omitempty"`
	Home     *Home      `gorm:"foreignKey:HomeID;references:ID;constraint:OnDelete:CASCADE" json:"home,omitempty"`
	Quote    *HomeQuote `gorm:"foreignKey:QuoteID;references:ID" json:"quote,omitempty"`
}

// HomePolicyFilter represents filter criteria for home policy queries
type HomePolicyFilter struct {
	ID         *uint      `json:"id,omitempty"`
	UUID       *uuid.UUID `json:"uuid,omitempty"`
	CustomerID *uint      `json:"customer_id,omitempty"`
	HomeID     *uint      `json:"home_id,omitempty"`
	Active     *bool      `json:"active,omitempty"`
	EndsBefore *time.Time `json:"ends_before,omitempty"`
}

// BeforeCreate ensures UUID is set
func (p *HomePolicy) BeforeCreate(tx *gorm.DB) error {
	if p.UUID == uuid.Nil {
		p.UUID = uuid.New()
	}
	return nil
}
