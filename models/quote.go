package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AutoQuote is a computed, non-binding premium estimate for one vehicle.
// It starts active and is flipped inactive either explicitly or when it is
// converted into a policy; it is never deleted as part of the normal flow.
type AutoQuote struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null;default:gen_random_uuid()" json:"uuid"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	VehicleID  uint      `gorm:"not null;index" json:"vehicle_id"`

	GenerationDate time.Time `gorm:"type:date;not null" json:"generation_date"`
	BasePremium    int       `gorm:"not null" json:"base_premium"`
	Premium        float64   `gorm:"not null" json:"premium"`
	TaxRate        float64   `gorm:"not null" json:"tax_rate"`
	Active         bool      `gorm:"not null;default:true;index" json:"active"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Customer *Customer `gorm:"foreignKey:CustomerID;references:ID;constraint:OnDelete:CASCADE" json:"customer,omitempty"`
	Vehicle  *Vehicle  `gorm:"foreignKey:VehicleID;references:ID;constraint:OnDelete:CASCADE" json:"vehicle,omitempty"`
}

// AutoQuoteFilter represents filter criteria for auto quote queries
type AutoQuoteFilter struct {
	ID         *uint      `json:"id,omitempty"`
	UUID       *uuid.UUID `json:"uuid,omitempty"`
	CustomerID *uint      `json:"customer_id,omitempty"`
	VehicleID  *uint      `json:"vehicle_id,omitempty"`
	Active     *bool      `json:"active,omitempty"`
}

// BeforeCreate ensures UUID is set
func (q *AutoQuote) BeforeCreate(tx *gorm.DB) error {
	if q.UUID == uuid.Nil {
		q.UUID = uuid.New()
	}
	return nil
}

// HomeQuote is a computed, non-binding premium estimate for one home.
// The liability limit chosen at quote time is carried onto the policy.
type HomeQuote struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null;default:gen_random_uuid()" json:"uuid"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	HomeID     uint      `gorm:"not null;index" json:"home_id"`

	GenerationDate time.Time `gorm:"type:date;not null" json:"generation_date"`
	LiabilityLimit int       `gorm:"not null" json:"liability_limit"`
	BasePremium    int       `gorm:"not null" json:"base_premium"`
	Premium        float64   `gorm:"not null" json:"premium"`
	TaxRate        float64   `gorm:"not null" json:"tax_rate"`
	Active         bool      `gorm:"not null;default:true;index" json:"active"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Customer *Customer `gorm:"foreignKey:CustomerID;references:ID;constraint:OnDelete:CASCADE" json:"customer,omitempty"`
	Home     *Home     `gorm:"foreignKey:HomeID;references:ID;constraint:OnDelete:CASCADE" json:"home,omitempty"`
}

// HomeQuoteFilter represents filter criteria for home quote queries
type HomeQuoteFilter struct {
	ID         *uint      `json:"id,omitempty"`
	UUID       *uuid.UUID `json:"uuid,omitempty"`
	CustomerID *uint      `json:"customer_id,omitempty"`
	HomeID     *uint      `json:"home_id,omitempty"`
	Active     *bool      `json:"active,omitempty"`
}

// BeforeCreate ensures UUID is set
func (q *HomeQuote) BeforeCreate(tx *gorm.DB) error {
	if q.UUID == uuid.Nil {
		q.UUID = uuid.New()
	}
	return nil
}
