package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vehicle represents an insurable vehicle owned by a customer.
type Vehicle struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null;default:gen_random_uuid()" json:"uuid"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Make       string    `gorm:"type:varchar(100);not null" json:"make"`
	Model      string    `gorm:"type:varchar(100);not null" json:"model"`
	ModelYear  int       `gorm:"not null" json:"model_year"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Customer *Customer `gorm:"foreignKey:CustomerID;references:ID;constraint:OnDelete:CASCADE" json:"customer,omitempty"`
}

// VehicleFilter represents filter criteria for vehicle queries
type VehicleFilter struct {
	ID         *uint      `json:"id,omitempty"`
	UUID       *uuid.UUID `json:"uuid,omitempty"`
	CustomerID *uint      `json:"customer_id,omitempty"`
	ModelYear  *int       `json:"model_year,omitempty"`
}

// BeforeCreate ensures UUID is set
func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.UUID == uuid.Nil {
		v.UUID = uuid.New()
	}
	return nil
}
