package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Accident records a single accident attributed to a customer. Only the date
// matters to rating: accidents inside the trailing window raise the premium.
type Accident struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID        uuid.UUID `gorm:"type:uuid;uniqueIndex;not null;default:gen_random_uuid()" json:"uuid"`
	CustomerID  uint      `gorm:"not null;index" json:"customer_id"`
	Date        time.Time `gorm:"type:date;not null;index" json:"date"`
	Description string    `gorm:"type:text" json:"description"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Customer *Customer `gorm:"foreignKey:CustomerID;references:ID;constraint:OnDelete:CASCADE" json:"customer,omitempty"`
}

// AccidentFilter represents filter criteria for accident queries
type AccidentFilter struct {
	ID         *uint      `json:"id,omitempty"`
	CustomerID *uint      `json:"customer_id,omitempty"`
	After      *time.Time `json:"after,omitempty"`
	Before     *time.Time `json:"before,omitempty"`
}

// BeforeCreate ensures UUID is set
func (a *Accident) BeforeCreate(tx *gorm.DB) error {
	if a.UUID == uuid.Nil {
		a.UUID = uuid.New()
	}
	return nil
}
