package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HeatingType enumerates the heating systems a home can have.
type HeatingType string

const (
	HeatingOil      HeatingType = "oil"
	HeatingWood     HeatingType = "wood"
	HeatingElectric HeatingType = "electric"
	HeatingGas      HeatingType = "gas"
	HeatingOther    HeatingType = "other"
)

// Valid checks if the heating type is valid.
func (h HeatingType) Valid() bool {
	switch h {
	case HeatingOil, HeatingWood, HeatingElectric, HeatingGas, HeatingOther:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for HeatingType.
func (h *HeatingType) Scan(value any) error {
	if value == nil {
		*h = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*h = HeatingType(v)
	case []byte:
		*h = HeatingType(string(v))
	default:
		return fmt.Errorf("cannot scan %T into HeatingType", value)
	}
	return nil
}

// Value implements the driver.Valuer interface for HeatingType.
func (h HeatingType) Value() (driver.Value, error) {
	if !h.Valid() {
		return nil, fmt.Errorf("invalid HeatingType: %s", h)
	}
	return string(h), nil
}

// HomeLocation enumerates where a home is located.
type HomeLocation string

const (
	LocationUrban HomeLocation = "urban"
	LocationRural HomeLocation = "rural"
)

// Valid checks if the location is valid.
func (l HomeLocation) Valid() bool {
	return l == LocationUrban || l == LocationRural
}

// Scan implements the sql.Scanner interface for HomeLocation.
func (l *HomeLocation) Scan(value any) error {
	if value == nil {
		*l = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*l = HomeLocation(v)
	case []byte:
		*l = HomeLocation(string(v))
	default:
		return fmt.Errorf("cannot scan %T into HomeLocation", value)
	}
	return nil
}

// Value implements the driver.Valuer interface for HomeLocation.
func (l HomeLocation) Value() (driver.Value, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("invalid HomeLocation: %s", l)
	}
	return string(l), nil
}

// DwellingType enumerates the kind of dwelling.
type DwellingType string

const (
	DwellingStandalone DwellingType = "standalone"
	DwellingBungalow   DwellingType = "bungalow"
	DwellingAttached   DwellingType = "attached"
	DwellingApartment  DwellingType = "apartment"
)

// Valid checks if the dwelling type is valid.
func (d DwellingType) Valid() bool {
	switch d {
	case DwellingStandalone, DwellingBungalow, DwellingAttached, DwellingApartment:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for DwellingType.
func (d *DwellingType) Scan(value any) error {
	if value == nil {
		*d = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*d = DwellingType(v)
	case []byte:
		*d = DwellingType(string(v))
	default:
		return fmt.Errorf("cannot scan %T into DwellingType", value)
	}
	return nil
}

// Value implements the driver.Valuer interface for DwellingType.
func (d DwellingType) Value() (driver.Value, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid DwellingType: %s", d)
	}
	return string(d), nil
}

// Home represents an insurable home owned by a customer.
type Home struct {
	ID           uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	UUID         uuid.UUID    `gorm:"type:uuid;uniqueIndex;not null;default:gen_random_uuid()" json:"uuid"`
	CustomerID   uint         `gorm:"not null;index" json:"customer_id"`
	HomeValue    int          `gorm:"not null" json:"home_value"`
	DateBuilt    time.Time    `gorm:"type:date;not null" json:"date_built"`
	HeatingType  HeatingType  `gorm:"type:varchar(20);not null" json:"heating_type"`
	Location     HomeLocation `gorm:"type:varchar(20);not null" json:"location"`
	DwellingType DwellingType `gorm:"type:varchar(20);not null" json:"dwelling_type"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Customer *Customer `gorm:"foreignKey:CustomerID;references:ID;constraint:OnDelete:CASCADE" json:"customer,omitempty"`
}

// HomeFilter represents filter criteria for home queries
type HomeFilter struct {
	ID         *uint         `json:"id,omitempty"`
	UUID       *uuid.UUID    `json:"uuid,omitempty"`
	CustomerID *uint         `json:"customer_id,omitempty"`
	Location   *HomeLocation `json:"location,omitempty"`
}

// BeforeCreate ensures UUID is set
func (h *Home) BeforeCreate(tx *gorm.DB) error {
	if h.UUID == uuid.Nil {
		h.UUID = uuid.New()
	}
	return nil
}
