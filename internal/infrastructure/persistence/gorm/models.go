// Package gorm provides GORM model definitions for the application
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// FoodModel represents the GORM model for catalog foods. The four
// framework attribute blocks are stored as JSON columns; a NULL column
// means the food is not described for that framework.
type FoodModel struct {
	ID       uuid.UUID   `gorm:"type:char(36);primaryKey"`
	Name     string      `gorm:"type:varchar(255);uniqueIndex;not null"`
	Category string      `gorm:"type:varchar(50);not null;index"`
	Tags     StringSlice `gorm:"type:json"`

	Ayurveda JSONField `gorm:"type:json"`
	Unani    JSONField `gorm:"type:json"`
	TCM      JSONField `gorm:"type:json"`
	Clinical JSONField `gorm:"type:json"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default pluralization
func (FoodModel) TableName() string {
	return "foods"
}

// OverrideModel represents the GORM model for practitioner overrides
type OverrideModel struct {
	ID             uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID         uuid.UUID `gorm:"type:char(36);not null;index:idx_override_user_item"`
	ItemID         uuid.UUID `gorm:"type:char(36);not null;index:idx_override_user_item"`
	PractitionerID uuid.UUID `gorm:"type:char(36);not null;index"`
	Action         string    `gorm:"type:varchar(20);not null"`
	Reason         string    `gorm:"type:text;not null"`
	NewScore       *float64
	CreatedAt      time.Time `gorm:"index"`
}

// TableName overrides the default pluralization
func (OverrideModel) TableName() string {
	return "practitioner_overrides"
}

// StringSlice is a string slice stored as a JSON column
type StringSlice []string

// Value implements driver.Valuer
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
}

// JSONField is an arbitrary JSON document stored as a column. A nil
// field maps to a NULL column.
type JSONField []byte

// Value implements driver.Valuer
func (j JSONField) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return []byte(j), nil
}

// Scan implements sql.Scanner
func (j *JSONField) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*j = append((*j)[:0], v...)
		return nil
	case string:
		*j = JSONField(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into JSONField", value)
	}
}
