package models

import (
	"time"

	"gorm.io/datatypes"
)

// StorageRecord is one keyed value of the session namespace when the
// embedded database backend is used.
type StorageRecord struct {
	StorageKey string         `gorm:"column:storage_key;primaryKey"`
	Value      datatypes.JSON `gorm:"column:value;not null"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;not null"`
}

func (StorageRecord) TableName() string {
	return "storage_records"
}
