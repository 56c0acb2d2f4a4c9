package db

import (
	"fmt"
	"time"

	"github.com/terraincognita07/fitplanner/internal/models"
	"github.com/terraincognita07/fitplanner/internal/services"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ services.SessionBackend = (*StorageRecordRepository)(nil)

// StorageRecordRepository is the embedded database SessionBackend. Each key
// is one row of storage_records.
type StorageRecordRepository struct {
	database *gorm.DB
	now      func() time.Time
}

func NewStorageRecordRepository(database *gorm.DB) *StorageRecordRepository {
	return &StorageRecordRepository{database: database, now: time.Now}
}

func (repo *StorageRecordRepository) Init() error {
	return applyEmbeddedMigrations(repo.database)
}

func (repo *StorageRecordRepository) Get(key string) ([]byte, bool, error) {
	var record models.StorageRecord
	result := repo.database.Where("storage_key = ?", key).Limit(1).Find(&record)
	if result.Error != nil {
		return nil, false, fmt.Errorf("load storage record %s: %w", key, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, false, nil
	}
	return []byte(record.Value), true, nil
}

func (repo *StorageRecordRepository) Put(key string, value []byte) error {
	now := repo.now().UTC()
	record := models.StorageRecord{
		StorageKey: key,
		Value:      datatypes.JSON(value),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("store storage record %s: %w", key, err)
	}
	return nil
}

// Delete removes all keys in a single transaction.
func (repo *StorageRecordRepository) Delete(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("storage_key IN ?", keys).Delete(&models.StorageRecord{}).Error; err != nil {
			return fmt.Errorf("delete storage records: %w", err)
		}
		return nil
	})
}
