package db

import "gorm.io/gorm"

type Repositories struct {
	StorageRecords *StorageRecordRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		StorageRecords: NewStorageRecordRepository(database),
	}
}
