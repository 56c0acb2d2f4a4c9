package db

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/terraincognita07/fitplanner/internal/models"
	"github.com/terraincognita07/fitplanner/internal/services"
)

func newStorageRecordRepositoryForTest(t *testing.T) *StorageRecordRepository {
	t.Helper()
	database := openSQLiteForTest(t, filepath.Join(t.TempDir(), "fitplanner-records.db"))
	return NewRepositories(database).StorageRecords
}

func TestStorageRecordRepositoryMissingKeyIsAbsent(t *testing.T) {
	repo := newStorageRecordRepositoryForTest(t)

	value, found, err := repo.Get(services.ProfileKey)
	if err != nil || found || value != nil {
		t.Fatalf("Get() = %q, %v, %v; want absent", value, found, err)
	}
}

func TestStorageRecordRepositoryPutUpsertsAndKeepsCreatedAt(t *testing.T) {
	repo := newStorageRecordRepositoryForTest(t)
	first := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	repo.now = func() time.Time { return first }
	if err := repo.Put(services.ThemeKey, []byte(`"dark"`)); err != nil {
		t.Fatalf("Put() unexpected error: %v", err)
	}
	repo.now = func() time.Time { return second }
	if err := repo.Put(services.ThemeKey, []byte(`"light"`)); err != nil {
		t.Fatalf("second Put() unexpected error: %v", err)
	}

	value, found, err := repo.Get(services.ThemeKey)
	if err != nil || !found || string(value) != `"light"` {
		t.Fatalf("Get() = %q, %v, %v; want \"light\"", value, found, err)
	}

	var record models.StorageRecord
	if err := repo.database.Where("storage_key = ?", services.ThemeKey).First(&record).Error; err != nil {
		t.Fatalf("load storage record: %v", err)
	}
	if !record.CreatedAt.Equal(first) || !record.UpdatedAt.Equal(second) {
		t.Fatalf("expected created_at %s and updated_at %s, got %s and %s", first, second, record.CreatedAt, record.UpdatedAt)
	}

	var count int64
	if err := repo.database.Model(&models.StorageRecord{}).Count(&count).Error; err != nil {
		t.Fatalf("count storage records: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single row after upsert, got %d", count)
	}
}

func TestStorageRecordRepositoryDeleteIsIdempotent(t *testing.T) {
	repo := newStorageRecordRepositoryForTest(t)
	if err := repo.Put(services.ThemeKey, []byte(`"dark"`)); err != nil {
		t.Fatalf("Put() unexpected error: %v", err)
	}
	if err := repo.Put("unrelated", []byte(`1`)); err != nil {
		t.Fatalf("Put() unexpected error: %v", err)
	}

	if err := repo.Delete(services.SessionKeys...); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if err := repo.Delete(services.SessionKeys...); err != nil {
		t.Fatalf("second Delete() unexpected error: %v", err)
	}
	if err := repo.Delete(); err != nil {
		t.Fatalf("Delete() without keys unexpected error: %v", err)
	}

	if _, found, _ := repo.Get(services.ThemeKey); found {
		t.Fatal("expected theme to be deleted")
	}
	if _, found, _ := repo.Get("unrelated"); !found {
		t.Fatal("expected unrelated key to survive")
	}
}

func TestStorageRecordRepositoryBacksSessionStore(t *testing.T) {
	repo := newStorageRecordRepositoryForTest(t)
	recordedAt := time.Date(2026, 3, 2, 7, 30, 0, 0, time.UTC)
	store := services.NewSessionStore(repo).WithClock(func() time.Time { return recordedAt })
	if err := store.Init(); err != nil {
		t.Fatalf("Init() unexpected error: %v", err)
	}

	if err := store.SaveProfile(models.DemoProfile()); err != nil {
		t.Fatalf("SaveProfile() unexpected error: %v", err)
	}
	if _, _, err := store.RecordWeight(68); err != nil {
		t.Fatalf("RecordWeight() unexpected error: %v", err)
	}

	profile, found, err := store.GetProfile()
	if err != nil || !found || profile.Weight != 68 {
		t.Fatalf("GetProfile() = %+v, %v, %v", profile, found, err)
	}
	history, err := store.GetWeightHistory()
	if err != nil || len(history) != 1 || history[0].BMI != 23.5 || !history[0].Date.Equal(recordedAt) {
		t.Fatalf("GetWeightHistory() = %+v, %v", history, err)
	}

	if err := repo.Put(services.DietHistoryKey, []byte(`[{"broken"`)); err != nil {
		t.Fatalf("Put() unexpected error: %v", err)
	}
	if _, err := store.GetDietHistory(); !errors.Is(err, services.ErrCorruptPersistedData) {
		t.Fatalf("expected ErrCorruptPersistedData, got %v", err)
	}

	if err := store.ClearSession(); err != nil {
		t.Fatalf("ClearSession() unexpected error: %v", err)
	}
	if _, found, _ := store.GetProfile(); found {
		t.Fatal("expected profile to be cleared")
	}
}
