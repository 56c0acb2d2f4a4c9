package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/terraincognita07/fitplanner/internal/models"
)

const (
	ProfileKey        = "fitness_user_profile"
	WorkoutHistoryKey = "fitness_workout_history"
	DietHistoryKey    = "fitness_diet_history"
	WeightHistoryKey  = "fitness_weight_history"
	ThemeKey          = "fitness_theme"
)

var SessionKeys = []string{
	ProfileKey,
	WorkoutHistoryKey,
	DietHistoryKey,
	WeightHistoryKey,
	ThemeKey,
}

type SessionBackend interface {
	Init() error
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(keys ...string) error
}

// Read-modify-write operations (SaveWorkoutPlan, SaveDietPlan, AddWeightEntry,
// RecordWeight) assume a single logical writer. Concurrent writers against the
// same backend can lose updates.
type SessionStore struct {
	backend SessionBackend
	now     func() time.Time
}

func NewSessionStore(backend SessionBackend) *SessionStore {
	return &SessionStore{
		backend: backend,
		now:     time.Now,
	}
}

func (store *SessionStore) WithClock(now func() time.Time) *SessionStore {
	if now != nil {
		store.now = now
	}
	return store
}

func (store *SessionStore) Init() error {
	if err := store.backend.Init(); err != nil {
		return fmt.Errorf("init session backend: %w", err)
	}
	return nil
}

func (store *SessionStore) GetProfile() (models.UserProfile, bool, error) {
	raw, found, err := store.backend.Get(ProfileKey)
	if err != nil {
		return models.UserProfile{}, false, fmt.Errorf("load profile: %w", err)
	}
	if !found {
		return models.UserProfile{}, false, nil
	}

	var profile *models.UserProfile
	if err := decodeStrict(raw, &profile); err != nil {
		return models.UserProfile{}, false, corruptCollectionError(ProfileKey, err)
	}
	if profile == nil {
		return models.UserProfile{}, false, corruptCollectionError(ProfileKey, errors.New("null record"))
	}
	if err := ValidateProfile(*profile); err != nil {
		return models.UserProfile{}, false, corruptCollectionError(ProfileKey, err)
	}
	return *profile, true, nil
}

func (store *SessionStore) SaveProfile(profile models.UserProfile) error {
	normalized, err := NormalizeProfile(profile)
	if err != nil {
		return err
	}
	return store.put(ProfileKey, normalized)
}

func (store *SessionStore) GetWorkoutHistory() ([]models.WorkoutPlan, error) {
	history := make([]models.WorkoutPlan, 0)
	if err := store.loadHistory(WorkoutHistoryKey, &history); err != nil {
		return []models.WorkoutPlan{}, err
	}
	for _, plan := range history {
		if err := validateWorkoutPlan(plan); err != nil {
			return []models.WorkoutPlan{}, corruptCollectionError(WorkoutHistoryKey, err)
		}
	}
	return history, nil
}

func (store *SessionStore) SaveWorkoutPlan(plan models.WorkoutPlan) error {
	if err := validateWorkoutPlan(plan); err != nil {
		return err
	}
	history, err := store.GetWorkoutHistory()
	if err != nil {
		return err
	}
	for _, existing := range history {
		if existing.ID == plan.ID {
			return fmt.Errorf("%w: workout plan %s already saved", ErrInvalidInput, plan.ID)
		}
	}

	plan.GeneratedAt = plan.GeneratedAt.UTC()
	return store.put(WorkoutHistoryKey, append([]models.WorkoutPlan{plan}, history...))
}

func (store *SessionStore) GetDietHistory() ([]models.DietPlan, error) {
	history := make([]models.DietPlan, 0)
	if err := store.loadHistory(DietHistoryKey, &history); err != nil {
		return []models.DietPlan{}, err
	}
	for _, plan := range history {
		if err := validateDietPlan(plan); err != nil {
			return []models.DietPlan{}, corruptCollectionError(DietHistoryKey, err)
		}
	}
	return history, nil
}

func (store *SessionStore) SaveDietPlan(plan models.DietPlan) error {
	if err := validateDietPlan(plan); err != nil {
		return err
	}
	history, err := store.GetDietHistory()
	if err != nil {
		return err
	}
	for _, existing := range history {
		if existing.ID == plan.ID {
			return fmt.Errorf("%w: diet plan %s already saved", ErrInvalidInput, plan.ID)
		}
	}

	plan.GeneratedAt = plan.GeneratedAt.UTC()
	return store.put(DietHistoryKey, append([]models.DietPlan{plan}, history...))
}

func (store *SessionStore) GetWeightHistory() ([]models.WeightEntry, error) {
	history := make([]models.WeightEntry, 0)
	if err := store.loadHistory(WeightHistoryKey, &history); err != nil {
		return []models.WeightEntry{}, err
	}
	for _, entry := range history {
		if err := validateWeightEntry(entry); err != nil {
			return []models.WeightEntry{}, corruptCollectionError(WeightHistoryKey, err)
		}
	}
	return history, nil
}

func (store *SessionStore) AddWeightEntry(entry models.WeightEntry) error {
	if err := validateWeightEntry(entry); err != nil {
		return err
	}
	history, err := store.GetWeightHistory()
	if err != nil {
		return err
	}

	entry.Date = entry.Date.UTC()
	return store.put(WeightHistoryKey, append(history, entry))
}

func (store *SessionStore) RecordWeight(weight float64) (models.UserProfile, models.WeightEntry, error) {
	if !isPositiveFinite(weight) {
		return models.UserProfile{}, models.WeightEntry{}, fmt.Errorf("%w: weight must be a positive number", ErrInvalidInput)
	}

	profile, err := loadActiveProfile(store)
	if err != nil {
		return models.UserProfile{}, models.WeightEntry{}, err
	}

	bmi, err := ComputeBMI(weight, profile.Height)
	if err != nil {
		return models.UserProfile{}, models.WeightEntry{}, err
	}

	entry := models.WeightEntry{
		Date:   store.now().UTC(),
		Weight: weight,
		BMI:    bmi,
	}
	previousHistory, hadHistory, err := store.backend.Get(WeightHistoryKey)
	if err != nil {
		return models.UserProfile{}, models.WeightEntry{}, fmt.Errorf("load %s: %w", WeightHistoryKey, err)
	}
	if err := store.AddWeightEntry(entry); err != nil {
		return models.UserProfile{}, models.WeightEntry{}, err
	}

	profile.Weight = weight
	if err := store.put(ProfileKey, profile); err != nil {
		if rollbackErr := store.restoreRecord(WeightHistoryKey, previousHistory, hadHistory); rollbackErr != nil {
			return models.UserProfile{}, models.WeightEntry{}, errors.Join(err, rollbackErr)
		}
		return models.UserProfile{}, models.WeightEntry{}, err
	}
	return profile, entry, nil
}

func (store *SessionStore) restoreRecord(key string, raw []byte, existed bool) error {
	if existed {
		if err := store.backend.Put(key, raw); err != nil {
			return fmt.Errorf("restore %s: %w", key, err)
		}
		return nil
	}
	if err := store.backend.Delete(key); err != nil {
		return fmt.Errorf("restore %s: %w", key, err)
	}
	return nil
}

func (store *SessionStore) GetTheme() (models.Theme, error) {
	raw, found, err := store.backend.Get(ThemeKey)
	if err != nil {
		return models.DefaultTheme, fmt.Errorf("load theme: %w", err)
	}
	if !found {
		return models.DefaultTheme, nil
	}

	var theme models.Theme
	if err := decodeStrict(raw, &theme); err != nil {
		return models.DefaultTheme, corruptCollectionError(ThemeKey, err)
	}
	if !IsValidTheme(theme) {
		return models.DefaultTheme, corruptCollectionError(ThemeKey, fmt.Errorf("unknown theme %q", theme))
	}
	return theme, nil
}

func (store *SessionStore) SaveTheme(theme models.Theme) error {
	if !IsValidTheme(theme) {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidInput, theme)
	}
	return store.put(ThemeKey, theme)
}

func (store *SessionStore) ClearSession() error {
	if err := store.backend.Delete(SessionKeys...); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (store *SessionStore) loadHistory(key string, target any) error {
	raw, found, err := store.backend.Get(key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if !found {
		return nil
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return corruptCollectionError(key, errors.New("null record"))
	}
	if err := decodeStrict(raw, target); err != nil {
		return corruptCollectionError(key, err)
	}
	return nil
}

func (store *SessionStore) put(key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.backend.Put(key, encoded); err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

type activeProfileReader interface {
	GetProfile() (models.UserProfile, bool, error)
}

func loadActiveProfile(reader activeProfileReader) (models.UserProfile, error) {
	profile, found, err := reader.GetProfile()
	if errors.Is(err, ErrCorruptPersistedData) {
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrNoActiveProfile, err)
	}
	if err != nil {
		return models.UserProfile{}, err
	}
	if !found {
		return models.UserProfile{}, ErrNoActiveProfile
	}
	return profile, nil
}

func decodeStrict(raw []byte, target any) error {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return err
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected trailing data")
	}
	return nil
}

func corruptCollectionError(key string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrCorruptPersistedData, key, cause)
}
