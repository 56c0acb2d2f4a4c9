package services

import (
	"time"

	"github.com/terraincognita07/fitplanner/internal/models"
)

type DemoSessionStore interface {
	SaveProfile(profile models.UserProfile) error
	GetWeightHistory() ([]models.WeightEntry, error)
	AddWeightEntry(entry models.WeightEntry) error
}

type DemoSessionService struct {
	store DemoSessionStore
	now   func() time.Time
}

func NewDemoSessionService(store DemoSessionStore) *DemoSessionService {
	return &DemoSessionService{store: store, now: time.Now}
}

func (service *DemoSessionService) WithClock(now func() time.Time) *DemoSessionService {
	if now != nil {
		service.now = now
	}
	return service
}

func (service *DemoSessionService) Start() (models.UserProfile, error) {
	profile := models.DemoProfile()
	if err := service.store.SaveProfile(profile); err != nil {
		return models.UserProfile{}, err
	}

	history, err := service.store.GetWeightHistory()
	if err != nil {
		return models.UserProfile{}, err
	}
	if len(history) > 0 {
		return profile, nil
	}

	bmi, err := ComputeBMI(profile.Weight, profile.Height)
	if err != nil {
		return models.UserProfile{}, err
	}
	entry := models.WeightEntry{
		Date:   service.now().UTC(),
		Weight: profile.Weight,
		BMI:    bmi,
	}
	if err := service.store.AddWeightEntry(entry); err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}
