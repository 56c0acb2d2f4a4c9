package services

import (
	"context"
	"fmt"

	"github.com/terraincognita07/fitplanner/internal/models"
)

type PlanStore interface {
	GetProfile() (models.UserProfile, bool, error)
	SaveWorkoutPlan(plan models.WorkoutPlan) error
	SaveDietPlan(plan models.DietPlan) error
}

type PlanService struct {
	store     PlanStore
	generator PlanGenerator
}

func NewPlanService(store PlanStore, generator PlanGenerator) *PlanService {
	return &PlanService{store: store, generator: generator}
}

func (service *PlanService) CurrentMetrics() (models.HealthMetrics, error) {
	profile, err := loadActiveProfile(service.store)
	if err != nil {
		return models.HealthMetrics{}, err
	}
	return ComputeHealthMetrics(profile)
}

func (service *PlanService) GenerateWorkout(ctx context.Context, mood models.Mood) (models.WorkoutPlan, error) {
	profile, err := loadActiveProfile(service.store)
	if err != nil {
		return models.WorkoutPlan{}, err
	}
	if !IsValidMood(mood) {
		return models.WorkoutPlan{}, fmt.Errorf("%w: unknown mood %q", ErrInvalidInput, mood)
	}

	plan, err := service.generator.GenerateWorkout(ctx, profile, mood)
	if err != nil {
		return models.WorkoutPlan{}, fmt.Errorf("generate workout: %w", err)
	}
	if err := service.store.SaveWorkoutPlan(plan); err != nil {
		return models.WorkoutPlan{}, err
	}
	return plan, nil
}

func (service *PlanService) GenerateDiet(ctx context.Context) (models.DietPlan, error) {
	profile, err := loadActiveProfile(service.store)
	if err != nil {
		return models.DietPlan{}, err
	}
	metrics, err := ComputeHealthMetrics(profile)
	if err != nil {
		return models.DietPlan{}, err
	}

	plan, err := service.generator.GenerateDiet(ctx, profile, metrics.DailyCalories)
	if err != nil {
		return models.DietPlan{}, fmt.Errorf("generate diet: %w", err)
	}
	if err := service.store.SaveDietPlan(plan); err != nil {
		return models.DietPlan{}, err
	}
	return plan, nil
}
