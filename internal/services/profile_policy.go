package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/terraincognita07/fitplanner/internal/models"
)

func IsValidGender(gender models.Gender) bool {
	switch gender {
	case models.GenderMale, models.GenderFemale, models.GenderOther:
		return true
	default:
		return false
	}
}

func IsValidGoal(goal models.Goal) bool {
	switch goal {
	case models.GoalWeightLoss, models.GoalMuscleGain, models.GoalMaintenance:
		return true
	default:
		return false
	}
}

func IsValidFoodPreference(preference models.FoodPreference) bool {
	switch preference {
	case models.FoodVeg, models.FoodNonVeg, models.FoodVegan:
		return true
	default:
		return false
	}
}

func IsValidMood(mood models.Mood) bool {
	switch mood {
	case models.MoodEnergetic, models.MoodNormal, models.MoodTired, models.MoodStressed:
		return true
	default:
		return false
	}
}

func IsValidTheme(theme models.Theme) bool {
	return theme == models.ThemeLight || theme == models.ThemeDark
}

func NormalizeProfile(profile models.UserProfile) (models.UserProfile, error) {
	profile.Name = strings.TrimSpace(profile.Name)
	if err := ValidateProfile(profile); err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}

func ValidateProfile(profile models.UserProfile) error {
	name := strings.TrimSpace(profile.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if profile.Age <= 0 {
		return fmt.Errorf("%w: age must be positive", ErrInvalidInput)
	}
	if !IsValidGender(profile.Gender) {
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, profile.Gender)
	}
	if !isPositiveFinite(profile.Height) {
		return fmt.Errorf("%w: height must be a positive number", ErrInvalidInput)
	}
	if !isPositiveFinite(profile.Weight) {
		return fmt.Errorf("%w: weight must be a positive number", ErrInvalidInput)
	}
	if !IsValidGoal(profile.Goal) {
		return fmt.Errorf("%w: unknown goal %q", ErrInvalidInput, profile.Goal)
	}
	if !isNonNegativeFinite(profile.Budget) {
		return fmt.Errorf("%w: budget must not be negative", ErrInvalidInput)
	}
	if !IsValidFoodPreference(profile.FoodPreference) {
		return fmt.Errorf("%w: unknown food preference %q", ErrInvalidInput, profile.FoodPreference)
	}
	if !isNonNegativeFinite(profile.StudyHours) {
		return fmt.Errorf("%w: study hours must not be negative", ErrInvalidInput)
	}
	if _, err := ComputeHealthMetrics(profile); err != nil {
		return err
	}
	return nil
}

func validateWorkoutPlan(plan models.WorkoutPlan) error {
	if strings.TrimSpace(plan.ID) == "" {
		return fmt.Errorf("%w: workout plan id is required", ErrInvalidInput)
	}
	if plan.GeneratedAt.IsZero() {
		return fmt.Errorf("%w: workout plan generation time is required", ErrInvalidInput)
	}
	if !IsValidMood(plan.Mood) {
		return fmt.Errorf("%w: unknown mood %q", ErrInvalidInput, plan.Mood)
	}
	return nil
}

func validateDietPlan(plan models.DietPlan) error {
	if strings.TrimSpace(plan.ID) == "" {
		return fmt.Errorf("%w: diet plan id is required", ErrInvalidInput)
	}
	if plan.GeneratedAt.IsZero() {
		return fmt.Errorf("%w: diet plan generation time is required", ErrInvalidInput)
	}
	if plan.TotalCalories < 0 {
		return fmt.Errorf("%w: total calories must not be negative", ErrInvalidInput)
	}
	return nil
}

func validateWeightEntry(entry models.WeightEntry) error {
	if entry.Date.IsZero() {
		return fmt.Errorf("%w: weight entry date is required", ErrInvalidInput)
	}
	if !isPositiveFinite(entry.Weight) {
		return fmt.Errorf("%w: weight must be a positive number", ErrInvalidInput)
	}
	if math.IsNaN(entry.BMI) || math.IsInf(entry.BMI, 0) {
		return fmt.Errorf("%w: bmi must be a finite number", ErrInvalidInput)
	}
	return nil
}
