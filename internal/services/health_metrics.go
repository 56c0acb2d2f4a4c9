package services

import (
	"fmt"
	"math"

	"github.com/terraincognita07/fitplanner/internal/models"
)

const (
	gymActivityMultiplier       = 1.55
	lightActivityMultiplier     = 1.5
	sedentaryActivityMultiplier = 1.4
	lightActivityStudyHourLimit = 4

	weightLossCalorieAdjustment = -500
	muscleGainCalorieAdjustment = 300

	// Midpoint of the male (+5) and female (-161) offsets.
	otherGenderBMROffset = -78

	maxEnergyKcal = 1e9
)

func ComputeBMI(weight float64, height float64) (float64, error) {
	if !isPositiveFinite(weight) {
		return 0, fmt.Errorf("%w: weight must be a positive number", ErrInvalidInput)
	}
	if !isPositiveFinite(height) {
		return 0, fmt.Errorf("%w: height must be a positive number", ErrInvalidInput)
	}

	heightInMeters := height / 100
	bmi := roundToTenth(weight / (heightInMeters * heightInMeters))
	if !isNonNegativeFinite(bmi) {
		return 0, fmt.Errorf("%w: bmi is out of range for weight %g and height %g", ErrInvalidInput, weight, height)
	}
	return bmi, nil
}

func ClassifyBMI(bmi float64) models.BMICategory {
	switch {
	case bmi < 18.5:
		return models.BMIUnderweight
	case bmi < 25:
		return models.BMINormal
	case bmi < 30:
		return models.BMIOverweight
	default:
		return models.BMIObese
	}
}

func ComputeBMR(profile models.UserProfile) (int, error) {
	if !isPositiveFinite(profile.Weight) {
		return 0, fmt.Errorf("%w: weight must be a positive number", ErrInvalidInput)
	}
	if !isPositiveFinite(profile.Height) {
		return 0, fmt.Errorf("%w: height must be a positive number", ErrInvalidInput)
	}
	if profile.Age <= 0 {
		return 0, fmt.Errorf("%w: age must be positive", ErrInvalidInput)
	}

	base := 10*profile.Weight + 6.25*profile.Height - 5*float64(profile.Age)
	switch profile.Gender {
	case models.GenderMale:
		base += 5
	case models.GenderFemale:
		base -= 161
	default:
		base += otherGenderBMROffset
	}

	bmr := math.Round(base)
	if math.IsNaN(bmr) || math.Abs(bmr) > maxEnergyKcal {
		return 0, fmt.Errorf("%w: bmr is out of range", ErrInvalidInput)
	}
	return int(bmr), nil
}

func ActivityMultiplier(profile models.UserProfile) float64 {
	if profile.GymAccess {
		return gymActivityMultiplier
	}
	if profile.StudyHours < lightActivityStudyHourLimit {
		return lightActivityMultiplier
	}
	return sedentaryActivityMultiplier
}

func GoalCalorieAdjustment(goal models.Goal) float64 {
	switch goal {
	case models.GoalWeightLoss:
		return weightLossCalorieAdjustment
	case models.GoalMuscleGain:
		return muscleGainCalorieAdjustment
	default:
		return 0
	}
}

func ComputeDailyCalories(profile models.UserProfile, bmr int) int {
	maintenance := float64(bmr) * ActivityMultiplier(profile)
	calories := math.Round(maintenance + GoalCalorieAdjustment(profile.Goal))
	return int(math.Max(-maxEnergyKcal, math.Min(maxEnergyKcal, calories)))
}

func ComputeHealthMetrics(profile models.UserProfile) (models.HealthMetrics, error) {
	bmi, err := ComputeBMI(profile.Weight, profile.Height)
	if err != nil {
		return models.HealthMetrics{}, err
	}
	bmr, err := ComputeBMR(profile)
	if err != nil {
		return models.HealthMetrics{}, err
	}

	return models.HealthMetrics{
		BMI:           bmi,
		BMR:           bmr,
		DailyCalories: ComputeDailyCalories(profile, bmr),
		BMICategory:   ClassifyBMI(bmi),
	}, nil
}

func roundToTenth(value float64) float64 {
	return math.Round(value*10) / 10
}

func isPositiveFinite(value float64) bool {
	return value > 0 && !math.IsInf(value, 0) && !math.IsNaN(value)
}

func isNonNegativeFinite(value float64) bool {
	return value >= 0 && !math.IsInf(value, 0) && !math.IsNaN(value)
}
