package models

type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)

// HealthMetrics is derived from a UserProfile on demand and never persisted.
type HealthMetrics struct {
	BMI           float64     `json:"bmi"`
	BMR           int         `json:"bmr"`
	DailyCalories int         `json:"dailyCalories"`
	BMICategory   BMICategory `json:"bmiCategory"`
}
