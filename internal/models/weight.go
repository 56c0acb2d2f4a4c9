package models

import "time"

// WeightEntry is immutable once recorded. BMI is derived from the weight and
// the profile height at recording time.
type WeightEntry struct {
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
	BMI    float64   `json:"bmi"`
}

type ProgressSummary struct {
	Entries        int     `json:"entries"`
	HasData        bool    `json:"hasData"`
	StartingWeight float64 `json:"startingWeight"`
	CurrentWeight  float64 `json:"currentWeight"`
	CurrentBMI     float64 `json:"currentBmi"`
	TotalChange    float64 `json:"totalChange"`
}
