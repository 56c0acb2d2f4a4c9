package models

import "time"

type Mood string

const (
	MoodEnergetic Mood = "Energetic"
	MoodNormal    Mood = "Normal"
	MoodTired     Mood = "Tired"
	MoodStressed  Mood = "Stressed"
)

// Exercise fields are display strings ("15-20", "45 sec").
type Exercise struct {
	Name     string `json:"name"`
	Sets     string `json:"sets"`
	Reps     string `json:"reps"`
	Duration string `json:"duration"`
}

type WorkoutPlan struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Exercises     []Exercise `json:"exercises"`
	TotalDuration string     `json:"totalDuration"`
	Mood          Mood       `json:"mood"`
	GeneratedAt   time.Time  `json:"generatedAt"`
}

type MealPlan struct {
	Breakfast        string `json:"breakfast"`
	Lunch            string `json:"lunch"`
	Dinner           string `json:"dinner"`
	EstimatedProtein string `json:"estimatedProtein"`
}

type DietPlan struct {
	ID            string    `json:"id"`
	Meals         MealPlan  `json:"meals"`
	TotalCalories int       `json:"totalCalories"`
	GeneratedAt   time.Time `json:"generatedAt"`
}
