package models

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type Goal string

const (
	GoalWeightLoss  Goal = "Weight Loss"
	GoalMuscleGain  Goal = "Muscle Gain"
	GoalMaintenance Goal = "Maintenance"
)

type FoodPreference string

const (
	FoodVeg    FoodPreference = "Veg"
	FoodNonVeg FoodPreference = "Non-Veg"
	FoodVegan  FoodPreference = "Vegan"
)

// UserProfile is the single active profile of a session. Height is in
// centimetres, weight in kilograms, study hours per day.
type UserProfile struct {
	Name           string         `json:"name"`
	Age            int            `json:"age"`
	Gender         Gender         `json:"gender"`
	Height         float64        `json:"height"`
	Weight         float64        `json:"weight"`
	Goal           Goal           `json:"goal"`
	Budget         float64        `json:"budget"`
	FoodPreference FoodPreference `json:"foodPreference"`
	GymAccess      bool           `json:"gymAccess"`
	StudyHours     float64        `json:"studyHours"`
}

func DemoProfile() UserProfile {
	return UserProfile{
		Name:           "Demo Student",
		Age:            20,
		Gender:         GenderMale,
		Height:         170,
		Weight:         70,
		Goal:           GoalMuscleGain,
		Budget:         150,
		FoodPreference: FoodVeg,
		GymAccess:      false,
		StudyHours:     6,
	}
}
