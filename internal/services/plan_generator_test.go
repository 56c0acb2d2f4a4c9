package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/terraincognita07/fitplanner/internal/models"
)

func newTestTemplateGenerator(at time.Time) *TemplatePlanGenerator {
	return NewTemplatePlanGenerator(0).WithSeed(42).WithClock(fixedClock(at))
}

func TestTemplatePlanGeneratorWorkoutFollowsMood(t *testing.T) {
	generatedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	generator := newTestTemplateGenerator(generatedAt)

	tests := []struct {
		mood      models.Mood
		title     string
		exercises int
		duration  string
	}{
		{mood: models.MoodEnergetic, title: "High-Intensity Full Body Workout", exercises: 5, duration: "25-30 minutes"},
		{mood: models.MoodNormal, title: "Balanced Strength Training", exercises: 5, duration: "25 minutes"},
		{mood: models.MoodTired, title: "Light Recovery Workout", exercises: 4, duration: "20 minutes"},
		{mood: models.MoodStressed, title: "Mindful Movement & Relaxation", exercises: 5, duration: "25-30 minutes"},
	}

	for _, testCase := range tests {
		plan, err := generator.GenerateWorkout(context.Background(), models.DemoProfile(), testCase.mood)
		if err != nil {
			t.Fatalf("GenerateWorkout(%s) unexpected error: %v", testCase.mood, err)
		}
		if plan.Title != testCase.title || len(plan.Exercises) != testCase.exercises || plan.TotalDuration != testCase.duration {
			t.Fatalf("GenerateWorkout(%s) = %+v", testCase.mood, plan)
		}
		if plan.Mood != testCase.mood || plan.ID == "" || !plan.GeneratedAt.Equal(generatedAt) {
			t.Fatalf("GenerateWorkout(%s) metadata = %+v", testCase.mood, plan)
		}
	}
}

func TestTemplatePlanGeneratorWorkoutIDsAreUnique(t *testing.T) {
	generator := newTestTemplateGenerator(time.Now())

	first, err := generator.GenerateWorkout(context.Background(), models.DemoProfile(), models.MoodNormal)
	if err != nil {
		t.Fatalf("GenerateWorkout() unexpected error: %v", err)
	}
	second, err := generator.GenerateWorkout(context.Background(), models.DemoProfile(), models.MoodNormal)
	if err != nil {
		t.Fatalf("GenerateWorkout() unexpected error: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct ids, got %q twice", first.ID)
	}
}

func TestTemplatePlanGeneratorWorkoutDoesNotShareTemplateSlices(t *testing.T) {
	generator := newTestTemplateGenerator(time.Now())

	plan, err := generator.GenerateWorkout(context.Background(), models.DemoProfile(), models.MoodTired)
	if err != nil {
		t.Fatalf("GenerateWorkout() unexpected error: %v", err)
	}
	plan.Exercises[0].Name = "mutated"

	again, err := generator.GenerateWorkout(context.Background(), models.DemoProfile(), models.MoodTired)
	if err != nil {
		t.Fatalf("GenerateWorkout() unexpected error: %v", err)
	}
	if again.Exercises[0].Name != "Gentle Stretching" {
		t.Fatalf("template was mutated: %+v", again.Exercises[0])
	}
}

func TestTemplatePlanGeneratorRejectsUnknownMood(t *testing.T) {
	generator := newTestTemplateGenerator(time.Now())

	if _, err := generator.GenerateWorkout(context.Background(), models.DemoProfile(), "Sleepy"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTemplatePlanGeneratorDietUsesPreferenceAndCalories(t *testing.T) {
	generator := newTestTemplateGenerator(time.Now())

	for _, preference := range []models.FoodPreference{models.FoodVeg, models.FoodNonVeg, models.FoodVegan} {
		profile := models.DemoProfile()
		profile.FoodPreference = preference

		plan, err := generator.GenerateDiet(context.Background(), profile, 2635)
		if err != nil {
			t.Fatalf("GenerateDiet(%s) unexpected error: %v", preference, err)
		}
		if plan.TotalCalories != 2635 || plan.ID == "" {
			t.Fatalf("GenerateDiet(%s) = %+v", preference, plan)
		}
		if !containsMealPlan(mealPlansByPreference[preference], plan.Meals) {
			t.Fatalf("GenerateDiet(%s) picked meals outside the preference list: %+v", preference, plan.Meals)
		}
	}
}

func TestTemplatePlanGeneratorDietFallsBackToVeg(t *testing.T) {
	generator := newTestTemplateGenerator(time.Now())
	profile := models.DemoProfile()
	profile.FoodPreference = "Pescatarian"

	plan, err := generator.GenerateDiet(context.Background(), profile, 2000)
	if err != nil {
		t.Fatalf("GenerateDiet() unexpected error: %v", err)
	}
	if !containsMealPlan(mealPlansByPreference[models.FoodVeg], plan.Meals) {
		t.Fatalf("expected a veg meal plan, got %+v", plan.Meals)
	}
}

func TestTemplatePlanGeneratorDietRejectsNonPositiveCalories(t *testing.T) {
	generator := newTestTemplateGenerator(time.Now())

	if _, err := generator.GenerateDiet(context.Background(), models.DemoProfile(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTemplatePlanGeneratorHonorsContextDuringDelay(t *testing.T) {
	generator := NewTemplatePlanGenerator(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := generator.GenerateWorkout(ctx, models.DemoProfile(), models.MoodNormal); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := generator.GenerateDiet(ctx, models.DemoProfile(), 2000); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func containsMealPlan(options []models.MealPlan, meals models.MealPlan) bool {
	for _, option := range options {
		if option == meals {
			return true
		}
	}
	return false
}
