package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/fitplanner/internal/models"
)

type PlanGenerator interface {
	GenerateWorkout(ctx context.Context, profile models.UserProfile, mood models.Mood) (models.WorkoutPlan, error)
	GenerateDiet(ctx context.Context, profile models.UserProfile, dailyCalories int) (models.DietPlan, error)
}

var _ PlanGenerator = (*TemplatePlanGenerator)(nil)

type TemplatePlanGenerator struct {
	delay time.Duration
	now   func() time.Time
	newID func() string

	mu     sync.Mutex
	random *rand.Rand
}

func NewTemplatePlanGenerator(delay time.Duration) *TemplatePlanGenerator {
	seed := uint64(time.Now().UnixNano())
	return &TemplatePlanGenerator{
		delay:  delay,
		now:    time.Now,
		newID:  uuid.NewString,
		random: rand.New(rand.NewPCG(seed, seed>>1)),
	}
}

func (generator *TemplatePlanGenerator) WithSeed(seed uint64) *TemplatePlanGenerator {
	generator.mu.Lock()
	defer generator.mu.Unlock()
	generator.random = rand.New(rand.NewPCG(seed, seed>>1))
	return generator
}

func (generator *TemplatePlanGenerator) WithClock(now func() time.Time) *TemplatePlanGenerator {
	if now != nil {
		generator.now = now
	}
	return generator
}

func (generator *TemplatePlanGenerator) GenerateWorkout(ctx context.Context, profile models.UserProfile, mood models.Mood) (models.WorkoutPlan, error) {
	template, ok := workoutTemplatesByMood[mood]
	if !ok {
		return models.WorkoutPlan{}, fmt.Errorf("%w: unknown mood %q", ErrInvalidInput, mood)
	}
	if err := generator.wait(ctx); err != nil {
		return models.WorkoutPlan{}, err
	}

	return models.WorkoutPlan{
		ID:            generator.newID(),
		Title:         template.Title,
		Exercises:     cloneExercises(template.Exercises),
		TotalDuration: template.TotalDuration,
		Mood:          mood,
		GeneratedAt:   generator.now().UTC(),
	}, nil
}

func (generator *TemplatePlanGenerator) GenerateDiet(ctx context.Context, profile models.UserProfile, dailyCalories int) (models.DietPlan, error) {
	if dailyCalories <= 0 {
		return models.DietPlan{}, fmt.Errorf("%w: daily calories must be positive", ErrInvalidInput)
	}
	options, ok := mealPlansByPreference[profile.FoodPreference]
	if !ok || len(options) == 0 {
		options = mealPlansByPreference[models.FoodVeg]
	}
	if err := generator.wait(ctx); err != nil {
		return models.DietPlan{}, err
	}

	return models.DietPlan{
		ID:            generator.newID(),
		Meals:         options[generator.pick(len(options))],
		TotalCalories: dailyCalories,
		GeneratedAt:   generator.now().UTC(),
	}, nil
}

func (generator *TemplatePlanGenerator) pick(count int) int {
	generator.mu.Lock()
	defer generator.mu.Unlock()
	return generator.random.IntN(count)
}

func (generator *TemplatePlanGenerator) wait(ctx context.Context) error {
	if generator.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(generator.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
