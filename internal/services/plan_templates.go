package services

import "github.com/terraincognita07/fitplanner/internal/models"

type workoutTemplate struct {
	Title         string
	Exercises     []models.Exercise
	TotalDuration string
}

var workoutTemplatesByMood = map[models.Mood]workoutTemplate{
	models.MoodEnergetic: {
		Title: "High-Intensity Full Body Workout",
		Exercises: []models.Exercise{
			{Name: "Jumping Jacks", Sets: "3", Reps: "30", Duration: "3 min"},
			{Name: "Push-ups", Sets: "4", Reps: "15-20", Duration: "5 min"},
			{Name: "Squats", Sets: "4", Reps: "20", Duration: "5 min"},
			{Name: "Burpees", Sets: "3", Reps: "10", Duration: "4 min"},
			{Name: "Plank Hold", Sets: "3", Reps: "45 sec", Duration: "3 min"},
		},
		TotalDuration: "25-30 minutes",
	},
	models.MoodNormal: {
		Title: "Balanced Strength Training",
		Exercises: []models.Exercise{
			{Name: "Warm-up Jog in Place", Sets: "1", Reps: "5 min", Duration: "5 min"},
			{Name: "Lunges", Sets: "3", Reps: "12 each leg", Duration: "6 min"},
			{Name: "Push-ups", Sets: "3", Reps: "10-15", Duration: "5 min"},
			{Name: "Bicycle Crunches", Sets: "3", Reps: "20", Duration: "4 min"},
			{Name: "Cool-down Stretch", Sets: "1", Reps: "5 min", Duration: "5 min"},
		},
		TotalDuration: "25 minutes",
	},
	models.MoodTired: {
		Title: "Light Recovery Workout",
		Exercises: []models.Exercise{
			{Name: "Gentle Stretching", Sets: "1", Reps: "10 min", Duration: "10 min"},
			{Name: "Wall Push-ups", Sets: "2", Reps: "10", Duration: "3 min"},
			{Name: "Chair Squats", Sets: "2", Reps: "12", Duration: "4 min"},
			{Name: "Walking", Sets: "1", Reps: "10 min", Duration: "10 min"},
		},
		TotalDuration: "20 minutes",
	},
	models.MoodStressed: {
		Title: "Mindful Movement & Relaxation",
		Exercises: []models.Exercise{
			{Name: "Deep Breathing", Sets: "3", Reps: "2 min", Duration: "6 min"},
			{Name: "Gentle Yoga Flow", Sets: "1", Reps: "10 min", Duration: "10 min"},
			{Name: "Cat-Cow Stretch", Sets: "2", Reps: "10", Duration: "3 min"},
			{Name: "Child Pose Hold", Sets: "2", Reps: "2 min", Duration: "4 min"},
			{Name: "Meditation", Sets: "1", Reps: "5 min", Duration: "5 min"},
		},
		TotalDuration: "25-30 minutes",
	},
}

var mealPlansByPreference = map[models.FoodPreference][]models.MealPlan{
	models.FoodVeg: {
		{
			Breakfast:        "Oats porridge (50g) with banana, 2 boiled eggs, green tea",
			Lunch:            "Brown rice (1 cup), dal tadka (1 bowl), mixed vegetable curry, cucumber salad",
			Dinner:           "Roti (3), paneer curry (100g), spinach sabzi, curd",
			EstimatedProtein: "75-85g",
		},
		{
			Breakfast:        "Whole wheat toast (2 slices), peanut butter, scrambled eggs (2), milk",
			Lunch:            "Rajma curry (1 bowl), rice (1 cup), mixed salad, buttermilk",
			Dinner:           "Chapati (3), chana masala, bhindi sabzi, curd",
			EstimatedProtein: "70-80g",
		},
		{
			Breakfast:        "Poha with peanuts and vegetables, boiled eggs (2), banana",
			Lunch:            "Quinoa pulao (1 cup), moong dal (1 bowl), cabbage sabzi, raita",
			Dinner:           "Multigrain roti (3), soya curry, palak paneer, lassi",
			EstimatedProtein: "80-90g",
		},
	},
	models.FoodNonVeg: {
		{
			Breakfast:        "Egg bhurji (3 eggs), whole wheat toast (2 slices), milk",
			Lunch:            "Chicken curry (150g), rice (1 cup), dal (1 bowl), salad",
			Dinner:           "Roti (3), fish curry (120g), mixed vegetable sabzi, curd",
			EstimatedProtein: "100-110g",
		},
		{
			Breakfast:        "Oats with milk, boiled eggs (2), banana",
			Lunch:            "Egg curry (2 eggs), chapati (3), cucumber raita",
			Dinner:           "Grilled chicken (150g), brown rice (1 cup), sauteed vegetables",
			EstimatedProtein: "95-105g",
		},
	},
	models.FoodVegan: {
		{
			Breakfast:        "Besan chilla (2) with mint chutney, soy milk, apple",
			Lunch:            "Chana masala (1 bowl), brown rice (1 cup), kachumber salad",
			Dinner:           "Roti (3), tofu bhurji (150g), mixed dal, sauteed greens",
			EstimatedProtein: "70-80g",
		},
		{
			Breakfast:        "Peanut butter toast (2 slices), roasted chana, banana",
			Lunch:            "Rajma (1 bowl), quinoa (1 cup), carrot salad",
			Dinner:           "Soya chunk curry, millet roti (3), lauki sabzi",
			EstimatedProtein: "75-85g",
		},
	},
}

func cloneExercises(exercises []models.Exercise) []models.Exercise {
	cloned := make([]models.Exercise, len(exercises))
	copy(cloned, exercises)
	return cloned
}
