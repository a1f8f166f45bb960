package templates

import "github.com/tallytrack/tally/internal/models"

// Template is a ready-made habit definition users can add without filling
// in the details themselves.
type Template struct {
	Name        string
	Description string
	Type        models.HabitType
	Category    models.Category
	Difficulty  models.Difficulty
	Goal        *float64
}

// Params converts the template into entity factory input.
func (t Template) Params() models.HabitParams {
	return models.HabitParams{
		Name:        t.Name,
		Description: t.Description,
		Type:        t.Type,
		Category:    t.Category,
		Difficulty:  t.Difficulty,
		Goal:        t.Goal,
	}
}

func goal(v float64) *float64 {
	return &v
}

var catalog = []Template{
	// Health
	{Category: models.CategoryHealth, Name: "Drink 8 glasses of water", Description: "Stay hydrated throughout the day", Type: models.HabitTypeCounter, Goal: goal(8), Difficulty: models.DifficultyEasy},
	{Category: models.CategoryHealth, Name: "Take vitamins", Description: "Daily vitamin supplements", Type: models.HabitTypeBoolean, Difficulty: models.DifficultyEasy},
	{Category: models.CategoryHealth, Name: "Get 8 hours of sleep", Description: "Proper rest for better health", Type: models.HabitTypeTimer, Goal: goal(480), Difficulty: models.DifficultyMedium},
	{Category: models.CategoryHealth, Name: "Eat 5 servings of fruits/vegetables", Description: "Nutritious diet habit", Type: models.HabitTypeCounter, Goal: goal(5), Difficulty: models.DifficultyMedium},

	// Fitness
	{Category: models.CategoryFitness, Name: "Morning workout", Description: "30-minute exercise session", Type: models.HabitTypeTimer, Goal: goal(30), Difficulty: models.DifficultyMedium},
	{Category: models.CategoryFitness, Name: "Walk 10,000 steps", Description: "Daily step goal for fitness", Type: models.HabitTypeCounter, Goal: goal(10000), Difficulty: models.DifficultyMedium},
	{Category: models.CategoryFitness, Name: "Do push-ups", Description: "Strength training exercise", Type: models.HabitTypeCounter, Goal: goal(20), Difficulty: models.DifficultyHard},
	{Category: models.CategoryFitness, Name: "Stretch for 10 minutes", Description: "Flexibility and mobility", Type: models.HabitTypeTimer, Goal: goal(10), Difficulty: models.DifficultyEasy},

	// Mindfulness
	{Category: models.CategoryMindfulness, Name: "Meditate", Description: "10 minutes of mindfulness", Type: models.HabitTypeTimer, Goal: goal(10), Difficulty: models.DifficultyMedium},
	{Category: models.CategoryMindfulness, Name: "Practice gratitude", Description: "Write 3 things you're grateful for", Type: models.HabitTypeCounter, Goal: goal(3), Difficulty: models.DifficultyEasy},
	{Category: models.CategoryMindfulness, Name: "Deep breathing exercises", Description: "5 minutes of breathing practice", Type: models.HabitTypeTimer, Goal: goal(5), Difficulty: models.DifficultyEasy},
	{Category: models.CategoryMindfulness, Name: "Journal thoughts", Description: "Daily reflection and journaling", Type: models.HabitTypeBoolean, Difficulty: models.DifficultyEasy},

	// Productivity
	{Category: models.CategoryProductivity, Name: "Review daily goals", Description: "Plan and prioritize tasks", Type: models.HabitTypeBoolean, Difficulty: models.DifficultyEasy},
	{Category: models.CategoryProductivity, Name: "Clean workspace", Description: "Organize and tidy work area", Type: models.HabitTypeBoolean, Difficulty: models.DifficultyEasy},
	{Category: models.CategoryProductivity, Name: "No social media for 2 hours", Description: "Focus time without distractions", Type: models.HabitTypeTimer, Goal: goal(120), Difficulty: models.DifficultyHard},
	{Category: models.CategoryProductivity, Name: "Complete priority task", Description: "Focus on most important work", Type: models.HabitTypeBoolean, Difficulty: models.DifficultyMedium},

	// Learning
	{Category: models.CategoryLearning, Name: "Read for 30 minutes", Description: "Daily reading habit", Type: models.HabitTypeTimer, Goal: goal(30), Difficulty: models.DifficultyMedium},
	{Category: models.CategoryLearning, Name: "Learn new words", Description: "Expand vocabulary", Type: models.HabitTypeCounter, Goal: goal(5), Difficulty: models.DifficultyEasy},
	{Category: models.CategoryLearning, Name: "Practice a skill", Description: "Deliberate practice session", Type: models.HabitTypeTimer, Goal: goal(25), Difficulty: models.DifficultyMedium},
	{Category: models.CategoryLearning, Name: "Watch educational content", Description: "Learn something new", Type: models.HabitTypeTimer, Goal: goal(20), Difficulty: models.DifficultyEasy},

	// Social
	{Category: models.CategorySocial, Name: "Call family/friends", Description: "Connect with loved ones", Type: models.HabitTypeBoolean, Difficulty: models.DifficultyEasy},
	{Category: models.CategorySocial, Name: "Compliment someone", Description: "Spread positivity", Type: models.HabitTypeBoolean, Difficulty: models.DifficultyEasy},
	{Category: models.CategorySocial, Name: "Help someone", Description: "Acts of kindness", Type: models.HabitTypeBoolean, Difficulty: models.DifficultyMedium},

	// Other
	{Category: models.CategoryOther, Name: "Make bed", Description: "Start day with accomplishment", Type: models.HabitTypeBoolean, Difficulty: models.DifficultyEasy},
	{Category: models.CategoryOther, Name: "Limit coffee intake", Description: "Healthy caffeine consumption", Type: models.HabitTypeCounter, Goal: goal(2), Difficulty: models.DifficultyMedium},
	{Category: models.CategoryOther, Name: "Evening routine", Description: "Consistent bedtime preparation", Type: models.HabitTypeBoolean, Difficulty: models.DifficultyEasy},
}

// Catalog returns all habit templates in display order.
func Catalog() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}

// ByCategory groups the catalog by category.
func ByCategory() map[models.Category][]Template {
	grouped := make(map[models.Category][]Template)
	for _, t := range catalog {
		grouped[t.Category] = append(grouped[t.Category], t)
	}
	return grouped
}

// Find looks up a template by exact name.
func Find(name string) (Template, bool) {
	for _, t := range catalog {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}
