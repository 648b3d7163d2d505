package store

import (
	"time"

	"planboard/src-server/model"

	"github.com/google/uuid"
)

// DemoNotes is the board a first-time user sees.
func DemoNotes(now time.Time) []model.Note {
	createdAt := now.UTC().Format(time.RFC3339)
	return []model.Note{
		{
			ID:        "1",
			Title:     "Notes in Hurry",
			Content:   "Wired\nGrow with Google\nProject Euphoria\nFood Area at Chandni Chowk\nSquare in Mirpurkhas",
			Color:     "bg-red-300",
			IsPinned:  true,
			Labels:    []string{"Notes"},
			CreatedAt: createdAt,
		},
		{
			ID:        "2",
			Title:     "FOCUS",
			Content:   "Web Development\nSTAY CALM... Do everything slowly.",
			Color:     "bg-yellow-300",
			IsPinned:  true,
			Labels:    []string{},
			CreatedAt: createdAt,
		},
		{
			ID:        "3",
			Title:     "Habits you should develop",
			Content:   "Working hard\nReading books\nReading poetry\nLearning new things\nImproving skills\nWriting diary daily",
			Color:     "bg-red-300",
			IsPinned:  true,
			Labels:    []string{},
			CreatedAt: createdAt,
		},
		{
			ID:        "4",
			Title:     "Your Bad Habits",
			Content:   "Watching too much Youtube\nWatching too much movies\nWasting a lot of time watching news",
			Color:     "bg-red-300",
			Labels:    []string{},
			CreatedAt: createdAt,
		},
		{
			ID:        "5",
			Title:     "To Live Longer!",
			Content:   "Have plenty of sleep\nDon't take stress\nIntermittent Fasting\nVery low sugar intake\nExercise",
			Color:     "bg-green-300",
			Labels:    []string{"Health"},
			CreatedAt: createdAt,
		},
		{
			ID:        "6",
			Title:     "Rules of the Game",
			Content:   "RULE 1: You must not break any of the rules given below or otherwise there will be serious consequences on your life.\nRULE 2: Bed Time: 11 PM\nRULE 3: Sleep Duration: 7 hours",
			Color:     "bg-blue-300",
			Labels:    []string{},
			CreatedAt: createdAt,
		},
	}
}

// DemoTodos is the list a first-time user sees.
func DemoTodos(now time.Time) []model.Todo {
	createdAt := now.UTC().Format(time.RFC3339)
	return []model.Todo{
		{
			ID:        uuid.NewString(),
			Text:      "Complete project proposal",
			Category:  model.TodoCategoryWork,
			Priority:  model.TodoPriorityHigh,
			CreatedAt: createdAt,
		},
		{
			ID:        uuid.NewString(),
			Text:      "Buy groceries",
			Completed: true,
			Category:  model.TodoCategoryShopping,
			Priority:  model.TodoPriorityMedium,
			CreatedAt: createdAt,
		},
		{
			ID:        uuid.NewString(),
			Text:      "Schedule dentist appointment",
			Category:  model.TodoCategoryPersonal,
			Priority:  model.TodoPriorityLow,
			CreatedAt: createdAt,
		},
	}
}
