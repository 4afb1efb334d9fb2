package planner

import (
	"fmt"
	"strings"

	"fitsphere/backend/internal/domain"
)

const (
	defaultSets = 3
	defaultReps = "8-12"
)

// Exercise names containing one of these phrases are muscle-group labels
// rather than exercises and get replaced by a concrete movement.
var genericPhrases = []string{
	"chest & triceps",
	"back & biceps",
	"legs",
	"shoulders & abs",
	"full body",
	"core",
}

// Checked in order; the first keyword found in a generic name wins.
var specificExercises = []struct {
	keyword string
	name    string
}{
	{"chest", "Bench Press"},
	{"back", "Pull-ups"},
	{"legs", "Squats"},
	{"shoulders", "Shoulder Press"},
	{"abs", "Planks"},
	{"core", "Planks"},
}

const genericFallbackName = "Compound Exercise"

func joinMuscleGroups(groups []string) string {
	return strings.Join(groups, " & ")
}

// FormatSchedule returns a copy of schedule with every exercise passed
// through FormatExercise. The input is left untouched.
func FormatSchedule(schedule []domain.ScheduleDay) []domain.ScheduleDay {
	out := make([]domain.ScheduleDay, len(schedule))
	for i, day := range schedule {
		exercises := make([]domain.PlanExercise, len(day.Exercises))
		for j, ex := range day.Exercises {
			exercises[j] = FormatExercise(ex)
		}
		day.Exercises = exercises
		out[i] = day
	}
	return out
}

// FormatExercise rewrites generic display names and fills the details string.
// Sets, reps and rest are never changed.
func FormatExercise(ex domain.PlanExercise) domain.PlanExercise {
	ex.Name = displayName(ex.Name)
	ex.Details = exerciseDetails(ex.Sets, ex.Reps)
	return ex
}

func displayName(name string) string {
	lower := strings.ToLower(name)
	generic := false
	for _, phrase := range genericPhrases {
		if strings.Contains(lower, phrase) {
			generic = true
			break
		}
	}
	if !generic {
		return name
	}
	for _, s := range specificExercises {
		if strings.Contains(lower, s.keyword) {
			return s.name
		}
	}
	return genericFallbackName
}

func exerciseDetails(sets int, reps string) string {
	if sets == 0 {
		sets = defaultSets
	}
	if reps == "" {
		reps = defaultReps
	}
	return fmt.Sprintf("%d sets of %s reps", sets, reps)
}
