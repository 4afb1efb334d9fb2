package planner

import "fitsphere/backend/internal/domain"

// Fixed labels for every generated workout day.
const (
	workoutDuration = "45-60 minutes"
	workoutWarmUp   = "5-10 minutes dynamic stretching"
	workoutCoolDown = "5-10 minutes static stretching"
	restFocus       = "Rest Day"
	restDuration    = "Rest"
)

var weekDays = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// BuildFallbackPlan deterministically builds a weekly schedule from the static
// catalog. Unknown focus areas or intensities fall back to the strength/beginner
// templates; the given values are still echoed in the result.
//
// daysPerWeek is expected in [1,7]. Larger values are cut at Sunday and values
// below one yield an empty schedule.
func BuildFallbackPlan(intensity domain.Intensity, daysPerWeek int, focus domain.FocusArea) domain.WeeklyPlan {
	templates, _ := lookupTemplates(focus, intensity)
	labels := dayLabels(daysPerWeek)
	limit := exerciseLimit(intensity, daysPerWeek)
	interval := restInterval(intensity)

	schedule := make([]domain.ScheduleDay, 0, len(labels))
	source, workouts := 0, 0
	for len(schedule) < len(labels) {
		label := labels[len(schedule)]

		// A rest day follows every interval-th workout, never two in a row.
		if interval > 0 && workouts > 0 && workouts%interval == 0 && !lastIsRest(schedule) {
			schedule = append(schedule, restDay(label))
			continue
		}

		tmpl := templates[source%len(templates)]
		source++
		schedule = append(schedule, workoutDay(label, tmpl, limit))
		workouts++
	}

	return domain.WeeklyPlan{
		Schedule:    FormatSchedule(schedule),
		FocusArea:   focus,
		Intensity:   intensity,
		DaysPerWeek: daysPerWeek,
	}
}

func dayLabels(daysPerWeek int) []string {
	n := min(max(daysPerWeek, 0), len(weekDays))
	return weekDays[:n]
}

// exerciseLimit caps exercises per day. Denser weeks get fewer exercises.
// A negative result means no cap (unknown intensity).
func exerciseLimit(intensity domain.Intensity, daysPerWeek int) int {
	dense := daysPerWeek >= 4
	switch intensity {
	case domain.IntensityBeginner:
		if dense {
			return 2
		}
		return 3
	case domain.IntensityIntermediate:
		if dense {
			return 3
		}
		return 4
	case domain.IntensityAdvanced:
		if dense {
			return 4
		}
		return 5
	}
	return -1
}

// restInterval is the number of workouts after which a rest day is inserted.
// Zero disables rest days.
func restInterval(intensity domain.Intensity) int {
	switch intensity {
	case domain.IntensityAdvanced:
		return 3
	case domain.IntensityIntermediate:
		return 4
	}
	return 0
}

func lastIsRest(schedule []domain.ScheduleDay) bool {
	return len(schedule) > 0 && schedule[len(schedule)-1].Type == domain.DayTypeRest
}

func restDay(label string) domain.ScheduleDay {
	return domain.ScheduleDay{
		Day:          label,
		Focus:        restFocus,
		Type:         domain.DayTypeRest,
		Duration:     restDuration,
		MuscleGroups: []string{},
		Exercises:    []domain.PlanExercise{},
	}
}

func workoutDay(label string, tmpl DayTemplate, limit int) domain.ScheduleDay {
	selected := tmpl.Exercises
	if limit >= 0 && limit < len(selected) {
		selected = selected[:limit]
	}

	exercises := make([]domain.PlanExercise, len(selected))
	for i, ex := range selected {
		exercises[i] = domain.PlanExercise{
			Name:         ex.Name,
			Sets:         ex.Sets,
			Reps:         ex.Reps,
			Rest:         ex.Rest,
			Instructions: ex.Instructions,
			Difficulty:   string(ex.Difficulty),
		}
	}

	groups := make([]string, len(tmpl.MuscleGroups))
	copy(groups, tmpl.MuscleGroups)

	return domain.ScheduleDay{
		Day:          label,
		Focus:        joinMuscleGroups(groups),
		Type:         domain.DayTypeWorkout,
		Duration:     workoutDuration,
		MuscleGroups: groups,
		WarmUp:       workoutWarmUp,
		CoolDown:     workoutCoolDown,
		Exercises:    exercises,
	}
}
