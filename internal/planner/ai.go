package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fitsphere/backend/internal/domain"

	"go.uber.org/zap"
)

var (
	ErrNoJSONObject    = errors.New("no JSON object in model response")
	ErrMissingSchedule = errors.New("model response has no weeklySchedule array")
)

// Default text for AI days that omit warm-up or cool-down.
const (
	aiDefaultWarmUp   = "5-10 minute dynamic warm-up"
	aiDefaultCoolDown = "5-10 minute static stretching"
)

// TextCompleter sends a system and user prompt to a text-generation model
// and returns its raw answer.
type TextCompleter interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// AIGenerator generates plans through a language model. The model output is
// untrusted: anything that does not decode into a weekly schedule is an error.
type AIGenerator struct {
	completer TextCompleter
	logger    *zap.Logger
}

// NewAIGenerator creates an AIGenerator. A nil logger disables logging.
func NewAIGenerator(completer TextCompleter, logger *zap.Logger) *AIGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AIGenerator{completer: completer, logger: logger}
}

// Generate asks the model for a plan and converts its answer.
func (g *AIGenerator) Generate(ctx context.Context, p Params) (*domain.WeeklyPlan, error) {
	p = p.withDefaults()
	prompt, err := buildPrompt(p)
	if err != nil {
		return nil, fmt.Errorf("build prompt: %w", err)
	}

	raw, err := g.completer.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("complete: %w", err)
	}
	g.logger.Debug("model response received", zap.Int("bytes", len(raw)))

	plan, err := parseAIPlan(raw)
	if err != nil {
		return nil, err
	}
	plan.FocusArea = p.FocusArea
	plan.Intensity = p.Intensity
	plan.DaysPerWeek = p.DaysPerWeek
	return plan, nil
}

// flexInt accepts numbers and numeric strings ("3", "3-4" reads as 3).
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*f = flexInt(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("sets: %w", err)
	}
	s = strings.TrimSpace(s)
	if i := strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		*f = 0
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("sets: %w", err)
	}
	*f = flexInt(v)
	return nil
}

// flexString accepts strings and numbers (models often send reps: 10).
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

type aiExercise struct {
	Name         string     `json:"name"`
	Sets         flexInt    `json:"sets"`
	Reps         flexString `json:"reps"`
	Rest         flexString `json:"rest"`
	Instructions string     `json:"instructions"`
	Difficulty   string     `json:"difficulty"`
}

type aiDay struct {
	Day          string       `json:"day"`
	Focus        string       `json:"focus"`
	Type         string       `json:"type"`
	Duration     flexString   `json:"duration"`
	MuscleGroups []string     `json:"muscleGroups"`
	WarmUp       string       `json:"warmUp"`
	CoolDown     string       `json:"coolDown"`
	Exercises    []aiExercise `json:"exercises"`
}

type aiPlan struct {
	Name           string   `json:"name"`
	DurationWeeks  flexInt  `json:"durationWeeks"`
	WeeklySchedule *[]aiDay `json:"weeklySchedule"`
}

func parseAIPlan(raw string) (*domain.WeeklyPlan, error) {
	obj, err := extractJSONObject(raw)
	if err != nil {
		return nil, err
	}
	var parsed aiPlan
	if err := json.Unmarshal([]byte(obj), &parsed); err != nil {
		return nil, fmt.Errorf("decode model response: %w", err)
	}
	if parsed.WeeklySchedule == nil || len(*parsed.WeeklySchedule) == 0 {
		return nil, ErrMissingSchedule
	}

	schedule := make([]domain.ScheduleDay, 0, len(*parsed.WeeklySchedule))
	for _, d := range *parsed.WeeklySchedule {
		schedule = append(schedule, d.toScheduleDay())
	}
	return &domain.WeeklyPlan{
		Name:          parsed.Name,
		DurationWeeks: int(parsed.DurationWeeks),
		Schedule:      FormatSchedule(schedule),
	}, nil
}

func (d aiDay) toScheduleDay() domain.ScheduleDay {
	day := domain.ScheduleDay{
		Day:          d.Day,
		Focus:        d.Focus,
		Type:         domain.DayTypeWorkout,
		Duration:     string(d.Duration),
		MuscleGroups: d.MuscleGroups,
		WarmUp:       d.WarmUp,
		CoolDown:     d.CoolDown,
		Exercises:    make([]domain.PlanExercise, 0, len(d.Exercises)),
	}
	if day.MuscleGroups == nil {
		day.MuscleGroups = []string{}
	}
	if strings.EqualFold(strings.TrimSpace(d.Type), string(domain.DayTypeRest)) {
		day.Type = domain.DayTypeRest
		day.MuscleGroups = []string{}
		return day
	}
	if day.WarmUp == "" {
		day.WarmUp = aiDefaultWarmUp
	}
	if day.CoolDown == "" {
		day.CoolDown = aiDefaultCoolDown
	}
	for _, ex := range d.Exercises {
		day.Exercises = append(day.Exercises, domain.PlanExercise{
			Name:         ex.Name,
			Sets:         int(ex.Sets),
			Reps:         string(ex.Reps),
			Rest:         string(ex.Rest),
			Instructions: ex.Instructions,
			Difficulty:   ex.Difficulty,
		})
	}
	return day
}

// extractJSONObject returns the first balanced {...} span of s. Braces inside
// JSON strings are ignored.
func extractJSONObject(s string) (string, error) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", ErrNoJSONObject
	}
	depth := 0
	inString, escaped := false, false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}
	return "", ErrNoJSONObject
}
