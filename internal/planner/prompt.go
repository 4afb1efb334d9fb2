package planner

import (
	"strings"
	"text/template"
	"unicode"
)

const systemPrompt = "You are an expert personal trainer and fitness coach. " +
	"Provide detailed, specific workout plans in JSON format as requested. " +
	"Only return valid JSON, no other text. Focus on clear exercise names and practical workout routines. " +
	"Make sure to include accurate muscle group information that matches the exercises provided."

var userPromptTemplate = template.Must(template.New("plan").Parse(`You are an expert personal trainer and fitness coach. Create a personalized workout plan based on the following requirements:

Training Type: {{.FocusArea}}
Intensity Level: {{.Intensity}}
Days Per Week: {{.DaysPerWeek}}
Experience Level: {{.ExperienceLevel}}
Equipment Available: {{.EquipmentAvailable}}
User Goals: {{if .UserGoals}}{{.UserGoals}}{{else}}General fitness improvement{{end}}
{{if .UserGoals}}
Additional Requirements: {{.UserGoals}}
{{end}}
Important Guidelines:
1. Create specific, targeted exercises for each workout day
2. Include 4-6 exercises per workout day with proper sets, reps, and rest periods according to the chosen intensity
3. Provide specific muscle groups targeted in each workout
4. Consider the intensity level when determining sets, reps, and rest periods:
   - Beginner: 2-3 sets, 8-12 reps, 60-90 seconds rest, fewer exercises with cardio included
   - Intermediate: 3-4 sets, 6-10 reps, 45-75 seconds rest, more exercises with a focus on intensity
   - Advanced: 4-5 sets, 4-8 reps, 30-60 seconds rest, more exercises with a focus on intensity and complexity
5. Distribute muscle groups evenly throughout the week to allow proper recovery, avoid training the same muscles on consecutive days if possible
6. Include compound movements and isolation exercises appropriately
7. Consider the focus area when selecting exercises:
   - Strength: Focus on heavy compound lifts
   - Hypertrophy: Focus on volume and time under tension
   - Endurance: Focus on higher reps and circuit training
   - Weight Loss: Focus on metabolic conditioning and full-body movements
8. Include proper warm-up and cool-down suggestions
9. Provide estimated workout duration for each day
10. Include at least one rest day per week (if applicable) unless specifically requested otherwise

Return the workout plan in the following JSON format:
{
  "name": "{{.Title}} {{.FocusArea}} Program",
  "trainingType": "{{.FocusArea}}",
  "daysPerWeek": {{.DaysPerWeek}},
  "durationWeeks": 4,
  "weeklySchedule": [
    {
      "day": "Day Name (e.g., Monday)",
      "focus": "Muscle Groups Focus",
      "type": "workout or rest",
      "duration": "Estimated duration in minutes",
      "muscleGroups": ["List of muscle groups"],
      "warmUp": "Warm-up routine",
      "coolDown": "Cool-down routine",
      "exercises": [
        {
          "name": "Exercise name",
          "sets": number,
          "reps": "rep range",
          "rest": "rest period",
          "instructions": "Brief exercise instructions",
          "difficulty": "beginner/intermediate/advanced"
        }
      ]
    }
  ]
}

Be specific with exercise names: never use a muscle group as an exercise name. Provide realistic rep ranges and rest periods based on the intensity level. Generate exactly {{.DaysPerWeek}} days, starting on Monday, and make sure the muscleGroups field reflects the exercises provided for that day.
`))

type promptData struct {
	Params
	Title string
}

// buildPrompt renders the user prompt for p. p must already carry defaults.
func buildPrompt(p Params) (string, error) {
	var b strings.Builder
	if err := userPromptTemplate.Execute(&b, promptData{Params: p, Title: capitalize(string(p.Intensity))}); err != nil {
		return "", err
	}
	return b.String(), nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
