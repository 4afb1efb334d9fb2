package planner

import "fitsphere/backend/internal/domain"

// ExerciseTemplate is one catalog exercise. Catalog entries are shared
// read-only between day templates and must never be mutated.
type ExerciseTemplate struct {
	Name         string
	Sets         int
	Reps         string
	Rest         string
	Instructions string
	Difficulty   domain.Intensity
}

// DayTemplate pairs a muscle-group focus with an ordered exercise list.
// The first N exercises are selected depending on intensity and weekly volume.
type DayTemplate struct {
	MuscleGroups []string
	Exercises    []ExerciseTemplate
}

type catalogKey struct {
	focus     domain.FocusArea
	intensity domain.Intensity
}

var defaultCatalogKey = catalogKey{domain.FocusStrength, domain.IntensityBeginner}

// lookupTemplates returns the day templates for the pair, or the
// strength/beginner templates when the pair is not in the catalog.
func lookupTemplates(focus domain.FocusArea, intensity domain.Intensity) ([]DayTemplate, bool) {
	if templates, ok := catalog[catalogKey{focus, intensity}]; ok {
		return templates, true
	}
	return catalog[defaultCatalogKey], false
}

var catalog = map[catalogKey][]DayTemplate{
	{domain.FocusStrength, domain.IntensityBeginner}: {
		{
			MuscleGroups: []string{"Chest", "Triceps"},
			Exercises: []ExerciseTemplate{
				{Name: "Flat Dumbbell Chest Press", Sets: 2, Reps: "8-12", Rest: "60-90 seconds", Instructions: "Lie on flat bench and press dumbbells upward, focusing on squeezing chest muscles", Difficulty: domain.IntensityBeginner},
				{Name: "Incline Dumbbell Chest Press", Sets: 2, Reps: "8-12", Rest: "60-90 seconds", Instructions: "Adjust bench to 30-45 degree incline and press dumbbells upward", Difficulty: domain.IntensityBeginner},
				{Name: "Chest Dips", Sets: 2, Reps: "6-10", Rest: "60-90 seconds", Instructions: "Use parallel bars or bench to perform dips, keeping lean forward slightly to target chest", Difficulty: domain.IntensityBeginner},
				{Name: "Dumbbell Flyes", Sets: 2, Reps: "10-15", Rest: "60-90 seconds", Instructions: "On flat bench, move arms in arc motion with light weights, keeping slight bend in elbows", Difficulty: domain.IntensityBeginner},
				{Name: "Overhead Dumbbell Shoulder Press", Sets: 2, Reps: "8-10", Rest: "60-90 seconds", Instructions: "Sit on bench with back support, press dumbbells overhead from shoulder height", Difficulty: domain.IntensityBeginner},
				{Name: "Dumbbell Lateral Raises", Sets: 2, Reps: "10-15", Rest: "60-90 seconds", Instructions: "Stand upright and raise arms to sides with light weights, squeeze shoulders at top", Difficulty: domain.IntensityBeginner},
				{Name: "Tricep Pushdowns", Sets: 2, Reps: "10-12", Rest: "60-90 seconds", Instructions: "Using cable machine, push down with straight arms focusing on tricep extension", Difficulty: domain.IntensityBeginner},
				{Name: "Overhead Tricep Extension", Sets: 2, Reps: "10-12", Rest: "60-90 seconds", Instructions: "Hold single dumbbell overhead, bend elbow to lower weight behind head, then extend", Difficulty: domain.IntensityBeginner},
			},
		},
		{
			MuscleGroups: []string{"Back", "Biceps"},
			Exercises: []ExerciseTemplate{
				{Name: "Lat Pulldowns", Sets: 2, Reps: "8-12", Rest: "60-90 seconds", Instructions: "Grab wide bar and pull down to upper chest, squeezing shoulder blades together", Difficulty: domain.IntensityBeginner},
				{Name: "Cable Seated Rows", Sets: 2, Reps: "8-12", Rest: "60-90 seconds", Instructions: "Pull cable handles toward torso while seated, keeping back straight", Difficulty: domain.IntensityBeginner},
				{Name: "Dumbbell Bicep Curls", Sets: 2, Reps: "10-15", Rest: "60-90 seconds", Instructions: "Stand with feet shoulder-width apart, curl dumbbells toward shoulders", Difficulty: domain.IntensityBeginner},
				{Name: "Hammer Curls", Sets: 2, Reps: "10-15", Rest: "60-90 seconds", Instructions: "Hold dumbbells with neutral grip (palms facing each other), curl upward", Difficulty: domain.IntensityBeginner},
				{Name: "Reverse Flyes", Sets: 2, Reps: "10-15", Rest: "60-90 seconds", Instructions: "Lean forward slightly and move arms back with slight bend in elbows, targeting rear delts", Difficulty: domain.IntensityBeginner},
				{Name: "Face Pulls", Sets: 2, Reps: "12-15", Rest: "60-90 seconds", Instructions: "Using cable machine, pull rope toward face with thumbs up, squeeze rear delts", Difficulty: domain.IntensityBeginner},
				{Name: "Wide-Grip Pulldowns", Sets: 2, Reps: "8-12", Rest: "60-90 seconds", Instructions: "Grab bar wider than shoulders, pull down to upper chest, focus on lats", Difficulty: domain.IntensityBeginner},
				{Name: "Barbell Rows", Sets: 2, Reps: "8-12", Rest: "60-90 seconds", Instructions: "Bend at waist, pull barbell to lower rib cage while keeping back straight", Difficulty: domain.IntensityBeginner},
			},
		},
		{
			MuscleGroups: []string{"Legs"},
			Exercises: []ExerciseTemplate{
				{Name: "Bodyweight Squats", Sets: 2, Reps: "10-15", Rest: "60-90 seconds", Instructions: "Stand with feet shoulder-width apart, lower body by bending knees and hips, keep chest up", Difficulty: domain.IntensityBeginner},
				{Name: "Walking Lunges", Sets: 2, Reps: "8-12 each leg", Rest: "60-90 seconds", Instructions: "Step forward with one leg, lower hips until both knees are bent at 90 degrees", Difficulty: domain.IntensityBeginner},
				{Name: "Leg Press", Sets: 2, Reps: "10-15", Rest: "60-90 seconds", Instructions: "Sit on machine, push weight away with feet, focus on quadriceps", Difficulty: domain.IntensityBeginner},
				{Name: "Standing Calf Raises", Sets: 2, Reps: "15-20", Rest: "60-90 seconds", Instructions: "Stand upright and raise heels while supporting body weight, lower slowly", Difficulty: domain.IntensityBeginner},
				{Name: "Glute Bridges", Sets: 2, Reps: "12-15", Rest: "60-90 seconds", Instructions: "Lie on back, bend knees, lift hips by squeezing glutes and hamstrings", Difficulty: domain.IntensityBeginner},
				{Name: "Romanian Deadlifts (light)", Sets: 2, Reps: "8-12", Rest: "60-90 seconds", Instructions: "Keep legs slightly bent, hinge at hips to lower weight, feel hamstring stretch", Difficulty: domain.IntensityBeginner},
				{Name: "Leg Extensions", Sets: 2, Reps: "10-15", Rest: "60-90 seconds", Instructions: "Sit on machine, extend legs against pad, focus on quadriceps", Difficulty: domain.IntensityBeginner},
				{Name: "Leg Curls", Sets: 2, Reps: "10-15", Rest: "60-90 seconds", Instructions: "Lie face down, curl legs against pad, target hamstrings", Difficulty: domain.IntensityBeginner},
			},
		},
	},
	{domain.FocusStrength, domain.IntensityIntermediate}: {
		{
			MuscleGroups: []string{"Chest", "Triceps"},
			Exercises: []ExerciseTemplate{
				{Name: "Barbell Bench Press", Sets: 3, Reps: "6-8", Rest: "45-75 seconds", Instructions: "Press barbell from chest to arms extended, focus on controlled movement", Difficulty: domain.IntensityIntermediate},
				{Name: "Incline Barbell Press", Sets: 3, Reps: "6-8", Rest: "45-75 seconds", Instructions: "Adjust bench to 30-45 degree incline, press barbell upward for upper chest", Difficulty: domain.IntensityIntermediate},
				{Name: "Close-Grip Bench Press", Sets: 3, Reps: "6-8", Rest: "45-75 seconds", Instructions: "Narrow grip for tricep emphasis, press barbell with controlled form", Difficulty: domain.IntensityIntermediate},
				{Name: "Weighted Dips", Sets: 3, Reps: "6-10", Rest: "45-75 seconds", Instructions: "Add weight for increased difficulty, keep lean forward for chest focus", Difficulty: domain.IntensityIntermediate},
				{Name: "Cable Crossovers", Sets: 3, Reps: "10-12", Rest: "45-75 seconds", Instructions: "Bring cables together in front of body, feel chest contraction at peak", Difficulty: domain.IntensityIntermediate},
				{Name: "Decline Dumbbell Press", Sets: 3, Reps: "6-8", Rest: "45-75 seconds", Instructions: "Lie on decline bench, press dumbbells upward for lower chest focus", Difficulty: domain.IntensityIntermediate},
				{Name: "Dumbbell Pullovers", Sets: 3, Reps: "8-10", Rest: "45-75 seconds", Instructions: "Lie on bench, extend arms over head with single dumbbell, stretch chest", Difficulty: domain.IntensityIntermediate},
				{Name: "Tricep Dumbbell Kickbacks", Sets: 3, Reps: "10-12", Rest: "45-75 seconds", Instructions: "Bend at waist, extend arms backward focusing on tricep extension", Difficulty: domain.IntensityIntermediate},
			},
		},
		{
			MuscleGroups: []string{"Back", "Biceps"},
			Exercises: []ExerciseTemplate{
				{Name: "Pull-ups", Sets: 3, Reps: "4-8", Rest: "45-75 seconds", Instructions: "Pull body up until chin passes bar, focus on lat engagement", Difficulty: domain.IntensityIntermediate},
				{Name: "Barbell Bent-Over Rows", Sets: 3, Reps: "6-8", Rest: "45-75 seconds", Instructions: "Bend at waist, pull barbell to lower rib cage, squeeze shoulder blades", Difficulty: domain.IntensityIntermediate},
				{Name: "T-Bar Rows", Sets: 3, Reps: "6-8", Rest: "45-75 seconds", Instructions: "Using T-bar machine, pull weight to upper abdomen, engage lats", Difficulty: domain.IntensityIntermediate},
				{Name: "Preacher Curls", Sets: 3, Reps: "8-10", Rest: "45-75 seconds", Instructions: "Curl with arms supported on pad, isolate biceps completely", Difficulty: domain.IntensityIntermediate},
				{Name: "Cable Rows (Wide Grip)", Sets: 3, Reps: "8-10", Rest: "45-75 seconds", Instructions: "Pull cable handles to torso with wide grip, squeeze back muscles", Difficulty: domain.IntensityIntermediate},
				{Name: "Chin-ups", Sets: 3, Reps: "4-8", Rest: "45-75 seconds", Instructions: "Use underhand grip, pull body up until chin passes bar", Difficulty: domain.IntensityIntermediate},
				{Name: "Cable Lat Pulldowns (Close Grip)", Sets: 3, Reps: "8-10", Rest: "45-75 seconds", Instructions: "Use close grip, pull to chest focusing on middle back", Difficulty: domain.IntensityIntermediate},
				{Name: "Hammer Curls (Cable)", Sets: 3, Reps: "10-12", Rest: "45-75 seconds", Instructions: "Use cable with neutral grip, curl upward for brachialis", Difficulty: domain.IntensityIntermediate},
			},
		},
		{
			MuscleGroups: []string{"Legs"},
			Exercises: []ExerciseTemplate{
				{Name: "Barbell Back Squats", Sets: 3, Reps: "6-8", Rest: "45-75 seconds", Instructions: "Squat with barbell on upper traps, depth to at least parallel", Difficulty: domain.IntensityIntermediate},
				{Name: "Romanian Deadlifts", Sets: 3, Reps: "6-8", Rest: "45-75 seconds", Instructions: "Hinge at hips with straight legs, feel hamstring and glute stretch", Difficulty: domain.IntensityIntermediate},
				{Name: "Bulgarian Split Squats", Sets: 3, Reps: "6-8 each leg", Rest: "45-75 seconds", Instructions: "Rear foot elevated on bench, perform single-leg squat", Difficulty: domain.IntensityIntermediate},
				{Name: "Leg Press (Single Leg)", Sets: 3, Reps: "8-10 each leg", Rest: "45-75 seconds", Instructions: "Perform leg press with one leg at a time for balance", Difficulty: domain.IntensityIntermediate},
				{Name: "Leg Extensions (Machine)", Sets: 3, Reps: "10-12", Rest: "45-75 seconds", Instructions: "Extend legs against machine pad, focus on quadriceps", Difficulty: domain.IntensityIntermediate},
				{Name: "Lying Leg Curls (Machine)", Sets: 3, Reps: "10-12", Rest: "45-75 seconds", Instructions: "Curl legs against machine resistance, target hamstrings", Difficulty: domain.IntensityIntermediate},
				{Name: "Walking Lunges (Weighted)", Sets: 3, Reps: "8-10 each leg", Rest: "45-75 seconds", Instructions: "Hold dumbbells and perform walking lunges with added weight", Difficulty: domain.IntensityIntermediate},
				{Name: "Hip Thrusts", Sets: 3, Reps: "8-12", Rest: "45-75 seconds", Instructions: "Sit against bench, thrust hips up with barbell across hips, squeeze glutes", Difficulty: domain.IntensityIntermediate},
			},
		},
	},
	{domain.FocusStrength, domain.IntensityAdvanced}: {
		{
			MuscleGroups: []string{"Chest", "Triceps"},
			Exercises: []ExerciseTemplate{
				{Name: "Heavy Barbell Bench Press", Sets: 4, Reps: "4-6", Rest: "30-60 seconds", Instructions: "Press maximum weight with perfect form, spotter recommended", Difficulty: domain.IntensityAdvanced},
				{Name: "Incline Dumbbell Bench Press (Heavy)", Sets: 4, Reps: "5-7", Rest: "30-60 seconds", Instructions: "Press heavy dumbbells on incline for upper chest development", Difficulty: domain.IntensityAdvanced},
				{Name: "Close-Grip Barbell Bench Press", Sets: 4, Reps: "5-7", Rest: "30-60 seconds", Instructions: "Narrow grip for intense tricep focus, control the weight", Difficulty: domain.IntensityAdvanced},
				{Name: "Weighted Dips (Heavy)", Sets: 4, Reps: "6-8", Rest: "30-60 seconds", Instructions: "Add significant weight for advanced chest and tricep development", Difficulty: domain.IntensityAdvanced},
				{Name: "Cable Crossovers (Constant Tension)", Sets: 4, Reps: "8-10", Rest: "30-60 seconds", Instructions: "Maintain constant tension on chest muscles throughout movement", Difficulty: domain.IntensityAdvanced},
				{Name: "Decline Barbell Bench Press", Sets: 4, Reps: "4-6", Rest: "30-60 seconds", Instructions: "Lower chest focus with decline angle, heavy weight with spotter", Difficulty: domain.IntensityAdvanced},
				{Name: "JM Press", Sets: 4, Reps: "6-8", Rest: "30-60 seconds", Instructions: "Between bench press and skullcrushers, great tricep isolation", Difficulty: domain.IntensityAdvanced},
				{Name: "Single-Arm Dumbbell Press", Sets: 4, Reps: "6-8 each arm", Rest: "30-60 seconds", Instructions: "Unilateral pressing for core stability and chest balance", Difficulty: domain.IntensityAdvanced},
			},
		},
		{
			MuscleGroups: []string{"Back", "Biceps"},
			Exercises: []ExerciseTemplate{
				{Name: "Weighted Pull-ups (Heavy)", Sets: 4, Reps: "4-6", Rest: "30-60 seconds", Instructions: "Add significant weight for advanced back development", Difficulty: domain.IntensityAdvanced},
				{Name: "Deadlifts (Heavy)", Sets: 4, Reps: "3-5", Rest: "30-60 seconds", Instructions: "Maximum back development with proper form, engage entire posterior chain", Difficulty: domain.IntensityAdvanced},
				{Name: "Weighted Chin-ups (Heavy)", Sets: 4, Reps: "4-6", Rest: "30-60 seconds", Instructions: "Add weight for advanced bicep and back development", Difficulty: domain.IntensityAdvanced},
				{Name: "Concentration Curls (Heavy)", Sets: 4, Reps: "6-8 each arm", Rest: "30-60 seconds", Instructions: "Isolate biceps with arm braced, maximum contraction", Difficulty: domain.IntensityAdvanced},
				{Name: "Cable Face Pulls (Heavy)", Sets: 4, Reps: "8-10", Rest: "30-60 seconds", Instructions: "Pull cables toward face with wide grip, target rear delts and upper back", Difficulty: domain.IntensityAdvanced},
				{Name: "T-Bar Row (Heavy)", Sets: 4, Reps: "4-6", Rest: "30-60 seconds", Instructions: "Pull heavy T-bar to upper abdomen, maximum back engagement", Difficulty: domain.IntensityAdvanced},
				{Name: "Single-Arm Cable Rows", Sets: 4, Reps: "6-8 each arm", Rest: "30-60 seconds", Instructions: "Unilateral rowing for core stability and back balance", Difficulty: domain.IntensityAdvanced},
				{Name: "Reverse-Grip Pulldowns", Sets: 4, Reps: "6-8", Rest: "30-60 seconds", Instructions: "Underhand grip targets different back muscles, especially lower lats", Difficulty: domain.IntensityAdvanced},
			},
		},
		{
			MuscleGroups: []string{"Legs"},
			Exercises: []ExerciseTemplate{
				{Name: "Front Squats (Heavy)", Sets: 4, Reps: "4-6", Rest: "30-60 seconds", Instructions: "Hold bar in front rack position, squat depth to parallel", Difficulty: domain.IntensityAdvanced},
				{Name: "Bulgarian Split Squats (Heavy)", Sets: 4, Reps: "5-6 each leg", Rest: "30-60 seconds", Instructions: "Rear foot elevated with added weight, unilateral strength", Difficulty: domain.IntensityAdvanced},
				{Name: "Single-Leg Romanian Deadlifts", Sets: 4, Reps: "5-6 each leg", Rest: "30-60 seconds", Instructions: "Hinge at hip with one leg, balance and strength challenge", Difficulty: domain.IntensityAdvanced},
				{Name: "Weighted Bulgarian Split Squats", Sets: 4, Reps: "6-8 each leg", Rest: "30-60 seconds", Instructions: "Rear foot elevated on bench with dumbbells, unilateral focus", Difficulty: domain.IntensityAdvanced},
				{Name: "Pistol Squats", Sets: 4, Reps: "3-5 each leg", Rest: "30-60 seconds", Instructions: "Single-leg squat with other leg extended, extreme balance", Difficulty: domain.IntensityAdvanced},
				{Name: "Hack Squats (Machine)", Sets: 4, Reps: "6-8", Rest: "30-60 seconds", Instructions: "Machine-based squats for different quad activation", Difficulty: domain.IntensityAdvanced},
				{Name: "Single-Leg Leg Press", Sets: 4, Reps: "6-8 each leg", Rest: "30-60 seconds", Instructions: "Leg press with one leg at a time for isolation", Difficulty: domain.IntensityAdvanced},
				{Name: "Sissy Squats", Sets: 4, Reps: "6-8", Rest: "30-60 seconds", Instructions: "Quadriceps-focused with knees extending forward, challenging movement", Difficulty: domain.IntensityAdvanced},
			},
		},
	},
	{domain.FocusHypertrophy, domain.IntensityBeginner}: {
		{
			MuscleGroups: []string{"Chest", "Arms"},
			Exercises: []ExerciseTemplate{
				{Name: "Flat Dumbbell Chest Press", Sets: 2, Reps: "10-15", Rest: "60-90 seconds", Instructions: "Lie on flat bench and press dumbbells upward, focusing on squeezing chest muscles", Difficulty: domain.IntensityBeginner},
				{Name: "Incline Dumbbell Chest Press", Sets: 2, Reps: "10-15", Rest: "60-90 seconds", Instructions: "Adjust bench to 30-45 degree incline and press dumbbells upward", Difficulty: domain.IntensityBeginner},
				{Name: "Dumbbell Overhead Tricep Extension", Sets: 2, Reps: "10-15", Rest: "60-90 seconds", Instructions: "Hold single dumbbell overhead, bend elbow to lower weight behind head, then extend", Difficulty: domain.IntensityBeginner},
				{Name: "Dumbbell Bicep Curls", Sets: 2, Reps: "12-18", Rest: "60-90 seconds", Instructions: "Stand with feet shoulder-width apart, curl dumbbells toward shoulders", Difficulty: domain.IntensityBeginner},
				{Name: "Hammer Curls", Sets: 2, Reps: "12-18", Rest: "60-90 seconds", Instructions: "Hold dumbbells with neutral grip (palms facing each other), curl upward", Difficulty: domain.IntensityBeginner},
				{Name: "Cable Tricep Pushdowns", Sets: 2, Reps: "12-15", Rest: "60-90 seconds", Instructions: "Using cable machine, push down with straight arms focusing on tricep extension", Difficulty: domain.IntensityBeginner},
				{Name: "EZ-Bar Curls", Sets: 2, Reps: "12-15", Rest: "60-90 seconds", Instructions: "Using EZ-bar attachment, curl with comfortable grip to reduce wrist strain", Difficulty: domain.IntensityBeginner},
				{Name: "Cable Crossover Flyes", Sets: 2, Reps: "12-15", Rest: "60-90 seconds", Instructions: "Bring cables together in front of body with slight bend in elbows, feel chest squeeze", Difficulty: domain.IntensityBeginner},
			},
		},
		{
			MuscleGroups: []string{"Back", "Legs"},
			Exercises: []ExerciseTemplate{
				{Name: "Lat Pulldowns", Sets: 2, Reps: "10-15", Rest: "60-90 seconds", Instructions: "Grab wide bar and pull down to upper chest, squeezing shoulder blades together", Difficulty: domain.IntensityBeginner},
				{Name: "Cable Seated Rows", Sets: 2, Reps: "10-15", Rest: "60-90 seconds", Instructions: "Pull cable handles toward torso while seated, keeping back straight", Difficulty: domain.IntensityBeginner},
				{Name: "Bodyweight Squats", Sets: 2, Reps: "12-18", Rest: "60-90 seconds", Instructions: "Stand with feet shoulder-width apart, lower body by bending knees and hips, keep chest up", Difficulty: domain.IntensityBeginner},
				{Name: "Leg Curls (Machine)", Sets: 2, Reps: "12-18", Rest: "60-90 seconds", Instructions: "Lie face down, curl legs against pad, target hamstrings", Difficulty: domain.IntensityBeginner},
				{Name: "Romanian Deadlifts (light)", Sets: 2, Reps: "10-15", Rest: "60-90 seconds", Instructions: "Keep legs slightly bent, hinge at hips to lower weight, feel hamstring stretch", Difficulty: domain.IntensityBeginner},
				{Name: "Walking Lunges", Sets: 2, Reps: "10-15 each leg", Rest: "60-90 seconds", Instructions: "Step forward with one leg, lower hips until both knees are bent at 90 degrees", Difficulty: domain.IntensityBeginner},
				{Name: "Leg Press", Sets: 2, Reps: "12-15", Rest: "60-90 seconds", Instructions: "Sit on machine, push weight away with feet, focus on quadriceps", Difficulty: domain.IntensityBeginner},
				{Name: "Cable Lat Pulldowns (Close Grip)", Sets: 2, Reps: "10-15", Rest: "60-90 seconds", Instructions: "Use close grip, pull to chest focusing on middle back", Difficulty: domain.IntensityBeginner},
			},
		},
		{
			MuscleGroups: []string{"Shoulders", "Core"},
			Exercises: []ExerciseTemplate{
				{Name: "Overhead Dumbbell Shoulder Press", Sets: 2, Reps: "10-15", Rest: "60-90 seconds", Instructions: "Sit on bench with back support, press dumbbells overhead from shoulder height", Difficulty: domain.IntensityBeginner},
				{Name: "Dumbbell Lateral Raises", Sets: 2, Reps: "12-18", Rest: "60-90 seconds", Instructions: "Stand upright and raise arms to sides with light weights, squeeze shoulders at top", Difficulty: domain.IntensityBeginner},
				{Name: "Cable Crunches", Sets: 2, Reps: "15-20", Rest: "60-90 seconds", Instructions: "Kneel and perform crunches with cable attachment, target lower abs", Difficulty: domain.IntensityBeginner},
				{Name: "Russian Twists", Sets: 2, Reps: "15-20 each side", Rest: "60-90 seconds", Instructions: "Sit and twist torso while leaning back, touch ground on each side", Difficulty: domain.IntensityBeginner},
				{Name: "Planks", Sets: 2, Reps: "30-60 seconds", Rest: "60-90 seconds", Instructions: "Hold push-up position with core engaged", Difficulty: domain.IntensityBeginner},
				{Name: "Dumbbell Front Raises", Sets: 2, Reps: "12-15", Rest: "60-90 seconds", Instructions: "Stand upright and raise arms forward with light weights, target front delts", Difficulty: domain.IntensityBeginner},
				{Name: "Reverse Flyes (Dumbbell)", Sets: 2, Reps: "12-15", Rest: "60-90 seconds", Instructions: "Lean forward slightly and move arms back with slight bend in elbows, targeting rear delts", Difficulty: domain.IntensityBeginner},
				{Name: "Mountain Climbers", Sets: 2, Reps: "20-30 each leg", Rest: "60-90 seconds", Instructions: "In plank position, alternate bringing knees toward chest", Difficulty: domain.IntensityBeginner},
			},
		},
	},
	{domain.FocusHypertrophy, domain.IntensityIntermediate}: {
		{
			MuscleGroups: []string{"Chest", "Arms"},
			Exercises: []ExerciseTemplate{
				{Name: "Barbell Bench Press", Sets: 3, Reps: "8-10", Rest: "45-75 seconds", Instructions: "Press barbell from chest to arms extended, focus on controlled movement", Difficulty: domain.IntensityIntermediate},
				{Name: "Incline Barbell Press", Sets: 3, Reps: "8-10", Rest: "45-75 seconds", Instructions: "Adjust bench to 30-45 degree incline, press barbell upward for upper chest", Difficulty: domain.IntensityIntermediate},
				{Name: "Close-Grip Bench Press", Sets: 3, Reps: "8-10", Rest: "45-75 seconds", Instructions: "Narrow grip for tricep emphasis, press barbell with controlled form", Difficulty: domain.IntensityIntermediate},
				{Name: "Preacher Curls", Sets: 3, Reps: "10-12", Rest: "45-75 seconds", Instructions: "Curl with arms supported on pad, isolate biceps completely", Difficulty: domain.IntensityIntermediate},
				{Name: "Cable Flyes", Sets: 3, Reps: "12-15", Rest: "45-75 seconds", Instructions: "Bring cables together in front of chest, feel chest contraction at peak", Difficulty: domain.IntensityIntermediate},
				{Name: "Decline Dumbbell Press", Sets: 3, Reps: "8-10", Rest: "45-75 seconds", Instructions: "Lie on decline bench, press dumbbells upward for lower chest focus", Difficulty: domain.IntensityIntermediate},
				{Name: "Tricep Dumbbell Kickbacks", Sets: 3, Reps: "12-15", Rest: "45-75 seconds", Instructions: "Bend at waist, extend arms backward focusing on tricep extension", Difficulty: domain.IntensityIntermediate},
				{Name: "Dumbbell Concentration Curls", Sets: 3, Reps: "10-12 each arm", Rest: "45-75 seconds", Instructions: "Sit and curl dumbbell with arm braced against inner thigh, isolate bicep", Difficulty: domain.IntensityIntermediate},
			},
		},
		{
			MuscleGroups: []string{"Back", "Legs"},
			Exercises: []ExerciseTemplate{
				{Name: "Pull-ups", Sets: 3, Reps: "6-10", Rest: "45-75 seconds", Instructions: "Pull body up until chin passes bar, focus on lat engagement", Difficulty: domain.IntensityIntermediate},
				{Name: "Barbell Bent-Over Rows", Sets: 3, Reps: "8-10", Rest: "45-75 seconds", Instructions: "Bend at waist, pull barbell to lower rib cage, squeeze shoulder blades", Difficulty: domain.IntensityIntermediate},
				{Name: "Leg Press (Single Leg)", Sets: 3, Reps: "10-15 each leg", Rest: "45-75 seconds", Instructions: "Perform leg press with one leg at a time for balance", Difficulty: domain.IntensityIntermediate},
				{Name: "Romanian Deadlifts", Sets: 3, Reps: "8-10", Rest: "45-75 seconds", Instructions: "Hinge at hips with straight legs, feel hamstring and glute stretch", Difficulty: domain.IntensityIntermediate},
				{Name: "Leg Extensions (Machine)", Sets: 3, Reps: "12-15", Rest: "45-75 seconds", Instructions: "Extend legs against machine pad, focus on quadriceps", Difficulty: domain.IntensityIntermediate},
				{Name: "Lying Leg Curls (Machine)", Sets: 3, Reps: "12-15", Rest: "45-75 seconds", Instructions: "Curl legs against machine resistance, target hamstrings", Difficulty: domain.IntensityIntermediate},
				{Name: "T-Bar Rows", Sets: 3, Reps: "8-10", Rest: "45-75 seconds", Instructions: "Using T-bar machine, pull weight to upper abdomen, engage lats", Difficulty: domain.IntensityIntermediate},
				{Name: "Walking Lunges (Weighted)", Sets: 3, Reps: "10-12 each leg", Rest: "45-75 seconds", Instructions: "Hold dumbbells and perform walking lunges with added weight", Difficulty: domain.IntensityIntermediate},
			},
		},
		{
			MuscleGroups: []string{"Shoulders", "Core"},
			Exercises: []ExerciseTemplate{
				{Name: "Overhead Barbell Press", Sets: 3, Reps: "8-10", Rest: "45-75 seconds", Instructions: "Press barbell overhead from shoulder height, keep core tight", Difficulty: domain.IntensityIntermediate},
				{Name: "Rear Delt Flyes (Machine)", Sets: 3, Reps: "12-15", Rest: "45-75 seconds", Instructions: "Use rear delt machine, pull handles back with slight bend in elbows", Difficulty: domain.IntensityIntermediate},
				{Name: "Weighted Russian Twists", Sets: 3, Reps: "15-20 each side", Rest: "45-75 seconds", Instructions: "Hold weight while twisting torso, touch ground on each side", Difficulty: domain.IntensityIntermediate},
				{Name: "Hanging Leg Raises", Sets: 3, Reps: "10-15", Rest: "45-75 seconds", Instructions: "Hang from bar and raise legs to 90 degrees", Difficulty: domain.IntensityIntermediate},
				{Name: "Weighted Planks", Sets: 3, Reps: "45-75 seconds", Rest: "45-75 seconds", Instructions: "Hold with added weight on back, keep core engaged", Difficulty: domain.IntensityIntermediate},
				{Name: "Dumbbell Lateral Raise (Supermans)", Sets: 3, Reps: "12-15", Rest: "45-75 seconds", Instructions: "Lie face down and raise arms and legs simultaneously, target rear delts", Difficulty: domain.IntensityIntermediate},
				{Name: "Cable Wood Chops", Sets: 3, Reps: "12-15 each side", Rest: "45-75 seconds", Instructions: "Pull cable diagonally across body, engage obliques", Difficulty: domain.IntensityIntermediate},
				{Name: "Ab Wheel Rollouts", Sets: 3, Reps: "8-12", Rest: "45-75 seconds", Instructions: "Roll wheel forward from kneeling position, engage entire core", Difficulty: domain.IntensityIntermediate},
			},
		},
	},
	{domain.FocusHypertrophy, domain.IntensityAdvanced}: {
		{
			MuscleGroups: []string{"Chest", "Arms"},
			Exercises: []ExerciseTemplate{
				{Name: "Heavy Barbell Bench Press", Sets: 4, Reps: "6-8", Rest: "30-60 seconds", Instructions: "Press maximum weight with perfect form, spotter recommended", Difficulty: domain.IntensityAdvanced},
				{Name: "Incline Dumbbell Bench Press (Heavy)", Sets: 4, Reps: "7-9", Rest: "30-60 seconds", Instructions: "Press heavy dumbbells on incline for upper chest development", Difficulty: domain.IntensityAdvanced},
				{Name: "Weighted Dips (Heavy)", Sets: 4, Reps: "6-10", Rest: "30-60 seconds", Instructions: "Add significant weight for advanced chest and tricep development", Difficulty: domain.IntensityAdvanced},
				{Name: "Heavy Dumbbell Curls", Sets: 4, Reps: "8-10", Rest: "30-60 seconds", Instructions: "Use heavy dumbbells with strict form, focus on bicep contraction", Difficulty: domain.IntensityAdvanced},
				{Name: "Cable Crossovers (Constant Tension)", Sets: 4, Reps: "10-12", Rest: "30-60 seconds", Instructions: "Maintain constant tension on chest muscles throughout movement", Difficulty: domain.IntensityAdvanced},
				{Name: "JM Press", Sets: 4, Reps: "8-10", Rest: "30-60 seconds", Instructions: "Between bench press and skullcrushers, great tricep isolation", Difficulty: domain.IntensityAdvanced},
				{Name: "Spider Curls", Sets: 4, Reps: "8-10", Rest: "30-60 seconds", Instructions: "Use preacher curl bench at steeper angle, maximize bicep stretch", Difficulty: domain.IntensityAdvanced},
				{Name: "Cable Tricep Overhead Extensions", Sets: 4, Reps: "10-12", Rest: "30-60 seconds", Instructions: "Attach rope to high pulley, extend arms overhead with constant tension", Difficulty: domain.IntensityAdvanced},
			},
		},
		{
			MuscleGroups: []string{"Back", "Legs"},
			Exercises: []ExerciseTemplate{
				{Name: "Weighted Pull-ups (Heavy)", Sets: 4, Reps: "6-8", Rest: "30-60 seconds", Instructions: "Add significant weight for advanced back development", Difficulty: domain.IntensityAdvanced},
				{Name: "T-Bar Row (Heavy)", Sets: 4, Reps: "6-8", Rest: "30-60 seconds", Instructions: "Pull heavy T-bar to upper abdomen, maximum back engagement", Difficulty: domain.IntensityAdvanced},
				{Name: "Front Squats (Heavy)", Sets: 4, Reps: "6-8", Rest: "30-60 seconds", Instructions: "Hold bar in front rack position, squat depth to parallel", Difficulty: domain.IntensityAdvanced},
				{Name: "Single-Leg Romanian Deadlifts", Sets: 4, Reps: "8-10 each leg", Rest: "30-60 seconds", Instructions: "Hinge at hip with one leg, balance and strength challenge", Difficulty: domain.IntensityAdvanced},
				{Name: "Weighted Bulgarian Split Squats", Sets: 4, Reps: "8-10 each leg", Rest: "30-60 seconds", Instructions: "Rear foot elevated on bench with dumbbells, unilateral focus", Difficulty: domain.IntensityAdvanced},
				{Name: "Single-Arm Dumbbell Rows", Sets: 4, Reps: "8-10 each arm", Rest: "30-60 seconds", Instructions: "Unilateral rowing for core stability and back balance", Difficulty: domain.IntensityAdvanced},
				{Name: "Reverse-Grip Pulldowns", Sets: 4, Reps: "8-10", Rest: "30-60 seconds", Instructions: "Underhand grip targets different back muscles, especially lower lats", Difficulty: domain.IntensityAdvanced},
				{Name: "Single-Leg Leg Press", Sets: 4, Reps: "8-10 each leg", Rest: "30-60 seconds", Instructions: "Leg press with one leg at a time for isolation", Difficulty: domain.IntensityAdvanced},
			},
		},
		{
			MuscleGroups: []string{"Shoulders", "Core"},
			Exercises: []ExerciseTemplate{
				{Name: "Push Press (Heavy)", Sets: 4, Reps: "6-8", Rest: "30-60 seconds", Instructions: "Combine dip and press movement with heavy weight, use momentum", Difficulty: domain.IntensityAdvanced},
				{Name: "Weighted Lateral Raises", Sets: 4, Reps: "10-12", Rest: "30-60 seconds", Instructions: "Add weight for increased resistance, focus on shoulder isolation", Difficulty: domain.IntensityAdvanced},
				{Name: "Weighted Cable Crunches", Sets: 4, Reps: "15-20", Rest: "30-60 seconds", Instructions: "Kneel and perform crunches with cable attachment and added weight", Difficulty: domain.IntensityAdvanced},
				{Name: "Weighted Hanging Leg Raises", Sets: 4, Reps: "12-15", Rest: "30-60 seconds", Instructions: "Add weight while hanging, target lower abs", Difficulty: domain.IntensityAdvanced},
				{Name: "Weighted Side Planks", Sets: 4, Reps: "60-90 seconds each side", Rest: "30-60 seconds", Instructions: "Hold with added weight, target obliques", Difficulty: domain.IntensityAdvanced},
				{Name: "Turkish Get-ups", Sets: 4, Reps: "5-6 each arm", Rest: "30-60 seconds", Instructions: "Complex movement from lying to standing with weight overhead", Difficulty: domain.IntensityAdvanced},
				{Name: "Weighted Ab Wheel Rollouts", Sets: 4, Reps: "10-15", Rest: "30-60 seconds", Instructions: "Roll wheel forward from kneeling position with added weight, engage entire core", Difficulty: domain.IntensityAdvanced},
				{Name: "Cable Pallof Press", Sets: 4, Reps: "12-15 each side", Rest: "30-60 seconds", Instructions: "Resist rotation while pressing cable away from body, anti-rotation core exercise", Difficulty: domain.IntensityAdvanced},
			},
		},
	},
	{domain.FocusEndurance, domain.IntensityBeginner}: {
		{
			MuscleGroups: []string{"Cardio", "Light Weights"},
			Exercises: []ExerciseTemplate{
				{Name: "Brisk Walking", Sets: 1, Reps: "20-30 minutes", Rest: "60-90 seconds", Instructions: "Maintain steady pace with slight incline if possible", Difficulty: domain.IntensityBeginner},
				{Name: "Circuit Training (Light)", Sets: 2, Reps: "8-12 each exercise", Rest: "30-60 seconds", Instructions: "Perform exercises in quick succession with light weights", Difficulty: domain.IntensityBeginner},
				{Name: "Jumping Jacks", Sets: 2, Reps: "20-30", Rest: "30-60 seconds", Instructions: "Jump while spreading legs and raising arms, land softly", Difficulty: domain.IntensityBeginner},
				{Name: "Mountain Climbers", Sets: 2, Reps: "20-30", Rest: "30-60 seconds", Instructions: "Alternate knee drives in plank position, maintain steady rhythm", Difficulty: domain.IntensityBeginner},
				{Name: "High Knees", Sets: 2, Reps: "20-30", Rest: "30-60 seconds", Instructions: "Run in place lifting knees high, pump arms actively", Difficulty: domain.IntensityBeginner},
				{Name: "Step-Ups", Sets: 2, Reps: "10-15 each leg", Rest: "30-60 seconds", Instructions: "Step up onto platform with alternating legs, use handrail for balance", Difficulty: domain.IntensityBeginner},
				{Name: "Marching in Place", Sets: 2, Reps: "20-40", Rest: "30-60 seconds", Instructions: "March with high knees and arm swings, maintain good posture", Difficulty: domain.IntensityBeginner},
				{Name: "Low-Impact Aerobics", Sets: 2, Reps: "10-15 minutes", Rest: "30-60 seconds", Instructions: "Simple dance-like movements without jumping, focus on coordination", Difficulty: domain.IntensityBeginner},
			},
		},
		{
			MuscleGroups: []string{"Full Body"},
			Exercises: []ExerciseTemplate{
				{Name: "Modified Burpees", Sets: 2, Reps: "5-10", Rest: "45-75 seconds", Instructions: "Step back instead of jumping, reduce intensity but maintain movement", Difficulty: domain.IntensityBeginner},
				{Name: "Jogging in Place", Sets: 2, Reps: "1-2 minutes", Rest: "45-75 seconds", Instructions: "Maintain steady jog with active arm movements", Difficulty: domain.IntensityBeginner},
				{Name: "Bodyweight Squats", Sets: 2, Reps: "15-25", Rest: "45-75 seconds", Instructions: "Stand with feet shoulder-width apart, lower body by bending knees and hips, keep chest up", Difficulty: domain.IntensityBeginner},
				{Name: "Modified Push-ups", Sets: 2, Reps: "5-10", Rest: "45-75 seconds", Instructions: "Perform push-ups on knees or against wall to reduce difficulty", Difficulty: domain.IntensityBeginner},
				{Name: "Planks", Sets: 2, Reps: "20-45 seconds", Rest: "45-75 seconds", Instructions: "Hold push-up position with core engaged, maintain straight line", Difficulty: domain.IntensityBeginner},
				{Name: "Wall Sits", Sets: 2, Reps: "30-60 seconds", Rest: "45-75 seconds", Instructions: "Slide down wall until thighs are parallel to floor, keep back flat", Difficulty: domain.IntensityBeginner},
				{Name: "Glute Bridges", Sets: 2, Reps: "15-20", Rest: "45-75 seconds", Instructions: "Lie on back, bend knees, lift hips by squeezing glutes and hamstrings", Difficulty: domain.IntensityBeginner},
				{Name: "Standing Side Leg Lifts", Sets: 2, Reps: "10-15 each side", Rest: "45-75 seconds", Instructions: "Stand upright, lift leg to side, engage hip abductors", Difficulty: domain.IntensityBeginner},
			},
		},
		{
			MuscleGroups: []string{"Core Cardio"},
			Exercises: []ExerciseTemplate{
				{Name: "Plank Jacks", Sets: 2, Reps: "15-25", Rest: "45-75 seconds", Instructions: "Plank position with jumping feet, maintain stable core", Difficulty: domain.IntensityBeginner},
				{Name: "Russian Twists", Sets: 2, Reps: "20-30", Rest: "45-75 seconds", Instructions: "Sit and twist torso while leaning back, touch ground on each side", Difficulty: domain.IntensityBeginner},
				{Name: "Bicycle Crunches", Sets: 2, Reps: "20-30", Rest: "45-75 seconds", Instructions: "Alternate elbow to knee in cycling motion, engage obliques", Difficulty: domain.IntensityBeginner},
				{Name: "Bear Crawls", Sets: 2, Reps: "10-20", Rest: "45-75 seconds", Instructions: "Crawl on hands and feet like bear, engage core throughout", Difficulty: domain.IntensityBeginner},
				{Name: "Jump Rope (Beginner)", Sets: 2, Reps: "1-3 minutes", Rest: "45-75 seconds", Instructions: "Jump over rope in rhythmic pattern, focus on timing", Difficulty: domain.IntensityBeginner},
				{Name: "Standing Hip Circles", Sets: 2, Reps: "10 each direction", Rest: "45-75 seconds", Instructions: "Stand and rotate hips in circles, engage core", Difficulty: domain.IntensityBeginner},
				{Name: "Standing Torso Twists", Sets: 2, Reps: "20-30", Rest: "45-75 seconds", Instructions: "Stand with feet shoulder-width apart, twist torso left and right", Difficulty: domain.IntensityBeginner},
				{Name: "Standing Calf Raises", Sets: 2, Reps: "20-30", Rest: "45-75 seconds", Instructions: "Stand upright and raise heels while supporting body weight, lower slowly", Difficulty: domain.IntensityBeginner},
			},
		},
	},
	{domain.FocusEndurance, domain.IntensityIntermediate}: {
		{
			MuscleGroups: []string{"Cardio", "Moderate Weights"},
			Exercises: []ExerciseTemplate{
				{Name: "Jogging", Sets: 1, Reps: "25-35 minutes", Rest: "60-90 seconds", Instructions: "Maintain challenging but sustainable pace with varied terrain", Difficulty: domain.IntensityIntermediate},
				{Name: "Kettlebell Swings", Sets: 3, Reps: "15-25", Rest: "45-75 seconds", Instructions: "Swing kettlebell with hip drive, maintain tight core", Difficulty: domain.IntensityIntermediate},
				{Name: "Box Jumps", Sets: 3, Reps: "10-15", Rest: "45-75 seconds", Instructions: "Jump onto box or platform, land softly with bent knees", Difficulty: domain.IntensityIntermediate},
				{Name: "Battle Ropes", Sets: 3, Reps: "30-45 seconds", Rest: "45-75 seconds", Instructions: "Create waves with heavy ropes, maintain continuous motion", Difficulty: domain.IntensityIntermediate},
				{Name: "Rowing Machine", Sets: 3, Reps: "500-800 meters", Rest: "45-75 seconds", Instructions: "Simulate rowing motion on machine with proper technique", Difficulty: domain.IntensityIntermediate},
				{Name: "Treadmill Intervals", Sets: 3, Reps: "2-3 minutes", Rest: "45-75 seconds", Instructions: "Alternating between moderate and higher speeds", Difficulty: domain.IntensityIntermediate},
				{Name: "Stationary Bike Intervals", Sets: 3, Reps: "3-4 minutes", Rest: "45-75 seconds", Instructions: "Alternating between moderate and high resistance", Difficulty: domain.IntensityIntermediate},
				{Name: "Elliptical Training", Sets: 3, Reps: "5-7 minutes", Rest: "45-75 seconds", Instructions: "Maintain steady rhythm with varying incline levels", Difficulty: domain.IntensityIntermediate},
			},
		},
		{
			MuscleGroups: []string{"Full Body"},
			Exercises: []ExerciseTemplate{
				{Name: "Thrusters", Sets: 3, Reps: "8-12", Rest: "45-75 seconds", Instructions: "Squat to overhead press combination, maintain tight core", Difficulty: domain.IntensityIntermediate},
				{Name: "Clean and Press", Sets: 3, Reps: "6-8", Rest: "45-75 seconds", Instructions: "Lift weight from floor to overhead in two stages", Difficulty: domain.IntensityIntermediate},
				{Name: "Wall Balls", Sets: 3, Reps: "10-15", Rest: "45-75 seconds", Instructions: "Squat and throw ball against wall, catch and repeat", Difficulty: domain.IntensityIntermediate},
				{Name: "Box Jumps", Sets: 3, Reps: "8-12", Rest: "45-75 seconds", Instructions: "Jump onto box or platform, land softly with bent knees", Difficulty: domain.IntensityIntermediate},
				{Name: "Rowing Machine", Sets: 3, Reps: "500-800 meters", Rest: "45-75 seconds", Instructions: "Simulate rowing motion on machine with proper technique", Difficulty: domain.IntensityIntermediate},
				{Name: "Medicine Ball Slams", Sets: 3, Reps: "10-15", Rest: "45-75 seconds", Instructions: "Slam ball to ground with force, engage core", Difficulty: domain.IntensityIntermediate},
				{Name: "Jump Squats", Sets: 3, Reps: "10-15", Rest: "45-75 seconds", Instructions: "Squat with explosive jump, land softly with bent knees", Difficulty: domain.IntensityIntermediate},
				{Name: "Burpee to Broad Jump", Sets: 3, Reps: "6-10", Rest: "45-75 seconds", Instructions: "Complete burpee then explode into broad jump", Difficulty: domain.IntensityIntermediate},
			},
		},
		{
			MuscleGroups: []string{"Core Cardio"},
			Exercises: []ExerciseTemplate{
				{Name: "Weighted Planks", Sets: 3, Reps: "30-60 seconds", Rest: "45-75 seconds", Instructions: "Hold with added weight on back, maintain straight line", Difficulty: domain.IntensityIntermediate},
				{Name: "Medicine Ball Slams", Sets: 3, Reps: "12-18", Rest: "45-75 seconds", Instructions: "Slam ball to ground with force, engage entire core", Difficulty: domain.IntensityIntermediate},
				{Name: "Mountain Climber Variations", Sets: 3, Reps: "20-30", Rest: "45-75 seconds", Instructions: "Increase speed and add variations like cross-body", Difficulty: domain.IntensityIntermediate},
				{Name: "Jump Rope", Sets: 3, Reps: "3-5 minutes", Rest: "45-75 seconds", Instructions: "Jump over rope in rhythmic pattern, maintain steady pace", Difficulty: domain.IntensityIntermediate},
				{Name: "Burpee Box Jumps", Sets: 3, Reps: "6-10", Rest: "45-75 seconds", Instructions: "Burpee followed by box jump, explosive movement", Difficulty: domain.IntensityIntermediate},
				{Name: "Side Plank with Leg Lifts", Sets: 3, Reps: "8-10 each side", Rest: "45-75 seconds", Instructions: "Hold side plank while lifting top leg, engage obliques", Difficulty: domain.IntensityIntermediate},
				{Name: "V-Ups", Sets: 3, Reps: "12-18", Rest: "45-75 seconds", Instructions: "Lie on back, simultaneously lift legs and torso to form V-shape", Difficulty: domain.IntensityIntermediate},
				{Name: "Flutter Kicks", Sets: 3, Reps: "20-30", Rest: "45-75 seconds", Instructions: "Lie on back, flutter legs up and down while maintaining core engagement", Difficulty: domain.IntensityIntermediate},
			},
		},
	},
	{domain.FocusEndurance, domain.IntensityAdvanced}: {
		{
			MuscleGroups: []string{"HIIT", "Heavy Weights"},
			Exercises: []ExerciseTemplate{
				{Name: "Sprint Intervals", Sets: 4, Reps: "30-45 seconds", Rest: "30-45 seconds", Instructions: "Alternating high-intensity sprints with active recovery", Difficulty: domain.IntensityAdvanced},
				{Name: "Weighted Burpees", Sets: 4, Reps: "8-15", Rest: "30-45 seconds", Instructions: "Add weight vest or hold dumbbells, explosive movement", Difficulty: domain.IntensityAdvanced},
				{Name: "Plyometric Lunges", Sets: 4, Reps: "8-12 each leg", Rest: "30-45 seconds", Instructions: "Explosive jump between legs, land softly", Difficulty: domain.IntensityAdvanced},
				{Name: "Assault Bike", Sets: 4, Reps: "30-45 seconds", Rest: "30-45 seconds", Instructions: "High-intensity bike with moving handles, maintain continuous motion", Difficulty: domain.IntensityAdvanced},
				{Name: "Sled Push/Pull", Sets: 4, Reps: "25-40 meters", Rest: "30-45 seconds", Instructions: "Push or pull weighted sled, maintain proper form", Difficulty: domain.IntensityAdvanced},
				{Name: "Battle Ropes (Advanced)", Sets: 4, Reps: "45-60 seconds", Rest: "30-45 seconds", Instructions: "Create complex wave patterns with heavy ropes", Difficulty: domain.IntensityAdvanced},
				{Name: "Rowing Sprints", Sets: 4, Reps: "30-45 seconds", Rest: "30-45 seconds", Instructions: "Maximum effort on rowing machine with proper form", Difficulty: domain.IntensityAdvanced},
				{Name: "Box Step-ups (Weighted)", Sets: 4, Reps: "10-15 each leg", Rest: "30-45 seconds", Instructions: "Step up with dumbbells or weight vest, explosive movement", Difficulty: domain.IntensityAdvanced},
			},
		},
		{
			MuscleGroups: []string{"Metabolic"},
			Exercises: []ExerciseTemplate{
				{Name: "Clean and Jerk", Sets: 4, Reps: "4-6", Rest: "30-60 seconds", Instructions: "Explosive lift from floor to overhead, engage entire body", Difficulty: domain.IntensityAdvanced},
				{Name: "Snatch", Sets: 4, Reps: "4-6", Rest: "30-60 seconds", Instructions: "Lift weight from floor to overhead in one motion", Difficulty: domain.IntensityAdvanced},
				{Name: "Turkish Get-ups", Sets: 4, Reps: "4-6 each side", Rest: "30-60 seconds", Instructions: "Complex movement from lying to standing with weight overhead", Difficulty: domain.IntensityAdvanced},
				{Name: "Double Unders", Sets: 4, Reps: "30-50", Rest: "30-60 seconds", Instructions: "Rope passes under feet twice per jump, maintain rhythm", Difficulty: domain.IntensityAdvanced},
				{Name: "Kettlebell Snatch", Sets: 4, Reps: "6-10 each arm", Rest: "30-60 seconds", Instructions: "Explosive single-arm kettlebell lift, maintain tight core", Difficulty: domain.IntensityAdvanced},
				{Name: "Goblet Squat to Press", Sets: 4, Reps: "8-12", Rest: "30-60 seconds", Instructions: "Squat holding weight at chest, press overhead at top", Difficulty: domain.IntensityAdvanced},
				{Name: "Farmer's Walks", Sets: 4, Reps: "30-50 meters", Rest: "30-60 seconds", Instructions: "Walk while carrying heavy weights in each hand", Difficulty: domain.IntensityAdvanced},
				{Name: "Kettlebell Swings (Heavy)", Sets: 4, Reps: "15-25", Rest: "30-60 seconds", Instructions: "Swing heavy kettlebell with powerful hip drive", Difficulty: domain.IntensityAdvanced},
			},
		},
		{
			MuscleGroups: []string{"Advanced Cardio"},
			Exercises: []ExerciseTemplate{
				{Name: "Tabata Training", Sets: 8, Reps: "20 seconds work, 10 seconds rest", Rest: "30-60 seconds", Instructions: "High-intensity interval protocol with maximum effort", Difficulty: domain.IntensityAdvanced},
				{Name: "EMOM Workouts", Sets: 10, Reps: "variable", Rest: "remaining minute", Instructions: "Every minute on the minute, complete exercise then rest", Difficulty: domain.IntensityAdvanced},
				{Name: "AMRAP Circuits", Sets: 1, Reps: "as many rounds as possible", Rest: "none", Instructions: "Maximize rounds in set time period, high intensity", Difficulty: domain.IntensityAdvanced},
				{Name: "Rucking", Sets: 1, Reps: "40-60 minutes", Rest: "none", Instructions: "Walk with weighted backpack, maintain steady pace", Difficulty: domain.IntensityAdvanced},
				{Name: "Metcon Circuits", Sets: 5, Reps: "30-45 seconds each", Rest: "none", Instructions: "Metabolic conditioning circuits with compound movements", Difficulty: domain.IntensityAdvanced},
				{Name: "CrossFit WODs", Sets: 1, Reps: "for time", Rest: "none", Instructions: "High-intensity functional movements for time or rounds", Difficulty: domain.IntensityAdvanced},
				{Name: "HIIT Pyramid", Sets: 1, Reps: "variable", Rest: "none", Instructions: "Increase and decrease intensity in pyramid fashion", Difficulty: domain.IntensityAdvanced},
				{Name: "Endurance Complexes", Sets: 3, Reps: "8-12", Rest: "none", Instructions: "Multiple exercises performed in sequence without rest", Difficulty: domain.IntensityAdvanced},
			},
		},
	},
	{domain.FocusWeightLoss, domain.IntensityBeginner}: {
		{
			MuscleGroups: []string{"HIIT", "Full Body"},
			Exercises: []ExerciseTemplate{
				{Name: "Bodyweight Circuits", Sets: 2, Reps: "10-20 each", Rest: "30-60 seconds", Instructions: "Quick succession of bodyweight moves", Difficulty: domain.IntensityBeginner},
				{Name: "Jump Squats", Sets: 2, Reps: "10-20", Rest: "30-60 seconds", Instructions: "Squat with explosive jump", Difficulty: domain.IntensityBeginner},
				{Name: "Push-up Variations", Sets: 2, Reps: "5-15", Rest: "30-60 seconds", Instructions: "Modify for your strength level", Difficulty: domain.IntensityBeginner},
				{Name: "Plank Holds", Sets: 2, Reps: "20-45 seconds", Rest: "30-60 seconds", Instructions: "Hold push-up position", Difficulty: domain.IntensityBeginner},
				{Name: "Marching in Place", Sets: 2, Reps: "20-40", Rest: "30-60 seconds", Instructions: "High knee marching", Difficulty: domain.IntensityBeginner},
			},
		},
		{
			MuscleGroups: []string{"Fat Burning"},
			Exercises: []ExerciseTemplate{
				{Name: "High Knees", Sets: 2, Reps: "20-30", Rest: "30-60 seconds", Instructions: "Run in place lifting knees high", Difficulty: domain.IntensityBeginner},
				{Name: "Burpees", Sets: 2, Reps: "5-12", Rest: "30-60 seconds", Instructions: "Squat, jump, and clap above head", Difficulty: domain.IntensityBeginner},
				{Name: "Mountain Climbers", Sets: 2, Reps: "15-30", Rest: "30-60 seconds", Instructions: "Alternate knee drives in plank position", Difficulty: domain.IntensityBeginner},
				{Name: "Jumping Jacks", Sets: 2, Reps: "20-40", Rest: "30-60 seconds", Instructions: "Jump while spreading legs and raising arms", Difficulty: domain.IntensityBeginner},
				{Name: "Step-ups", Sets: 2, Reps: "10-20 each leg", Rest: "30-60 seconds", Instructions: "Use stairs or platform", Difficulty: domain.IntensityBeginner},
			},
		},
		{
			MuscleGroups: []string{"Metabolic"},
			Exercises: []ExerciseTemplate{
				{Name: "Squats", Sets: 2, Reps: "15-30", Rest: "30-60 seconds", Instructions: "Lower body by bending knees and hips", Difficulty: domain.IntensityBeginner},
				{Name: "Lunges", Sets: 2, Reps: "8-15 each leg", Rest: "30-60 seconds", Instructions: "Step forward and lower hips", Difficulty: domain.IntensityBeginner},
				{Name: "Push-ups", Sets: 2, Reps: "5-15", Rest: "30-60 seconds", Instructions: "Keep your body straight and lower chest to ground", Difficulty: domain.IntensityBeginner},
				{Name: "Crunches", Sets: 2, Reps: "15-30", Rest: "30-60 seconds", Instructions: "Contract abs to raise shoulders", Difficulty: domain.IntensityBeginner},
				{Name: "Wall Sits", Sets: 2, Reps: "30-60 seconds", Rest: "30-60 seconds", Instructions: "Sit against wall with thighs horizontal", Difficulty: domain.IntensityBeginner},
			},
		},
	},
	{domain.FocusWeightLoss, domain.IntensityIntermediate}: {
		{
			MuscleGroups: []string{"HIIT", "Full Body"},
			Exercises: []ExerciseTemplate{
				{Name: "Kettlebell Workouts", Sets: 3, Reps: "10-20", Rest: "45-75 seconds", Instructions: "Swings, squats, and presses", Difficulty: domain.IntensityIntermediate},
				{Name: "Battle Rope Circuits", Sets: 3, Reps: "30 seconds", Rest: "45-75 seconds", Instructions: "Create waves with heavy ropes", Difficulty: domain.IntensityIntermediate},
				{Name: "Box Jump Variations", Sets: 3, Reps: "8-15", Rest: "45-75 seconds", Instructions: "Jump onto box or platform", Difficulty: domain.IntensityIntermediate},
				{Name: "Medicine Ball Exercises", Sets: 3, Reps: "10-20", Rest: "45-75 seconds", Instructions: "Slams, throws, and catches", Difficulty: domain.IntensityIntermediate},
				{Name: "Circuit Training", Sets: 3, Reps: "45 seconds each", Rest: "45-75 seconds", Instructions: "Rotate through multiple exercises", Difficulty: domain.IntensityIntermediate},
			},
		},
		{
			MuscleGroups: []string{"Fat Burning"},
			Exercises: []ExerciseTemplate{
				{Name: "Rowing Machine", Sets: 3, Reps: "500-1000 meters", Rest: "45-75 seconds", Instructions: "Simulate rowing motion on machine", Difficulty: domain.IntensityIntermediate},
				{Name: "Elliptical HIIT", Sets: 3, Reps: "30-60 seconds", Rest: "45-75 seconds", Instructions: "High-intensity intervals", Difficulty: domain.IntensityIntermediate},
				{Name: "Treadmill Sprints", Sets: 3, Reps: "30-60 seconds", Rest: "45-75 seconds", Instructions: "Alternating sprint and recovery", Difficulty: domain.IntensityIntermediate},
				{Name: "Cycling Intervals", Sets: 3, Reps: "30-60 seconds", Rest: "45-75 seconds", Instructions: "Alternating high and low resistance", Difficulty: domain.IntensityIntermediate},
				{Name: "Stairmaster", Sets: 3, Reps: "5-10 minutes", Rest: "45-75 seconds", Instructions: "Continuous stair climbing motion", Difficulty: domain.IntensityIntermediate},
			},
		},
		{
			MuscleGroups: []string{"Metabolic"},
			Exercises: []ExerciseTemplate{
				{Name: "Thrusters", Sets: 3, Reps: "8-15", Rest: "45-75 seconds", Instructions: "Squat to overhead press combination", Difficulty: domain.IntensityIntermediate},
				{Name: "Wall Balls", Sets: 3, Reps: "10-20", Rest: "45-75 seconds", Instructions: "Squat and throw ball against wall", Difficulty: domain.IntensityIntermediate},
				{Name: "Burpee Box Jumps", Sets: 3, Reps: "6-12", Rest: "45-75 seconds", Instructions: "Burpee followed by box jump", Difficulty: domain.IntensityIntermediate},
				{Name: "Dumbbell Complexes", Sets: 3, Reps: "8-15", Rest: "45-75 seconds", Instructions: "Multiple moves with single dumbbell", Difficulty: domain.IntensityIntermediate},
				{Name: "Farmer's Walks", Sets: 3, Reps: "20-40 meters", Rest: "45-75 seconds", Instructions: "Walk while carrying heavy weights", Difficulty: domain.IntensityIntermediate},
			},
		},
	},
	{domain.FocusWeightLoss, domain.IntensityAdvanced}: {
		{
			MuscleGroups: []string{"Extreme HIIT"},
			Exercises: []ExerciseTemplate{
				{Name: "CrossFit Workouts", Sets: 4, Reps: "variable", Rest: "30-60 seconds", Instructions: "High-intensity functional movements", Difficulty: domain.IntensityAdvanced},
				{Name: "Weighted Burpees", Sets: 4, Reps: "10-25", Rest: "30-60 seconds", Instructions: "Add weight vest or hold weights", Difficulty: domain.IntensityAdvanced},
				{Name: "Plyometric Movements", Sets: 4, Reps: "10-20", Rest: "30-60 seconds", Instructions: "Explosive power movements", Difficulty: domain.IntensityAdvanced},
				{Name: "Heavy Kettlebell Swings", Sets: 4, Reps: "15-30", Rest: "30-60 seconds", Instructions: "Swing heavy kettlebell with hip drive", Difficulty: domain.IntensityAdvanced},
				{Name: "Boxer's Workout", Sets: 4, Reps: "3-5 rounds", Rest: "30-60 seconds", Instructions: "Combination of punches and cardio", Difficulty: domain.IntensityAdvanced},
			},
		},
		{
			MuscleGroups: []string{"Metabolic Conditioning"},
			Exercises: []ExerciseTemplate{
				{Name: "Olympic Lift Variations", Sets: 4, Reps: "3-6", Rest: "30-60 seconds", Instructions: "Clean, jerk, and snatch movements", Difficulty: domain.IntensityAdvanced},
				{Name: "GPP Workouts", Sets: 4, Reps: "variable", Rest: "30-60 seconds", Instructions: "General physical preparedness", Difficulty: domain.IntensityAdvanced},
				{Name: "Strongman Events", Sets: 4, Reps: "variable", Rest: "30-60 seconds", Instructions: "Tire flips, atlas stones, etc.", Difficulty: domain.IntensityAdvanced},
				{Name: "Obstacle Course Training", Sets: 4, Reps: "course completion", Rest: "30-60 seconds", Instructions: "Navigate through obstacles", Difficulty: domain.IntensityAdvanced},
				{Name: "Battle Ropes", Sets: 4, Reps: "30-60 seconds", Rest: "30-60 seconds", Instructions: "Create waves with heavy ropes", Difficulty: domain.IntensityAdvanced},
			},
		},
		{
			MuscleGroups: []string{"Advanced Fat Loss"},
			Exercises: []ExerciseTemplate{
				{Name: "EMOM Training", Sets: 10, Reps: "variable", Rest: "remaining minute", Instructions: "Every minute on the minute", Difficulty: domain.IntensityAdvanced},
				{Name: "AMRAP Challenges", Sets: 1, Reps: "as many rounds as possible", Rest: "none", Instructions: "Maximize rounds in set time", Difficulty: domain.IntensityAdvanced},
				{Name: "Chipper Workouts", Sets: 1, Reps: "all exercises", Rest: "minimal", Instructions: "Complete all exercises as fast as possible", Difficulty: domain.IntensityAdvanced},
				{Name: "Hero WODs", Sets: 1, Reps: "for time", Rest: "none", Instructions: "Named after fallen heroes", Difficulty: domain.IntensityAdvanced},
				{Name: "Murph Workout", Sets: 1, Reps: "1 mile run, 100 pull-ups, etc.", Rest: "none", Instructions: "Complete for time", Difficulty: domain.IntensityAdvanced},
			},
		},
	},
}
