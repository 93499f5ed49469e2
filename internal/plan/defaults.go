package plan

// DefaultTitles returns the seed day titles used on a first run.
func DefaultTitles() map[Weekday]string {
	return map[Weekday]string{
		Monday:    "Chest & Triceps",
		Tuesday:   "Back & Biceps",
		Wednesday: "Shoulders & Forearms",
		Thursday:  "Arms (Bi & Tri)",
		Friday:    "Legs",
		Saturday:  "Abs & Shoulders",
		Sunday:    "Active Recovery",
	}
}

// DefaultPlan returns the seed training program used on a first run. The IDs
// are stable so a reseeded database produces an identical plan document.
//
//nolint:funlen,maintidx // flat data literal.
func DefaultPlan() WeeklyPlan {
	return WeeklyPlan{
		Monday: []Exercise{
			{ID: "m1", Name: "Machine Chest Press", MuscleGroup: "Mid Chest", Sets: 3, Reps: []string{"12", "12", "12"}, Weight: []string{"40", "40", "40"}, Notes: "Focus: Push Strength"},
			{ID: "m2", Name: "Incline Dumbbell Press", MuscleGroup: "Upper Chest", Sets: 3, Reps: []string{"10", "10", "10"}, Weight: []string{"20", "20", "20"}, Notes: "Targets upper chest"},
			{ID: "m3", Name: "Pec Deck (Butterfly)", MuscleGroup: "Inner Chest", Sets: 3, Reps: []string{"15", "15", "15"}, Weight: []string{"30", "30", "30"}, Notes: "Squeeze hard"},
			{ID: "m4", Name: "Tricep Cable Pushdowns", MuscleGroup: "Tricep Lateral Head", Sets: 3, Reps: []string{"12", "12", "12"}, Weight: []string{"15", "15", "15"}},
			{ID: "m5", Name: "Overhead Dumbbell Ext", MuscleGroup: "Tricep Long Head", Sets: 3, Reps: []string{"12", "12", "12"}, Weight: []string{"12", "12", "12"}},
			{ID: "m6", Name: "Push-Ups", MuscleGroup: "Chest / Core", Sets: 2, Reps: []string{"20", "20"}, Weight: []string{"0", "0"}, Notes: "Failure finisher"},
		},
		Tuesday: []Exercise{
			{ID: "t1", Name: "Lat Pulldown (Wide Grip)", MuscleGroup: "Lats (Width)", Sets: 3, Reps: []string{"12", "12", "12"}, Weight: []string{"40", "40", "40"}, Notes: "Back Width"},
			{ID: "t2", Name: "Seated Cable Row", MuscleGroup: "Mid Back (Thickness)", Sets: 3, Reps: []string{"12", "12", "12"}, Weight: []string{"40", "40", "40"}, Notes: "Back Thickness"},
			{ID: "t3", Name: "Single-Arm DB Row", MuscleGroup: "Lower Lats", Sets: 3, Reps: []string{"10", "10", "10"}, Weight: []string{"16", "16", "16"}, Notes: "Lats focus"},
			{ID: "t4", Name: "Dumbbell Bicep Curls", MuscleGroup: "Bicep Short Head", Sets: 3, Reps: []string{"12", "12", "12"}, Weight: []string{"10", "10", "10"}},
			{ID: "t5", Name: "Hammer Curls", MuscleGroup: "Brachialis", Sets: 3, Reps: []string{"12", "12", "12"}, Weight: []string{"10", "10", "10"}, Notes: "Forearm width"},
			{ID: "t6", Name: "Face Pulls", MuscleGroup: "Rear Delts", Sets: 3, Reps: []string{"15", "15", "15"}, Weight: []string{"15", "15", "15"}, Notes: "Rotator cuff"},
		},
		Wednesday: []Exercise{
			{ID: "w1", Name: "Seated DB Overhead Press", MuscleGroup: "Front / Side Delts", Sets: 3, Reps: []string{"10", "10", "10"}, Weight: []string{"16", "16", "16"}, Notes: "Overhead strength"},
			{ID: "w2", Name: "Dumbbell Lateral Raises", MuscleGroup: "Side Delts", Sets: 3, Reps: []string{"15", "15", "15"}, Weight: []string{"8", "8", "8"}, Notes: "Width"},
			{ID: "w3", Name: "Front Plate Raise", MuscleGroup: "Front Delts", Sets: 3, Reps: []string{"12", "12", "12"}, Weight: []string{"10", "10", "10"}, Notes: "Front Delt"},
			{ID: "w4", Name: "Dumbbell Shrugs", MuscleGroup: "Upper Traps", Sets: 3, Reps: []string{"15", "15", "15"}, Weight: []string{"24", "24", "24"}, Notes: "Traps"},
			{ID: "w5", Name: "Wrist Curls (Palms Up)", MuscleGroup: "Forearm Flexors", Sets: 3, Reps: []string{"20", "20", "20"}, Weight: []string{"10", "10", "10"}, Notes: "Inner Forearm"},
			{ID: "w6", Name: "Reverse Barbell Curl", MuscleGroup: "Forearm Extensors", Sets: 3, Reps: []string{"15", "15", "15"}, Weight: []string{"15", "15", "15"}, Notes: "Outer Forearm"},
		},
		Thursday: []Exercise{
			{ID: "th1", Name: "EZ Bar Curl", MuscleGroup: "Bicep Overall", Sets: 3, Reps: []string{"12", "12", "12"}, Weight: []string{"20", "20", "20"}, Notes: "Mass"},
			{ID: "th2", Name: "Skull Crushers", MuscleGroup: "Tricep Long Head", Sets: 3, Reps: []string{"12", "12", "12"}, Weight: []string{"20", "20", "20"}, Notes: "Mass"},
			{ID: "th3", Name: "Preacher Curl Machine", MuscleGroup: "Bicep Short Head", Sets: 3, Reps: []string{"12", "12", "12"}, Weight: []string{"25", "25", "25"}, Notes: "Isolation"},
			{ID: "th4", Name: "Bench Dips", MuscleGroup: "Triceps", Sets: 3, Reps: []string{"12", "12", "12"}, Weight: []string{"0", "0", "0"}, Notes: "Bodyweight"},
			{ID: "th5", Name: "Concentration Curls", MuscleGroup: "Bicep Peak", Sets: 2, Reps: []string{"15", "15"}, Weight: []string{"10", "10"}, Notes: "Squeeze"},
			{ID: "th6", Name: "Rope Pushdowns", MuscleGroup: "Tricep Lateral Head", Sets: 2, Reps: []string{"15", "15"}, Weight: []string{"15", "15"}, Notes: "Detail"},
		},
		Friday: []Exercise{
			{ID: "f1", Name: "Leg Press Machine", MuscleGroup: "Quads / Glutes", Sets: 3, Reps: []string{"12", "12", "12"}, Weight: []string{"80", "80", "80"}, Notes: "Compound"},
			{ID: "f2", Name: "Walking Lunges", MuscleGroup: "Glutes / Quads", Sets: 3, Reps: []string{"10", "10", "10"}, Weight: []string{"12", "12", "12"}, Notes: "Unilateral"},
			{ID: "f3", Name: "Leg Extension", MuscleGroup: "Quads (Isolation)", Sets: 3, Reps: []string{"15", "15", "15"}, Weight: []string{"35", "35", "35"}, Notes: "Pump"},
			{ID: "f4", Name: "Lying Leg Curls", MuscleGroup: "Hamstrings", Sets: 3, Reps: []string{"12", "12", "12"}, Weight: []string{"35", "35", "35"}, Notes: "Posterior chain"},
			{ID: "f5", Name: "Hip Adduction Machine", MuscleGroup: "Inner Thighs", Sets: 3, Reps: []string{"15", "15", "15"}, Weight: []string{"30", "30", "30"}, Notes: "Adductors"},
			{ID: "f6", Name: "Standing Calf Raises", MuscleGroup: "Calves", Sets: 4, Reps: []string{"15", "15", "15", "15"}, Weight: []string{"40", "40", "40", "40"}, Notes: "Gastrocnemius"},
		},
		Saturday: []Exercise{
			{ID: "s1", Name: "Plank", MuscleGroup: "Core Stability", Sets: 3, Reps: []string{"45", "45", "45"}, Weight: []string{"0", "0", "0"}, Notes: "Secs duration"},
			{ID: "s2", Name: "Hanging Leg Raise", MuscleGroup: "Lower Abs", Sets: 3, Reps: []string{"12", "12", "12"}, Weight: []string{"0", "0", "0"}, Notes: "Hip Flexors"},
			{ID: "s3", Name: "Machine Crunch", MuscleGroup: "Upper Abs", Sets: 3, Reps: []string{"15", "15", "15"}, Weight: []string{"30", "30", "30"}, Notes: "Isolation"},
			{ID: "s4", Name: "Rear Delt Fly", MuscleGroup: "Rear Delts", Sets: 3, Reps: []string{"15", "15", "15"}, Weight: []string{"10", "10", "10"}, Notes: "Postural"},
			{ID: "s5", Name: "Upright Rows", MuscleGroup: "Side Delts / Traps", Sets: 3, Reps: []string{"12", "12", "12"}, Weight: []string{"20", "20", "20"}, Notes: "Pull"},
			{ID: "s6", Name: "Cardio (Treadmill)", MuscleGroup: "Cardiovascular", Sets: 1, Reps: []string{"20"}, Weight: []string{"0"}, Notes: "Mins"},
		},
		Sunday: []Exercise{
			{ID: "su2", Name: "Light Cardio", MuscleGroup: "Active Recovery", Sets: 1, Reps: []string{"30"}, Weight: []string{"0"}, Notes: "Mins walking"},
		},
	}
}
