package models

// DateFormat is the layout for all stored workout dates.
const DateFormat = "2006-01-02"

// MuscleGroup tags an exercise with the musculature it targets.
type MuscleGroup string

const (
	Chest        MuscleGroup = "CHEST"
	Back         MuscleGroup = "BACK"
	Shoulders    MuscleGroup = "SHOULDERS"
	Biceps       MuscleGroup = "BICEPS"
	Triceps      MuscleGroup = "TRICEPS"
	Quads        MuscleGroup = "QUADS"
	Hamstrings   MuscleGroup = "HAMSTRINGS"
	Glutes       MuscleGroup = "GLUTES"
	Calves       MuscleGroup = "CALVES"
	Abs          MuscleGroup = "ABS"
	Forearms     MuscleGroup = "FOREARMS"
	Traps        MuscleGroup = "TRAPS"
	Lats         MuscleGroup = "LATS"
	FullBody     MuscleGroup = "FULL_BODY"
	UpperBody    MuscleGroup = "UPPER_BODY"
	LowerBody    MuscleGroup = "LOWER_BODY"
	Push         MuscleGroup = "PUSH"
	Pull         MuscleGroup = "PULL"
	Legs         MuscleGroup = "LEGS"
	Core         MuscleGroup = "CORE"
	SkillStatic  MuscleGroup = "SKILL_STATIC"
	SkillDynamic MuscleGroup = "SKILL_DYNAMIC"
	OtherMuscle  MuscleGroup = "OTHER"
)

// Equipment tags an exercise with the gear it requires.
type Equipment string

const (
	Barbell    Equipment = "BARBELL"
	Dumbbell   Equipment = "DUMBBELL"
	Kettlebell Equipment = "KETTLEBELL"
	Machine    Equipment = "MACHINE"
	Cable      Equipment = "CABLE"
	Bands      Equipment = "BANDS"
	Bodyweight Equipment = "BODYWEIGHT"
	Rings      Equipment = "RINGS"
	TRX        Equipment = "TRX"
	OtherGear  Equipment = "OTHER"
)

// Exercise is a library entry referenced by id from templates and logs.
type Exercise struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	TargetMuscles     []MuscleGroup `json:"target_muscles"`
	Equipment         []Equipment   `json:"equipment"`
	PreferredRepRange *string       `json:"preferred_rep_range,omitempty"`
	Notes             *string       `json:"notes,omitempty"`
	VideoLink         *string       `json:"video_link,omitempty"`
}

// TemplateSet is one planned set within a template exercise.
type TemplateSet struct {
	ID         string  `json:"id"`
	TargetReps *string `json:"target_reps,omitempty"`
	TargetSecs *string `json:"target_secs,omitempty"`
	TargetRIR  *string `json:"target_rir,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// TemplateExercise links a template to a library exercise with planned sets.
type TemplateExercise struct {
	ID           string        `json:"id"`
	ExerciseID   string        `json:"exercise_id"`
	ExerciseName string        `json:"exercise_name"`
	Sets         []TemplateSet `json:"sets"`
	Order        int           `json:"order"`
	Notes        *string       `json:"notes,omitempty"`
}

// WorkoutTemplate is a reusable blueprint of exercises and planned sets.
type WorkoutTemplate struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description *string            `json:"description,omitempty"`
	Exercises   []TemplateExercise `json:"exercises"`
}

// ProgramSession is one session slot within a program week.
type ProgramSession struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	WorkoutTemplateID string `json:"workout_template_id"`
	Order             int    `json:"order"`
}

// ProgramWeek is one week within a program blueprint.
type ProgramWeek struct {
	ID       string           `json:"id"`
	Label    string           `json:"label"`
	Sessions []ProgramSession `json:"sessions"`
	Order    int              `json:"order"`
}

// ProgramTemplate is a multi-week training blueprint. A program is never run
// directly; an ActiveCycle instantiates it.
type ProgramTemplate struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description,omitempty"`
	Weeks       []ProgramWeek `json:"weeks"`
}

// ActiveCycle is the singleton record of one user-started run of a program.
// CompletedSessions maps "weekID_sessionID" to the id of the logged workout
// that fulfilled that session.
type ActiveCycle struct {
	ProgramTemplateID   string            `json:"program_template_id"`
	ProgramTemplateName string            `json:"program_template_name"`
	CycleName           string            `json:"cycle_name"`
	StartDate           string            `json:"start_date"`
	CompletedSessions   map[string]string `json:"completed_sessions"`
}

// SessionKey builds the composite key under which a completed program
// session is recorded on the active cycle.
func SessionKey(weekID, sessionID string) string {
	return weekID + "_" + sessionID
}

// LoggedSet is one performed (or pending) set. All performance fields are
// optional: a draft starts with everything unset and tolerant parsing keeps
// malformed input unset rather than failing.
type LoggedSet struct {
	ID     string   `json:"id"`
	Reps   *int     `json:"reps,omitempty"`
	Secs   *int     `json:"secs,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
	RIR    *int     `json:"rir,omitempty"`
	Notes  *string  `json:"notes,omitempty"`
}

// LoggedExercise is one exercise within a logged workout.
type LoggedExercise struct {
	ID           string      `json:"id"`
	ExerciseID   string      `json:"exercise_id"`
	ExerciseName string      `json:"exercise_name"`
	Sets         []LoggedSet `json:"sets"`
	Notes        *string     `json:"notes,omitempty"`
}

// LoggedWorkout is an actual recorded performance. WeightUnit stays nil while
// the workout is a draft and is stamped on finish; finished workouts are
// never edited.
type LoggedWorkout struct {
	ID              string           `json:"id"`
	Date            string           `json:"date"`
	Name            *string          `json:"name,omitempty"`
	OverallComments *string          `json:"overall_comments,omitempty"`
	DurationMinutes *int             `json:"duration_minutes,omitempty"`
	Bodyweight      *float64         `json:"bodyweight,omitempty"`
	WeightUnit      *string          `json:"weight_unit,omitempty"`
	Exercises       []LoggedExercise `json:"exercises"`
	TemplateID      *string          `json:"template_id,omitempty"`
}

// ExerciseIDs returns the distinct exercise ids touched by the workout, in
// first-seen order.
func (w *LoggedWorkout) ExerciseIDs() []string {
	seen := make(map[string]bool, len(w.Exercises))
	var ids []string
	for _, ex := range w.Exercises {
		if !seen[ex.ExerciseID] {
			seen[ex.ExerciseID] = true
			ids = append(ids, ex.ExerciseID)
		}
	}
	return ids
}
