package models

import (
	"time"
)

// Role distinguishes the two dashboards.
type Role string

const (
	RoleStudent Role = "Student"
	RoleTeacher Role = "Teacher"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// Account is a stored user record, keyed by username. Passwords are kept
// and compared in plaintext; that is a deliberate property of the original
// design, not an oversight (see DESIGN.md).
type Account struct {
	Username  string    `gorm:"primaryKey" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	Role      Role      `gorm:"not null" json:"role"`
	TotalScore int      `json:"-"` // legacy column; points are always derived from the ledger
	Email     string    `json:"email,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Avatar    string    `json:"avatar,omitempty"` // data-URL string
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Account) TableName() string { return "users" }

// Completion records that a user correctly finished an activity. One row
// per (username, activity) pair; a repeat submission overwrites it.
type Completion struct {
	Username    string    `gorm:"primaryKey" json:"username"`
	ActivityID  string    `gorm:"primaryKey;column:activity_id" json:"activity_id"`
	Points      int       `gorm:"not null" json:"points"`
	CompletedAt time.Time `json:"completed_at"`
}

func (Completion) TableName() string { return "completed" }

// ActivityKind selects the grading rule. The wire names match the original
// catalog data.
type ActivityKind string

const (
	KindChoiceQuiz ActivityKind = "mcq"
	KindMatching   ActivityKind = "drag"
	KindCrossword  ActivityKind = "cross"
)

func (k ActivityKind) Valid() bool {
	return k == KindChoiceQuiz || k == KindMatching || k == KindCrossword
}

// Activity is a gradable exercise definition. Activities live only in the
// in-memory catalog; they are never persisted.
type Activity struct {
	ID     string       `yaml:"id" json:"id"`
	Kind   ActivityKind `yaml:"kind" json:"kind"`
	Title  string       `yaml:"title" json:"title"`
	Prompt string       `yaml:"prompt" json:"prompt"`
	Points int          `yaml:"points" json:"points"`

	// ChoiceQuiz payload
	Choices []string `yaml:"choices,omitempty" json:"choices,omitempty"`
	Answer  string   `yaml:"answer,omitempty" json:"answer,omitempty"`

	// Matching payload: item -> category, plus the category set
	Pairs      map[string]string `yaml:"pairs,omitempty" json:"pairs,omitempty"`
	Categories []string          `yaml:"categories,omitempty" json:"categories,omitempty"`

	// Crossword payload: clue -> answer
	Words map[string]string `yaml:"words,omitempty" json:"words,omitempty"`
}

// View returns the student-facing shape of the activity, with answers
// stripped and only the parts needed to attempt it.
func (a Activity) View() ActivityView {
	v := ActivityView{
		ID:         a.ID,
		Kind:       a.Kind,
		Title:      a.Title,
		Prompt:     a.Prompt,
		Points:     a.Points,
		Choices:    a.Choices,
		Categories: a.Categories,
	}
	for item := range a.Pairs {
		v.Items = append(v.Items, item)
	}
	for clue := range a.Words {
		v.Clues = append(v.Clues, clue)
	}
	return v
}

// ActivityView is an activity as shown to students: no answers.
type ActivityView struct {
	ID         string       `json:"id"`
	Kind       ActivityKind `json:"kind"`
	Title      string       `json:"title"`
	Prompt     string       `json:"prompt"`
	Points     int          `json:"points"`
	Choices    []string     `json:"choices,omitempty"`
	Categories []string     `json:"categories,omitempty"`
	Items      []string     `json:"items,omitempty"`
	Clues      []string     `json:"clues,omitempty"`
	Completed  bool         `json:"completed"`
}

// CredentialsRequest carries signup and login input.
type CredentialsRequest struct {
	Username string `json:"username" binding:"required,min=2,max=32"`
	Password string `json:"password" binding:"required,min=4,max=72"`
	Role     Role   `json:"role" binding:"required,oneof=Student Teacher"`
}

// SaveProfileRequest carries editable profile fields. The save is a full
// record upsert with last-writer-wins semantics.
type SaveProfileRequest struct {
	Email  string `json:"email" binding:"omitempty,email"`
	Bio    string `json:"bio" binding:"max=500"`
	Avatar string `json:"avatar"`
}

// NavigateRequest asks the session to move to another view.
type NavigateRequest struct {
	View string `json:"view" binding:"required"`
}

// SubmissionRequest carries an answer for any of the three kinds; only the
// field matching the activity's kind is consulted.
type SubmissionRequest struct {
	Choice string            `json:"choice,omitempty"`
	Pairs  map[string]string `json:"pairs,omitempty"`
	Words  map[string]string `json:"words,omitempty"`
}

// GradeResult is the outcome of grading one submission.
type GradeResult struct {
	Correct       bool   `json:"correct"`
	PointsAwarded int    `json:"points_awarded"`
	CorrectAnswer string `json:"correct_answer,omitempty"` // revealed for wrong choice-quiz answers only
}

// CreateActivityRequest carries a teacher-authored activity definition.
// Kind-specific payload checks happen in the validation package before the
// catalog accepts it.
type CreateActivityRequest struct {
	Kind   ActivityKind `json:"kind" binding:"required,oneof=mcq drag cross"`
	Title  string       `json:"title" binding:"required,max=120"`
	Prompt string       `json:"prompt" binding:"required"`
	Points int          `json:"points" binding:"required,min=1,max=1000"`

	Choices    []string          `json:"choices,omitempty"`
	Answer     string            `json:"answer,omitempty"`
	Pairs      map[string]string `json:"pairs,omitempty"`
	Categories []string          `json:"categories,omitempty"`
	Words      map[string]string `json:"words,omitempty"`
}

// Definition converts the request into an activity without an id; the
// catalog assigns one on insert.
func (r CreateActivityRequest) Definition() Activity {
	return Activity{
		Kind:       r.Kind,
		Title:      r.Title,
		Prompt:     r.Prompt,
		Points:     r.Points,
		Choices:    r.Choices,
		Answer:     r.Answer,
		Pairs:      r.Pairs,
		Categories: r.Categories,
		Words:      r.Words,
	}
}

// ProgressItem is one activity's completion status for a user.
type ProgressItem struct {
	ActivityID    string       `json:"activity_id"`
	Title         string       `json:"title"`
	Kind          ActivityKind `json:"kind"`
	Points        int          `json:"points"`
	Completed     bool         `json:"completed"`
	PointsAwarded int          `json:"points_awarded,omitempty"`
	CompletedAt   *time.Time   `json:"completed_at,omitempty"`
}

// ProgressReport aggregates a user's standing across the catalog. Total
// points are derived by summing ledger rows, never read from the account.
type ProgressReport struct {
	Username        string         `json:"username"`
	Completed       int            `json:"completed"`
	TotalActivities int            `json:"total_activities"`
	CompletionPct   int            `json:"completion_pct"`
	TotalPoints     int            `json:"total_points"`
	Items           []ProgressItem `json:"items"`
}

// TeacherOverview is the teacher dashboard's headline numbers.
type TeacherOverview struct {
	TotalStudents   int `json:"total_students"`
	TotalActivities int `json:"total_activities"`
	CompletionRate  int `json:"completion_rate"` // percent, averaged across students
}
