package projects

import (
	"time"
)

// Record is the validated output of a successful form submission.
type Record struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PeopleCount float64   `json:"peopleCount"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Tuple returns the submitted values in form order.
func (r Record) Tuple() (string, string, float64) {
	return r.Title, r.Description, r.PeopleCount
}

// Fields carries raw form control contents, as typed by the user.
type Fields struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	People      string `json:"people"`
}

// IsZero reports whether every field is blank.
func (f Fields) IsZero() bool {
	return f == Fields{}
}
