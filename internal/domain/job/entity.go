package job

import (
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job recruitment not found")

const (
	StatusActive  = "Active"
	StatusDeleted = "Deleted"
)

// Recruitment is a job posting owned by a company user. UserID references the
// owning company's user id, which also keys the matching scope.
type Recruitment struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Title          string    `json:"title"`
	WorkPlace      string    `json:"work_place"`
	ExpiredDate    string    `json:"expired_date"`
	FromSalary     int       `json:"from_salary"`
	ToSalary       int       `json:"to_salary"`
	JobType        string    `json:"job_type"`
	Skills         []string  `json:"skills"`
	YearExperience int       `json:"year_experience"`
	Description    string    `json:"description,omitempty"`
	CreatedDate    string    `json:"created_date"`
	Status         string    `json:"status"`
}
