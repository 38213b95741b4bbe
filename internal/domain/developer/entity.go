package developer

import (
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("developer not found")

// JobExpectation is what a developer wants out of their next position; the
// discovery sampler matches it against job recruitments.
type JobExpectation struct {
	JobType        string `json:"job_type"`
	YearExperience int    `json:"year_experience"`
	ExpectedSalary int    `json:"expected_salary"`
	WorkPlace      string `json:"work_place"`
}

type Developer struct {
	ID             uuid.UUID      `json:"id"`
	UserID         uuid.UUID      `json:"user_id"`
	Email          string         `json:"email"`
	FullName       string         `json:"full_name"`
	PhotoID        *uuid.UUID     `json:"photo_id,omitempty"`
	PhotoURL       string         `json:"photo_url,omitempty"`
	Birthday       string         `json:"birthday"`
	Phone          string         `json:"phone"`
	Gender         string         `json:"gender"`
	City           string         `json:"city"`
	FacebookURL    string         `json:"facebook_url,omitempty"`
	LinkedinURL    string         `json:"linkedin_url,omitempty"`
	TwitterURL     string         `json:"twitter_url,omitempty"`
	Description    string         `json:"description,omitempty"`
	JobExpectation JobExpectation `json:"job_expectation"`
	Skills         []string       `json:"skills"`
	Status         string         `json:"status"`
}
