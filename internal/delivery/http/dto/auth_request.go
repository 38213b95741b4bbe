// Package dto holds the request payload shapes and their mapping onto
// domain entities.
package dto

import (
	"tindev/internal/domain/company"
	"tindev/internal/domain/developer"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`

	Developer *DeveloperProfileRequest `json:"developer,omitempty"`
	Company   *CompanyProfileRequest   `json:"company,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type JobExpectationRequest struct {
	JobType        string `json:"job_type"`
	YearExperience int    `json:"year_experience"`
	ExpectedSalary int    `json:"expected_salary"`
	WorkPlace      string `json:"work_place"`
}

type DeveloperProfileRequest struct {
	FullName       string                `json:"full_name"`
	PhotoID        *uuid.UUID            `json:"photo_id,omitempty"`
	Birthday       string                `json:"birthday"`
	Phone          string                `json:"phone"`
	Gender         string                `json:"gender"`
	City           string                `json:"city"`
	FacebookURL    string                `json:"facebook_url"`
	LinkedinURL    string                `json:"linkedin_url"`
	TwitterURL     string                `json:"twitter_url"`
	Description    string                `json:"description"`
	JobExpectation JobExpectationRequest `json:"job_expectation"`
	Skills         []string              `json:"skills"`
}

func (r DeveloperProfileRequest) ToDomain() developer.Developer {
	skills := r.Skills
	if skills == nil {
		skills = []string{}
	}
	return developer.Developer{
		FullName:    r.FullName,
		PhotoID:     r.PhotoID,
		Birthday:    r.Birthday,
		Phone:       r.Phone,
		Gender:      r.Gender,
		City:        r.City,
		FacebookURL: r.FacebookURL,
		LinkedinURL: r.LinkedinURL,
		TwitterURL:  r.TwitterURL,
		Description: r.Description,
		JobExpectation: developer.JobExpectation{
			JobType:        r.JobExpectation.JobType,
			YearExperience: r.JobExpectation.YearExperience,
			ExpectedSalary: r.JobExpectation.ExpectedSalary,
			WorkPlace:      r.JobExpectation.WorkPlace,
		},
		Skills: skills,
	}
}

type CompanyProfileRequest struct {
	Name        string     `json:"name"`
	PhotoID     *uuid.UUID `json:"photo_id,omitempty"`
	Phone       string     `json:"phone"`
	City        string     `json:"city"`
	TaxCode     string     `json:"tax_code"`
	FacebookURL string     `json:"facebook_url"`
	LinkedinURL string     `json:"linkedin_url"`
	TwitterURL  string     `json:"twitter_url"`
	Description string     `json:"description"`
}

func (r CompanyProfileRequest) ToDomain() company.Company {
	return company.Company{
		Name:        r.Name,
		PhotoID:     r.PhotoID,
		Phone:       r.Phone,
		City:        r.City,
		TaxCode:     r.TaxCode,
		FacebookURL: r.FacebookURL,
		LinkedinURL: r.LinkedinURL,
		TwitterURL:  r.TwitterURL,
		Description: r.Description,
	}
}
