package dto

import "tindev/internal/domain/job"

type JobRecruitmentRequest struct {
	Title          string   `json:"title"`
	WorkPlace      string   `json:"work_place"`
	ExpiredDate    string   `json:"expired_date"`
	FromSalary     int      `json:"from_salary"`
	ToSalary       int      `json:"to_salary"`
	JobType        string   `json:"job_type"`
	Skills         []string `json:"skills"`
	YearExperience int      `json:"year_experience"`
	Description    string   `json:"description"`
}

func (r JobRecruitmentRequest) ToDomain() job.Recruitment {
	skills := r.Skills
	if skills == nil {
		skills = []string{}
	}
	return job.Recruitment{
		Title:          r.Title,
		WorkPlace:      r.WorkPlace,
		ExpiredDate:    r.ExpiredDate,
		FromSalary:     r.FromSalary,
		ToSalary:       r.ToSalary,
		JobType:        r.JobType,
		Skills:         skills,
		YearExperience: r.YearExperience,
		Description:    r.Description,
	}
}
