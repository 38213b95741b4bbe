package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"tindev/internal/domain/developer"
	"tindev/internal/domain/job"
	"tindev/internal/repository"

	"github.com/google/uuid"
)

const (
	discoveryAttempts   = 10
	discoverySampleSize = 10
)

type DiscoveryUsecase interface {
	SampleDevelopers(ctx context.Context, companyUserID uuid.UUID) ([]developer.Developer, error)
	SampleJobRecruitments(ctx context.Context, developerUserID uuid.UUID) ([]job.Recruitment, error)
}

// Discovery draws random candidates for the swipe deck. Each attempt picks
// one of four filter dimensions at random and samples against it; the first
// non-empty draw wins.
type Discovery struct {
	developers repository.DeveloperRepository
	jobs       repository.JobRecruitmentRepository
	photoURLs  *PhotoURLService

	randIntn func(n int) int
}

func NewDiscoveryUsecase(
	developers repository.DeveloperRepository,
	jobs repository.JobRecruitmentRepository,
	photoURLs *PhotoURLService,
) *Discovery {
	return &Discovery{
		developers: developers,
		jobs:       jobs,
		photoURLs:  photoURLs,
		randIntn:   rand.Intn,
	}
}

// SampleDevelopers drives the draw from the company's own postings: each
// attempt takes a random active posting and matches developers against one
// of its attributes.
func (u *Discovery) SampleDevelopers(ctx context.Context, companyUserID uuid.UUID) ([]developer.Developer, error) {
	if companyUserID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	for attempt := 0; attempt < discoveryAttempts; attempt++ {
		postings, err := u.jobs.SampleOwnedBy(ctx, companyUserID, 1)
		if err != nil {
			return nil, fmt.Errorf("sample own postings: %w", err)
		}
		if len(postings) == 0 {
			break
		}

		f := developerFilterFor(postings[0], u.randIntn(4))
		devs, err := u.developers.Sample(ctx, f, discoverySampleSize)
		if err != nil {
			return nil, fmt.Errorf("sample developers: %w", err)
		}
		if len(devs) > 0 {
			if u.photoURLs != nil {
				devs[0].PhotoURL = u.photoURLs.Resolve(ctx, devs[0].PhotoID)
			}
			return devs, nil
		}
	}

	return nil, ErrNoCandidateFound
}

// SampleJobRecruitments drives the draw from the developer's job
// expectation.
func (u *Discovery) SampleJobRecruitments(ctx context.Context, developerUserID uuid.UUID) ([]job.Recruitment, error) {
	if developerUserID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	dev, err := u.developers.FindByUserID(ctx, developerUserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("find developer profile: %w", err)
	}

	for attempt := 0; attempt < discoveryAttempts; attempt++ {
		f := jobFilterFor(dev.JobExpectation, u.randIntn(4))
		jobs, err := u.jobs.Sample(ctx, f, discoverySampleSize)
		if err != nil {
			return nil, fmt.Errorf("sample job recruitments: %w", err)
		}
		if len(jobs) > 0 {
			return jobs, nil
		}
	}

	return nil, ErrNoCandidateFound
}

func developerFilterFor(posting job.Recruitment, dimension int) repository.DeveloperFilter {
	switch dimension {
	case 0:
		from, to := posting.FromSalary, posting.ToSalary
		return repository.DeveloperFilter{SalaryFrom: &from, SalaryTo: &to}
	case 1:
		jt := posting.JobType
		return repository.DeveloperFilter{JobType: &jt}
	case 2:
		years := posting.YearExperience
		return repository.DeveloperFilter{MinYearExperience: &years}
	default:
		wp := posting.WorkPlace
		return repository.DeveloperFilter{WorkPlace: &wp}
	}
}

func jobFilterFor(exp developer.JobExpectation, dimension int) repository.JobFilter {
	switch dimension {
	case 0:
		salary := exp.ExpectedSalary
		return repository.JobFilter{ExpectedSalary: &salary}
	case 1:
		jt := exp.JobType
		return repository.JobFilter{JobType: &jt}
	case 2:
		years := exp.YearExperience
		return repository.JobFilter{MinYearExperience: &years}
	default:
		wp := exp.WorkPlace
		return repository.JobFilter{WorkPlace: &wp}
	}
}
