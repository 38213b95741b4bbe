package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tindev/internal/domain/job"
	"tindev/internal/repository"

	"github.com/google/uuid"
)

type JobRecruitmentUsecase interface {
	ListMine(ctx context.Context, userID uuid.UUID) ([]job.Recruitment, error)
	Create(ctx context.Context, userID uuid.UUID, in job.Recruitment) (job.Recruitment, error)
	Get(ctx context.Context, id uuid.UUID) (job.Recruitment, error)
	Update(ctx context.Context, userID, id uuid.UUID, in job.Recruitment) (job.Recruitment, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type JobRecruitments struct {
	jobs repository.JobRecruitmentRepository
	now  func() time.Time
}

func NewJobRecruitmentUsecase(jobs repository.JobRecruitmentRepository) *JobRecruitments {
	return &JobRecruitments{jobs: jobs, now: time.Now}
}

func (u *JobRecruitments) ListMine(ctx context.Context, userID uuid.UUID) ([]job.Recruitment, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	out, err := u.jobs.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list job recruitments: %w", err)
	}
	return out, nil
}

func (u *JobRecruitments) Create(ctx context.Context, userID uuid.UUID, in job.Recruitment) (job.Recruitment, error) {
	if userID == uuid.Nil {
		return job.Recruitment{}, ErrInvalidInput
	}
	if err := validateRecruitment(in); err != nil {
		return job.Recruitment{}, err
	}

	in.ID = uuid.New()
	in.UserID = userID
	in.CreatedDate = u.now().UTC().Format("2006-01-02")
	in.Status = job.StatusActive

	if err := u.jobs.Create(ctx, in); err != nil {
		return job.Recruitment{}, fmt.Errorf("create job recruitment: %w", err)
	}
	return in, nil
}

func (u *JobRecruitments) Get(ctx context.Context, id uuid.UUID) (job.Recruitment, error) {
	if id == uuid.Nil {
		return job.Recruitment{}, ErrInvalidInput
	}
	j, err := u.jobs.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return job.Recruitment{}, ErrNotFound
		}
		return job.Recruitment{}, fmt.Errorf("find job recruitment: %w", err)
	}
	return j, nil
}

func (u *JobRecruitments) Update(ctx context.Context, userID, id uuid.UUID, in job.Recruitment) (job.Recruitment, error) {
	existing, err := u.ownedActive(ctx, userID, id)
	if err != nil {
		return job.Recruitment{}, err
	}
	if err := validateRecruitment(in); err != nil {
		return job.Recruitment{}, err
	}

	in.ID = existing.ID
	in.UserID = existing.UserID
	in.CreatedDate = existing.CreatedDate
	in.Status = existing.Status

	if err := u.jobs.Update(ctx, in); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return job.Recruitment{}, ErrNotFound
		}
		return job.Recruitment{}, fmt.Errorf("update job recruitment: %w", err)
	}
	return in, nil
}

// Delete soft-deletes the posting: the row stays so existing matchings keep
// their scope, but sampling and decisions no longer see it.
func (u *JobRecruitments) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := u.ownedActive(ctx, userID, id); err != nil {
		return err
	}
	if err := u.jobs.MarkDeleted(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete job recruitment: %w", err)
	}
	return nil
}

func (u *JobRecruitments) ownedActive(ctx context.Context, userID, id uuid.UUID) (job.Recruitment, error) {
	if userID == uuid.Nil || id == uuid.Nil {
		return job.Recruitment{}, ErrInvalidInput
	}
	j, err := u.jobs.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return job.Recruitment{}, ErrNotFound
		}
		return job.Recruitment{}, fmt.Errorf("find job recruitment: %w", err)
	}
	if j.UserID != userID {
		return job.Recruitment{}, ErrNotOwner
	}
	return j, nil
}

func validateRecruitment(in job.Recruitment) error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrInvalidInput
	}
	if in.FromSalary < 0 || in.ToSalary < in.FromSalary {
		return ErrInvalidInput
	}
	if in.YearExperience < 0 {
		return ErrInvalidInput
	}
	if strings.TrimSpace(in.JobType) == "" || strings.TrimSpace(in.WorkPlace) == "" {
		return ErrInvalidInput
	}
	return nil
}
