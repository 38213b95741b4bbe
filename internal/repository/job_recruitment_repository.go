package repository

import (
	"context"
	"fmt"

	"tindev/internal/database"
	"tindev/internal/domain/job"

	"github.com/google/uuid"
)

// JobFilter narrows a random job sample to one attribute dimension.
type JobFilter struct {
	ExpectedSalary    *int
	JobType           *string
	MinYearExperience *int
	WorkPlace         *string
}

type JobRecruitmentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (job.Recruitment, error)
	// FindActiveByID behaves like FindByID but treats soft-deleted rows as
	// absent.
	FindActiveByID(ctx context.Context, id uuid.UUID) (job.Recruitment, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]job.Recruitment, error)
	Create(ctx context.Context, j job.Recruitment) error
	Update(ctx context.Context, j job.Recruitment) error
	MarkDeleted(ctx context.Context, id uuid.UUID) error
	SampleOwnedBy(ctx context.Context, userID uuid.UUID, size int) ([]job.Recruitment, error)
	Sample(ctx context.Context, f JobFilter, size int) ([]job.Recruitment, error)
}

type PostgresJobRecruitmentRepository struct {
	db database.DB
}

func NewPostgresJobRecruitmentRepository(db database.DB) *PostgresJobRecruitmentRepository {
	return &PostgresJobRecruitmentRepository{db: db}
}

const jobColumns = `id, user_id, title, work_place, expired_date, from_salary, to_salary,
	job_type, skills, year_experience, description, created_date, status`

func (r *PostgresJobRecruitmentRepository) FindByID(ctx context.Context, id uuid.UUID) (job.Recruitment, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM job_recruitments WHERE id = $1`, id)
	return scanJob(row)
}

func (r *PostgresJobRecruitmentRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (job.Recruitment, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM job_recruitments WHERE id = $1 AND status = 'Active'`, id)
	return scanJob(row)
}

func (r *PostgresJobRecruitmentRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]job.Recruitment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM job_recruitments
		 WHERE user_id = $1 AND status = 'Active'
		 ORDER BY created_date DESC, id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *PostgresJobRecruitmentRepository) Create(ctx context.Context, j job.Recruitment) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO job_recruitments (id, user_id, title, work_place, expired_date, from_salary, to_salary,
			job_type, skills, year_experience, description, created_date, status)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		j.ID, j.UserID, j.Title, j.WorkPlace, j.ExpiredDate, j.FromSalary, j.ToSalary,
		j.JobType, j.Skills, j.YearExperience, j.Description, j.CreatedDate, j.Status,
	)
	return err
}

func (r *PostgresJobRecruitmentRepository) Update(ctx context.Context, j job.Recruitment) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE job_recruitments SET
			title = $2, work_place = $3, expired_date = $4, from_salary = $5, to_salary = $6,
			job_type = $7, skills = $8, year_experience = $9, description = $10
		 WHERE id = $1 AND status = 'Active'`,
		j.ID,
		j.Title, j.WorkPlace, j.ExpiredDate, j.FromSalary, j.ToSalary,
		j.JobType, j.Skills, j.YearExperience, j.Description,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresJobRecruitmentRepository) MarkDeleted(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE job_recruitments SET status = 'Deleted' WHERE id = $1 AND status = 'Active'`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresJobRecruitmentRepository) SampleOwnedBy(ctx context.Context, userID uuid.UUID, size int) ([]job.Recruitment, error) {
	if size <= 0 {
		size = 10
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM job_recruitments
		 WHERE user_id = $1 AND status = 'Active'
		 ORDER BY random() LIMIT $2`,
		userID, size,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *PostgresJobRecruitmentRepository) Sample(ctx context.Context, f JobFilter, size int) ([]job.Recruitment, error) {
	if size <= 0 {
		size = 10
	}

	where := `status = 'Active'`
	args := make([]any, 0, 2)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	switch {
	case f.ExpectedSalary != nil:
		p := arg(*f.ExpectedSalary)
		where += ` AND from_salary <= ` + p + ` AND to_salary >= ` + p
	case f.JobType != nil:
		where += ` AND job_type = ` + arg(*f.JobType)
	case f.MinYearExperience != nil:
		where += ` AND year_experience >= ` + arg(*f.MinYearExperience)
	case f.WorkPlace != nil:
		where += ` AND work_place = ` + arg(*f.WorkPlace)
	}

	args = append(args, size)
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+` FROM job_recruitments WHERE `+where+
			` ORDER BY random() LIMIT `+fmt.Sprintf("$%d", len(args)),
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func collectJobs(rows database.Rows) ([]job.Recruitment, error) {
	out := make([]job.Recruitment, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanJob(row database.Row) (job.Recruitment, error) {
	var j job.Recruitment
	err := row.Scan(
		&j.ID, &j.UserID, &j.Title, &j.WorkPlace, &j.ExpiredDate, &j.FromSalary, &j.ToSalary,
		&j.JobType, &j.Skills, &j.YearExperience, &j.Description, &j.CreatedDate, &j.Status,
	)
	if err != nil {
		if isNoRows(err) {
			return job.Recruitment{}, ErrNotFound
		}
		return job.Recruitment{}, err
	}
	return j, nil
}
