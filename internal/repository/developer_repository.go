package repository

import (
	"context"
	"fmt"

	"tindev/internal/database"
	"tindev/internal/domain/developer"

	"github.com/google/uuid"
)

// DeveloperFilter narrows a random sample to one attribute dimension; the
// discovery usecase sets exactly one field.
type DeveloperFilter struct {
	SalaryFrom        *int
	SalaryTo          *int
	JobType           *string
	MinYearExperience *int
	WorkPlace         *string
}

type DeveloperRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (developer.Developer, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (developer.Developer, error)
	Create(ctx context.Context, d developer.Developer) error
	UpdateByUserID(ctx context.Context, userID uuid.UUID, d developer.Developer) error
	List(ctx context.Context) ([]developer.Developer, error)
	PhoneInUse(ctx context.Context, phone string, excludeUserID uuid.UUID) (bool, error)
	Sample(ctx context.Context, f DeveloperFilter, size int) ([]developer.Developer, error)
}

type PostgresDeveloperRepository struct {
	db database.DB
}

func NewPostgresDeveloperRepository(db database.DB) *PostgresDeveloperRepository {
	return &PostgresDeveloperRepository{db: db}
}

const developerColumns = `id, user_id, email, full_name, photo_id, birthday, phone, gender, city,
	facebook_url, linkedin_url, twitter_url, description,
	job_type, year_experience, expected_salary, work_place, skills, status`

func (r *PostgresDeveloperRepository) FindByID(ctx context.Context, id uuid.UUID) (developer.Developer, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+developerColumns+` FROM developers WHERE id = $1`, id)
	return scanDeveloper(row)
}

func (r *PostgresDeveloperRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (developer.Developer, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+developerColumns+` FROM developers WHERE user_id = $1`, userID)
	return scanDeveloper(row)
}

func (r *PostgresDeveloperRepository) Create(ctx context.Context, d developer.Developer) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO developers (id, user_id, email, full_name, photo_id, birthday, phone, gender, city,
			facebook_url, linkedin_url, twitter_url, description,
			job_type, year_experience, expected_salary, work_place, skills, status)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)`,
		d.ID, d.UserID, d.Email, d.FullName, nullableUUID(d.PhotoID), d.Birthday, d.Phone, d.Gender, d.City,
		d.FacebookURL, d.LinkedinURL, d.TwitterURL, d.Description,
		d.JobExpectation.JobType, d.JobExpectation.YearExperience, d.JobExpectation.ExpectedSalary, d.JobExpectation.WorkPlace,
		d.Skills, d.Status,
	)
	return err
}

func (r *PostgresDeveloperRepository) UpdateByUserID(ctx context.Context, userID uuid.UUID, d developer.Developer) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE developers SET
			full_name = $2, photo_id = $3, birthday = $4, phone = $5, gender = $6, city = $7,
			facebook_url = $8, linkedin_url = $9, twitter_url = $10, description = $11,
			job_type = $12, year_experience = $13, expected_salary = $14, work_place = $15, skills = $16
		 WHERE user_id = $1`,
		userID,
		d.FullName, nullableUUID(d.PhotoID), d.Birthday, d.Phone, d.Gender, d.City,
		d.FacebookURL, d.LinkedinURL, d.TwitterURL, d.Description,
		d.JobExpectation.JobType, d.JobExpectation.YearExperience, d.JobExpectation.ExpectedSalary, d.JobExpectation.WorkPlace,
		d.Skills,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresDeveloperRepository) List(ctx context.Context) ([]developer.Developer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+developerColumns+` FROM developers WHERE status = 'Active' ORDER BY full_name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDevelopers(rows)
}

func (r *PostgresDeveloperRepository) PhoneInUse(ctx context.Context, phone string, excludeUserID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM developers WHERE phone = $1 AND user_id <> $2)`,
		phone, excludeUserID,
	).Scan(&exists)
	return exists, err
}

func (r *PostgresDeveloperRepository) Sample(ctx context.Context, f DeveloperFilter, size int) ([]developer.Developer, error) {
	if size <= 0 {
		size = 10
	}

	where := `status = 'Active'`
	args := make([]any, 0, 3)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	switch {
	case f.SalaryFrom != nil && f.SalaryTo != nil:
		where += ` AND expected_salary >= ` + arg(*f.SalaryFrom) + ` AND expected_salary <= ` + arg(*f.SalaryTo)
	case f.JobType != nil:
		where += ` AND job_type = ` + arg(*f.JobType)
	case f.MinYearExperience != nil:
		where += ` AND year_experience >= ` + arg(*f.MinYearExperience)
	case f.WorkPlace != nil:
		where += ` AND work_place = ` + arg(*f.WorkPlace)
	}

	args = append(args, size)
	rows, err := r.db.Query(ctx,
		`SELECT `+developerColumns+` FROM developers WHERE `+where+
			` ORDER BY random() LIMIT `+fmt.Sprintf("$%d", len(args)),
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDevelopers(rows)
}

func collectDevelopers(rows database.Rows) ([]developer.Developer, error) {
	out := make([]developer.Developer, 0)
	for rows.Next() {
		d, err := scanDeveloper(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanDeveloper(row database.Row) (developer.Developer, error) {
	var d developer.Developer
	var photoID uuid.NullUUID

	err := row.Scan(
		&d.ID, &d.UserID, &d.Email, &d.FullName, &photoID, &d.Birthday, &d.Phone, &d.Gender, &d.City,
		&d.FacebookURL, &d.LinkedinURL, &d.TwitterURL, &d.Description,
		&d.JobExpectation.JobType, &d.JobExpectation.YearExperience, &d.JobExpectation.ExpectedSalary, &d.JobExpectation.WorkPlace,
		&d.Skills, &d.Status,
	)
	if err != nil {
		if isNoRows(err) {
			return developer.Developer{}, ErrNotFound
		}
		return developer.Developer{}, err
	}

	if photoID.Valid {
		id := photoID.UUID
		d.PhotoID = &id
	}
	return d, nil
}
