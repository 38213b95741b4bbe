package repository

import (
	"context"

	"tindev/internal/database"
	"tindev/internal/domain/company"

	"github.com/google/uuid"
)

type CompanyRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (company.Company, error)
	Create(ctx context.Context, c company.Company) error
	UpdateByUserID(ctx context.Context, userID uuid.UUID, c company.Company) error
	List(ctx context.Context) ([]company.Company, error)
	PhoneInUse(ctx context.Context, phone string, excludeUserID uuid.UUID) (bool, error)
}

type PostgresCompanyRepository struct {
	db database.DB
}

func NewPostgresCompanyRepository(db database.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

const companyColumns = `id, user_id, name, email, photo_id, phone, city, tax_code,
	facebook_url, linkedin_url, twitter_url, description, status`

func (r *PostgresCompanyRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (company.Company, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE user_id = $1`, userID)
	return scanCompany(row)
}

func (r *PostgresCompanyRepository) Create(ctx context.Context, c company.Company) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO companies (id, user_id, name, email, photo_id, phone, city, tax_code,
			facebook_url, linkedin_url, twitter_url, description, status)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		c.ID, c.UserID, c.Name, c.Email, nullableUUID(c.PhotoID), c.Phone, c.City, c.TaxCode,
		c.FacebookURL, c.LinkedinURL, c.TwitterURL, c.Description, c.Status,
	)
	return err
}

func (r *PostgresCompanyRepository) UpdateByUserID(ctx context.Context, userID uuid.UUID, c company.Company) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE companies SET
			name = $2, photo_id = $3, phone = $4, city = $5, tax_code = $6,
			facebook_url = $7, linkedin_url = $8, twitter_url = $9, description = $10
		 WHERE user_id = $1`,
		userID,
		c.Name, nullableUUID(c.PhotoID), c.Phone, c.City, c.TaxCode,
		c.FacebookURL, c.LinkedinURL, c.TwitterURL, c.Description,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresCompanyRepository) List(ctx context.Context) ([]company.Company, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE status = 'Active' ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]company.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCompanyRepository) PhoneInUse(ctx context.Context, phone string, excludeUserID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM companies WHERE phone = $1 AND user_id <> $2)`,
		phone, excludeUserID,
	).Scan(&exists)
	return exists, err
}

func scanCompany(row database.Row) (company.Company, error) {
	var c company.Company
	var photoID uuid.NullUUID

	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.Email, &photoID, &c.Phone, &c.City, &c.TaxCode,
		&c.FacebookURL, &c.LinkedinURL, &c.TwitterURL, &c.Description, &c.Status,
	)
	if err != nil {
		if isNoRows(err) {
			return company.Company{}, ErrNotFound
		}
		return company.Company{}, err
	}

	if photoID.Valid {
		id := photoID.UUID
		c.PhotoID = &id
	}
	return c, nil
}
