package repository

import (
	"context"
	"database/sql"
	"fmt"

	"tindev/internal/database"
	"tindev/internal/domain/matching"
	"tindev/internal/domain/user"

	"github.com/google/uuid"
)

type MatchingRepository interface {
	FindByScope(ctx context.Context, scope matching.Scope) (matching.Matching, error)
	Create(ctx context.Context, m matching.Matching) error
	SetDecision(ctx context.Context, id uuid.UUID, side matching.Side, liked bool) error
	// BindJobAndSetDecision stamps a job recruitment onto a profile-level row
	// while recording the developer's decision.
	BindJobAndSetDecision(ctx context.Context, id uuid.UUID, jobID uuid.UUID, liked bool) error
	ListByView(ctx context.Context, role user.Role, userID uuid.UUID, view MatchView) ([]matching.Matching, error)
}

type PostgresMatchingRepository struct {
	db database.DB
}

func NewPostgresMatchingRepository(db database.DB) *PostgresMatchingRepository {
	return &PostgresMatchingRepository{db: db}
}

const matchingColumns = `id, company_user_id, developer_user_id, job_recruitment_id, is_company_like, is_developer_like, created_at`

func (r *PostgresMatchingRepository) FindByScope(ctx context.Context, scope matching.Scope) (matching.Matching, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+matchingColumns+`
		 FROM matchings
		 WHERE company_user_id = $1
		   AND developer_user_id = $2
		   AND job_recruitment_id IS NOT DISTINCT FROM $3`,
		scope.CompanyUserID,
		scope.DeveloperUserID,
		nullableUUID(scope.JobRecruitmentID),
	)
	return scanMatching(row)
}

func (r *PostgresMatchingRepository) Create(ctx context.Context, m matching.Matching) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO matchings (id, company_user_id, developer_user_id, job_recruitment_id, is_company_like, is_developer_like, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID,
		m.CompanyUserID,
		m.DeveloperUserID,
		nullableUUID(m.JobRecruitmentID),
		nullableBool(m.IsCompanyLike),
		nullableBool(m.IsDeveloperLike),
		m.CreatedAt,
	)
	return err
}

func (r *PostgresMatchingRepository) SetDecision(ctx context.Context, id uuid.UUID, side matching.Side, liked bool) error {
	column := "is_company_like"
	if side == matching.SideDeveloper {
		column = "is_developer_like"
	}

	affected, err := r.db.Exec(ctx,
		`UPDATE matchings SET `+column+` = $2 WHERE id = $1`,
		id, liked,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresMatchingRepository) BindJobAndSetDecision(ctx context.Context, id uuid.UUID, jobID uuid.UUID, liked bool) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE matchings
		 SET is_developer_like = $2, job_recruitment_id = $3
		 WHERE id = $1`,
		id, liked, jobID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresMatchingRepository) ListByView(ctx context.Context, role user.Role, userID uuid.UUID, view MatchView) ([]matching.Matching, error) {
	sideColumn := "company_user_id"
	mine, theirs := "is_company_like", "is_developer_like"
	if role == user.RoleDeveloper {
		sideColumn = "developer_user_id"
		mine, theirs = "is_developer_like", "is_company_like"
	}

	var predicate string
	switch view {
	case ViewMutual:
		predicate = `is_company_like AND is_developer_like`
	case ViewReceivedLikes:
		predicate = theirs
	case ViewMyDislikes:
		predicate = mine + ` = FALSE`
	default:
		return nil, fmt.Errorf("unknown match view: %d", view)
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+matchingColumns+`
		 FROM matchings
		 WHERE `+sideColumn+` = $1 AND `+predicate+`
		 ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]matching.Matching, 0)
	for rows.Next() {
		m, err := scanMatching(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanMatching(row database.Row) (matching.Matching, error) {
	var m matching.Matching
	var jobID uuid.NullUUID
	var companyLike, developerLike sql.NullBool

	err := row.Scan(
		&m.ID,
		&m.CompanyUserID,
		&m.DeveloperUserID,
		&jobID,
		&companyLike,
		&developerLike,
		&m.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return matching.Matching{}, ErrNotFound
		}
		return matching.Matching{}, err
	}

	if jobID.Valid {
		id := jobID.UUID
		m.JobRecruitmentID = &id
	}
	if companyLike.Valid {
		v := companyLike.Bool
		m.IsCompanyLike = &v
	}
	if developerLike.Valid {
		v := developerLike.Bool
		m.IsDeveloperLike = &v
	}
	return m, nil
}

func nullableUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func nullableBool(v *bool) sql.NullBool {
	if v == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *v, Valid: true}
}
