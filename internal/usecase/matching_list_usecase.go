package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tindev/internal/domain/company"
	"tindev/internal/domain/developer"
	"tindev/internal/domain/user"
	"tindev/internal/repository"

	"github.com/google/uuid"
)

// MatchEntry is one counterpart in an aggregation view. Exactly one of
// Developer and Company is set depending on the caller's role.
type MatchEntry struct {
	MatchingID       uuid.UUID            `json:"matching_id"`
	JobRecruitmentID *uuid.UUID           `json:"job_recruitment_id,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
	Developer        *developer.Developer `json:"developer,omitempty"`
	Company          *company.Company     `json:"company,omitempty"`
}

type MatchingListUsecase interface {
	List(ctx context.Context, role user.Role, userID uuid.UUID, view repository.MatchView) ([]MatchEntry, error)
}

type MatchingList struct {
	matchings  repository.MatchingRepository
	developers repository.DeveloperRepository
	companies  repository.CompanyRepository
	photoURLs  *PhotoURLService
}

func NewMatchingListUsecase(
	matchings repository.MatchingRepository,
	developers repository.DeveloperRepository,
	companies repository.CompanyRepository,
	photoURLs *PhotoURLService,
) *MatchingList {
	return &MatchingList{
		matchings:  matchings,
		developers: developers,
		companies:  companies,
		photoURLs:  photoURLs,
	}
}

// List returns one entry per distinct counterpart, first-seen order. A pair
// can hold several job-scoped rows; only the earliest one represents the
// counterpart. Counterparts without a profile row are skipped.
func (u *MatchingList) List(ctx context.Context, role user.Role, userID uuid.UUID, view repository.MatchView) ([]MatchEntry, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	rows, err := u.matchings.ListByView(ctx, role, userID, view)
	if err != nil {
		return nil, fmt.Errorf("list matchings: %w", err)
	}

	out := make([]MatchEntry, 0, len(rows))
	seen := make(map[uuid.UUID]struct{}, len(rows))

	for _, m := range rows {
		counterpartID := m.DeveloperUserID
		if role == user.RoleDeveloper {
			counterpartID = m.CompanyUserID
		}
		if _, ok := seen[counterpartID]; ok {
			continue
		}
		seen[counterpartID] = struct{}{}

		entry := MatchEntry{
			MatchingID:       m.ID,
			JobRecruitmentID: m.JobRecruitmentID,
			CreatedAt:        m.CreatedAt,
		}

		if role == user.RoleCompany {
			dev, err := u.developers.FindByUserID(ctx, counterpartID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					continue
				}
				return nil, fmt.Errorf("find counterpart developer: %w", err)
			}
			if u.photoURLs != nil {
				dev.PhotoURL = u.photoURLs.Resolve(ctx, dev.PhotoID)
			}
			entry.Developer = &dev
		} else {
			c, err := u.companies.FindByUserID(ctx, counterpartID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					continue
				}
				return nil, fmt.Errorf("find counterpart company: %w", err)
			}
			if u.photoURLs != nil {
				c.PhotoURL = u.photoURLs.Resolve(ctx, c.PhotoID)
			}
			entry.Company = &c
		}

		out = append(out, entry)
	}

	return out, nil
}
