package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tindev/internal/domain/matching"
	"tindev/internal/domain/user"
	"tindev/internal/pkg/keymutex"
	"tindev/internal/repository"

	"github.com/google/uuid"
)

// TargetKind names what a decision is aimed at. Companies act on developer
// profiles, developers act on job recruitments.
type TargetKind int

const (
	TargetDeveloper TargetKind = iota
	TargetJobRecruitment
)

type MatchingUsecase interface {
	RecordDecision(ctx context.Context, role user.Role, actorUserID uuid.UUID, kind TargetKind, targetID uuid.UUID, liked bool) (matching.Outcome, error)
}

type Interactions struct {
	matchings  repository.MatchingRepository
	developers repository.DeveloperRepository
	companies  repository.CompanyRepository
	jobs       repository.JobRecruitmentRepository

	locks *keymutex.KeyMutex
	now   func() time.Time
}

func NewInteractionsUsecase(
	matchings repository.MatchingRepository,
	developers repository.DeveloperRepository,
	companies repository.CompanyRepository,
	jobs repository.JobRecruitmentRepository,
) *Interactions {
	return &Interactions{
		matchings:  matchings,
		developers: developers,
		companies:  companies,
		jobs:       jobs,
		locks:      keymutex.New(),
		now:        time.Now,
	}
}

func (u *Interactions) RecordDecision(ctx context.Context, role user.Role, actorUserID uuid.UUID, kind TargetKind, targetID uuid.UUID, liked bool) (matching.Outcome, error) {
	if actorUserID == uuid.Nil || targetID == uuid.Nil {
		return 0, ErrInvalidInput
	}

	switch {
	case role == user.RoleCompany && kind == TargetDeveloper:
		return u.companyDecision(ctx, actorUserID, targetID, liked)
	case role == user.RoleDeveloper && kind == TargetJobRecruitment:
		return u.developerDecision(ctx, actorUserID, targetID, liked)
	default:
		return 0, ErrRoleDenied
	}
}

// companyDecision records the company's profile-level decision on a
// developer, addressed by the developer's profile id.
func (u *Interactions) companyDecision(ctx context.Context, companyUserID, developerProfileID uuid.UUID, liked bool) (matching.Outcome, error) {
	if _, err := u.companies.FindByUserID(ctx, companyUserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrProfileNotFound
		}
		return 0, fmt.Errorf("find company profile: %w", err)
	}

	dev, err := u.developers.FindByID(ctx, developerProfileID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrTargetNotFound
		}
		return 0, fmt.Errorf("find developer: %w", err)
	}

	scope := matching.Scope{
		CompanyUserID:   companyUserID,
		DeveloperUserID: dev.UserID,
	}

	u.locks.Lock(scope.PairKey())
	defer u.locks.Unlock(scope.PairKey())

	m, err := u.matchings.FindByScope(ctx, scope)
	switch {
	case err == nil:
		outcome, err := matching.Apply(&m, matching.SideCompany, liked)
		if err != nil {
			return 0, err
		}
		if err := u.matchings.SetDecision(ctx, m.ID, matching.SideCompany, liked); err != nil {
			return 0, fmt.Errorf("set company decision: %w", err)
		}
		return outcome, nil

	case errors.Is(err, repository.ErrNotFound):
		m, outcome := matching.NewInteraction(scope, matching.SideCompany, liked, u.now())
		if err := u.matchings.Create(ctx, m); err != nil {
			return 0, fmt.Errorf("create matching: %w", err)
		}
		return outcome, nil

	default:
		return 0, fmt.Errorf("find matching: %w", err)
	}
}

// developerDecision records the developer's decision on a job recruitment.
// When no row exists for that job yet, an open profile-level row left by the
// company is claimed: the job id is stamped onto it together with the
// decision.
func (u *Interactions) developerDecision(ctx context.Context, developerUserID, jobID uuid.UUID, liked bool) (matching.Outcome, error) {
	if _, err := u.developers.FindByUserID(ctx, developerUserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrProfileNotFound
		}
		return 0, fmt.Errorf("find developer profile: %w", err)
	}

	j, err := u.jobs.FindActiveByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrTargetNotFound
		}
		return 0, fmt.Errorf("find job recruitment: %w", err)
	}

	if _, err := u.companies.FindByUserID(ctx, j.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrTargetNotFound
		}
		return 0, fmt.Errorf("find owning company: %w", err)
	}

	scopedJobID := j.ID
	scope := matching.Scope{
		CompanyUserID:    j.UserID,
		DeveloperUserID:  developerUserID,
		JobRecruitmentID: &scopedJobID,
	}

	u.locks.Lock(scope.PairKey())
	defer u.locks.Unlock(scope.PairKey())

	m, err := u.matchings.FindByScope(ctx, scope)
	switch {
	case err == nil:
		outcome, err := matching.Apply(&m, matching.SideDeveloper, liked)
		if err != nil {
			return 0, err
		}
		if err := u.matchings.SetDecision(ctx, m.ID, matching.SideDeveloper, liked); err != nil {
			return 0, fmt.Errorf("set developer decision: %w", err)
		}
		return outcome, nil

	case errors.Is(err, repository.ErrNotFound):
		return u.claimProfileRowOrCreate(ctx, scope, liked)

	default:
		return 0, fmt.Errorf("find matching: %w", err)
	}
}

func (u *Interactions) claimProfileRowOrCreate(ctx context.Context, scope matching.Scope, liked bool) (matching.Outcome, error) {
	profileScope := matching.Scope{
		CompanyUserID:   scope.CompanyUserID,
		DeveloperUserID: scope.DeveloperUserID,
	}

	pm, err := u.matchings.FindByScope(ctx, profileScope)
	switch {
	case err == nil:
		outcome, err := matching.Apply(&pm, matching.SideDeveloper, liked)
		if err != nil {
			return 0, err
		}
		if err := u.matchings.BindJobAndSetDecision(ctx, pm.ID, *scope.JobRecruitmentID, liked); err != nil {
			return 0, fmt.Errorf("bind job to matching: %w", err)
		}
		return outcome, nil

	case errors.Is(err, repository.ErrNotFound):
		m, outcome := matching.NewInteraction(scope, matching.SideDeveloper, liked, u.now())
		if err := u.matchings.Create(ctx, m); err != nil {
			return 0, fmt.Errorf("create matching: %w", err)
		}
		return outcome, nil

	default:
		return 0, fmt.Errorf("find profile matching: %w", err)
	}
}
