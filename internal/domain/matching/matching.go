// Package matching holds the swipe state machine: how independent
// like/dislike decisions from a company and a developer converge into a
// single Matching record.
package matching

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrAlreadyInteracted is returned when the acting side has already decided
// within a scope, or the scope is closed (both sides decided).
var ErrAlreadyInteracted = errors.New("already interacted")

type Side int

const (
	SideCompany Side = iota
	SideDeveloper
)

func (s Side) String() string {
	switch s {
	case SideCompany:
		return "company"
	case SideDeveloper:
		return "developer"
	default:
		return "unknown"
	}
}

// Outcome is the result of recording one decision.
type Outcome int

const (
	// OutcomeLiked: this side liked; no mutual like yet.
	OutcomeLiked Outcome = iota
	// OutcomeDisliked: this side disliked; the other side had not liked.
	OutcomeDisliked
	// OutcomeMatched: both sides liked.
	OutcomeMatched
	// OutcomeWatchAgain: the other side liked, this side declined.
	OutcomeWatchAgain
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLiked:
		return "Liked"
	case OutcomeDisliked:
		return "Disliked"
	case OutcomeMatched:
		return "Matched"
	case OutcomeWatchAgain:
		return "Watch again"
	default:
		return "unknown"
	}
}

// Scope identifies one interaction thread between a company user and a
// developer user. A nil JobRecruitmentID is the profile-level scope; each job
// recruitment opens a separate scope for the same pair.
type Scope struct {
	CompanyUserID    uuid.UUID
	DeveloperUserID  uuid.UUID
	JobRecruitmentID *uuid.UUID
}

// PairKey identifies the user pair regardless of job scope. Decision
// recording is serialized per pair because a developer's job-scoped action
// may claim the pair's profile-level row.
func (s Scope) PairKey() string {
	return s.CompanyUserID.String() + "/" + s.DeveloperUserID.String()
}

type Matching struct {
	ID               uuid.UUID  `json:"id"`
	CompanyUserID    uuid.UUID  `json:"company_user_id"`
	DeveloperUserID  uuid.UUID  `json:"developer_user_id"`
	JobRecruitmentID *uuid.UUID `json:"job_recruitment_id,omitempty"`
	IsCompanyLike    *bool      `json:"is_company_like,omitempty"`
	IsDeveloperLike  *bool      `json:"is_developer_like,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func (m Matching) Scope() Scope {
	return Scope{
		CompanyUserID:    m.CompanyUserID,
		DeveloperUserID:  m.DeveloperUserID,
		JobRecruitmentID: m.JobRecruitmentID,
	}
}

// Decided reports whether the given side has recorded its decision.
func (m Matching) Decided(side Side) bool {
	if side == SideCompany {
		return m.IsCompanyLike != nil
	}
	return m.IsDeveloperLike != nil
}

// Closed reports whether both sides have decided. A closed row never changes
// again.
func (m Matching) Closed() bool {
	return m.IsCompanyLike != nil && m.IsDeveloperLike != nil
}

// IsMatch reports whether both sides liked.
func (m Matching) IsMatch() bool {
	return m.IsCompanyLike != nil && *m.IsCompanyLike &&
		m.IsDeveloperLike != nil && *m.IsDeveloperLike
}

// NewInteraction opens a scope with only the acting side's decision set.
func NewInteraction(scope Scope, side Side, liked bool, now time.Time) (Matching, Outcome) {
	m := Matching{
		ID:               uuid.New(),
		CompanyUserID:    scope.CompanyUserID,
		DeveloperUserID:  scope.DeveloperUserID,
		JobRecruitmentID: scope.JobRecruitmentID,
		CreatedAt:        now.UTC(),
	}
	if side == SideCompany {
		m.IsCompanyLike = &liked
	} else {
		m.IsDeveloperLike = &liked
	}
	if liked {
		return m, OutcomeLiked
	}
	return m, OutcomeDisliked
}

// Apply records the acting side's decision on an existing row. It fails with
// ErrAlreadyInteracted when that side has already decided (which also covers
// closed rows).
func Apply(m *Matching, side Side, liked bool) (Outcome, error) {
	if m.Decided(side) {
		return 0, ErrAlreadyInteracted
	}

	var other *bool
	if side == SideCompany {
		other = m.IsDeveloperLike
		m.IsCompanyLike = &liked
	} else {
		other = m.IsCompanyLike
		m.IsDeveloperLike = &liked
	}

	return outcomeOf(other, liked), nil
}

func outcomeOf(other *bool, liked bool) Outcome {
	switch {
	case other == nil && liked:
		return OutcomeLiked
	case other == nil:
		return OutcomeDisliked
	case *other && liked:
		return OutcomeMatched
	case *other:
		return OutcomeWatchAgain
	case liked:
		return OutcomeLiked
	default:
		return OutcomeDisliked
	}
}
