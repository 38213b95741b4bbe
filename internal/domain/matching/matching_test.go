package matching

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func boolPtr(v bool) *bool { return &v }

func testScope(jobID *uuid.UUID) Scope {
	return Scope{
		CompanyUserID:    uuid.New(),
		DeveloperUserID:  uuid.New(),
		JobRecruitmentID: jobID,
	}
}

func TestNewInteraction_SetsOnlyActingSide(t *testing.T) {
	m, out := NewInteraction(testScope(nil), SideCompany, true, time.Now())
	if out != OutcomeLiked {
		t.Fatalf("expected Liked, got %v", out)
	}
	if m.IsCompanyLike == nil || !*m.IsCompanyLike {
		t.Fatalf("expected company like set true")
	}
	if m.IsDeveloperLike != nil {
		t.Fatalf("expected developer side unset")
	}

	jobID := uuid.New()
	m, out = NewInteraction(testScope(&jobID), SideDeveloper, false, time.Now())
	if out != OutcomeDisliked {
		t.Fatalf("expected Disliked, got %v", out)
	}
	if m.IsDeveloperLike == nil || *m.IsDeveloperLike {
		t.Fatalf("expected developer like set false")
	}
	if m.IsCompanyLike != nil {
		t.Fatalf("expected company side unset")
	}
	if m.JobRecruitmentID == nil || *m.JobRecruitmentID != jobID {
		t.Fatalf("expected job scope carried onto the row")
	}
}

func TestApply_OutcomeTable(t *testing.T) {
	cases := []struct {
		name  string
		other *bool
		liked bool
		want  Outcome
	}{
		{"other liked, I like", boolPtr(true), true, OutcomeMatched},
		{"other liked, I decline", boolPtr(true), false, OutcomeWatchAgain},
		{"other disliked, I like", boolPtr(false), true, OutcomeLiked},
		{"other disliked, I dislike", boolPtr(false), false, OutcomeDisliked},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := NewInteraction(testScope(nil), SideCompany, tc.other != nil && *tc.other, time.Now())
			m.IsCompanyLike = tc.other

			out, err := Apply(&m, SideDeveloper, tc.liked)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if out != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, out)
			}
			if m.IsDeveloperLike == nil || *m.IsDeveloperLike != tc.liked {
				t.Fatalf("developer decision not recorded")
			}
		})
	}
}

func TestApply_SameSideTwice(t *testing.T) {
	m, _ := NewInteraction(testScope(nil), SideCompany, true, time.Now())

	if _, err := Apply(&m, SideCompany, false); !errors.Is(err, ErrAlreadyInteracted) {
		t.Fatalf("expected ErrAlreadyInteracted, got %v", err)
	}
	if m.IsCompanyLike == nil || !*m.IsCompanyLike {
		t.Fatalf("failed Apply must not mutate the row")
	}
}

func TestApply_ClosedRow(t *testing.T) {
	m, _ := NewInteraction(testScope(nil), SideCompany, true, time.Now())
	if _, err := Apply(&m, SideDeveloper, true); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !m.Closed() || !m.IsMatch() {
		t.Fatalf("expected a closed matched row")
	}

	for _, side := range []Side{SideCompany, SideDeveloper} {
		if _, err := Apply(&m, side, true); !errors.Is(err, ErrAlreadyInteracted) {
			t.Fatalf("side %v: expected ErrAlreadyInteracted, got %v", side, err)
		}
	}
}
