package usecase

import (
	"context"
	"testing"
	"time"

	"tindev/internal/domain/company"
	"tindev/internal/domain/developer"
	"tindev/internal/domain/matching"
	"tindev/internal/domain/user"
	"tindev/internal/repository"

	"github.com/google/uuid"
)

func TestMatchingList_DedupsByCounterpart(t *testing.T) {
	companyUserID := uuid.New()
	devA := uuid.New()
	devB := uuid.New()
	jobOne := uuid.New()
	jobTwo := uuid.New()
	base := time.Now().UTC()

	// devA appears twice via two job scopes; only the earliest row counts.
	store := &fakeMatchingStore{listResult: []matching.Matching{
		{ID: uuid.New(), CompanyUserID: companyUserID, DeveloperUserID: devA, JobRecruitmentID: &jobOne, CreatedAt: base},
		{ID: uuid.New(), CompanyUserID: companyUserID, DeveloperUserID: devB, CreatedAt: base.Add(time.Minute)},
		{ID: uuid.New(), CompanyUserID: companyUserID, DeveloperUserID: devA, JobRecruitmentID: &jobTwo, CreatedAt: base.Add(2 * time.Minute)},
	}}

	devs := &stubDeveloperRepo{byUserID: map[uuid.UUID]developer.Developer{
		devA: {ID: uuid.New(), UserID: devA, FullName: "A"},
		devB: {ID: uuid.New(), UserID: devB, FullName: "B"},
	}}

	uc := NewMatchingListUsecase(store, devs, &stubCompanyRepo{}, nil)
	entries, err := uc.List(context.Background(), user.RoleCompany, companyUserID, repository.ViewMutual)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries after dedup, got %d", len(entries))
	}
	if entries[0].Developer.UserID != devA || entries[1].Developer.UserID != devB {
		t.Fatalf("first-seen order broken: %v then %v", entries[0].Developer.UserID, entries[1].Developer.UserID)
	}
	if entries[0].JobRecruitmentID == nil || *entries[0].JobRecruitmentID != jobOne {
		t.Fatalf("entry must carry the earliest row's job id")
	}
}

func TestMatchingList_SkipsMissingProfiles(t *testing.T) {
	developerUserID := uuid.New()
	companyA := uuid.New()
	companyGone := uuid.New()

	store := &fakeMatchingStore{listResult: []matching.Matching{
		{ID: uuid.New(), CompanyUserID: companyGone, DeveloperUserID: developerUserID},
		{ID: uuid.New(), CompanyUserID: companyA, DeveloperUserID: developerUserID},
	}}
	comps := &stubCompanyRepo{byUserID: map[uuid.UUID]company.Company{
		companyA: {ID: uuid.New(), UserID: companyA, Name: "Acme"},
	}}

	uc := NewMatchingListUsecase(store, &stubDeveloperRepo{}, comps, nil)
	entries, err := uc.List(context.Background(), user.RoleDeveloper, developerUserID, repository.ViewReceivedLikes)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected the orphaned counterpart to be skipped, got %d entries", len(entries))
	}
	if entries[0].Company == nil || entries[0].Company.UserID != companyA {
		t.Fatalf("wrong counterpart: %+v", entries[0])
	}
}
