package usecase

import (
	"context"
	"errors"
	"testing"

	"tindev/internal/domain/company"
	"tindev/internal/domain/developer"
	"tindev/internal/domain/job"
	"tindev/internal/domain/matching"
	"tindev/internal/domain/user"

	"github.com/google/uuid"
)

type interactionFixture struct {
	companyUserID      uuid.UUID
	developerUserID    uuid.UUID
	developerProfileID uuid.UUID
	jobID              uuid.UUID

	store *fakeMatchingStore
	uc    *Interactions
}

func newInteractionFixture() *interactionFixture {
	f := &interactionFixture{
		companyUserID:      uuid.New(),
		developerUserID:    uuid.New(),
		developerProfileID: uuid.New(),
		jobID:              uuid.New(),
		store:              &fakeMatchingStore{},
	}

	devs := &stubDeveloperRepo{
		byID: map[uuid.UUID]developer.Developer{
			f.developerProfileID: {ID: f.developerProfileID, UserID: f.developerUserID},
		},
		byUserID: map[uuid.UUID]developer.Developer{
			f.developerUserID: {ID: f.developerProfileID, UserID: f.developerUserID},
		},
	}
	comps := &stubCompanyRepo{
		byUserID: map[uuid.UUID]company.Company{
			f.companyUserID: {ID: uuid.New(), UserID: f.companyUserID},
		},
	}
	jobs := &stubJobRepo{
		byID: map[uuid.UUID]job.Recruitment{
			f.jobID: {ID: f.jobID, UserID: f.companyUserID, Status: job.StatusActive},
		},
	}

	f.uc = NewInteractionsUsecase(f.store, devs, comps, jobs)
	return f
}

func TestRecordDecision_CompanyFirstLike(t *testing.T) {
	f := newInteractionFixture()

	outcome, err := f.uc.RecordDecision(context.Background(), user.RoleCompany, f.companyUserID, TargetDeveloper, f.developerProfileID, true)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if outcome != matching.OutcomeLiked {
		t.Fatalf("expected Liked, got %v", outcome)
	}
	if f.store.creates != 1 || len(f.store.rows) != 1 {
		t.Fatalf("expected exactly one created row, got creates=%d rows=%d", f.store.creates, len(f.store.rows))
	}

	row := f.store.rows[0]
	if row.JobRecruitmentID != nil {
		t.Fatalf("company row must be profile-level, got job id %v", row.JobRecruitmentID)
	}
	if row.IsCompanyLike == nil || !*row.IsCompanyLike {
		t.Fatalf("company side not recorded: %+v", row)
	}
	if row.IsDeveloperLike != nil {
		t.Fatalf("developer side must stay unset: %+v", row)
	}
	if row.DeveloperUserID != f.developerUserID {
		t.Fatalf("row must target the developer's user id, got %v", row.DeveloperUserID)
	}
}

func TestRecordDecision_DeveloperClaimsProfileRow_Matched(t *testing.T) {
	f := newInteractionFixture()

	if _, err := f.uc.RecordDecision(context.Background(), user.RoleCompany, f.companyUserID, TargetDeveloper, f.developerProfileID, true); err != nil {
		t.Fatalf("company like failed: %v", err)
	}

	outcome, err := f.uc.RecordDecision(context.Background(), user.RoleDeveloper, f.developerUserID, TargetJobRecruitment, f.jobID, true)
	if err != nil {
		t.Fatalf("developer like failed: %v", err)
	}
	if outcome != matching.OutcomeMatched {
		t.Fatalf("expected Matched, got %v", outcome)
	}
	if f.store.creates != 1 {
		t.Fatalf("profile row must be claimed, not duplicated; creates=%d", f.store.creates)
	}

	row := f.store.rows[0]
	if row.JobRecruitmentID == nil || *row.JobRecruitmentID != f.jobID {
		t.Fatalf("job id not stamped onto the claimed row: %+v", row)
	}
	if row.IsDeveloperLike == nil || !*row.IsDeveloperLike {
		t.Fatalf("developer side not recorded: %+v", row)
	}
}

func TestRecordDecision_DeveloperDeclines_WatchAgain(t *testing.T) {
	f := newInteractionFixture()

	if _, err := f.uc.RecordDecision(context.Background(), user.RoleCompany, f.companyUserID, TargetDeveloper, f.developerProfileID, true); err != nil {
		t.Fatalf("company like failed: %v", err)
	}

	outcome, err := f.uc.RecordDecision(context.Background(), user.RoleDeveloper, f.developerUserID, TargetJobRecruitment, f.jobID, false)
	if err != nil {
		t.Fatalf("developer dislike failed: %v", err)
	}
	if outcome != matching.OutcomeWatchAgain {
		t.Fatalf("expected Watch again, got %v", outcome)
	}
}

func TestRecordDecision_SecondDeveloperAction_AlreadyInteracted(t *testing.T) {
	f := newInteractionFixture()

	if _, err := f.uc.RecordDecision(context.Background(), user.RoleDeveloper, f.developerUserID, TargetJobRecruitment, f.jobID, true); err != nil {
		t.Fatalf("first action failed: %v", err)
	}
	updatesBefore := f.store.updates

	_, err := f.uc.RecordDecision(context.Background(), user.RoleDeveloper, f.developerUserID, TargetJobRecruitment, f.jobID, false)
	if !errors.Is(err, matching.ErrAlreadyInteracted) {
		t.Fatalf("expected ErrAlreadyInteracted, got %v", err)
	}
	if f.store.updates != updatesBefore || f.store.creates != 1 {
		t.Fatalf("rejected action must not touch the store")
	}
}

func TestRecordDecision_SecondJobOpensNewScope(t *testing.T) {
	f := newInteractionFixture()

	if _, err := f.uc.RecordDecision(context.Background(), user.RoleDeveloper, f.developerUserID, TargetJobRecruitment, f.jobID, true); err != nil {
		t.Fatalf("first action failed: %v", err)
	}

	secondJob := uuid.New()
	jobs := f.uc.jobs.(*stubJobRepo)
	jobs.byID[secondJob] = job.Recruitment{ID: secondJob, UserID: f.companyUserID, Status: job.StatusActive}

	outcome, err := f.uc.RecordDecision(context.Background(), user.RoleDeveloper, f.developerUserID, TargetJobRecruitment, secondJob, true)
	if err != nil {
		t.Fatalf("second job action failed: %v", err)
	}
	if outcome != matching.OutcomeLiked {
		t.Fatalf("expected Liked for fresh scope, got %v", outcome)
	}
	if f.store.creates != 2 {
		t.Fatalf("each job opens its own scope; creates=%d", f.store.creates)
	}
}

func TestRecordDecision_TargetMissing_NoWrite(t *testing.T) {
	f := newInteractionFixture()

	_, err := f.uc.RecordDecision(context.Background(), user.RoleCompany, f.companyUserID, TargetDeveloper, uuid.New(), true)
	if !errors.Is(err, ErrTargetNotFound) {
		t.Fatalf("expected ErrTargetNotFound, got %v", err)
	}

	_, err = f.uc.RecordDecision(context.Background(), user.RoleDeveloper, f.developerUserID, TargetJobRecruitment, uuid.New(), true)
	if !errors.Is(err, ErrTargetNotFound) {
		t.Fatalf("expected ErrTargetNotFound, got %v", err)
	}

	if f.store.creates != 0 || f.store.updates != 0 {
		t.Fatalf("missing target must leave the store untouched")
	}
}

func TestRecordDecision_RoleTargetPairing(t *testing.T) {
	f := newInteractionFixture()

	if _, err := f.uc.RecordDecision(context.Background(), user.RoleCompany, f.companyUserID, TargetJobRecruitment, f.jobID, true); !errors.Is(err, ErrRoleDenied) {
		t.Fatalf("company acting on a job must be denied, got %v", err)
	}
	if _, err := f.uc.RecordDecision(context.Background(), user.RoleDeveloper, f.developerUserID, TargetDeveloper, f.developerProfileID, true); !errors.Is(err, ErrRoleDenied) {
		t.Fatalf("developer acting on a developer must be denied, got %v", err)
	}
}

func TestRecordDecision_DeletedJobInvisible(t *testing.T) {
	f := newInteractionFixture()
	jobs := f.uc.jobs.(*stubJobRepo)
	j := jobs.byID[f.jobID]
	j.Status = job.StatusDeleted
	jobs.byID[f.jobID] = j

	_, err := f.uc.RecordDecision(context.Background(), user.RoleDeveloper, f.developerUserID, TargetJobRecruitment, f.jobID, true)
	if !errors.Is(err, ErrTargetNotFound) {
		t.Fatalf("expected ErrTargetNotFound for deleted job, got %v", err)
	}
}
