package usecase

import (
	"context"
	"errors"
	"testing"

	"tindev/internal/domain/job"

	"github.com/google/uuid"
)

func TestJobRecruitments_Create_StampsOwnership(t *testing.T) {
	userID := uuid.New()
	jobs := &stubJobRepo{}
	uc := NewJobRecruitmentUsecase(jobs)

	created, err := uc.Create(context.Background(), userID, job.Recruitment{
		Title:      "Backend Engineer",
		WorkPlace:  "Hanoi",
		JobType:    "Fulltime",
		FromSalary: 1000,
		ToSalary:   2000,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.ID == uuid.Nil || created.UserID != userID {
		t.Fatalf("ownership not stamped: %+v", created)
	}
	if created.Status != job.StatusActive || created.CreatedDate == "" {
		t.Fatalf("status/created_date not stamped: %+v", created)
	}
	if _, ok := jobs.created[created.ID]; !ok {
		t.Fatalf("posting not persisted")
	}
}

func TestJobRecruitments_Create_InvalidSalaryRange(t *testing.T) {
	uc := NewJobRecruitmentUsecase(&stubJobRepo{})
	_, err := uc.Create(context.Background(), uuid.New(), job.Recruitment{
		Title: "x", WorkPlace: "y", JobType: "z", FromSalary: 2000, ToSalary: 1000,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobRecruitments_Update_OwnershipEnforced(t *testing.T) {
	owner := uuid.New()
	id := uuid.New()
	jobs := &stubJobRepo{byID: map[uuid.UUID]job.Recruitment{
		id: {ID: id, UserID: owner, Title: "old", WorkPlace: "Hanoi", JobType: "Fulltime", Status: job.StatusActive},
	}}
	uc := NewJobRecruitmentUsecase(jobs)

	_, err := uc.Update(context.Background(), uuid.New(), id, job.Recruitment{
		Title: "new", WorkPlace: "Hanoi", JobType: "Fulltime",
	})
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}

	updated, err := uc.Update(context.Background(), owner, id, job.Recruitment{
		Title: "new", WorkPlace: "Hanoi", JobType: "Fulltime", FromSalary: 1, ToSalary: 2,
	})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Title != "new" || updated.UserID != owner || updated.ID != id {
		t.Fatalf("update result wrong: %+v", updated)
	}
}

func TestJobRecruitments_Delete_SoftDeletes(t *testing.T) {
	owner := uuid.New()
	id := uuid.New()
	jobs := &stubJobRepo{byID: map[uuid.UUID]job.Recruitment{
		id: {ID: id, UserID: owner, Status: job.StatusActive},
	}}
	uc := NewJobRecruitmentUsecase(jobs)

	if err := uc.Delete(context.Background(), owner, id); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(jobs.deleted) != 1 || jobs.deleted[0] != id {
		t.Fatalf("soft delete not recorded: %v", jobs.deleted)
	}
}

func TestJobRecruitments_Get_DeletedIsGone(t *testing.T) {
	id := uuid.New()
	jobs := &stubJobRepo{byID: map[uuid.UUID]job.Recruitment{
		id: {ID: id, UserID: uuid.New(), Status: job.StatusDeleted},
	}}
	uc := NewJobRecruitmentUsecase(jobs)

	_, err := uc.Get(context.Background(), id)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for deleted posting, got %v", err)
	}
}
