package usecase

import (
	"context"
	"errors"
	"testing"

	"tindev/internal/domain/developer"
	"tindev/internal/domain/job"

	"github.com/google/uuid"
)

func TestSampleDevelopers_AllDrawsEmpty(t *testing.T) {
	companyUserID := uuid.New()
	jobs := &stubJobRepo{owned: []job.Recruitment{
		{ID: uuid.New(), UserID: companyUserID, JobType: "Backend", Status: job.StatusActive},
	}}
	devs := &stubDeveloperRepo{}

	uc := NewDiscoveryUsecase(devs, jobs, nil)
	uc.randIntn = func(int) int { return 1 }

	_, err := uc.SampleDevelopers(context.Background(), companyUserID)
	if !errors.Is(err, ErrNoCandidateFound) {
		t.Fatalf("expected ErrNoCandidateFound, got %v", err)
	}
	if got := len(devs.sampleFilters); got != discoveryAttempts {
		t.Fatalf("expected %d draws, got %d", discoveryAttempts, got)
	}
}

func TestSampleDevelopers_FirstNonEmptyDrawWins(t *testing.T) {
	companyUserID := uuid.New()
	jobs := &stubJobRepo{owned: []job.Recruitment{
		{ID: uuid.New(), UserID: companyUserID, JobType: "Backend", Status: job.StatusActive},
	}}
	devs := &stubDeveloperRepo{samples: [][]developer.Developer{
		nil,
		{{ID: uuid.New(), FullName: "Winner"}, {ID: uuid.New()}},
	}}

	uc := NewDiscoveryUsecase(devs, jobs, nil)
	uc.randIntn = func(int) int { return 1 }

	out, err := uc.SampleDevelopers(context.Background(), companyUserID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 || out[0].FullName != "Winner" {
		t.Fatalf("expected the second draw's candidates, got %+v", out)
	}
	if got := len(devs.sampleFilters); got != 2 {
		t.Fatalf("expected 2 draws, got %d", got)
	}
	if devs.sampleFilters[0].JobType == nil || *devs.sampleFilters[0].JobType != "Backend" {
		t.Fatalf("dimension 1 must filter by the posting's job type: %+v", devs.sampleFilters[0])
	}
}

func TestSampleDevelopers_NoPostings(t *testing.T) {
	devs := &stubDeveloperRepo{}
	uc := NewDiscoveryUsecase(devs, &stubJobRepo{}, nil)
	uc.randIntn = func(int) int { return 0 }

	_, err := uc.SampleDevelopers(context.Background(), uuid.New())
	if !errors.Is(err, ErrNoCandidateFound) {
		t.Fatalf("expected ErrNoCandidateFound, got %v", err)
	}
	if len(devs.sampleFilters) != 0 {
		t.Fatalf("no postings means no developer draws")
	}
}

func TestSampleJobRecruitments_UsesExpectation(t *testing.T) {
	developerUserID := uuid.New()
	devs := &stubDeveloperRepo{byUserID: map[uuid.UUID]developer.Developer{
		developerUserID: {UserID: developerUserID, JobExpectation: developer.JobExpectation{
			ExpectedSalary: 3000, JobType: "Backend", YearExperience: 3, WorkPlace: "Hanoi",
		}},
	}}
	jobs := &stubJobRepo{samples: [][]job.Recruitment{
		{{ID: uuid.New(), Title: "Go dev"}},
	}}

	uc := NewDiscoveryUsecase(devs, jobs, nil)
	uc.randIntn = func(int) int { return 0 }

	out, err := uc.SampleJobRecruitments(context.Background(), developerUserID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 posting, got %d", len(out))
	}
	f := jobs.sampleFilters[0]
	if f.ExpectedSalary == nil || *f.ExpectedSalary != 3000 {
		t.Fatalf("dimension 0 must filter by expected salary: %+v", f)
	}
}

func TestSampleJobRecruitments_NoProfile(t *testing.T) {
	uc := NewDiscoveryUsecase(&stubDeveloperRepo{}, &stubJobRepo{}, nil)
	_, err := uc.SampleJobRecruitments(context.Background(), uuid.New())
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}
