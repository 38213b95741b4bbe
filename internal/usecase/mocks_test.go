package usecase

import (
	"context"

	"tindev/internal/domain/company"
	"tindev/internal/domain/developer"
	"tindev/internal/domain/job"
	"tindev/internal/domain/matching"
	"tindev/internal/domain/user"
	"tindev/internal/repository"

	"github.com/google/uuid"
)

// fakeMatchingStore keeps rows in memory with the same scope semantics as
// the Postgres table.
type fakeMatchingStore struct {
	rows []matching.Matching

	listResult []matching.Matching
	listErr    error

	creates int
	updates int
}

func (f *fakeMatchingStore) FindByScope(_ context.Context, scope matching.Scope) (matching.Matching, error) {
	for _, m := range f.rows {
		if m.CompanyUserID == scope.CompanyUserID &&
			m.DeveloperUserID == scope.DeveloperUserID &&
			sameUUIDPtr(m.JobRecruitmentID, scope.JobRecruitmentID) {
			return m, nil
		}
	}
	return matching.Matching{}, repository.ErrNotFound
}

func (f *fakeMatchingStore) Create(_ context.Context, m matching.Matching) error {
	f.creates++
	f.rows = append(f.rows, m)
	return nil
}

func (f *fakeMatchingStore) SetDecision(_ context.Context, id uuid.UUID, side matching.Side, liked bool) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			v := liked
			if side == matching.SideCompany {
				f.rows[i].IsCompanyLike = &v
			} else {
				f.rows[i].IsDeveloperLike = &v
			}
			f.updates++
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeMatchingStore) BindJobAndSetDecision(_ context.Context, id uuid.UUID, jobID uuid.UUID, liked bool) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			j := jobID
			v := liked
			f.rows[i].JobRecruitmentID = &j
			f.rows[i].IsDeveloperLike = &v
			f.updates++
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeMatchingStore) ListByView(_ context.Context, _ user.Role, _ uuid.UUID, _ repository.MatchView) ([]matching.Matching, error) {
	return f.listResult, f.listErr
}

func sameUUIDPtr(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

type stubDeveloperRepo struct {
	byID     map[uuid.UUID]developer.Developer
	byUserID map[uuid.UUID]developer.Developer

	samples       [][]developer.Developer
	sampleFilters []repository.DeveloperFilter

	phoneInUse bool
	err        error
}

func (s *stubDeveloperRepo) FindByID(_ context.Context, id uuid.UUID) (developer.Developer, error) {
	if s.err != nil {
		return developer.Developer{}, s.err
	}
	d, ok := s.byID[id]
	if !ok {
		return developer.Developer{}, repository.ErrNotFound
	}
	return d, nil
}

func (s *stubDeveloperRepo) FindByUserID(_ context.Context, userID uuid.UUID) (developer.Developer, error) {
	if s.err != nil {
		return developer.Developer{}, s.err
	}
	d, ok := s.byUserID[userID]
	if !ok {
		return developer.Developer{}, repository.ErrNotFound
	}
	return d, nil
}

func (s *stubDeveloperRepo) Create(context.Context, developer.Developer) error { return s.err }

func (s *stubDeveloperRepo) UpdateByUserID(context.Context, uuid.UUID, developer.Developer) error {
	return s.err
}

func (s *stubDeveloperRepo) List(context.Context) ([]developer.Developer, error) {
	return nil, s.err
}

func (s *stubDeveloperRepo) PhoneInUse(context.Context, string, uuid.UUID) (bool, error) {
	return s.phoneInUse, s.err
}

func (s *stubDeveloperRepo) Sample(_ context.Context, f repository.DeveloperFilter, _ int) ([]developer.Developer, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.sampleFilters = append(s.sampleFilters, f)
	if len(s.samples) == 0 {
		return nil, nil
	}
	out := s.samples[0]
	s.samples = s.samples[1:]
	return out, nil
}

type stubCompanyRepo struct {
	byUserID map[uuid.UUID]company.Company

	phoneInUse bool
	err        error
}

func (s *stubCompanyRepo) FindByUserID(_ context.Context, userID uuid.UUID) (company.Company, error) {
	if s.err != nil {
		return company.Company{}, s.err
	}
	c, ok := s.byUserID[userID]
	if !ok {
		return company.Company{}, repository.ErrNotFound
	}
	return c, nil
}

func (s *stubCompanyRepo) Create(context.Context, company.Company) error { return s.err }

func (s *stubCompanyRepo) UpdateByUserID(context.Context, uuid.UUID, company.Company) error {
	return s.err
}

func (s *stubCompanyRepo) List(context.Context) ([]company.Company, error) { return nil, s.err }

func (s *stubCompanyRepo) PhoneInUse(context.Context, string, uuid.UUID) (bool, error) {
	return s.phoneInUse, s.err
}

type stubJobRepo struct {
	byID map[uuid.UUID]job.Recruitment

	owned         []job.Recruitment
	samples       [][]job.Recruitment
	sampleFilters []repository.JobFilter

	created map[uuid.UUID]job.Recruitment
	updated map[uuid.UUID]job.Recruitment
	deleted []uuid.UUID

	err error
}

func (s *stubJobRepo) FindByID(_ context.Context, id uuid.UUID) (job.Recruitment, error) {
	if s.err != nil {
		return job.Recruitment{}, s.err
	}
	j, ok := s.byID[id]
	if !ok {
		return job.Recruitment{}, repository.ErrNotFound
	}
	return j, nil
}

func (s *stubJobRepo) FindActiveByID(ctx context.Context, id uuid.UUID) (job.Recruitment, error) {
	j, err := s.FindByID(ctx, id)
	if err != nil {
		return job.Recruitment{}, err
	}
	if j.Status != job.StatusActive {
		return job.Recruitment{}, repository.ErrNotFound
	}
	return j, nil
}

func (s *stubJobRepo) ListByUserID(context.Context, uuid.UUID) ([]job.Recruitment, error) {
	return s.owned, s.err
}

func (s *stubJobRepo) Create(_ context.Context, j job.Recruitment) error {
	if s.err != nil {
		return s.err
	}
	if s.created == nil {
		s.created = make(map[uuid.UUID]job.Recruitment)
	}
	s.created[j.ID] = j
	return nil
}

func (s *stubJobRepo) Update(_ context.Context, j job.Recruitment) error {
	if s.err != nil {
		return s.err
	}
	if s.updated == nil {
		s.updated = make(map[uuid.UUID]job.Recruitment)
	}
	s.updated[j.ID] = j
	return nil
}

func (s *stubJobRepo) MarkDeleted(_ context.Context, id uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubJobRepo) SampleOwnedBy(_ context.Context, _ uuid.UUID, size int) ([]job.Recruitment, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.owned) == 0 {
		return nil, nil
	}
	if size > len(s.owned) {
		size = len(s.owned)
	}
	return s.owned[:size], nil
}

func (s *stubJobRepo) Sample(_ context.Context, f repository.JobFilter, _ int) ([]job.Recruitment, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.sampleFilters = append(s.sampleFilters, f)
	if len(s.samples) == 0 {
		return nil, nil
	}
	out := s.samples[0]
	s.samples = s.samples[1:]
	return out, nil
}
