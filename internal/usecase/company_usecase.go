package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tindev/internal/domain/company"
	"tindev/internal/repository"

	"github.com/google/uuid"
)

type CompanyUsecase interface {
	MyInfo(ctx context.Context, userID uuid.UUID) (company.Company, error)
	UpdateMyInfo(ctx context.Context, userID uuid.UUID, in company.Company) (company.Company, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (company.Company, error)
	List(ctx context.Context) ([]company.Company, error)
}

type Companies struct {
	companies  repository.CompanyRepository
	developers repository.DeveloperRepository
	photoURLs  *PhotoURLService
}

func NewCompanyUsecase(companies repository.CompanyRepository, developers repository.DeveloperRepository, photoURLs *PhotoURLService) *Companies {
	return &Companies{companies: companies, developers: developers, photoURLs: photoURLs}
}

func (u *Companies) MyInfo(ctx context.Context, userID uuid.UUID) (company.Company, error) {
	return u.GetByUserID(ctx, userID)
}

func (u *Companies) GetByUserID(ctx context.Context, userID uuid.UUID) (company.Company, error) {
	if userID == uuid.Nil {
		return company.Company{}, ErrInvalidInput
	}
	c, err := u.companies.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return company.Company{}, ErrProfileNotFound
		}
		return company.Company{}, fmt.Errorf("find company: %w", err)
	}
	if u.photoURLs != nil {
		c.PhotoURL = u.photoURLs.Resolve(ctx, c.PhotoID)
	}
	return c, nil
}

func (u *Companies) UpdateMyInfo(ctx context.Context, userID uuid.UUID, in company.Company) (company.Company, error) {
	if userID == uuid.Nil {
		return company.Company{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Phone) == "" {
		return company.Company{}, ErrInvalidInput
	}

	if _, err := u.companies.FindByUserID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return company.Company{}, ErrProfileNotFound
		}
		return company.Company{}, fmt.Errorf("find company: %w", err)
	}

	taken, err := u.phoneTaken(ctx, in.Phone, userID)
	if err != nil {
		return company.Company{}, err
	}
	if taken {
		return company.Company{}, ErrPhoneTaken
	}

	if err := u.companies.UpdateByUserID(ctx, userID, in); err != nil {
		return company.Company{}, fmt.Errorf("update company: %w", err)
	}
	return u.GetByUserID(ctx, userID)
}

func (u *Companies) List(ctx context.Context) ([]company.Company, error) {
	out, err := u.companies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return out, nil
}

func (u *Companies) phoneTaken(ctx context.Context, phone string, excludeUserID uuid.UUID) (bool, error) {
	inUse, err := u.companies.PhoneInUse(ctx, phone, excludeUserID)
	if err != nil {
		return false, fmt.Errorf("check company phones: %w", err)
	}
	if inUse {
		return true, nil
	}
	inUse, err = u.developers.PhoneInUse(ctx, phone, excludeUserID)
	if err != nil {
		return false, fmt.Errorf("check developer phones: %w", err)
	}
	return inUse, nil
}
