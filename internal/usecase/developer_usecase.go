package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tindev/internal/domain/developer"
	"tindev/internal/repository"

	"github.com/google/uuid"
)

type DeveloperUsecase interface {
	MyInfo(ctx context.Context, userID uuid.UUID) (developer.Developer, error)
	UpdateMyInfo(ctx context.Context, userID uuid.UUID, in developer.Developer) (developer.Developer, error)
	List(ctx context.Context) ([]developer.Developer, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (developer.Developer, error)
}

type Developers struct {
	developers repository.DeveloperRepository
	companies  repository.CompanyRepository
	photoURLs  *PhotoURLService
}

func NewDeveloperUsecase(developers repository.DeveloperRepository, companies repository.CompanyRepository, photoURLs *PhotoURLService) *Developers {
	return &Developers{developers: developers, companies: companies, photoURLs: photoURLs}
}

func (u *Developers) MyInfo(ctx context.Context, userID uuid.UUID) (developer.Developer, error) {
	return u.GetByUserID(ctx, userID)
}

func (u *Developers) GetByUserID(ctx context.Context, userID uuid.UUID) (developer.Developer, error) {
	if userID == uuid.Nil {
		return developer.Developer{}, ErrInvalidInput
	}
	dev, err := u.developers.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return developer.Developer{}, ErrProfileNotFound
		}
		return developer.Developer{}, fmt.Errorf("find developer: %w", err)
	}
	if u.photoURLs != nil {
		dev.PhotoURL = u.photoURLs.Resolve(ctx, dev.PhotoID)
	}
	return dev, nil
}

// UpdateMyInfo replaces the mutable profile fields. Phone numbers are unique
// across both developer and company profiles.
func (u *Developers) UpdateMyInfo(ctx context.Context, userID uuid.UUID, in developer.Developer) (developer.Developer, error) {
	if userID == uuid.Nil {
		return developer.Developer{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.FullName) == "" || strings.TrimSpace(in.Phone) == "" {
		return developer.Developer{}, ErrInvalidInput
	}

	if _, err := u.developers.FindByUserID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return developer.Developer{}, ErrProfileNotFound
		}
		return developer.Developer{}, fmt.Errorf("find developer: %w", err)
	}

	taken, err := u.phoneTaken(ctx, in.Phone, userID)
	if err != nil {
		return developer.Developer{}, err
	}
	if taken {
		return developer.Developer{}, ErrPhoneTaken
	}

	if err := u.developers.UpdateByUserID(ctx, userID, in); err != nil {
		return developer.Developer{}, fmt.Errorf("update developer: %w", err)
	}
	return u.GetByUserID(ctx, userID)
}

func (u *Developers) List(ctx context.Context) ([]developer.Developer, error) {
	devs, err := u.developers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list developers: %w", err)
	}
	return devs, nil
}

func (u *Developers) phoneTaken(ctx context.Context, phone string, excludeUserID uuid.UUID) (bool, error) {
	inUse, err := u.developers.PhoneInUse(ctx, phone, excludeUserID)
	if err != nil {
		return false, fmt.Errorf("check developer phones: %w", err)
	}
	if inUse {
		return true, nil
	}
	inUse, err = u.companies.PhoneInUse(ctx, phone, excludeUserID)
	if err != nil {
		return false, fmt.Errorf("check company phones: %w", err)
	}
	return inUse, nil
}
