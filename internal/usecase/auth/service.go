// Package auth implements account registration, login and token refresh.
// Registration creates the user record together with its role profile so a
// fresh account can swipe immediately.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"tindev/internal/domain/company"
	"tindev/internal/domain/developer"
	"tindev/internal/domain/user"
	"tindev/internal/pkg/jwt"
	"tindev/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrAccountDisabled        = errors.New("account disabled")
	ErrInvalidToken           = errors.New("invalid token")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

const statusActive = "Active"

type RegisterInput struct {
	Email    string
	Password string
	Role     string

	// Exactly one of these must be set, matching Role.
	Developer *developer.Developer
	Company   *company.Company
}

type LoginInput struct {
	Email    string
	Password string
}

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, Tokens, error)
	Login(ctx context.Context, in LoginInput) (user.User, Tokens, error)
	Refresh(ctx context.Context, refreshToken string) (Tokens, error)
}

type Service struct {
	users      repository.UserRepository
	developers repository.DeveloperRepository
	companies  repository.CompanyRepository
	tokens     jwt.Service

	now func() time.Time
}

func NewService(
	users repository.UserRepository,
	developers repository.DeveloperRepository,
	companies repository.CompanyRepository,
	tokens jwt.Service,
) *Service {
	return &Service{
		users:      users,
		developers: developers,
		companies:  companies,
		tokens:     tokens,
		now:        time.Now,
	}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, Tokens, error) {
	email := normalizeEmail(in.Email)
	if email == "" || !isValidPassword(in.Password) {
		return user.User{}, Tokens{}, ErrInvalidInput
	}
	role, ok := user.ParseRole(in.Role)
	if !ok {
		return user.User{}, Tokens{}, ErrInvalidInput
	}
	if role == user.RoleDeveloper && in.Developer == nil {
		return user.User{}, Tokens{}, ErrInvalidInput
	}
	if role == user.RoleCompany && in.Company == nil {
		return user.User{}, Tokens{}, ErrInvalidInput
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, Tokens{}, ErrInternal
	}
	if exists {
		return user.User{}, Tokens{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, Tokens{}, ErrInternal
	}

	u := user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       statusActive,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.users.Create(ctx, u); err != nil {
		exists, exErr := s.users.ExistsByEmail(ctx, email)
		if exErr == nil && exists {
			return user.User{}, Tokens{}, ErrEmailAlreadyRegistered
		}
		return user.User{}, Tokens{}, ErrInternal
	}

	if err := s.createProfile(ctx, u, in); err != nil {
		return user.User{}, Tokens{}, ErrInternal
	}

	tokens, err := s.issueTokens(u)
	if err != nil {
		return user.User{}, Tokens{}, ErrInternal
	}
	return sanitizeUser(u), tokens, nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, Tokens, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, Tokens{}, ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.User{}, Tokens{}, ErrInvalidCredentials
		}
		return user.User{}, Tokens{}, ErrInternal
	}
	if u.Status != statusActive {
		return user.User{}, Tokens{}, ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, Tokens{}, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(u)
	if err != nil {
		return user.User{}, Tokens{}, ErrInternal
	}
	return sanitizeUser(u), tokens, nil
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (Tokens, error) {
	claims, err := s.tokens.ValidateToken(strings.TrimSpace(refreshToken))
	if err != nil {
		return Tokens{}, ErrInvalidToken
	}
	if !s.tokens.IsRefreshToken(claims) {
		return Tokens{}, ErrInvalidToken
	}

	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Tokens{}, ErrInvalidToken
		}
		return Tokens{}, ErrInternal
	}
	if u.Status != statusActive {
		return Tokens{}, ErrAccountDisabled
	}

	return s.issueTokens(u)
}

func (s *Service) createProfile(ctx context.Context, u user.User, in RegisterInput) error {
	switch u.Role {
	case user.RoleDeveloper:
		p := *in.Developer
		p.ID = uuid.New()
		p.UserID = u.ID
		p.Email = u.Email
		p.Status = statusActive
		return s.developers.Create(ctx, p)
	case user.RoleCompany:
		p := *in.Company
		p.ID = uuid.New()
		p.UserID = u.ID
		p.Email = u.Email
		p.Status = statusActive
		return s.companies.Create(ctx, p)
	default:
		return ErrInvalidInput
	}
}

func (s *Service) issueTokens(u user.User) (Tokens, error) {
	access, err := s.tokens.GenerateAccessToken(u.ID, u.Role)
	if err != nil {
		return Tokens{}, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(u.ID, u.Role)
	if err != nil {
		return Tokens{}, err
	}
	return Tokens{AccessToken: access, RefreshToken: refresh}, nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return ""
	}
	return strings.ToLower(email)
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 8
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
