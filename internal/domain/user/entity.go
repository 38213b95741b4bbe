package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

// Role distinguishes the two account kinds; every authenticated caller is
// exactly one of them.
type Role string

const (
	RoleCompany   Role = "Company"
	RoleDeveloper Role = "Developer"
)

func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleCompany:
		return RoleCompany, true
	case RoleDeveloper:
		return RoleDeveloper, true
	default:
		return "", false
	}
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
