// Package usecase orchestrates the swipe engine, discovery sampler and the
// profile surfaces on top of the repositories.
package usecase

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInternal         = errors.New("internal error")
	ErrRoleDenied       = errors.New("operation not allowed for this role")
	ErrTargetNotFound   = errors.New("target not found")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrNotFound         = errors.New("not found")
	ErrNoCandidateFound = errors.New("no candidate found")
	ErrPhoneTaken       = errors.New("phone number already in use")
	ErrNotOwner         = errors.New("not the owner")
)
