// Package repository contains the Postgres persistence for every entity the
// service owns. Interfaces live next to their implementations so usecases can
// be tested against hand-written mocks.
package repository

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned by lookups that matched no row.
var ErrNotFound = errors.New("not found")

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}

// MatchView selects one of the read-model predicates over matching rows.
type MatchView int

const (
	// ViewMutual: both sides liked.
	ViewMutual MatchView = iota
	// ViewReceivedLikes: the counterpart side liked, regardless of mine.
	ViewReceivedLikes
	// ViewMyDislikes: my side disliked.
	ViewMyDislikes
)
