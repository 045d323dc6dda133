// Package store looks up player ratings in an existing SQLite database.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/bobylevd/fairteams/app/team"
)

// ErrMissing indicates that certain players were not found in the database.
type ErrMissing []string

// Error returns the error message.
func (e ErrMissing) Error() string {
	return fmt.Sprintf("players are not found in the database: %s", strings.Join(e, ", "))
}

// ErrInvalidRating is issued when a stored rating is out of the accepted range.
var ErrInvalidRating = errors.New("rating out of range")

// Store reads ratings from the "players" table with "name" and "rating" columns.
// It never writes to the database.
type Store struct {
	db *sqlx.DB
}

type player struct {
	Name   string `db:"name"`
	Rating int64  `db:"rating"`
}

// New opens the database with the "sqlite" driver, the caller registers it.
func New(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// Roster returns the players with the given names, in the order of names.
// Every name must be present in the database.
func (s *Store) Roster(ctx context.Context, names []string) (team.Roster, error) {
	if len(names) == 0 {
		return team.Roster{}, nil
	}

	query, args, err := sqlx.In(`SELECT name, rating FROM players WHERE name IN (?)`, names)
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var players []player
	if err := s.db.SelectContext(ctx, &players, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}

	ratings := make(map[string]int64, len(players))
	for _, pl := range players {
		ratings[pl.Name] = pl.Rating
	}

	roster := make(team.Roster, 0, len(names))
	var missing ErrMissing
	for _, name := range names {
		rating, ok := ratings[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		if rating < int64(team.MinRating) || rating > int64(team.MaxRating) {
			return nil, fmt.Errorf("%w: %s has %d, should be between %d and %d",
				ErrInvalidRating, name, rating, team.MinRating, team.MaxRating)
		}
		roster = append(roster, team.Entry{Name: name, Rating: uint(rating)})
	}

	if len(missing) > 0 {
		return nil, missing
	}
	return roster, nil
}
