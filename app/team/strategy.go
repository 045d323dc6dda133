package team

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
)

// ErrInvalidRosterSize is issued when a roster can't be split into two
// teams of equal size.
var ErrInvalidRosterSize = errors.New("invalid roster size")

// Strategy splits a roster into two teams of equal size.
type Strategy interface {
	// Name returns a short human-readable name of the strategy.
	Name() string
	// Split computes the teams. The strategy owns the roster for the
	// duration of the call and must not retain it.
	Split(roster Roster) (Result, error)
}

// Result is a computed pair of teams with their average ratings.
type Result struct {
	TeamA, TeamB       Roster
	AverageA, AverageB float64
}

// Difference returns the absolute difference between the team averages.
func (r Result) Difference() float64 {
	return math.Abs(r.AverageA - r.AverageB)
}

// Outcome pairs a strategy name with the result it produced.
type Outcome struct {
	Strategy string
	Result
}

// Compare runs every strategy on its own copy of the roster and returns the
// outcomes ordered by ascending difference. Strategies with equal difference
// keep the order they were given in.
func Compare(roster Roster, strategies ...Strategy) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(strategies))
	for _, s := range strategies {
		res, err := s.Split(slices.Clone(roster))
		if err != nil {
			return nil, fmt.Errorf("split with %s: %w", s.Name(), err)
		}
		outcomes = append(outcomes, Outcome{Strategy: s.Name(), Result: res})
	}

	sort.SliceStable(outcomes, func(i, j int) bool {
		return outcomes[i].Difference() < outcomes[j].Difference()
	})
	return outcomes, nil
}

// checkSize verifies that the roster may be split into two equal teams.
func checkSize(roster Roster) error {
	if len(roster) < 2 || len(roster)%2 != 0 {
		return fmt.Errorf("%w: %d players", ErrInvalidRosterSize, len(roster))
	}
	return nil
}

// sortedDesc returns a copy of the roster sorted by rating, descending.
// Players with equal rating keep their original relative order.
func sortedDesc(roster Roster) Roster {
	sorted := slices.Clone(roster)
	slices.SortStableFunc(sorted, func(a, b Entry) int {
		return cmp.Compare(b.Rating, a.Rating)
	})
	return sorted
}

// result builds the Result, the averages are always divided by half of the
// roster size.
func result(teamA, teamB Roster, size int) Result {
	half := float64(size / 2)
	return Result{
		TeamA:    teamA,
		TeamB:    teamB,
		AverageA: float64(teamA.Sum()) / half,
		AverageB: float64(teamB.Sum()) / half,
	}
}
