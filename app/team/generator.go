package team

import (
	"errors"
	"fmt"
	"log"
)

var (
	// ErrStrategyNotConfigured is issued when teams are requested before a
	// strategy is set.
	ErrStrategyNotConfigured = errors.New("strategy is not configured")
	// ErrNoResult is issued when averages are requested before teams were
	// computed successfully.
	ErrNoResult = errors.New("no result available")
)

// Generator holds the roster being built and the strategy used to split it.
// Generator is not safe for concurrent use.
type Generator struct {
	players  int
	roster   Roster
	strategy Strategy
	result   *Result
}

// NewGenerator makes a generator for the declared number of players.
func NewGenerator(players int) *Generator {
	return &Generator{players: players, roster: make(Roster, 0, players)}
}

// Players returns the declared number of players.
func (g *Generator) Players() int { return g.players }

// AddRating appends a player to the roster. The values are expected to be
// validated by the caller.
func (g *Generator) AddRating(name string, rating uint) {
	g.roster = append(g.roster, Entry{Name: name, Rating: rating})
}

// Rating returns the rating of the first added player with the given name.
func (g *Generator) Rating(name string) (uint, bool) {
	return g.roster.Rating(name)
}

// Roster returns the players added so far and not yet consumed by Run.
func (g *Generator) Roster() Roster { return g.roster }

// SetStrategy sets the strategy used by Run.
func (g *Generator) SetStrategy(s Strategy) { g.strategy = s }

// Run hands the roster over to the strategy and keeps the result.
// The roster is consumed regardless of the outcome.
func (g *Generator) Run() (Result, error) {
	if g.strategy == nil {
		return Result{}, ErrStrategyNotConfigured
	}

	roster := g.roster
	g.roster = nil
	g.result = nil

	if len(roster) != g.players {
		log.Printf("[WARN] declared %d players, got %d", g.players, len(roster))
	}

	res, err := g.strategy.Split(roster)
	if err != nil {
		return Result{}, fmt.Errorf("split teams with %s: %w", g.strategy.Name(), err)
	}

	log.Printf("[DEBUG] %s split %d players, averages %.2f and %.2f",
		g.strategy.Name(), len(roster), res.AverageA, res.AverageB)

	g.result = &res
	return res, nil
}

// AverageA returns the average rating of team A from the last Run.
func (g *Generator) AverageA() (float64, error) {
	if g.result == nil {
		return 0, ErrNoResult
	}
	return g.result.AverageA, nil
}

// AverageB returns the average rating of team B from the last Run.
func (g *Generator) AverageB() (float64, error) {
	if g.result == nil {
		return 0, ErrNoResult
	}
	return g.result.AverageB, nil
}
