package team

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roster(ratings ...uint) Roster {
	r := make(Roster, len(ratings))
	for i, rt := range ratings {
		r[i] = Entry{Name: string(rune('a' + i)), Rating: rt}
	}
	return r
}

func TestGreedy_Split(t *testing.T) {
	tests := []struct {
		name         string
		roster       Roster
		teamA, teamB []string
		avgA, avgB   float64
	}{
		{
			name:   "balanced four",
			roster: roster(10, 8, 6, 4),
			teamA:  []string{"a", "d"},
			teamB:  []string{"b", "c"},
			avgA:   7,
			avgB:   7,
		},
		{
			name:   "equal ratings, tie goes to team B",
			roster: roster(100, 100, 100, 100),
			teamA:  []string{"a", "d"},
			teamB:  []string{"b", "c"},
			avgA:   100,
			avgB:   100,
		},
		{
			name:   "unsorted input with equal top ratings keeps input order",
			roster: roster(5, 9, 9, 1),
			teamA:  []string{"b", "d"},
			teamB:  []string{"c", "a"},
			avgA:   5,
			avgB:   7,
		},
		{
			name:   "full team stops taking players",
			roster: roster(5000, 1, 1, 1),
			teamA:  []string{"a", "d"},
			teamB:  []string{"b", "c"},
			avgA:   2500.5,
			avgB:   1,
		},
		{
			name:   "six players",
			roster: roster(60, 50, 40, 30, 20, 10),
			teamA:  []string{"a", "d", "f"},
			teamB:  []string{"b", "c", "e"},
			avgA:   100.0 / 3,
			avgB:   110.0 / 3,
		},
		{
			name:   "two players",
			roster: roster(30, 70),
			teamA:  []string{"b"},
			teamB:  []string{"a"},
			avgA:   70,
			avgB:   30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Greedy{}.Split(tt.roster)
			require.NoError(t, err)
			assert.Equal(t, tt.teamA, res.TeamA.Names())
			assert.Equal(t, tt.teamB, res.TeamB.Names())
			assert.InDelta(t, tt.avgA, res.AverageA, 1e-9)
			assert.InDelta(t, tt.avgB, res.AverageB, 1e-9)
		})
	}
}

func TestGreedy_TwoPlayersDifference(t *testing.T) {
	res, err := Greedy{}.Split(roster(1200, 1450))
	require.NoError(t, err)
	assert.InDelta(t, 250, res.Difference(), 1e-9)
}

func TestNeighbourhood_Split(t *testing.T) {
	res, err := Neighbourhood{}.Split(roster(60, 50, 40, 30, 20, 10))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "e"}, res.TeamA.Names())
	assert.Equal(t, []string{"b", "d", "f"}, res.TeamB.Names())
	assert.InDelta(t, 40, res.AverageA, 1e-9)
	assert.InDelta(t, 30, res.AverageB, 1e-9)
}

func TestNegativeNeighbourhood_Split(t *testing.T) {
	res, err := NegativeNeighbourhood{}.Split(roster(60, 50, 40, 30, 20, 10))
	require.NoError(t, err)
	assert.Equal(t, []string{"f", "c", "a"}, res.TeamA.Names())
	assert.Equal(t, []string{"e", "d", "b"}, res.TeamB.Names())
	assert.InDelta(t, 110.0/3, res.AverageA, 1e-9)
	assert.InDelta(t, 100.0/3, res.AverageB, 1e-9)
}

func TestStrategies_InvalidRosterSize(t *testing.T) {
	for _, s := range Strategies() {
		for _, r := range []Roster{nil, roster(10), roster(10, 20, 30)} {
			_, err := s.Split(r)
			assert.ErrorIs(t, err, ErrInvalidRosterSize, "%s with %d players", s.Name(), len(r))
		}
	}
}

func TestStrategies_Partition(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for _, s := range Strategies() {
		for i := 0; i < 200; i++ {
			size := 2 * (1 + rnd.Intn(6))
			r := make(Roster, size)
			for j := range r {
				r[j] = Entry{Name: string(rune('a' + j)), Rating: uint(1 + rnd.Intn(5000))}
			}
			input := append(Roster(nil), r...)

			res, err := s.Split(r)
			require.NoError(t, err)
			require.Len(t, res.TeamA, size/2, s.Name())
			require.Len(t, res.TeamB, size/2, s.Name())

			got := append(append(Roster(nil), res.TeamA...), res.TeamB...)
			assert.ElementsMatch(t, input, got, s.Name())
			assert.Equal(t, input, r, "%s must not reorder the input", s.Name())

			again, err := s.Split(r)
			require.NoError(t, err)
			assert.Equal(t, res, again, "%s must be deterministic", s.Name())
		}
	}
}

func TestCompare(t *testing.T) {
	outcomes, err := Compare(roster(60, 50, 40, 30, 20, 10), Strategies()...)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	names := make([]string, len(outcomes))
	for i, o := range outcomes {
		names[i] = o.Strategy
	}
	assert.Equal(t, []string{"greedy", "negative-neighbour", "neighbour"}, names)
	assert.True(t, sort.SliceIsSorted(outcomes, func(i, j int) bool {
		return outcomes[i].Difference() < outcomes[j].Difference()
	}))
	assert.InDelta(t, 10.0/3, outcomes[0].Difference(), 1e-9)
}

func TestCompare_Error(t *testing.T) {
	_, err := Compare(roster(1, 2, 3), Greedy{})
	assert.ErrorIs(t, err, ErrInvalidRosterSize)
}

func TestStrategyByName(t *testing.T) {
	s, ok := StrategyByName("negative-neighbour")
	require.True(t, ok)
	assert.Equal(t, NegativeNeighbourhood{}, s)

	_, ok = StrategyByName("random")
	assert.False(t, ok)
}

func TestRoster_Rating(t *testing.T) {
	r := Roster{{Name: "alice", Rating: 10}, {Name: "bob", Rating: 20}, {Name: "alice", Rating: 30}}

	rt, ok := r.Rating("alice")
	assert.True(t, ok)
	assert.Equal(t, uint(10), rt)

	_, ok = r.Rating("carol")
	assert.False(t, ok)

	assert.Equal(t, uint(60), r.Sum())
	assert.Equal(t, "bob (rating: 20)", r[1].String())
}
