package team

// Neighbourhood seeds team A with the best player and team B with the second
// best, the rest of the players are handed out alternately starting with A.
type Neighbourhood struct{}

// Name returns the name of the strategy.
func (Neighbourhood) Name() string { return "neighbour" }

// Split splits the roster into two teams.
func (Neighbourhood) Split(roster Roster) (Result, error) {
	if err := checkSize(roster); err != nil {
		return Result{}, err
	}

	players := sortedDesc(roster)
	teamA := Roster{players[0]}
	teamB := Roster{players[1]}
	for idx, pl := range players[2:] {
		if idx%2 == 0 {
			teamA = append(teamA, pl)
			continue
		}
		teamB = append(teamB, pl)
	}

	return result(teamA, teamB, len(players)), nil
}

// NegativeNeighbourhood seeds team A with the weakest player and team B with
// the second weakest, then walks the rest from weakest to strongest: players
// at an even position of the descending order go to A, odd ones to B.
type NegativeNeighbourhood struct{}

// Name returns the name of the strategy.
func (NegativeNeighbourhood) Name() string { return "negative-neighbour" }

// Split splits the roster into two teams.
func (NegativeNeighbourhood) Split(roster Roster) (Result, error) {
	if err := checkSize(roster); err != nil {
		return Result{}, err
	}

	players := sortedDesc(roster)
	last := len(players) - 1
	teamA := Roster{players[last]}
	teamB := Roster{players[last-1]}
	for idx := last - 2; idx >= 0; idx-- {
		if idx%2 == 0 {
			teamA = append(teamA, players[idx])
			continue
		}
		teamB = append(teamB, players[idx])
	}

	return result(teamA, teamB, len(players)), nil
}

// Strategies returns every known strategy, greedy first.
func Strategies() []Strategy {
	return []Strategy{Greedy{}, Neighbourhood{}, NegativeNeighbourhood{}}
}

// StrategyByName returns the strategy with the given name.
func StrategyByName(name string) (Strategy, bool) {
	for _, s := range Strategies() {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}
