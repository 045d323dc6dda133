package team

// Greedy seeds team A with the best player and team B with the second best,
// then hands every next player to the team with the strictly lower total
// rating. Equal totals send the player to team B.
type Greedy struct{}

// Name returns the name of the strategy.
func (Greedy) Name() string { return "greedy" }

// Split splits the roster into two teams.
func (Greedy) Split(roster Roster) (Result, error) {
	if err := checkSize(roster); err != nil {
		return Result{}, err
	}

	players := sortedDesc(roster)
	half := len(players) / 2

	teamA := make(Roster, 0, half)
	teamB := make(Roster, 0, half)
	teamA = append(teamA, players[0])
	teamB = append(teamB, players[1])
	sumA, sumB := players[0].Rating, players[1].Rating

	for _, pl := range players[2:] {
		// a full team can't take more players, the rest go to the other one
		toA := sumA < sumB
		switch {
		case len(teamA) == half:
			toA = false
		case len(teamB) == half:
			toA = true
		}

		if toA {
			teamA = append(teamA, pl)
			sumA += pl.Rating
			continue
		}
		teamB = append(teamB, pl)
		sumB += pl.Rating
	}

	return result(teamA, teamB, len(players)), nil
}
