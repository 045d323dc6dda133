// Package report renders computed teams for display.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/syohex/go-texttable"

	"github.com/bobylevd/fairteams/app/team"
)

const (
	border = "********************************************"
	footer = "____________________________________________"
)

// Text renders both teams in plain text: the members of each team with the
// team average, then the difference between the averages.
func Text(res team.Result) string {
	var sb strings.Builder
	sb.WriteString(border + "\n")
	writeTeam(&sb, "A", res.TeamA, res.AverageA)
	writeTeam(&sb, "B", res.TeamB, res.AverageB)
	sb.WriteString(footer + "\n")
	fmt.Fprintf(&sb, "Difference between the teams: %.2f\n", res.Difference())
	sb.WriteString(border + "\n")
	return sb.String()
}

func writeTeam(sb *strings.Builder, name string, players team.Roster, avg float64) {
	fmt.Fprintf(sb, "===============[ TEAM %s ]====================\n", name)
	for _, pl := range players {
		sb.WriteString(pl.String() + "\n")
	}
	fmt.Fprintf(sb, "Team average: %.2f\n", avg)
}

// Table renders both teams side by side as a text table.
func Table(res team.Result) (string, error) {
	tbl := &texttable.TextTable{}
	if err := tbl.SetHeader("Team A", "Rating", "Team B", "Rating"); err != nil {
		return "", fmt.Errorf("set header: %w", err)
	}

	for i, a := range res.TeamA {
		bName, bRating := "", ""
		if i < len(res.TeamB) {
			bName, bRating = res.TeamB[i].Name, rating(res.TeamB[i])
		}
		if err := tbl.AddRow(a.Name, rating(a), bName, bRating); err != nil {
			return "", fmt.Errorf("add row: %w", err)
		}
	}

	if err := tbl.AddRow("average", fmt.Sprintf("%.2f", res.AverageA),
		"average", fmt.Sprintf("%.2f", res.AverageB)); err != nil {
		return "", fmt.Errorf("add row: %w", err)
	}

	return tbl.Draw() + fmt.Sprintf("\nDifference between the teams: %.2f\n", res.Difference()), nil
}

// Comparison renders the outcomes of several strategies, one row each, and
// names the first outcome as the best one.
func Comparison(outcomes []team.Outcome) (string, error) {
	if len(outcomes) == 0 {
		return "", nil
	}

	tbl := &texttable.TextTable{}
	if err := tbl.SetHeader("Strategy", "Team A", "Average A", "Team B", "Average B", "Difference"); err != nil {
		return "", fmt.Errorf("set header: %w", err)
	}

	for _, o := range outcomes {
		err := tbl.AddRow(
			o.Strategy,
			strings.Join(o.TeamA.Names(), ", "),
			fmt.Sprintf("%.2f", o.AverageA),
			strings.Join(o.TeamB.Names(), ", "),
			fmt.Sprintf("%.2f", o.AverageB),
			fmt.Sprintf("%.2f", o.Difference()),
		)
		if err != nil {
			return "", fmt.Errorf("add row for %s: %w", o.Strategy, err)
		}
	}

	best := outcomes[0]
	return tbl.Draw() + fmt.Sprintf("\nBest algorithm: %s with team rating difference of %.2f\n",
		best.Strategy, best.Difference()), nil
}

func rating(e team.Entry) string {
	return strconv.FormatUint(uint64(e.Rating), 10)
}
