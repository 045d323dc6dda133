package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bobylevd/fairteams/app/report"
	"github.com/bobylevd/fairteams/app/team"
)

// Split is a command to split the players into two fair teams.
type Split struct {
	CommonOpts
	InputOpts
	Strategy string `long:"strategy" env:"STRATEGY" default:"greedy" choice:"greedy" choice:"neighbour" choice:"negative-neighbour" description:"strategy to split teams with"`
	Format   string `long:"format"   env:"FORMAT"   default:"text"   choice:"text"   choice:"table"     description:"report format"`
}

// Execute runs the command.
func (s Split) Execute([]string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.run(ctx)
}

// run reads the roster and prints the report, prompts are interrupted
// when ctx is done.
func (s Split) run(ctx context.Context) error {
	log.Printf("[DEBUG] running version %s", s.Version)

	strategy, ok := team.StrategyByName(s.Strategy)
	if !ok {
		return fmt.Errorf("unknown strategy %q", s.Strategy)
	}

	roster, err := s.roster(ctx)
	if err != nil {
		return err
	}

	gen := team.NewGenerator(len(roster))
	for _, pl := range roster {
		gen.AddRating(pl.Name, pl.Rating)
	}
	gen.SetStrategy(strategy)

	_, out := s.streams()
	fmt.Fprintf(out, "Calculating fair teams for %d players...\n", gen.Players())
	log.Printf("[INFO] splitting %d players with %s", gen.Players(), strategy.Name())

	res, err := gen.Run()
	if err != nil {
		return fmt.Errorf("generate teams: %w", err)
	}

	text := report.Text(res)
	if s.Format == "table" {
		if text, err = report.Table(res); err != nil {
			return fmt.Errorf("render table: %w", err)
		}
	}

	fmt.Fprint(out, text)
	return nil
}
