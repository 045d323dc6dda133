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

// Compare is a command to split the players with every strategy and pick
// the one with the lowest difference.
type Compare struct {
	CommonOpts
	InputOpts
}

// Execute runs the command.
func (c Compare) Execute([]string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return c.run(ctx)
}

// run reads the roster and prints the report, prompts are interrupted
// when ctx is done.
func (c Compare) run(ctx context.Context) error {
	log.Printf("[DEBUG] running version %s", c.Version)

	roster, err := c.roster(ctx)
	if err != nil {
		return err
	}

	outcomes, err := team.Compare(roster, team.Strategies()...)
	if err != nil {
		return fmt.Errorf("compare strategies: %w", err)
	}
	log.Printf("[INFO] compared %d strategies for %d players", len(outcomes), len(roster))

	text, err := report.Comparison(outcomes)
	if err != nil {
		return fmt.Errorf("render comparison: %w", err)
	}

	_, out := c.streams()
	fmt.Fprint(out, text)
	return nil
}
