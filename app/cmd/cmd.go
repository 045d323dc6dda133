package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bobylevd/fairteams/app/console"
	"github.com/bobylevd/fairteams/app/store"
	"github.com/bobylevd/fairteams/app/team"
)

// CommonOpts contains information that is common for all commands.
type CommonOpts struct {
	Version string
}

// Set sets the common options.
func (c *CommonOpts) Set(cc CommonOpts) {
	c.Version = cc.Version
}

// InputOpts describes where the roster comes from.
type InputOpts struct {
	Players int    `long:"players" env:"PLAYERS" description:"number of players: 4, 6 or 8, asked when omitted"`
	DB      string `long:"db"      env:"RATINGS_DB" description:"SQLite database with player ratings, only names are asked when set"`

	in  io.Reader
	out io.Writer
}

func (o *InputOpts) streams() (io.Reader, io.Writer) {
	in, out := o.in, o.out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return in, out
}

// roster asks for the players and their ratings.
func (o *InputOpts) roster(ctx context.Context) (team.Roster, error) {
	in, out := o.streams()
	p := console.NewPrompter(in, out)

	n := o.Players
	if n == 0 {
		var err error
		if n, err = p.PlayerCount(ctx); err != nil {
			return nil, fmt.Errorf("ask number of players: %w", err)
		}
	}
	if !console.ValidPlayerCount(n) {
		return nil, fmt.Errorf("%w: %d players, should be one of %v", console.ErrInvalidInput, n, console.PlayerCounts)
	}

	if o.DB == "" {
		r, err := p.Roster(ctx, n)
		if err != nil {
			return nil, fmt.Errorf("ask players: %w", err)
		}
		return r, nil
	}

	names, err := p.Names(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("ask players: %w", err)
	}

	s, err := store.New(o.DB)
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			log.Printf("[WARN] failed to close store: %v", err)
		}
	}()

	r, err := s.Roster(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("load ratings: %w", err)
	}
	log.Printf("[DEBUG] loaded %d ratings from %s", len(r), o.DB)
	return r, nil
}
