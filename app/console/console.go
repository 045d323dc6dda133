// Package console reads players and their ratings from an interactive session.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"slices"
	"strconv"
	"strings"

	"github.com/bobylevd/fairteams/app/team"
)

// PlayerCounts lists the supported roster sizes.
var PlayerCounts = []int{4, 6, 8}

// ErrInvalidInput describes a value that didn't pass validation.
var ErrInvalidInput = errors.New("invalid input")

// Prompter asks questions on Out and reads the answers from In, one per line.
// Invalid answers are reported and asked again.
type Prompter struct {
	lines <-chan line
	out   io.Writer
}

type line struct {
	text string
	err  error
}

// NewPrompter makes a prompter over the given reader and writer.
// The reader is consumed by a background goroutine that lives until it
// reaches the end of input.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	lines := make(chan line)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			lines <- line{text: sc.Text()}
		}
		err := sc.Err()
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		lines <- line{err: err}
	}()
	return &Prompter{lines: lines, out: out}
}

// PlayerCount asks for the number of players.
func (p *Prompter) PlayerCount(ctx context.Context) (int, error) {
	return ask(ctx, p, "Enter the number of players: ", ParsePlayerCount)
}

// Name asks for the name of the player at the given 0-based position.
func (p *Prompter) Name(ctx context.Context, idx int) (string, error) {
	return ask(ctx, p, fmt.Sprintf("Name of player %d: ", idx+1), ParseName)
}

// Rating asks for the rating of the named player.
func (p *Prompter) Rating(ctx context.Context, name string) (uint, error) {
	return ask(ctx, p, fmt.Sprintf("Rating of %s: ", name), ParseRating)
}

// Roster asks for n names and ratings, in order.
func (p *Prompter) Roster(ctx context.Context, n int) (team.Roster, error) {
	roster := make(team.Roster, 0, n)
	for i := 0; i < n; i++ {
		name, err := p.Name(ctx, i)
		if err != nil {
			return nil, err
		}
		rating, err := p.Rating(ctx, name)
		if err != nil {
			return nil, err
		}
		roster = append(roster, team.Entry{Name: name, Rating: rating})
	}
	return roster, nil
}

// Names asks for n names, in order.
func (p *Prompter) Names(ctx context.Context, n int) ([]string, error) {
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		name, err := p.Name(ctx, i)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// next waits for the next line of input or for ctx to be done.
func (p *Prompter) next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("read answer: %w", context.Cause(ctx))
	case l, ok := <-p.lines:
		if !ok {
			return "", fmt.Errorf("read answer: %w", io.ErrUnexpectedEOF)
		}
		if l.err != nil {
			return "", fmt.Errorf("read answer: %w", l.err)
		}
		return l.text, nil
	}
}

// ask repeats the question until parse accepts the answer.
func ask[T any](ctx context.Context, p *Prompter, question string, parse func(string) (T, error)) (T, error) {
	var zero T
	for {
		fmt.Fprint(p.out, question)
		answer, err := p.next(ctx)
		if err != nil {
			return zero, err
		}

		v, err := parse(answer)
		if err != nil {
			log.Printf("[DEBUG] rejected answer %q: %v", answer, err)
			fmt.Fprintf(p.out, "\n%v, try again\n", err)
			continue
		}
		return v, nil
	}
}

// ParsePlayerCount parses a supported number of players.
func ParsePlayerCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !ValidPlayerCount(n) {
		return 0, fmt.Errorf("%w: number of players should be one of %v", ErrInvalidInput, PlayerCounts)
	}
	return n, nil
}

// ValidPlayerCount checks whether n is a supported number of players.
func ValidPlayerCount(n int) bool {
	return slices.Contains(PlayerCounts, n)
}

// ParseName parses a non-empty player name.
func ParseName(s string) (string, error) {
	name := strings.TrimSpace(s)
	if name == "" {
		return "", fmt.Errorf("%w: name should not be empty", ErrInvalidInput)
	}
	return name, nil
}

// ParseRating parses a rating within [team.MinRating, team.MaxRating].
func ParseRating(s string) (uint, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil || uint(v) < team.MinRating || uint(v) > team.MaxRating {
		return 0, fmt.Errorf("%w: rating should be between %d and %d",
			ErrInvalidInput, team.MinRating, team.MaxRating)
	}
	return uint(v), nil
}
