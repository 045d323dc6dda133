package team

import "fmt"

// Rating bounds accepted from the input side.
const (
	MinRating uint = 1
	MaxRating uint = 5000
)

// Entry is a single player with a skill rating.
type Entry struct {
	Name   string
	Rating uint
}

// String returns the entry in format of "<name> (rating: <rating>)".
func (e Entry) String() string {
	return fmt.Sprintf("%s (rating: %d)", e.Name, e.Rating)
}

// Roster is an ordered list of players for one computation.
type Roster []Entry

// Sum returns the total rating of the roster.
func (r Roster) Sum() uint {
	var sum uint
	for _, e := range r {
		sum += e.Rating
	}
	return sum
}

// Rating returns the rating of the first entry with the given name.
func (r Roster) Rating(name string) (uint, bool) {
	for _, e := range r {
		if e.Name == name {
			return e.Rating, true
		}
	}
	return 0, false
}

// Names returns the names of the players, in order.
func (r Roster) Names() []string {
	names := make([]string, len(r))
	for i, e := range r {
		names[i] = e.Name
	}
	return names
}
