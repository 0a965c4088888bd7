package chess

import (
	"fmt"
	"strings"

	"github.com/tbaxter/chesslib/internal/errors"
)

// Player is an identity record for one side of a game: colour,
// optional name parts, and an optional rating. It carries no game
// behaviour; the engine and front ends consume it for attribution
// and display only.
type Player struct {
	Colour Colour

	// LastName is required whenever any name part is supplied.
	LastName   string
	FirstName  string
	NamePrefix string // e.g. "Dr."
	NameSuffix string // e.g. "Jr."

	// Rating is the player's ELO or national rating; 0 means unrated.
	Rating int
}

// NewPlayer returns an anonymous player of the given colour.
func NewPlayer(colour Colour) Player {
	return Player{Colour: colour}
}

// NamedPlayer returns a player with a display name and rating.
// lastName must be non-empty; rating 0 means unrated.
func NamedPlayer(colour Colour, lastName string, rating int) (Player, error) {
	if strings.TrimSpace(lastName) == "" {
		return Player{}, errors.ErrEmptyName
	}
	return Player{Colour: colour, LastName: lastName, Rating: rating}, nil
}

// FullName assembles the name parts into "Prefix Last, First Suffix",
// dropping absent parts. An unnamed player yields "".
func (p Player) FullName() string {
	if p.LastName == "" {
		return ""
	}
	name := p.LastName
	if p.FirstName != "" {
		name += ", " + p.FirstName
	}
	if p.NamePrefix != "" {
		name = p.NamePrefix + " " + name
	}
	if p.NameSuffix != "" {
		name += " " + p.NameSuffix
	}
	return name
}

// String returns the display line for the player, e.g.
// "White: Dr. Smith, John III (1500)". Absent parts degrade
// gracefully: "Black: Smith (unrated)", or just "White" for an
// anonymous player.
func (p Player) String() string {
	s := p.Colour.String()
	if name := p.FullName(); name != "" {
		s += ": " + name
	}
	if p.LastName == "" {
		return s
	}
	if p.Rating > 0 {
		return fmt.Sprintf("%s (%d)", s, p.Rating)
	}
	return s + " (unrated)"
}
