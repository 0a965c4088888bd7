// Package engine validates moves against full chess law, applies them
// atomically, and tracks the game's state machine through to its
// terminal conditions.
package engine

import (
	"fmt"

	"github.com/tbaxter/chesslib/internal/chess"
)

// State is the coarse position of the game state machine. AwaitingMove
// is the only non-terminal state; every other state accepts no
// further moves.
type State int

const (
	AwaitingMove State = iota
	Checkmate
	Stalemate
	Drawn
	Resigned
)

// String returns the string representation of a state.
func (s State) String() string {
	names := []string{"AwaitingMove", "Checkmate", "Stalemate", "Drawn", "Resigned"}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// DrawReason identifies why a game ended in a draw.
type DrawReason int

const (
	NotDrawn DrawReason = iota
	InsufficientMaterial
	FiftyMoveRule
	ThreefoldRepetition
	Agreement
)

// String returns the string representation of a draw reason.
func (r DrawReason) String() string {
	names := []string{"", "insufficient material", "fifty-move rule", "threefold repetition", "agreement"}
	if int(r) < len(names) {
		return names[r]
	}
	return "unknown"
}

// GameStatus is the externally visible position of the state machine.
// Colour carries the state's subject: the side to move for
// AwaitingMove, the mated side for Checkmate, and the resigning side
// for Resigned. Reason is set only when State is Drawn.
type GameStatus struct {
	State   State
	Colour  chess.Colour
	Reason  DrawReason
	InCheck bool
}

// Terminal reports whether the game accepts no further moves.
func (s GameStatus) Terminal() bool {
	return s.State != AwaitingMove
}

// Winner returns the winning colour and true for decisive results
// (checkmate or resignation), or false for every other state.
func (s GameStatus) Winner() (chess.Colour, bool) {
	switch s.State {
	case Checkmate, Resigned:
		return s.Colour.Opposite(), true
	}
	return chess.White, false
}

// String renders the status for display: "White to move",
// "Checkmate, White wins", "Draw by threefold repetition".
func (s GameStatus) String() string {
	switch s.State {
	case AwaitingMove:
		if s.InCheck {
			return fmt.Sprintf("%s to move (in check)", s.Colour)
		}
		return fmt.Sprintf("%s to move", s.Colour)
	case Checkmate:
		return fmt.Sprintf("Checkmate, %s wins", s.Colour.Opposite())
	case Stalemate:
		return "Stalemate"
	case Drawn:
		return fmt.Sprintf("Draw by %s", s.Reason)
	case Resigned:
		return fmt.Sprintf("%s resigned, %s wins", s.Colour, s.Colour.Opposite())
	}
	return "Unknown"
}

// MoveOutcome reports an accepted move together with the status the
// game advanced to.
type MoveOutcome struct {
	Move   chess.Move
	Status GameStatus
}
