// Package errors provides sentinel errors and error types for the
// chess core. It defines the parse, rule-violation, and state error
// conditions that callers inspect with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
)

// Parse errors: failures to resolve move text into a single move.
var (
	// ErrUnknownMove indicates move text that matches no piece able
	// to make the described move.
	ErrUnknownMove = errors.New("unknown move")

	// ErrAmbiguousMove indicates move text that more than one piece
	// could satisfy after applying all disambiguators.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrMalformedSquare indicates a square name outside a1..h8.
	ErrMalformedSquare = errors.New("malformed square")

	// ErrMissingPromotion indicates a pawn move to the last rank
	// without a promotion piece.
	ErrMissingPromotion = errors.New("promotion piece required")

	// ErrExtraneousPromotion indicates a promotion suffix on a move
	// that does not reach the last rank.
	ErrExtraneousPromotion = errors.New("promotion piece not allowed")
)

// Rule violations: legal notation describing an illegal move.
var (
	// ErrWrongTurn indicates a move by the side not to move.
	ErrWrongTurn = errors.New("not that side's turn")

	// ErrBlockedPath indicates a sliding move through an occupied square.
	ErrBlockedPath = errors.New("path is blocked")

	// ErrIllegalPattern indicates a move outside the piece's movement
	// pattern.
	ErrIllegalPattern = errors.New("illegal movement pattern")

	// ErrExposedKing indicates a move that would leave the mover's
	// own king in check.
	ErrExposedKing = errors.New("move would expose own king")

	// ErrInvalidCastle indicates castling without eligibility: rights
	// revoked, path occupied, or king in or passing through check.
	ErrInvalidCastle = errors.New("invalid castle")

	// ErrInvalidEnPassant indicates an en-passant capture with no
	// qualifying target square.
	ErrInvalidEnPassant = errors.New("invalid en passant")
)

// State errors: operations invalid for the current game or board state.
var (
	// ErrOutOfRange indicates a square index outside the board.
	ErrOutOfRange = errors.New("square out of range")

	// ErrEmptySource indicates a relocation from an unoccupied square.
	ErrEmptySource = errors.New("source square is empty")

	// ErrFriendlyBlock indicates a relocation onto a same-colour piece.
	ErrFriendlyBlock = errors.New("destination holds a friendly piece")

	// ErrGameOver indicates a move submitted after the game reached a
	// terminal state.
	ErrGameOver = errors.New("game is already over")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrEmptyName indicates a named player with a blank last name.
	ErrEmptyName = errors.New("player name must not be empty")
)

// MoveError wraps an error with the context of the move that caused
// it: the ply at which it was submitted and the submitted text. It
// supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based ply at which the move was submitted
	MoveText string // The submitted move text
}

// Error returns a formatted message including all available context.
func (e *MoveError) Error() string {
	switch {
	case e.Ply > 0 && e.MoveText != "":
		return fmt.Sprintf("ply %d, move %q: %v", e.Ply, e.MoveText, e.Err)
	case e.MoveText != "":
		return fmt.Sprintf("move %q: %v", e.MoveText, e.Err)
	default:
		return e.Err.Error()
	}
}

// Unwrap returns the underlying error, enabling errors.Is() and
// errors.As() to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the
// underlying error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
