package chess

import (
	"fmt"

	"github.com/tbaxter/chesslib/internal/errors"
)

// Square identifies a board cell. The index is rank*8 + file,
// 0-based, so a1 = 0, h1 = 7, a8 = 56, h8 = 63. File and rank are
// always derived from the index; they are never stored separately.
type Square int

// NoSquare marks the absence of a square, e.g. no en-passant target.
const NoSquare Square = -1

// Board dimension constants.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FileA = 0
	FileH = BoardSize - 1
	Rank1 = 0
	Rank8 = BoardSize - 1
)

// SquareAt returns the square for 0-based file and rank coordinates.
// It returns NoSquare if either coordinate is off the board.
func SquareAt(file, rank int) Square {
	if file < FileA || file > FileH || rank < Rank1 || rank > Rank8 {
		return NoSquare
	}
	return Square(rank*BoardSize + file)
}

// Valid reports whether sq is an on-board square index.
func (sq Square) Valid() bool {
	return sq >= 0 && sq < NumSquares
}

// File returns the 0-based file (column) of the square, 0 = a-file.
func (sq Square) File() int {
	return int(sq) % BoardSize
}

// Rank returns the 0-based rank (row) of the square, 0 = rank 1.
func (sq Square) Rank() int {
	return int(sq) / BoardSize
}

// Offset returns the square displaced by the given file and rank
// deltas, or NoSquare if the result would be off the board.
func (sq Square) Offset(df, dr int) Square {
	return SquareAt(sq.File()+df, sq.Rank()+dr)
}

// String returns the algebraic name of the square, e.g. "e4".
// NoSquare renders as "-", matching FEN's empty en-passant field.
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("square %q: %w", s, errors.ErrMalformedSquare)
	}
	return SquareAt(int(s[0]-'a'), int(s[1]-'1')), nil
}

// IsLight reports whether the square is a light square.
func (sq Square) IsLight() bool {
	return (sq.File()+sq.Rank())%2 == 1
}
