package chess

import (
	"fmt"

	"github.com/tbaxter/chesslib/internal/errors"
)

// Board is a fixed 64-cell positional store of pieces. It owns no
// turn or history logic: only occupancy and raw placement. All chess
// legality lives with the engine.
type Board struct {
	cells [NumSquares]Piece
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// StandardBoard returns the canonical starting position.
func StandardBoard() *Board {
	b := NewBoard()
	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.cells[SquareAt(file, Rank1)] = W(backRank[file])
		b.cells[SquareAt(file, Rank1+1)] = W(Pawn)
		b.cells[SquareAt(file, Rank8-1)] = B(Pawn)
		b.cells[SquareAt(file, Rank8)] = B(backRank[file])
	}
	return b
}

// Occupant returns the piece on the given square, or NoPiece if the
// square is empty. It fails with ErrOutOfRange for invalid indices.
func (b *Board) Occupant(sq Square) (Piece, error) {
	if !sq.Valid() {
		return NoPiece, fmt.Errorf("square %d: %w", int(sq), errors.ErrOutOfRange)
	}
	return b.cells[sq], nil
}

// At returns the piece on the given square, or NoPiece for empty or
// invalid squares. It is the lookup used by movement scans, where an
// off-board probe simply finds nothing.
func (b *Board) At(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.cells[sq]
}

// Place writes a piece (or NoPiece) to a square with no legality
// check. It is the raw mutation used by the engine after validation
// and by custom setups.
func (b *Board) Place(sq Square, piece Piece) error {
	if !sq.Valid() {
		return fmt.Errorf("square %d: %w", int(sq), errors.ErrOutOfRange)
	}
	b.cells[sq] = piece
	return nil
}

// Relocate moves whatever occupies from to to, returning the
// displaced occupant of to (NoPiece means no capture). It fails with
// ErrEmptySource if from is unoccupied and with ErrFriendlyBlock if
// to holds a piece of the mover's own colour. No chess legality is
// checked here.
func (b *Board) Relocate(from, to Square) (Piece, error) {
	if !from.Valid() {
		return NoPiece, fmt.Errorf("square %d: %w", int(from), errors.ErrOutOfRange)
	}
	if !to.Valid() {
		return NoPiece, fmt.Errorf("square %d: %w", int(to), errors.ErrOutOfRange)
	}

	mover := b.cells[from]
	if mover.IsNone() {
		return NoPiece, fmt.Errorf("relocate from %s: %w", from, errors.ErrEmptySource)
	}

	displaced := b.cells[to]
	if !displaced.IsNone() && displaced.Colour == mover.Colour {
		return NoPiece, fmt.Errorf("relocate to %s: %w", to, errors.ErrFriendlyBlock)
	}

	b.cells[from] = NoPiece
	b.cells[to] = mover
	return displaced, nil
}

// Copy returns a deep copy of the board. The engine simulates moves
// on copies so that a failed validation never touches the real board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// FindKing returns the square of the given colour's king, or NoSquare
// if the board holds none (possible mid-setup).
func (b *Board) FindKing(colour Colour) Square {
	for sq := Square(0); sq < NumSquares; sq++ {
		p := b.cells[sq]
		if p.Kind == King && p.Colour == colour {
			return sq
		}
	}
	return NoSquare
}
