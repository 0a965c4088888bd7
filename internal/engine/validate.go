package engine

import (
	"fmt"

	"github.com/tbaxter/chesslib/internal/chess"
	"github.com/tbaxter/chesslib/internal/errors"
)

// validate checks the full legality of a resolved move against the
// current position. It reads the live board and simulates on a
// scratch copy; the real board is untouched whatever the outcome.
func (g *Game) validate(move chess.Move) error {
	piece := g.board.At(move.From)
	if piece.IsNone() {
		return fmt.Errorf("square %s: %w", move.From, errors.ErrEmptySource)
	}
	if piece.Colour != g.toMove {
		return fmt.Errorf("%s piece on %s: %w", piece.Colour, move.From, errors.ErrWrongTurn)
	}

	if move.IsCastle() {
		if err := g.validateCastle(move); err != nil {
			return err
		}
	} else if err := g.validatePattern(move, piece); err != nil {
		return err
	}

	// Post-condition: the mover's own king must not be in check after
	// the move is simulated on a scratch copy of the board.
	scratch := g.board.Copy()
	applyToBoard(scratch, move, g.toMove)
	kingSq := scratch.FindKing(g.toMove)
	if kingSq.Valid() && chess.SquareAttacked(scratch, kingSq, g.toMove.Opposite()) {
		return fmt.Errorf("%s to %s: %w", move.Piece.Kind, move.To, errors.ErrExposedKing)
	}

	return nil
}

// validatePattern checks movement geometry, path blocking, and the
// pawn's asymmetric rules for a non-castling move.
func (g *Game) validatePattern(move chess.Move, piece chess.Piece) error {
	target := g.board.At(move.To)
	if !target.IsNone() && target.Colour == piece.Colour {
		return fmt.Errorf("%s occupied by own %s: %w", move.To, target.Kind, errors.ErrBlockedPath)
	}

	if piece.Kind == chess.Pawn {
		return g.validatePawn(move, piece)
	}

	df := abs(move.To.File() - move.From.File())
	dr := abs(move.To.Rank() - move.From.Rank())
	if df == 0 && dr == 0 {
		return fmt.Errorf("%s stays on %s: %w", piece.Kind, move.From, errors.ErrIllegalPattern)
	}

	switch piece.Kind {
	case chess.Knight:
		if !((df == 1 && dr == 2) || (df == 2 && dr == 1)) {
			return patternErr(piece, move)
		}
	case chess.King:
		if df > 1 || dr > 1 {
			return patternErr(piece, move)
		}
	case chess.Bishop:
		if df != dr {
			return patternErr(piece, move)
		}
		if !chess.PathClear(g.board, move.From, move.To) {
			return blockedErr(piece, move)
		}
	case chess.Rook:
		if df != 0 && dr != 0 {
			return patternErr(piece, move)
		}
		if !chess.PathClear(g.board, move.From, move.To) {
			return blockedErr(piece, move)
		}
	case chess.Queen:
		if df != dr && df != 0 && dr != 0 {
			return patternErr(piece, move)
		}
		if !chess.PathClear(g.board, move.From, move.To) {
			return blockedErr(piece, move)
		}
	}
	return nil
}

// validatePawn enforces forward-only advances onto empty squares, the
// double advance from the starting rank over an empty path, and
// diagonal steps only onto an enemy piece or the en-passant target.
func (g *Game) validatePawn(move chess.Move, piece chess.Piece) error {
	dir := chess.PawnDirection(piece.Colour)
	df := move.To.File() - move.From.File()
	dr := move.To.Rank() - move.From.Rank()

	if move.Kind == chess.EnPassant {
		if g.epTarget != move.To || (df != 1 && df != -1) || dr != dir {
			return fmt.Errorf("pawn %s to %s: %w", move.From, move.To, errors.ErrInvalidEnPassant)
		}
		return nil
	}

	switch {
	case df == 0 && dr == dir:
		if !g.board.At(move.To).IsNone() {
			return blockedErr(piece, move)
		}
	case df == 0 && dr == 2*dir && move.From.Rank() == startRank(piece.Colour):
		if !g.board.At(move.From.Offset(0, dir)).IsNone() || !g.board.At(move.To).IsNone() {
			return blockedErr(piece, move)
		}
	case (df == 1 || df == -1) && dr == dir:
		target := g.board.At(move.To)
		if target.IsNone() {
			return fmt.Errorf("pawn %s to empty %s: %w", move.From, move.To, errors.ErrIllegalPattern)
		}
	default:
		return patternErr(piece, move)
	}

	onLast := move.To.Rank() == lastRank(piece.Colour)
	if onLast != (move.Kind == chess.Promotion) {
		// Promotion classification and the destination rank must
		// agree; the parser enforces this for notation input, and the
		// coordinate path re-checks here.
		if move.Kind == chess.Promotion {
			return fmt.Errorf("pawn to %s: %w", move.To, errors.ErrExtraneousPromotion)
		}
		return fmt.Errorf("pawn to %s: %w", move.To, errors.ErrMissingPromotion)
	}
	return nil
}

// validateCastle enforces castling eligibility: the right is intact,
// the rook is on its home square, the path between king and rook is
// empty, and the king neither starts in, passes through, nor lands on
// an attacked square.
func (g *Game) validateCastle(move chess.Move) error {
	colour := g.toMove
	kingside := move.Kind == chess.CastleKingside

	if kingside && !g.rights.Kingside(colour) || !kingside && !g.rights.Queenside(colour) {
		return fmt.Errorf("%s %s: right revoked: %w", colour, move.Kind, errors.ErrInvalidCastle)
	}

	rank := chess.Rank1
	if colour == chess.Black {
		rank = chess.Rank8
	}
	kingFrom := chess.SquareAt(4, rank)
	rookFile := 0
	if kingside {
		rookFile = 7
	}
	rookFrom := chess.SquareAt(rookFile, rank)

	if king := g.board.At(kingFrom); king.Kind != chess.King || king.Colour != colour {
		return fmt.Errorf("%s %s: king not on %s: %w", colour, move.Kind, kingFrom, errors.ErrInvalidCastle)
	}
	if rook := g.board.At(rookFrom); rook.Kind != chess.Rook || rook.Colour != colour {
		return fmt.Errorf("%s %s: rook not on %s: %w", colour, move.Kind, rookFrom, errors.ErrInvalidCastle)
	}

	// Every square strictly between king and rook must be empty.
	step := sign(rookFile - 4)
	for sq := kingFrom.Offset(step, 0); sq != rookFrom; sq = sq.Offset(step, 0) {
		if !g.board.At(sq).IsNone() {
			return fmt.Errorf("%s %s: %s occupied: %w", colour, move.Kind, sq, errors.ErrInvalidCastle)
		}
	}

	// The king may not castle out of, through, or into check.
	enemy := colour.Opposite()
	for _, sq := range []chess.Square{kingFrom, kingFrom.Offset(step, 0), move.To} {
		if chess.SquareAttacked(g.board, sq, enemy) {
			return fmt.Errorf("%s %s: %s attacked: %w", colour, move.Kind, sq, errors.ErrInvalidCastle)
		}
	}

	return nil
}

func patternErr(piece chess.Piece, move chess.Move) error {
	return fmt.Errorf("%s %s to %s: %w", piece.Kind, move.From, move.To, errors.ErrIllegalPattern)
}

func blockedErr(piece chess.Piece, move chess.Move) error {
	return fmt.Errorf("%s %s to %s: %w", piece.Kind, move.From, move.To, errors.ErrBlockedPath)
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
