package parser

import (
	"fmt"

	"github.com/tbaxter/chesslib/internal/chess"
	"github.com/tbaxter/chesslib/internal/errors"
)

// Parse converts move text into a fully resolved Move for the active
// colour. board and epTarget supply the context needed to pick the
// one piece the text describes; neither is mutated.
func Parse(text string, board *chess.Board, active chess.Colour, epTarget chess.Square) (chess.Move, error) {
	tok, err := Tokenize(text)
	if err != nil {
		return chess.Move{}, err
	}
	move, err := Resolve(tok, board, active, epTarget)
	if err != nil {
		return chess.Move{}, err
	}
	move.Text = text
	return move, nil
}

// Resolve maps a token onto the single board transition it describes.
// It enumerates the active colour's pieces of the declared kind whose
// pseudo-legal movement reaches the destination, subject to the given
// disambiguators. Exactly one candidate must remain.
func Resolve(tok Token, board *chess.Board, active chess.Colour, epTarget chess.Square) (chess.Move, error) {
	if tok.Castle != chess.Normal {
		return resolveCastle(tok, active)
	}

	if !tok.To.Valid() {
		return chess.Move{}, errors.ErrMalformedSquare
	}

	// Coordinate input names a square, not a piece: the occupant of
	// the fully specified source decides the kind.
	if tok.HasSource() && !tok.ExplicitKind {
		if p := board.At(chess.SquareAt(tok.FromFile, tok.FromRank)); !p.IsNone() {
			tok.Kind = p.Kind
		}
	}

	candidates := findCandidates(tok, board, active, epTarget)
	switch len(candidates) {
	case 0:
		return chess.Move{}, fmt.Errorf("%s to %s: %w", tok.Kind, tok.To, errors.ErrUnknownMove)
	case 1:
		// resolved
	default:
		return chess.Move{}, fmt.Errorf("%s to %s: %d candidates: %w",
			tok.Kind, tok.To, len(candidates), errors.ErrAmbiguousMove)
	}

	from := candidates[0]
	return buildMove(tok, board, active, from, epTarget)
}

// findCandidates returns every source square holding a piece of the
// active colour and declared kind that can reach the destination,
// after applying the file and rank disambiguators.
func findCandidates(tok Token, board *chess.Board, active chess.Colour, epTarget chess.Square) []chess.Square {
	var candidates []chess.Square
	for from := chess.Square(0); from < chess.NumSquares; from++ {
		p := board.At(from)
		if p.IsNone() || p.Colour != active || p.Kind != tok.Kind {
			continue
		}
		if tok.FromFile >= 0 && from.File() != tok.FromFile {
			continue
		}
		if tok.FromRank >= 0 && from.Rank() != tok.FromRank {
			continue
		}
		if reaches(board, p, from, tok, epTarget) {
			candidates = append(candidates, from)
		}
	}
	return candidates
}

// reaches reports whether the piece on from could make the tokenized
// move to tok.To under its pseudo-legal movement pattern.
func reaches(board *chess.Board, p chess.Piece, from chess.Square, tok Token, epTarget chess.Square) bool {
	if p.Kind != chess.Pawn {
		return chess.CanPieceReach(board, p.Kind, from, tok.To)
	}
	return pawnReaches(board, p.Colour, from, tok, epTarget)
}

// pawnReaches handles the pawn's asymmetric pattern: straight
// advances onto empty squares only, diagonal steps only when
// capturing (including onto the en-passant target).
func pawnReaches(board *chess.Board, colour chess.Colour, from chess.Square, tok Token, epTarget chess.Square) bool {
	dir := chess.PawnDirection(colour)
	to := tok.To
	df := to.File() - from.File()
	dr := to.Rank() - from.Rank()

	// Diagonal capture.
	if (df == 1 || df == -1) && dr == dir {
		target := board.At(to)
		if !target.IsNone() && target.Colour != colour {
			return true
		}
		return to == epTarget
	}

	if df != 0 || tok.Capture {
		return false
	}

	// Single advance.
	if dr == dir {
		return board.At(to).IsNone()
	}

	// Double advance from the starting rank over an empty path.
	startRank := chess.Rank1 + 1
	if colour == chess.Black {
		startRank = chess.Rank8 - 1
	}
	if dr == 2*dir && from.Rank() == startRank {
		return board.At(from.Offset(0, dir)).IsNone() && board.At(to).IsNone()
	}

	return false
}

// buildMove classifies the resolved transition and enforces the
// promotion rule: a promotion suffix is required on the last rank and
// forbidden everywhere else.
func buildMove(tok Token, board *chess.Board, active chess.Colour, from, epTarget chess.Square) (chess.Move, error) {
	piece := board.At(from)
	captured := board.At(tok.To)
	move := chess.Move{
		From:     from,
		To:       tok.To,
		Kind:     chess.Normal,
		Piece:    piece,
		Captured: captured,
	}
	if !captured.IsNone() {
		move.Kind = chess.Capture
	}

	if piece.Kind == chess.Pawn {
		if tok.To == epTarget && tok.To.File() != from.File() {
			move.Kind = chess.EnPassant
			move.Captured = board.At(tok.To.Offset(0, -chess.PawnDirection(active)))
		}

		lastRank := chess.Rank8
		if active == chess.Black {
			lastRank = chess.Rank1
		}
		if tok.To.Rank() == lastRank {
			if tok.PromoteTo == chess.NoKind {
				return chess.Move{}, fmt.Errorf("pawn to %s: %w", tok.To, errors.ErrMissingPromotion)
			}
			move.Kind = chess.Promotion
			move.PromoteTo = tok.PromoteTo
			return move, nil
		}
	}

	if tok.PromoteTo != chess.NoKind {
		return chess.Move{}, fmt.Errorf("%s to %s: %w", piece.Kind, tok.To, errors.ErrExtraneousPromotion)
	}
	return move, nil
}

// resolveCastle maps a castling token onto the active colour's king
// movement. Eligibility is the engine's concern; the parser only
// fixes the squares.
func resolveCastle(tok Token, active chess.Colour) (chess.Move, error) {
	rank := chess.Rank1
	if active == chess.Black {
		rank = chess.Rank8
	}

	kingFile := 4 // e-file
	toFile := 6   // g-file
	if tok.Castle == chess.CastleQueenside {
		toFile = 2 // c-file
	}

	return chess.Move{
		From:  chess.SquareAt(kingFile, rank),
		To:    chess.SquareAt(toFile, rank),
		Kind:  tok.Castle,
		Piece: chess.Piece{Kind: chess.King, Colour: active},
	}, nil
}
