package engine

import (
	"github.com/tbaxter/chesslib/internal/chess"
)

// apply commits a validated move: it mutates the real board, updates
// castling rights, the en-passant target, both clocks, appends the
// move to history, flips the active colour, and advances the state
// machine. apply must only be called after validate has accepted the
// move.
func (g *Game) apply(move chess.Move) {
	colour := g.toMove

	applyToBoard(g.board, move, colour)
	g.updateRights(move, colour)

	// The en-passant target survives exactly one ply, set only by a
	// qualifying double pawn advance.
	g.epTarget = chess.NoSquare
	if move.Piece.Kind == chess.Pawn && abs(move.To.Rank()-move.From.Rank()) == 2 {
		g.epTarget = move.From.Offset(0, chess.PawnDirection(colour))
	}

	if move.Piece.Kind == chess.Pawn || move.IsCapture() {
		g.halfmove = 0
	} else {
		g.halfmove++
	}
	if colour == chess.Black {
		g.fullmove++
	}

	g.history = append(g.history, move)
	g.toMove = colour.Opposite()

	repetitions := g.reps.Record(g.positionHash())
	g.status = g.evaluateTerminal(repetitions)
}

// applyToBoard performs the raw board mutation for a move. It is used
// both for the real application and for scratch-copy simulation.
func applyToBoard(board *chess.Board, move chess.Move, colour chess.Colour) {
	switch move.Kind {
	case chess.CastleKingside, chess.CastleQueenside:
		rank := move.From.Rank()
		rookFrom, rookTo := 0, 3 // a-file rook to d-file
		if move.Kind == chess.CastleKingside {
			rookFrom, rookTo = 7, 5 // h-file rook to f-file
		}
		board.Relocate(move.From, move.To)
		board.Relocate(chess.SquareAt(rookFrom, rank), chess.SquareAt(rookTo, rank))

	case chess.EnPassant:
		board.Relocate(move.From, move.To)
		board.Place(move.To.Offset(0, -chess.PawnDirection(colour)), chess.NoPiece)

	case chess.Promotion:
		board.Relocate(move.From, move.To)
		board.Place(move.To, chess.Piece{Kind: move.PromoteTo, Colour: colour})

	default:
		board.Relocate(move.From, move.To)
	}
}

// updateRights revokes castling permissions: moving the king revokes
// both of the mover's rights, moving a rook off its home square
// revokes that side, and capturing a rook on its home square revokes
// the opponent's corresponding right.
func (g *Game) updateRights(move chess.Move, colour chess.Colour) {
	switch move.Piece.Kind {
	case chess.King:
		g.rights.Revoke(colour)
	case chess.Rook:
		homeRank := chess.Rank1
		if colour == chess.Black {
			homeRank = chess.Rank8
		}
		if move.From.Rank() == homeRank {
			if move.From.File() == 0 {
				g.rights.RevokeQueenside(colour)
			} else if move.From.File() == 7 {
				g.rights.RevokeKingside(colour)
			}
		}
	}

	if move.Captured.Kind == chess.Rook {
		enemy := colour.Opposite()
		enemyHome := chess.Rank1
		if enemy == chess.Black {
			enemyHome = chess.Rank8
		}
		if move.To.Rank() == enemyHome {
			if move.To.File() == 0 {
				g.rights.RevokeQueenside(enemy)
			} else if move.To.File() == 7 {
				g.rights.RevokeKingside(enemy)
			}
		}
	}
}

// evaluateTerminal decides the state the game advances to after a
// committed move, checked in order: checkmate, stalemate, then the
// automatic draw conditions.
func (g *Game) evaluateTerminal(repetitions int) GameStatus {
	next := g.toMove
	inCheck := g.inCheck(next)

	if !g.hasLegalMoves(next) {
		if inCheck {
			return GameStatus{State: Checkmate, Colour: next}
		}
		return GameStatus{State: Stalemate}
	}

	switch {
	case g.insufficientMaterial():
		return GameStatus{State: Drawn, Reason: InsufficientMaterial}
	case g.halfmove >= 100:
		return GameStatus{State: Drawn, Reason: FiftyMoveRule}
	case repetitions >= 3:
		return GameStatus{State: Drawn, Reason: ThreefoldRepetition}
	}

	return GameStatus{State: AwaitingMove, Colour: next, InCheck: inCheck}
}

// inCheck reports whether the given colour's king is attacked.
func (g *Game) inCheck(colour chess.Colour) bool {
	kingSq := g.board.FindKing(colour)
	if !kingSq.Valid() {
		return false
	}
	return chess.SquareAttacked(g.board, kingSq, colour.Opposite())
}
