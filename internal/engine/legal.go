package engine

import (
	"github.com/tbaxter/chesslib/internal/chess"
)

var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1},
}

// hasLegalMoves reports whether the given colour has at least one
// legal move. Castling is ignored: a position where castling is legal
// always offers the king a plain one-square move as well, and a
// blocked pawn's promotion choice never changes whether the advance
// itself is legal.
func (g *Game) hasLegalMoves(colour chess.Colour) bool {
	for from := chess.Square(0); from < chess.NumSquares; from++ {
		p := g.board.At(from)
		if p.IsNone() || p.Colour != colour {
			continue
		}
		if g.pieceHasLegalMove(from, p) {
			return true
		}
	}
	return false
}

// pieceHasLegalMove checks whether the piece on from has any move
// that does not leave its own king in check.
func (g *Game) pieceHasLegalMove(from chess.Square, p chess.Piece) bool {
	switch p.Kind {
	case chess.Pawn:
		return g.pawnHasLegalMove(from, p.Colour)

	case chess.Knight:
		return g.stepperHasLegalMove(from, p.Colour, knightOffsets)

	case chess.King:
		return g.stepperHasLegalMove(from, p.Colour, kingOffsets)

	case chess.Bishop:
		return g.sliderHasLegalMove(from, p.Colour, diagonalDirs[:])

	case chess.Rook:
		return g.sliderHasLegalMove(from, p.Colour, straightDirs[:])

	case chess.Queen:
		return g.sliderHasLegalMove(from, p.Colour, diagonalDirs[:]) ||
			g.sliderHasLegalMove(from, p.Colour, straightDirs[:])
	}
	return false
}

var diagonalDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
var straightDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// pawnHasLegalMove tries the pawn's advances, captures, and the
// en-passant capture.
func (g *Game) pawnHasLegalMove(from chess.Square, colour chess.Colour) bool {
	dir := chess.PawnDirection(colour)

	if to := from.Offset(0, dir); to.Valid() && g.board.At(to).IsNone() {
		if g.tryMove(from, to, colour, chess.Normal) {
			return true
		}
		if from.Rank() == startRank(colour) {
			if to2 := from.Offset(0, 2*dir); to2.Valid() && g.board.At(to2).IsNone() {
				if g.tryMove(from, to2, colour, chess.Normal) {
					return true
				}
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		to := from.Offset(df, dir)
		if !to.Valid() {
			continue
		}
		target := g.board.At(to)
		if !target.IsNone() && target.Colour != colour {
			if g.tryMove(from, to, colour, chess.Normal) {
				return true
			}
		}
		if to == g.epTarget {
			if g.tryMove(from, to, colour, chess.EnPassant) {
				return true
			}
		}
	}
	return false
}

// stepperHasLegalMove tries each single-step target for knights and
// kings.
func (g *Game) stepperHasLegalMove(from chess.Square, colour chess.Colour, offsets [8][2]int) bool {
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if !to.Valid() {
			continue
		}
		target := g.board.At(to)
		if !target.IsNone() && target.Colour == colour {
			continue
		}
		if g.tryMove(from, to, colour, chess.Normal) {
			return true
		}
	}
	return false
}

// sliderHasLegalMove walks each ray until blocked, trying every
// reachable square.
func (g *Game) sliderHasLegalMove(from chess.Square, colour chess.Colour, dirs [][2]int) bool {
	for _, dir := range dirs {
		for to := from.Offset(dir[0], dir[1]); to.Valid(); to = to.Offset(dir[0], dir[1]) {
			target := g.board.At(to)
			if !target.IsNone() {
				if target.Colour != colour && g.tryMove(from, to, colour, chess.Normal) {
					return true
				}
				break // Blocked
			}
			if g.tryMove(from, to, colour, chess.Normal) {
				return true
			}
		}
	}
	return false
}

// tryMove simulates a candidate on a scratch board and reports
// whether the mover's king survives out of check.
func (g *Game) tryMove(from, to chess.Square, colour chess.Colour, kind chess.MoveKind) bool {
	scratch := g.board.Copy()
	move := chess.Move{From: from, To: to, Kind: kind, Piece: scratch.At(from)}
	applyToBoard(scratch, move, colour)

	kingSq := scratch.FindKing(colour)
	if !kingSq.Valid() {
		return false
	}
	return !chess.SquareAttacked(scratch, kingSq, colour.Opposite())
}

// insufficientMaterial reports whether neither side can possibly
// deliver mate: bare kings, a lone minor piece, or same-coloured
// bishops only.
func (g *Game) insufficientMaterial() bool {
	var whiteMinors, blackMinors []chess.PieceKind
	var whiteBishopLight, blackBishopLight bool

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		p := g.board.At(sq)
		if p.IsNone() || p.Kind == chess.King {
			continue
		}

		// Any pawn, rook, or queen is mating material.
		switch p.Kind {
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		}

		if p.Colour == chess.White {
			whiteMinors = append(whiteMinors, p.Kind)
			if p.Kind == chess.Bishop {
				whiteBishopLight = sq.IsLight()
			}
		} else {
			blackMinors = append(blackMinors, p.Kind)
			if p.Kind == chess.Bishop {
				blackBishopLight = sq.IsLight()
			}
		}
	}

	// K vs K.
	if len(whiteMinors) == 0 && len(blackMinors) == 0 {
		return true
	}

	// K+B vs K or K+N vs K.
	if len(whiteMinors) == 0 && len(blackMinors) == 1 {
		return true
	}
	if len(blackMinors) == 0 && len(whiteMinors) == 1 {
		return true
	}

	// K+B vs K+B with both bishops on the same square colour.
	if len(whiteMinors) == 1 && len(blackMinors) == 1 &&
		whiteMinors[0] == chess.Bishop && blackMinors[0] == chess.Bishop {
		return whiteBishopLight == blackBishopLight
	}

	return false
}
