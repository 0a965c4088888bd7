package engine

import (
	"strings"

	"github.com/tbaxter/chesslib/internal/chess"
)

// sanText synthesizes SAN for a coordinate-submitted move so that
// history export stays uniform whichever submission path produced the
// move. It is computed against the pre-move board.
func (g *Game) sanText(move chess.Move) string {
	switch move.Kind {
	case chess.CastleKingside:
		return "O-O"
	case chess.CastleQueenside:
		return "O-O-O"
	}

	var sb strings.Builder

	if move.Piece.Kind == chess.Pawn {
		if move.IsCapture() {
			sb.WriteByte(byte('a' + move.From.File()))
			sb.WriteByte('x')
		}
		sb.WriteString(move.To.String())
		if move.Kind == chess.Promotion {
			sb.WriteByte('=')
			sb.WriteByte(move.PromoteTo.Letter())
		}
		return sb.String()
	}

	sb.WriteByte(move.Piece.Kind.Letter())
	sb.WriteString(g.sanDisambiguator(move))
	if move.IsCapture() {
		sb.WriteByte('x')
	}
	sb.WriteString(move.To.String())
	return sb.String()
}

// sanDisambiguator returns the minimal source qualifier needed to
// make the move unique among same-kind pieces reaching the same
// destination: file first, rank if the file is shared, both if
// neither alone suffices.
func (g *Game) sanDisambiguator(move chess.Move) string {
	var rivals []chess.Square
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if sq == move.From {
			continue
		}
		p := g.board.At(sq)
		if p.IsNone() || p.Colour != move.Piece.Colour || p.Kind != move.Piece.Kind {
			continue
		}
		if chess.CanPieceReach(g.board, p.Kind, sq, move.To) {
			rivals = append(rivals, sq)
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	fileShared, rankShared := false, false
	for _, sq := range rivals {
		if sq.File() == move.From.File() {
			fileShared = true
		}
		if sq.Rank() == move.From.Rank() {
			rankShared = true
		}
	}

	switch {
	case !fileShared:
		return string([]byte{byte('a' + move.From.File())})
	case !rankShared:
		return string([]byte{byte('1' + move.From.Rank())})
	default:
		return move.From.String()
	}
}
