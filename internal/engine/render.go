package engine

import (
	"strings"

	"github.com/tbaxter/chesslib/internal/chess"
)

// glyph returns the board glyph for a piece: uppercase letters for
// White, lowercase for Black, and a middle dot for empty cells.
func glyph(p chess.Piece) string {
	if p.IsNone() {
		return "·"
	}
	return string(p.FENLetter())
}

// Render returns the human-readable grid of the current board from
// White's perspective. It is a pure function of the board with no
// side effects.
func (g *Game) Render() string {
	return g.RenderFor(chess.White)
}

// RenderFor returns the board grid oriented for the given colour:
// White sees rank 8 at the top and the a-file on the left, Black the
// reverse.
func (g *Game) RenderFor(colour chess.Colour) string {
	var sb strings.Builder

	for row := 0; row < chess.BoardSize; row++ {
		rank := chess.Rank8 - row
		if colour == chess.Black {
			rank = chess.Rank1 + row
		}
		sb.WriteByte(byte('1' + rank))
		sb.WriteString(" |")
		for col := 0; col < chess.BoardSize; col++ {
			file := col
			if colour == chess.Black {
				file = chess.FileH - col
			}
			sb.WriteString(" ")
			sb.WriteString(glyph(g.board.At(chess.SquareAt(file, rank))))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("  +-----------------------\n   ")
	for col := 0; col < chess.BoardSize; col++ {
		file := col
		if colour == chess.Black {
			file = chess.FileH - col
		}
		sb.WriteString(" ")
		sb.WriteByte(byte('a' + file))
		sb.WriteString(" ")
	}
	sb.WriteString("\n")

	return sb.String()
}
