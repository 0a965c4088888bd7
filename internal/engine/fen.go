package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/tbaxter/chesslib/internal/chess"
	"github.com/tbaxter/chesslib/internal/errors"
	"github.com/tbaxter/chesslib/internal/hashing"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewGameFromFEN creates a game from a FEN string, for custom setups,
// variants, and tests. Fields beyond piece placement are optional and
// default to the standard-start values.
func NewGameFromFEN(fen string) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	g := &Game{
		board:    chess.NewBoard(),
		toMove:   chess.White,
		epTarget: chess.NoSquare,
		fullmove: 1,
		reps:     hashing.NewRepetitionCounter(),
		white:    chess.NewPlayer(chess.White),
		black:    chess.NewPlayer(chess.Black),
	}

	if err := parsePlacement(g.board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(g, parts); err != nil {
		return nil, err
	}
	parseCastlingField(g, parts)
	if err := parseEnPassantField(g, parts); err != nil {
		return nil, err
	}
	if err := parseClockFields(g, parts); err != nil {
		return nil, err
	}

	g.status = g.initialStatus()
	g.reps.Record(g.positionHash())
	return g, nil
}

// initialStatus evaluates the loaded position: a FEN may already
// describe a finished game (mate or stalemate on the board, a dead
// position, or an exhausted halfmove clock).
func (g *Game) initialStatus() GameStatus {
	inCheck := g.inCheck(g.toMove)
	if !g.hasLegalMoves(g.toMove) {
		if inCheck {
			return GameStatus{State: Checkmate, Colour: g.toMove}
		}
		return GameStatus{State: Stalemate}
	}
	if g.insufficientMaterial() {
		return GameStatus{State: Drawn, Reason: InsufficientMaterial}
	}
	if g.halfmove >= 100 {
		return GameStatus{State: Drawn, Reason: FiftyMoveRule}
	}
	return GameStatus{State: AwaitingMove, Colour: g.toMove, InCheck: inCheck}
}

// parsePlacement fills the board from the piece placement field.
func parsePlacement(board *chess.Board, placement string) error {
	rank := chess.Rank8
	file := chess.FileA

	for _, c := range placement {
		switch {
		case c == '/':
			rank--
			file = chess.FileA
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			kind := chess.KindFromLetter(byte(unicode.ToUpper(c)))
			if kind == chess.NoKind {
				return fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidFEN)
			}
			sq := chess.SquareAt(file, rank)
			if !sq.Valid() {
				return fmt.Errorf("placement out of bounds: %w", errors.ErrInvalidFEN)
			}
			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			board.Place(sq, chess.Piece{Kind: kind, Colour: colour})
			file++
		}
	}
	return nil
}

// parseSideToMove reads the active-colour field.
func parseSideToMove(g *Game, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		g.toMove = chess.White
	case "b":
		g.toMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move %q: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingField reads the castling availability field. A right
// is granted only when listed; an absent field grants none beyond
// what the placement supports.
func parseCastlingField(g *Game, parts []string) {
	g.rights = chess.CastlingRights{}
	if len(parts) < 3 {
		return
	}
	for _, c := range parts[2] {
		switch c {
		case 'K':
			g.rights.WhiteKingside = true
		case 'Q':
			g.rights.WhiteQueenside = true
		case 'k':
			g.rights.BlackKingside = true
		case 'q':
			g.rights.BlackQueenside = true
		}
	}
}

// parseEnPassantField reads the en-passant target field.
func parseEnPassantField(g *Game, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant field %q: %w", parts[3], errors.ErrInvalidFEN)
	}
	g.epTarget = sq
	return nil
}

// parseClockFields reads the halfmove clock and fullmove number.
func parseClockFields(g *Game, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("halfmove clock %q: %w", parts[4], errors.ErrInvalidFEN)
		}
		g.halfmove = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("fullmove number %q: %w", parts[5], errors.ErrInvalidFEN)
		}
		g.fullmove = n
	}
	return nil
}

// FEN exports the current position as a FEN string.
func (g *Game) FEN() string {
	var sb strings.Builder

	for rank := chess.Rank8; rank >= chess.Rank1; rank-- {
		empty := 0
		for file := chess.FileA; file <= chess.FileH; file++ {
			p := g.board.At(chess.SquareAt(file, rank))
			if p.IsNone() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.FENLetter())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > chess.Rank1 {
			sb.WriteByte('/')
		}
	}

	side := "w"
	if g.toMove == chess.Black {
		side = "b"
	}

	fmt.Fprintf(&sb, " %s %s %s %d %d",
		side, g.rights.FEN(), g.epTarget, g.halfmove, g.fullmove)
	return sb.String()
}
