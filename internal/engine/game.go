package engine

import (
	"fmt"
	"strings"

	"github.com/tbaxter/chesslib/internal/chess"
	"github.com/tbaxter/chesslib/internal/errors"
	"github.com/tbaxter/chesslib/internal/hashing"
	"github.com/tbaxter/chesslib/internal/parser"
)

// Game is one chess session: the board, its metadata, and the move
// history, advanced exclusively through SubmitMove and its coordinate
// twin. A Game is not safe for concurrent use; each session must be
// exclusively owned by one execution context at a time.
type Game struct {
	board    *chess.Board
	toMove   chess.Colour
	history  []chess.Move
	rights   chess.CastlingRights
	epTarget chess.Square
	halfmove int // plies since the last capture or pawn advance
	fullmove int
	status   GameStatus
	reps     *hashing.RepetitionCounter
	white    chess.Player
	black    chess.Player
}

// NewGame returns a game at the standard starting position with
// anonymous players.
func NewGame() *Game {
	return NewGameWithPlayers(
		chess.NewPlayer(chess.White),
		chess.NewPlayer(chess.Black),
	)
}

// NewGameWithPlayers returns a game at the standard starting position
// attributed to the given players.
func NewGameWithPlayers(white, black chess.Player) *Game {
	g := &Game{
		board:    chess.StandardBoard(),
		toMove:   chess.White,
		rights:   chess.AllCastlingRights(),
		epTarget: chess.NoSquare,
		fullmove: 1,
		reps:     hashing.NewRepetitionCounter(),
		white:    white,
		black:    black,
	}
	g.status = GameStatus{State: AwaitingMove, Colour: chess.White}
	g.reps.Record(g.positionHash())
	return g
}

// SubmitMove parses, validates, and applies one move given as text.
// On any failure the game is left exactly as it was: parsing and
// validation work on the live board read-only, and mutation happens
// only after a scratch-copy simulation has proven the move legal.
func (g *Game) SubmitMove(text string) (MoveOutcome, error) {
	if g.status.Terminal() {
		return MoveOutcome{}, &errors.MoveError{
			Err:      errors.ErrGameOver,
			Ply:      len(g.history) + 1,
			MoveText: text,
		}
	}

	move, err := parser.Parse(text, g.board, g.toMove, g.epTarget)
	if err != nil {
		return MoveOutcome{}, err
	}

	if err := g.validate(move); err != nil {
		return MoveOutcome{}, &errors.MoveError{
			Err:      err,
			Ply:      len(g.history) + 1,
			MoveText: text,
		}
	}

	g.apply(move)
	return MoveOutcome{Move: g.history[len(g.history)-1], Status: g.status}, nil
}

// SubmitSquares is the coordinate-based submission path used by
// pointer-driven front ends: it interprets a from/to pair (plus a
// promotion choice when the move reaches the last rank) as the
// equivalent move and runs it through the same validation pipeline.
func (g *Game) SubmitSquares(from, to chess.Square, promote chess.PieceKind) (MoveOutcome, error) {
	if g.status.Terminal() {
		return MoveOutcome{}, &errors.MoveError{Err: errors.ErrGameOver, Ply: len(g.history) + 1}
	}

	move, err := g.interpretSquares(from, to, promote)
	if err != nil {
		return MoveOutcome{}, &errors.MoveError{
			Err:      err,
			Ply:      len(g.history) + 1,
			MoveText: from.String() + to.String(),
		}
	}

	if err := g.validate(move); err != nil {
		return MoveOutcome{}, &errors.MoveError{
			Err:      err,
			Ply:      len(g.history) + 1,
			MoveText: move.Text,
		}
	}

	g.apply(move)
	return MoveOutcome{Move: g.history[len(g.history)-1], Status: g.status}, nil
}

// interpretSquares constructs the Move a from/to pair describes,
// classifying castling, en passant, captures, and promotions from
// board context. The resulting move still passes full validation.
func (g *Game) interpretSquares(from, to chess.Square, promote chess.PieceKind) (chess.Move, error) {
	piece, err := g.board.Occupant(from)
	if err != nil {
		return chess.Move{}, err
	}
	if !to.Valid() {
		return chess.Move{}, fmt.Errorf("square %d: %w", int(to), errors.ErrOutOfRange)
	}
	if piece.IsNone() {
		return chess.Move{}, fmt.Errorf("square %s: %w", from, errors.ErrEmptySource)
	}
	if piece.Colour != g.toMove {
		return chess.Move{}, fmt.Errorf("%s piece on %s: %w", piece.Colour, from, errors.ErrWrongTurn)
	}

	move := chess.Move{
		From:     from,
		To:       to,
		Kind:     chess.Normal,
		Piece:    piece,
		Captured: g.board.At(to),
	}
	if !move.Captured.IsNone() {
		move.Kind = chess.Capture
	}

	switch {
	case piece.Kind == chess.King && from.Rank() == to.Rank() && abs(to.File()-from.File()) == 2:
		if to.File() > from.File() {
			move.Kind = chess.CastleKingside
		} else {
			move.Kind = chess.CastleQueenside
		}
		move.Captured = chess.NoPiece

	case piece.Kind == chess.Pawn && to == g.epTarget && to.File() != from.File():
		move.Kind = chess.EnPassant
		move.Captured = g.board.At(to.Offset(0, -chess.PawnDirection(g.toMove)))

	case piece.Kind == chess.Pawn && to.Rank() == lastRank(g.toMove):
		if promote == chess.NoKind {
			return chess.Move{}, fmt.Errorf("pawn to %s: %w", to, errors.ErrMissingPromotion)
		}
		move.Kind = chess.Promotion
		move.PromoteTo = promote
	}

	if move.Kind != chess.Promotion && promote != chess.NoKind {
		return chess.Move{}, fmt.Errorf("%s to %s: %w", piece.Kind, to, errors.ErrExtraneousPromotion)
	}

	move.Text = g.sanText(move)
	return move, nil
}

// Status returns the current state of the game. It is read-only and
// idempotent.
func (g *Game) Status() GameStatus {
	return g.status
}

// History returns the committed moves in order. The returned slice is
// a copy; history is append-only and never reordered.
func (g *Game) History() []chess.Move {
	out := make([]chess.Move, len(g.history))
	copy(out, g.history)
	return out
}

// MoveText exports the history as a single numbered, space-separated
// line, e.g. "1. e4 e5 2. Nf3 Nc6".
func (g *Game) MoveText() string {
	var sb strings.Builder
	for i, move := range g.history {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if i%2 == 0 {
			fmt.Fprintf(&sb, "%d. ", i/2+1)
		}
		sb.WriteString(move.Text)
	}
	return sb.String()
}

// Players returns the white and black player records.
func (g *Game) Players() (white, black chess.Player) {
	return g.white, g.black
}

// SetPlayers attributes the game to the given players. It affects
// display only and may be called at any point.
func (g *Game) SetPlayers(white, black chess.Player) {
	g.white = white
	g.black = black
}

// HalfmoveClock returns the number of plies since the last capture or
// pawn advance.
func (g *Game) HalfmoveClock() int {
	return g.halfmove
}

// FullmoveNumber returns the current full move number, starting at 1.
func (g *Game) FullmoveNumber() int {
	return g.fullmove
}

// CastlingRights returns the current castling permissions.
func (g *Game) CastlingRights() chess.CastlingRights {
	return g.rights
}

// EnPassantTarget returns the current en-passant target square, or
// NoSquare when none is set.
func (g *Game) EnPassantTarget() chess.Square {
	return g.epTarget
}

// Occupant exposes read-only board lookup for front ends.
func (g *Game) Occupant(sq chess.Square) (chess.Piece, error) {
	return g.board.Occupant(sq)
}

// AgreeDraw ends the game as a draw by agreement. It fails with
// ErrGameOver if the game is already over.
func (g *Game) AgreeDraw() error {
	if g.status.Terminal() {
		return errors.ErrGameOver
	}
	g.status = GameStatus{State: Drawn, Reason: Agreement}
	return nil
}

// Resign ends the game as a win for the opponent of colour. It fails
// with ErrGameOver if the game is already over.
func (g *Game) Resign(colour chess.Colour) error {
	if g.status.Terminal() {
		return errors.ErrGameOver
	}
	g.status = GameStatus{State: Resigned, Colour: colour}
	return nil
}

// positionHash returns the Zobrist hash of the current position.
func (g *Game) positionHash() uint64 {
	return hashing.Position(g.board, g.toMove, g.rights, g.epTarget)
}

// lastRank returns the promotion rank for the given colour.
func lastRank(colour chess.Colour) int {
	if colour == chess.White {
		return chess.Rank8
	}
	return chess.Rank1
}

// startRank returns the pawn starting rank for the given colour.
func startRank(colour chess.Colour) int {
	if colour == chess.White {
		return chess.Rank1 + 1
	}
	return chess.Rank8 - 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
