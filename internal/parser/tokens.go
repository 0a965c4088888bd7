// Package parser converts textual move notation into structured move
// descriptions, resolving ambiguity against board context. Parsing
// reads game state but never mutates it.
package parser

import "github.com/tbaxter/chesslib/internal/chess"

// Token is the structural decomposition of one move string before
// board-context resolution: which piece kind moved, any source
// disambiguators the writer supplied, and the destination.
type Token struct {
	// Castle is CastleKingside or CastleQueenside for castling
	// keywords, and Normal otherwise.
	Castle chess.MoveKind

	// Kind is the declared piece kind; Pawn when no letter was given.
	// ExplicitKind records whether a piece letter was actually
	// written: coordinate input ("g1f3") declares no kind, and the
	// occupant of the source square settles it during resolution.
	Kind         chess.PieceKind
	ExplicitKind bool

	// FromFile and FromRank are 0-based source disambiguators, -1
	// when absent. Both present means a fully specified source
	// (long-algebraic or coordinate input).
	FromFile int
	FromRank int

	// Capture is true when the text carried a capture marker.
	Capture bool

	// To is the destination square.
	To chess.Square

	// PromoteTo is the declared promotion kind, NoKind when absent.
	PromoteTo chess.PieceKind

	// Check and Mate record trailing "+" / "#" suffixes.
	Check bool
	Mate  bool
}

// HasSource reports whether the token fully specifies its source square.
func (t Token) HasSource() bool {
	return t.FromFile >= 0 && t.FromRank >= 0
}
