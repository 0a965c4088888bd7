package chess

// MoveKind categorizes the board transition a move performs.
type MoveKind int

const (
	Normal MoveKind = iota
	Capture
	CastleKingside
	CastleQueenside
	EnPassant
	Promotion
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	names := []string{"Normal", "Capture", "CastleKingside", "CastleQueenside", "EnPassant", "Promotion"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Move is an immutable description of one board transition. Moves are
// constructed by the parser, or by the engine when interpreting
// coordinate input, and are stored verbatim in game history. They are
// never edited after construction.
type Move struct {
	// From and To are the source and destination squares. For
	// castling, they describe the king's movement.
	From Square
	To   Square

	// Kind classifies the transition. A promotion that also captures
	// has Kind Promotion with Captured set.
	Kind MoveKind

	// Piece is the piece that moved.
	Piece Piece

	// Captured is the piece removed by the move, or NoPiece.
	Captured Piece

	// PromoteTo is the kind a promoting pawn becomes, NoKind otherwise.
	PromoteTo PieceKind

	// Text is the notation the move was submitted as, e.g. "Nf3".
	Text string
}

// IsCapture reports whether the move removed an enemy piece.
func (m Move) IsCapture() bool {
	return !m.Captured.IsNone() || m.Kind == EnPassant
}

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool {
	return m.Kind == CastleKingside || m.Kind == CastleQueenside
}
