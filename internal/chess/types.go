// Package chess provides the core chess types: colours, pieces,
// squares, moves, the board, and player records.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceKind represents a chess piece type. The zero value NoKind
// marks the absence of a piece.
type PieceKind int

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the SAN letter for a piece kind (uppercase).
// Pawns have no letter in SAN; 'P' is returned for FEN use.
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter returns the piece kind for an uppercase SAN letter,
// or NoKind if the letter names no piece.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'P':
		return Pawn
	case 'N':
		return Knight
	case 'B':
		return Bishop
	case 'R':
		return Rook
	case 'Q':
		return Queen
	case 'K':
		return King
	}
	return NoKind
}

// Piece is a piece kind paired with a colour. The zero value is
// NoPiece, the empty-cell value; emptiness is not a piece kind.
type Piece struct {
	Kind   PieceKind
	Colour Colour
}

// NoPiece is the empty-cell value.
var NoPiece = Piece{}

// IsNone reports whether p is the empty-cell value.
func (p Piece) IsNone() bool {
	return p.Kind == NoKind
}

// String returns e.g. "White Knight", or "None" for NoPiece.
func (p Piece) String() string {
	if p.IsNone() {
		return "None"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// FENLetter returns the one-letter FEN representation of the piece:
// uppercase for White, lowercase for Black.
func (p Piece) FENLetter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// W creates a white piece of the given kind.
func W(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece of the given kind.
func B(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// PawnDirection returns the rank delta a pawn of the given colour
// advances by: +1 for White, -1 for Black.
func PawnDirection(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}
