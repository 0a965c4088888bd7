package parser

import (
	"fmt"
	"strings"

	"github.com/tbaxter/chesslib/internal/chess"
	"github.com/tbaxter/chesslib/internal/errors"
)

// isFile returns true if c is a valid file character.
func isFile(c byte) bool {
	return c >= 'a' && c <= 'h'
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	return c >= '1' && c <= '8'
}

// isCapture returns true if c is a capture marker or source/dest
// separator. '-' separates without implying a capture.
func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == ':'
}

// isCastlingChar returns true if c is a castling keyword character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

// pieceLetter returns the piece kind declared by c, or NoKind.
// Lowercase letters are not accepted: 'b' is a file, not a bishop.
func pieceLetter(c byte) chess.PieceKind {
	switch c {
	case 'K', 'Q', 'R', 'N', 'B':
		return chess.KindFromLetter(c)
	}
	return chess.NoKind
}

// Tokenize decomposes one move string into a Token. It accepts SAN
// ("e4", "Nf3", "exd5", "Rad1", "e8=Q", "O-O"), long algebraic
// ("e2e4", "Ng1f3") and coordinate input ("e2-e4", "e7xd8=Q").
// Tokenize knows nothing about the position; board-context
// resolution happens in Resolve.
func Tokenize(text string) (Token, error) {
	tok := Token{
		Kind:     chess.Pawn,
		FromFile: -1,
		FromRank: -1,
		To:       chess.NoSquare,
	}

	moveString := strings.TrimSpace(text)
	if moveString == "" {
		return tok, fmt.Errorf("empty move text: %w", errors.ErrUnknownMove)
	}

	pos := 0
	currentChar := func() byte {
		if pos >= len(moveString) {
			return 0
		}
		return moveString[pos]
	}
	advance := func() {
		if pos < len(moveString) {
			pos++
		}
	}

	if isCastlingChar(currentChar()) {
		return tokenizeCastle(moveString)
	}

	if kind := pieceLetter(currentChar()); kind != chess.NoKind {
		tok.Kind = kind
		tok.ExplicitKind = true
		advance()
	}

	// Up to two square fragments: the first becomes a disambiguator
	// when a second follows, otherwise it is the destination.
	var file1, rank1 = -1, -1
	if isFile(currentChar()) {
		file1 = int(currentChar() - 'a')
		advance()
	}
	if isRank(currentChar()) {
		rank1 = int(currentChar() - '1')
		advance()
	}

	if isCapture(currentChar()) {
		tok.Capture = true
		advance()
	} else if currentChar() == '-' {
		advance()
	}

	if isFile(currentChar()) {
		// First fragment was the source (or part of it).
		tok.FromFile = file1
		tok.FromRank = rank1
		file2 := int(currentChar() - 'a')
		advance()
		if !isRank(currentChar()) {
			return tok, fmt.Errorf("move %q: destination: %w", text, errors.ErrMalformedSquare)
		}
		rank2 := int(currentChar() - '1')
		advance()
		tok.To = chess.SquareAt(file2, rank2)
	} else {
		if file1 < 0 || rank1 < 0 {
			return tok, fmt.Errorf("move %q: destination: %w", text, errors.ErrMalformedSquare)
		}
		tok.To = chess.SquareAt(file1, rank1)
	}

	// Promotion: "=Q" or a bare trailing piece letter.
	if currentChar() == '=' {
		advance()
		kind := pieceLetter(currentChar())
		if kind == chess.NoKind || kind == chess.King {
			return tok, fmt.Errorf("move %q: %w", text, errors.ErrExtraneousPromotion)
		}
		tok.PromoteTo = kind
		advance()
	} else if kind := pieceLetter(currentChar()); kind != chess.NoKind && kind != chess.King {
		tok.PromoteTo = kind
		advance()
	}

	for currentChar() == '+' || currentChar() == '#' {
		if currentChar() == '#' {
			tok.Mate = true
		} else {
			tok.Check = true
		}
		advance()
	}

	// Tolerate a trailing en-passant annotation.
	rest := moveString[pos:]
	if rest == "ep" || rest == "e.p." {
		pos = len(moveString)
	}

	if pos != len(moveString) {
		return tok, fmt.Errorf("move %q: trailing %q: %w", text, moveString[pos:], errors.ErrUnknownMove)
	}

	return tok, nil
}

// tokenizeCastle decodes castling keywords: O-O, O-O-O and the 0/o
// spellings, with optional separators and check suffixes.
func tokenizeCastle(moveString string) (Token, error) {
	tok := Token{
		Kind:     chess.King,
		FromFile: -1,
		FromRank: -1,
		To:       chess.NoSquare,
	}

	s := moveString
	for s != "" && (s[len(s)-1] == '+' || s[len(s)-1] == '#') {
		if s[len(s)-1] == '#' {
			tok.Mate = true
		} else {
			tok.Check = true
		}
		s = s[:len(s)-1]
	}

	count := 0
	for i := 0; i < len(s); i++ {
		switch {
		case isCastlingChar(s[i]):
			count++
		case s[i] == '-':
			// separator
		default:
			return tok, fmt.Errorf("move %q: %w", moveString, errors.ErrUnknownMove)
		}
	}

	switch count {
	case 2:
		tok.Castle = chess.CastleKingside
	case 3:
		tok.Castle = chess.CastleQueenside
	default:
		return tok, fmt.Errorf("move %q: %w", moveString, errors.ErrUnknownMove)
	}
	return tok, nil
}
