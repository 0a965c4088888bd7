// Package hashing provides Zobrist hashing of chess positions.
// Two positions hash equal exactly when they agree on piece
// placement, side to move, castling rights, and en-passant target,
// which is the identity the repetition draw rule counts.
package hashing

import "github.com/tbaxter/chesslib/internal/chess"

var (
	pieceKeys    [2][7][chess.NumSquares]uint64 // [colour][kind][square]
	castlingKeys [4]uint64
	epFileKeys   [chess.BoardSize]uint64
	sideKey      uint64
)

func init() {
	// Deterministic keys from a fixed-seed splitmix64 stream, so
	// hashes are stable across runs and processes.
	s := uint64(0x9e3779b97f4a7c15)
	next := func() uint64 {
		s += 0x9e3779b97f4a7c15
		z := s
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		return z ^ (z >> 31)
	}

	for colour := 0; colour < 2; colour++ {
		for kind := 1; kind < 7; kind++ {
			for sq := 0; sq < chess.NumSquares; sq++ {
				pieceKeys[colour][kind][sq] = next()
			}
		}
	}
	for i := range castlingKeys {
		castlingKeys[i] = next()
	}
	for i := range epFileKeys {
		epFileKeys[i] = next()
	}
	sideKey = next()
}

// Position computes the Zobrist hash of a position.
func Position(board *chess.Board, toMove chess.Colour, rights chess.CastlingRights, epTarget chess.Square) uint64 {
	var h uint64

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		p := board.At(sq)
		if p.IsNone() {
			continue
		}
		h ^= pieceKeys[p.Colour][p.Kind][sq]
	}

	if rights.WhiteKingside {
		h ^= castlingKeys[0]
	}
	if rights.WhiteQueenside {
		h ^= castlingKeys[1]
	}
	if rights.BlackKingside {
		h ^= castlingKeys[2]
	}
	if rights.BlackQueenside {
		h ^= castlingKeys[3]
	}

	if epTarget.Valid() {
		h ^= epFileKeys[epTarget.File()]
	}

	if toMove == chess.White {
		h ^= sideKey
	}

	return h
}

// RepetitionCounter counts how many times each position has occurred
// in a game, for the threefold-repetition draw rule.
type RepetitionCounter struct {
	counts map[uint64]int
}

// NewRepetitionCounter returns an empty counter.
func NewRepetitionCounter() *RepetitionCounter {
	return &RepetitionCounter{counts: make(map[uint64]int)}
}

// Record notes one occurrence of the position hash and returns the
// total occurrence count including this one.
func (rc *RepetitionCounter) Record(hash uint64) int {
	rc.counts[hash]++
	return rc.counts[hash]
}

// Count returns how many times the position hash has occurred.
func (rc *RepetitionCounter) Count(hash uint64) int {
	return rc.counts[hash]
}

// Reset clears all recorded positions.
func (rc *RepetitionCounter) Reset() {
	rc.counts = make(map[uint64]int)
}
