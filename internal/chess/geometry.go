package chess

// Movement geometry over a board: piece patterns, path clearance, and
// attack detection. These are occupancy-only facts shared by the
// notation parser (candidate enumeration) and the engine (legality
// and check detection); neither turn order nor king safety is decided
// here.

var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1},
}

var diagonalDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
var straightDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// CanPieceReach reports whether a non-pawn piece of the given kind
// could move from from to to on this board, honouring path blocking
// for sliding pieces. Pawn movement is direction- and
// capture-dependent and is handled by the callers.
func CanPieceReach(b *Board, kind PieceKind, from, to Square) bool {
	df := abs(to.File() - from.File())
	dr := abs(to.Rank() - from.Rank())
	if df == 0 && dr == 0 {
		return false
	}

	switch kind {
	case Knight:
		return (df == 1 && dr == 2) || (df == 2 && dr == 1)

	case Bishop:
		return df == dr && PathClear(b, from, to)

	case Rook:
		return (df == 0 || dr == 0) && PathClear(b, from, to)

	case Queen:
		return (df == dr || df == 0 || dr == 0) && PathClear(b, from, to)

	case King:
		return df <= 1 && dr <= 1
	}

	return false
}

// PathClear reports whether every square strictly between from and to
// is empty. from and to must share a rank, file, or diagonal.
func PathClear(b *Board, from, to Square) bool {
	df := sign(to.File() - from.File())
	dr := sign(to.Rank() - from.Rank())

	for sq := from.Offset(df, dr); sq != to; sq = sq.Offset(df, dr) {
		if !sq.Valid() || !b.At(sq).IsNone() {
			return false
		}
	}
	return true
}

// SquareAttacked reports whether the given square is attacked by any
// piece of byColour. The occupant of the square itself is ignored.
func SquareAttacked(b *Board, sq Square, byColour Colour) bool {
	// Pawn attacks come from the rank the attacker advances from.
	pawnRank := -PawnDirection(byColour)
	for _, df := range [2]int{-1, 1} {
		p := b.At(sq.Offset(df, pawnRank))
		if p.Kind == Pawn && p.Colour == byColour {
			return true
		}
	}

	for _, off := range knightOffsets {
		p := b.At(sq.Offset(off[0], off[1]))
		if p.Kind == Knight && p.Colour == byColour {
			return true
		}
	}

	for _, off := range kingOffsets {
		p := b.At(sq.Offset(off[0], off[1]))
		if p.Kind == King && p.Colour == byColour {
			return true
		}
	}

	if slidingAttack(b, sq, byColour, diagonalDirs, Bishop) {
		return true
	}
	return slidingAttack(b, sq, byColour, straightDirs, Rook)
}

// slidingAttack scans outward in each direction for the named slider
// or a queen of byColour, stopping at the first occupied square.
func slidingAttack(b *Board, sq Square, byColour Colour, dirs [4][2]int, slider PieceKind) bool {
	for _, dir := range dirs {
		for probe := sq.Offset(dir[0], dir[1]); probe.Valid(); probe = probe.Offset(dir[0], dir[1]) {
			p := b.At(probe)
			if p.IsNone() {
				continue
			}
			if p.Colour == byColour && (p.Kind == slider || p.Kind == Queen) {
				return true
			}
			break // Blocked
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
