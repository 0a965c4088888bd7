package chess

// CastlingRights tracks the four independent castling permissions.
// A right is revoked permanently once its king or rook moves, or the
// rook is captured on its home square.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights returns the rights of the standard starting
// position, with all four permissions intact.
func AllCastlingRights() CastlingRights {
	return CastlingRights{
		WhiteKingside:  true,
		WhiteQueenside: true,
		BlackKingside:  true,
		BlackQueenside: true,
	}
}

// Kingside returns the kingside right for the given colour.
func (r CastlingRights) Kingside(colour Colour) bool {
	if colour == White {
		return r.WhiteKingside
	}
	return r.BlackKingside
}

// Queenside returns the queenside right for the given colour.
func (r CastlingRights) Queenside(colour Colour) bool {
	if colour == White {
		return r.WhiteQueenside
	}
	return r.BlackQueenside
}

// Revoke clears both rights for the given colour.
func (r *CastlingRights) Revoke(colour Colour) {
	if colour == White {
		r.WhiteKingside = false
		r.WhiteQueenside = false
	} else {
		r.BlackKingside = false
		r.BlackQueenside = false
	}
}

// RevokeKingside clears the kingside right for the given colour.
func (r *CastlingRights) RevokeKingside(colour Colour) {
	if colour == White {
		r.WhiteKingside = false
	} else {
		r.BlackKingside = false
	}
}

// RevokeQueenside clears the queenside right for the given colour.
func (r *CastlingRights) RevokeQueenside(colour Colour) {
	if colour == White {
		r.WhiteQueenside = false
	} else {
		r.BlackQueenside = false
	}
}

// FEN returns the castling field of a FEN string, "-" when no right
// remains.
func (r CastlingRights) FEN() string {
	s := ""
	if r.WhiteKingside {
		s += "K"
	}
	if r.WhiteQueenside {
		s += "Q"
	}
	if r.BlackKingside {
		s += "k"
	}
	if r.BlackQueenside {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}
