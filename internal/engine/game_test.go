package engine

import (
	stderrors "errors"
	"testing"

	"github.com/tbaxter/chesslib/internal/chess"
	"github.com/tbaxter/chesslib/internal/errors"
	"github.com/tbaxter/chesslib/internal/testutil"
)

func sq(t *testing.T, name string) chess.Square {
	t.Helper()
	s, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return s
}

func mustGame(t *testing.T, fen string) *Game {
	t.Helper()
	g, err := NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q): %v", fen, err)
	}
	return g
}

func play(t *testing.T, g *Game, moves ...string) MoveOutcome {
	t.Helper()
	var outcome MoveOutcome
	for _, m := range moves {
		var err error
		outcome, err = g.SubmitMove(m)
		if err != nil {
			t.Fatalf("SubmitMove(%q): %v", m, err)
		}
	}
	return outcome
}

func TestNewGame(t *testing.T) {
	g := NewGame()

	testutil.AssertEqual(t, g.Status(), GameStatus{State: AwaitingMove, Colour: chess.White})
	testutil.AssertEqual(t, g.FEN(), InitialFEN)
	testutil.AssertEqual(t, g.FullmoveNumber(), 1)
	testutil.AssertEqual(t, g.HalfmoveClock(), 0)
	testutil.AssertEqual(t, len(g.History()), 0)
}

func TestSubmitMoveSequence(t *testing.T) {
	g := NewGame()
	outcome := play(t, g, "e4", "e5", "Nf3", "Nc6")

	testutil.AssertEqual(t, outcome.Status, GameStatus{State: AwaitingMove, Colour: chess.White})
	testutil.AssertEqual(t, len(g.History()), 4)
	testutil.AssertEqual(t, g.FullmoveNumber(), 3)
	testutil.AssertEqual(t, g.MoveText(), "1. e4 e5 2. Nf3 Nc6")

	checks := []struct {
		square string
		piece  chess.Piece
	}{
		{"e4", chess.W(chess.Pawn)},
		{"e2", chess.NoPiece},
		{"e5", chess.B(chess.Pawn)},
		{"f3", chess.W(chess.Knight)},
		{"g1", chess.NoPiece},
		{"c6", chess.B(chess.Knight)},
	}
	for _, c := range checks {
		got, err := g.Occupant(sq(t, c.square))
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, c.piece, "square %s", c.square)
	}
}

func TestStatusIsReadOnly(t *testing.T) {
	g := NewGame()
	play(t, g, "e4")

	first := g.Status()
	for i := 0; i < 3; i++ {
		testutil.AssertEqual(t, g.Status(), first)
	}
	testutil.AssertEqual(t, len(g.History()), 1)
}

func TestRejectedMoveLeavesGameUntouched(t *testing.T) {
	g := NewGame()
	before := g.FEN()

	tests := []struct {
		name string
		call func() error
		want error
	}{
		{"unknown move", func() error {
			_, err := g.SubmitMove("Qe3")
			return err
		}, errors.ErrUnknownMove},
		{"wrong turn", func() error {
			_, err := g.SubmitSquares(sq(t, "e7"), sq(t, "e5"), chess.NoKind)
			return err
		}, errors.ErrWrongTurn},
		{"blocked rook", func() error {
			_, err := g.SubmitSquares(sq(t, "a1"), sq(t, "a3"), chess.NoKind)
			return err
		}, errors.ErrBlockedPath},
		{"empty source", func() error {
			_, err := g.SubmitSquares(sq(t, "e4"), sq(t, "e5"), chess.NoKind)
			return err
		}, errors.ErrEmptySource},
		{"malformed text", func() error {
			_, err := g.SubmitMove("zz9")
			return err
		}, errors.ErrMalformedSquare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			testutil.AssertErrorIs(t, err, tt.want)
			testutil.AssertEqual(t, g.FEN(), before, "game state after rejected move")
			testutil.AssertEqual(t, len(g.History()), 0)
		})
	}
}

func TestPinnedPieceCannotMove(t *testing.T) {
	g := mustGame(t, "4k3/8/8/8/4r3/8/4N3/4K3 w - - 0 1")

	_, err := g.SubmitMove("Nc3")
	testutil.AssertErrorIs(t, err, errors.ErrExposedKing)

	var moveErr *errors.MoveError
	if !stderrors.As(err, &moveErr) {
		t.Fatalf("error %v is not a MoveError", err)
	}
	testutil.AssertEqual(t, moveErr.MoveText, "Nc3")
	testutil.AssertEqual(t, moveErr.Ply, 1)

	// The pinned knight may still slide along other duties once the
	// pin is broken by the king stepping aside.
	play(t, g, "Kd1")
}

func TestKingCannotMoveIntoCheck(t *testing.T) {
	g := mustGame(t, "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")

	// e2 rook gives check; the king must not step onto an attacked
	// square and cannot stay.
	_, err := g.SubmitMove("Kd2")
	testutil.AssertErrorIs(t, err, errors.ErrExposedKing)

	play(t, g, "Kd1")
}

func TestCastlingKingside(t *testing.T) {
	g := NewGame()
	outcome := play(t, g, "e4", "e5", "Nf3", "Nf6", "Bc4", "Bc5", "O-O")

	testutil.AssertEqual(t, outcome.Move.Kind, chess.CastleKingside)

	got, _ := g.Occupant(sq(t, "g1"))
	testutil.AssertEqual(t, got, chess.W(chess.King))
	got, _ = g.Occupant(sq(t, "f1"))
	testutil.AssertEqual(t, got, chess.W(chess.Rook))
	got, _ = g.Occupant(sq(t, "e1"))
	testutil.AssertEqual(t, got, chess.NoPiece)
	got, _ = g.Occupant(sq(t, "h1"))
	testutil.AssertEqual(t, got, chess.NoPiece)

	rights := g.CastlingRights()
	testutil.AssertFalse(t, rights.Kingside(chess.White))
	testutil.AssertFalse(t, rights.Queenside(chess.White))
	testutil.AssertTrue(t, rights.Kingside(chess.Black))
}

func TestCastlingQueenside(t *testing.T) {
	g := mustGame(t, "r3k3/8/8/8/8/8/8/R3K3 w Qq - 0 1")
	outcome := play(t, g, "O-O-O")

	testutil.AssertEqual(t, outcome.Move.Kind, chess.CastleQueenside)
	got, _ := g.Occupant(sq(t, "c1"))
	testutil.AssertEqual(t, got, chess.W(chess.King))
	got, _ = g.Occupant(sq(t, "d1"))
	testutil.AssertEqual(t, got, chess.W(chess.Rook))
}

func TestCastlingRejections(t *testing.T) {
	t.Run("path occupied", func(t *testing.T) {
		g := NewGame()
		_, err := g.SubmitMove("O-O")
		testutil.AssertErrorIs(t, err, errors.ErrInvalidCastle)
	})

	t.Run("right revoked by king move", func(t *testing.T) {
		g := mustGame(t, "4k2r/8/8/8/8/8/8/4K2R w Kk - 0 1")
		play(t, g, "Ke2", "Kd7", "Ke1", "Ke7")
		_, err := g.SubmitMove("O-O")
		testutil.AssertErrorIs(t, err, errors.ErrInvalidCastle)
	})

	t.Run("right revoked by rook move", func(t *testing.T) {
		g := mustGame(t, "4k2r/8/8/8/8/8/8/4K2R w Kk - 0 1")
		play(t, g, "Rh2", "Kd7", "Rh1", "Ke7")
		_, err := g.SubmitMove("O-O")
		testutil.AssertErrorIs(t, err, errors.ErrInvalidCastle)
	})

	t.Run("king passes through an attacked square", func(t *testing.T) {
		g := mustGame(t, "4k3/8/8/8/8/8/5r2/4K2R w K - 0 1")
		_, err := g.SubmitMove("O-O")
		testutil.AssertErrorIs(t, err, errors.ErrInvalidCastle)
	})

	t.Run("king in check", func(t *testing.T) {
		g := mustGame(t, "4k3/8/8/8/8/8/4r3/4K2R w K - 0 1")
		_, err := g.SubmitMove("O-O")
		testutil.AssertErrorIs(t, err, errors.ErrInvalidCastle)
	})

	t.Run("no right granted by FEN", func(t *testing.T) {
		g := mustGame(t, "4k3/8/8/8/8/8/8/4K2R w - - 0 1")
		_, err := g.SubmitMove("O-O")
		testutil.AssertErrorIs(t, err, errors.ErrInvalidCastle)
	})
}

func TestEnPassant(t *testing.T) {
	t.Run("capture on the reply", func(t *testing.T) {
		g := NewGame()
		play(t, g, "e4", "h6", "e5", "d5")
		testutil.AssertEqual(t, g.EnPassantTarget(), sq(t, "d6"))

		outcome := play(t, g, "exd6")
		testutil.AssertEqual(t, outcome.Move.Kind, chess.EnPassant)
		testutil.AssertEqual(t, outcome.Move.Captured, chess.B(chess.Pawn))

		got, _ := g.Occupant(sq(t, "d6"))
		testutil.AssertEqual(t, got, chess.W(chess.Pawn))
		got, _ = g.Occupant(sq(t, "d5"))
		testutil.AssertEqual(t, got, chess.NoPiece, "bypassed pawn not removed")
		testutil.AssertEqual(t, g.EnPassantTarget(), chess.NoSquare)
	})

	t.Run("eligibility expires after one ply", func(t *testing.T) {
		g := NewGame()
		play(t, g, "e4", "h6", "e5", "d5", "a3", "h5")
		testutil.AssertEqual(t, g.EnPassantTarget(), chess.NoSquare)

		_, err := g.SubmitMove("exd6")
		testutil.AssertErrorIs(t, err, errors.ErrUnknownMove)
	})
}

func TestCheckmate(t *testing.T) {
	g := NewGame()
	outcome := play(t, g, "f3", "e5", "g4", "Qh4#")

	want := GameStatus{State: Checkmate, Colour: chess.White}
	testutil.AssertEqual(t, outcome.Status, want)
	testutil.AssertTrue(t, outcome.Status.Terminal())
	testutil.AssertEqual(t, outcome.Status.String(), "Checkmate, Black wins")

	winner, decisive := outcome.Status.Winner()
	testutil.AssertTrue(t, decisive)
	testutil.AssertEqual(t, winner, chess.Black)

	testutil.AssertEqual(t, g.MoveText(), "1. f3 e5 2. g4 Qh4#")

	t.Run("no moves after the game ends", func(t *testing.T) {
		_, err := g.SubmitMove("a3")
		testutil.AssertErrorIs(t, err, errors.ErrGameOver)
		testutil.AssertErrorIs(t, g.Resign(chess.White), errors.ErrGameOver)
		testutil.AssertErrorIs(t, g.AgreeDraw(), errors.ErrGameOver)
	})
}

func TestCheckIsReported(t *testing.T) {
	g := NewGame()
	outcome := play(t, g, "e4", "e5", "Qh5", "Nc6", "Qxf7")

	// Qxf7 is check (and much more), the black king must answer it.
	testutil.AssertTrue(t, outcome.Status.InCheck)
	testutil.AssertEqual(t, outcome.Status.State, AwaitingMove)
	testutil.AssertEqual(t, outcome.Status.String(), "Black to move (in check)")

	_, err := g.SubmitMove("Nf6")
	testutil.AssertErrorIs(t, err, errors.ErrExposedKing)
	play(t, g, "Kxf7")
}

func TestStalemateByMove(t *testing.T) {
	g := mustGame(t, "k7/8/8/8/8/8/2Q5/7K w - - 0 1")
	outcome := play(t, g, "Qc7")

	testutil.AssertEqual(t, outcome.Status, GameStatus{State: Stalemate})
	testutil.AssertTrue(t, outcome.Status.Terminal())
	testutil.AssertEqual(t, outcome.Status.String(), "Stalemate")

	_, decisive := outcome.Status.Winner()
	testutil.AssertFalse(t, decisive)
}

func TestFiftyMoveRule(t *testing.T) {
	t.Run("quiet move reaches the limit", func(t *testing.T) {
		g := mustGame(t, "4k3/8/8/8/8/8/4K2R/8 w - - 99 80")
		outcome := play(t, g, "Rh3")

		testutil.AssertEqual(t, outcome.Status, GameStatus{State: Drawn, Reason: FiftyMoveRule})
		testutil.AssertEqual(t, outcome.Status.String(), "Draw by fifty-move rule")
		testutil.AssertEqual(t, g.HalfmoveClock(), 100)
	})

	t.Run("pawn advance resets the clock", func(t *testing.T) {
		g := mustGame(t, "4k3/8/8/8/8/8/P3K3/8 w - - 99 80")
		outcome := play(t, g, "a3")

		testutil.AssertEqual(t, outcome.Status.State, AwaitingMove)
		testutil.AssertEqual(t, g.HalfmoveClock(), 0)
	})

	t.Run("capture resets the clock", func(t *testing.T) {
		g := mustGame(t, "4k3/8/8/8/7p/8/4K2R/8 w - - 99 80")
		outcome := play(t, g, "Rxh4")

		testutil.AssertEqual(t, outcome.Status.State, AwaitingMove)
		testutil.AssertEqual(t, g.HalfmoveClock(), 0)
	})
}

func TestThreefoldRepetition(t *testing.T) {
	g := NewGame()

	shuffle := []string{"Nf3", "Nf6", "Ng1", "Ng8"}
	outcome := play(t, g, shuffle...)
	testutil.AssertEqual(t, outcome.Status.State, AwaitingMove, "second occurrence is not yet a draw")

	outcome = play(t, g, shuffle...)
	testutil.AssertEqual(t, outcome.Status, GameStatus{State: Drawn, Reason: ThreefoldRepetition})
	testutil.AssertEqual(t, outcome.Status.String(), "Draw by threefold repetition")
}

func TestInsufficientMaterialByCapture(t *testing.T) {
	g := mustGame(t, "4k3/8/8/8/8/8/3q4/4K3 w - - 0 1")
	outcome := play(t, g, "Kxd2")

	testutil.AssertEqual(t, outcome.Status, GameStatus{State: Drawn, Reason: InsufficientMaterial})
}

func TestSubmitSquares(t *testing.T) {
	t.Run("plain advance", func(t *testing.T) {
		g := NewGame()
		outcome, err := g.SubmitSquares(sq(t, "e2"), sq(t, "e4"), chess.NoKind)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, outcome.Move.Kind, chess.Normal)
		testutil.AssertEqual(t, outcome.Move.Text, "e4")
	})

	t.Run("capture", func(t *testing.T) {
		g := NewGame()
		play(t, g, "e4", "d5")
		outcome, err := g.SubmitSquares(sq(t, "e4"), sq(t, "d5"), chess.NoKind)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, outcome.Move.Kind, chess.Capture)
		testutil.AssertEqual(t, outcome.Move.Text, "exd5")
	})

	t.Run("castling by king jump", func(t *testing.T) {
		g := mustGame(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")
		outcome, err := g.SubmitSquares(sq(t, "e1"), sq(t, "g1"), chess.NoKind)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, outcome.Move.Kind, chess.CastleKingside)
		testutil.AssertEqual(t, outcome.Move.Text, "O-O")

		got, _ := g.Occupant(sq(t, "f1"))
		testutil.AssertEqual(t, got, chess.W(chess.Rook))
	})

	t.Run("en passant inferred from target", func(t *testing.T) {
		g := NewGame()
		play(t, g, "e4", "h6", "e5", "d5")
		outcome, err := g.SubmitSquares(sq(t, "e5"), sq(t, "d6"), chess.NoKind)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, outcome.Move.Kind, chess.EnPassant)
	})

	t.Run("promotion requires a choice", func(t *testing.T) {
		g := mustGame(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
		_, err := g.SubmitSquares(sq(t, "a7"), sq(t, "a8"), chess.NoKind)
		testutil.AssertErrorIs(t, err, errors.ErrMissingPromotion)

		outcome, err := g.SubmitSquares(sq(t, "a7"), sq(t, "a8"), chess.Queen)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, outcome.Move.Kind, chess.Promotion)
		testutil.AssertEqual(t, outcome.Move.Text, "a8=Q")

		got, _ := g.Occupant(sq(t, "a8"))
		testutil.AssertEqual(t, got, chess.W(chess.Queen))
	})

	t.Run("promotion choice rejected elsewhere", func(t *testing.T) {
		g := NewGame()
		_, err := g.SubmitSquares(sq(t, "e2"), sq(t, "e4"), chess.Queen)
		testutil.AssertErrorIs(t, err, errors.ErrExtraneousPromotion)
	})

	t.Run("rejected interpretation carries ply context", func(t *testing.T) {
		g := NewGame()
		_, err := g.SubmitSquares(sq(t, "e7"), sq(t, "e5"), chess.NoKind)
		testutil.AssertErrorIs(t, err, errors.ErrWrongTurn)

		var moveErr *errors.MoveError
		if !stderrors.As(err, &moveErr) {
			t.Fatalf("error %v is not a MoveError", err)
		}
		testutil.AssertEqual(t, moveErr.MoveText, "e7e5")
		testutil.AssertEqual(t, moveErr.Ply, 1)
	})
}

func TestSANDisambiguation(t *testing.T) {
	t.Run("file disambiguator", func(t *testing.T) {
		g := mustGame(t, "4k3/8/8/8/8/8/8/N1N1K3 w - - 0 1")
		outcome, err := g.SubmitSquares(sq(t, "a1"), sq(t, "b3"), chess.NoKind)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, outcome.Move.Text, "Nab3")
	})

	t.Run("rank disambiguator", func(t *testing.T) {
		g := mustGame(t, "4k3/8/8/N7/8/8/8/N3K3 w - - 0 1")
		outcome, err := g.SubmitSquares(sq(t, "a1"), sq(t, "b3"), chess.NoKind)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, outcome.Move.Text, "N1b3")
	})

	t.Run("no rival needs no qualifier", func(t *testing.T) {
		g := NewGame()
		outcome, err := g.SubmitSquares(sq(t, "g1"), sq(t, "f3"), chess.NoKind)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, outcome.Move.Text, "Nf3")
	})
}

func TestAgreeDraw(t *testing.T) {
	g := NewGame()
	play(t, g, "e4", "e5")

	testutil.AssertNoError(t, g.AgreeDraw())
	testutil.AssertEqual(t, g.Status(), GameStatus{State: Drawn, Reason: Agreement})
	testutil.AssertEqual(t, g.Status().String(), "Draw by agreement")

	_, err := g.SubmitMove("Nf3")
	testutil.AssertErrorIs(t, err, errors.ErrGameOver)
}

func TestResign(t *testing.T) {
	g := NewGame()
	play(t, g, "e4")

	testutil.AssertNoError(t, g.Resign(chess.Black))
	status := g.Status()
	testutil.AssertEqual(t, status, GameStatus{State: Resigned, Colour: chess.Black})
	testutil.AssertEqual(t, status.String(), "Black resigned, White wins")

	winner, decisive := status.Winner()
	testutil.AssertTrue(t, decisive)
	testutil.AssertEqual(t, winner, chess.White)
}

func TestHistoryIsACopy(t *testing.T) {
	g := NewGame()
	play(t, g, "e4", "e5")

	h := g.History()
	h[0] = chess.Move{}

	testutil.AssertEqual(t, g.History()[0].Text, "e4")
}

func TestPlayers(t *testing.T) {
	white, err := chess.NamedPlayer(chess.White, "Adams", 2100)
	testutil.AssertNoError(t, err)
	black, err := chess.NamedPlayer(chess.Black, "Baker", 0)
	testutil.AssertNoError(t, err)

	g := NewGameWithPlayers(white, black)
	w, b := g.Players()
	testutil.AssertEqual(t, w.LastName, "Adams")
	testutil.AssertEqual(t, b.LastName, "Baker")

	g2 := mustGame(t, InitialFEN)
	g2.SetPlayers(white, black)
	w, _ = g2.Players()
	testutil.AssertEqual(t, w.Rating, 2100)
}
