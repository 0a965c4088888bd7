package engine

import (
	"strings"
	"testing"

	"github.com/tbaxter/chesslib/internal/chess"
	"github.com/tbaxter/chesslib/internal/testutil"
)

func TestRenderInitialPosition(t *testing.T) {
	g := NewGame()

	want := strings.Join([]string{
		"8 | r  n  b  q  k  b  n  r ",
		"7 | p  p  p  p  p  p  p  p ",
		"6 | ·  ·  ·  ·  ·  ·  ·  · ",
		"5 | ·  ·  ·  ·  ·  ·  ·  · ",
		"4 | ·  ·  ·  ·  ·  ·  ·  · ",
		"3 | ·  ·  ·  ·  ·  ·  ·  · ",
		"2 | P  P  P  P  P  P  P  P ",
		"1 | R  N  B  Q  K  B  N  R ",
		"  +-----------------------",
		"    a  b  c  d  e  f  g  h ",
		"",
	}, "\n")

	testutil.AssertEqual(t, g.Render(), want)
}

func TestRenderAfterMove(t *testing.T) {
	g := NewGame()
	play(t, g, "e4")

	got := g.Render()
	testutil.AssertContains(t, got, "4 | ·  ·  ·  ·  P  ·  ·  · ")
	testutil.AssertContains(t, got, "2 | P  P  P  P  ·  P  P  P ")
}

func TestRenderForBlack(t *testing.T) {
	g := NewGame()

	want := strings.Join([]string{
		"1 | R  N  B  K  Q  B  N  R ",
		"2 | P  P  P  P  P  P  P  P ",
		"3 | ·  ·  ·  ·  ·  ·  ·  · ",
		"4 | ·  ·  ·  ·  ·  ·  ·  · ",
		"5 | ·  ·  ·  ·  ·  ·  ·  · ",
		"6 | ·  ·  ·  ·  ·  ·  ·  · ",
		"7 | p  p  p  p  p  p  p  p ",
		"8 | r  n  b  k  q  b  n  r ",
		"  +-----------------------",
		"    h  g  f  e  d  c  b  a ",
		"",
	}, "\n")

	testutil.AssertEqual(t, g.RenderFor(chess.Black), want)
}

func TestRenderIsPure(t *testing.T) {
	g := NewGame()
	before := g.FEN()

	for i := 0; i < 3; i++ {
		g.Render()
		g.RenderFor(chess.Black)
	}

	testutil.AssertEqual(t, g.FEN(), before)
	testutil.AssertEqual(t, g.Status(), GameStatus{State: AwaitingMove, Colour: chess.White})
}
