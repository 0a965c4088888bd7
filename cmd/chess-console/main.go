// chess-console is an interactive terminal front end for playing a
// game of chess. Moves are entered in algebraic notation, one per
// line, and the board is redrawn after every accepted move.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/fatih/color"

	"github.com/tbaxter/chesslib/internal/chess"
	"github.com/tbaxter/chesslib/internal/engine"
)

const programVersion = "0.1.0"

var (
	promptText = color.New(color.FgCyan, color.Bold)
	errorText  = color.New(color.FgRed)
	resultText = color.New(color.FgGreen, color.Bold)
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-console version %s\n", programVersion)
		os.Exit(0)
	}

	if *noColor {
		color.NoColor = true
	}

	game, err := newGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	view := chess.White
	if *flipView {
		view = chess.Black
	}

	white, black := game.Players()
	fmt.Println(white)
	fmt.Println(black)
	fmt.Println()
	fmt.Println(game.RenderFor(view))

	runLoop(game, view)
}

// newGame builds the game from the command-line flags, generating
// player names where none were given.
func newGame() (*engine.Game, error) {
	white, err := makePlayer(chess.White, *whiteName, *whiteRating)
	if err != nil {
		return nil, err
	}
	black, err := makePlayer(chess.Black, *blackName, *blackRating)
	if err != nil {
		return nil, err
	}

	if *startFEN != "" {
		game, err := engine.NewGameFromFEN(*startFEN)
		if err != nil {
			return nil, err
		}
		game.SetPlayers(white, black)
		return game, nil
	}

	return engine.NewGameWithPlayers(white, black), nil
}

func makePlayer(colour chess.Colour, name string, rating int) (chess.Player, error) {
	if name == "" {
		name = petname.Generate(2, " ")
	}
	return chess.NamedPlayer(colour, name, rating)
}

// runLoop reads one line of input at a time until the game reaches a
// terminal state or stdin closes.
func runLoop(game *engine.Game, view chess.Colour) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		status := game.Status()
		if status.Terminal() {
			resultText.Println(status)
			return
		}

		promptText.Printf("%s> ", status.Colour)
		if !scanner.Scan() {
			fmt.Println()
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if done := handleCommand(game, &view, line); done {
			return
		}
	}
}

// handleCommand dispatches a line of input: a recognised command, or
// otherwise a move in algebraic notation. It returns true when the
// session should end.
func handleCommand(game *engine.Game, view *chess.Colour, line string) bool {
	switch strings.ToLower(line) {
	case "quit", "exit":
		return true

	case "help":
		printCommands()
		return false

	case "board":
		fmt.Println(game.RenderFor(*view))
		return false

	case "flip":
		*view = view.Opposite()
		fmt.Println(game.RenderFor(*view))
		return false

	case "fen":
		fmt.Println(game.FEN())
		return false

	case "moves":
		if text := game.MoveText(); text != "" {
			fmt.Println(text)
		}
		return false

	case "status":
		fmt.Println(game.Status())
		return false

	case "resign":
		if err := game.Resign(game.Status().Colour); err != nil {
			errorText.Println(err)
			return false
		}
		resultText.Println(game.Status())
		return true

	case "draw":
		if err := game.AgreeDraw(); err != nil {
			errorText.Println(err)
			return false
		}
		resultText.Println(game.Status())
		return true
	}

	outcome, err := game.SubmitMove(line)
	if err != nil {
		errorText.Println(err)
		return false
	}

	fmt.Println(game.RenderFor(*view))
	if outcome.Status.Terminal() {
		resultText.Println(outcome.Status)
		return true
	}
	return false
}

func printCommands() {
	fmt.Println("Enter a move in algebraic notation (e4, Nf3, exd5, O-O, e8=Q, e2-e4).")
	fmt.Println("Commands:")
	fmt.Println("  board    redraw the board")
	fmt.Println("  flip     view the board from the other side")
	fmt.Println("  fen      print the current position as FEN")
	fmt.Println("  moves    print the moves played so far")
	fmt.Println("  status   print whose turn it is and the game state")
	fmt.Println("  resign   resign for the side to move")
	fmt.Println("  draw     end the game as a draw by agreement")
	fmt.Println("  quit     leave without finishing the game")
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-console [options]\n\n")
	fmt.Fprintf(os.Stderr, "An interactive terminal chess game.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
