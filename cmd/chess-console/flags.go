// flags.go - Command-line flag definitions for the console front end
package main

import "flag"

var (
	// Players
	whiteName   = flag.String("white", "", "White player name (default: a generated name)")
	blackName   = flag.String("black", "", "Black player name (default: a generated name)")
	whiteRating = flag.Int("white-rating", 0, "White player rating (0 = unrated)")
	blackRating = flag.Int("black-rating", 0, "Black player rating (0 = unrated)")

	// Position
	startFEN = flag.String("fen", "", "Start from this FEN position instead of the standard setup")

	// Display
	noColor  = flag.Bool("no-color", false, "Disable coloured output")
	flipView = flag.Bool("flip", false, "Render the board from Black's side")

	help    = flag.Bool("h", false, "Show usage information")
	version = flag.Bool("version", false, "Show version and exit")
)
