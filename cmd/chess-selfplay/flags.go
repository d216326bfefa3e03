// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	jsonBatch  = flag.Bool("batch", false, "With -J, write all games as one JSON array")
	compact    = flag.Bool("compact", false, "With -J, do not indent JSON")
	addFENs    = flag.Bool("fens", false, "With -J, record the FEN after every move")
	lineLength = flag.Int("w", 80, "Maximum line length for text output")
	noBoard    = flag.Bool("noboard", false, "Don't print the final board in text output")
	noNumbers  = flag.Bool("nonumbers", false, "Don't print move numbers in text output")

	// Game options
	numGames    = flag.Int("n", 10, "Number of games to play")
	numWorkers  = flag.Int("j", 1, "Number of parallel workers")
	plyLimit    = flag.Int("plylimit", 200, "Stop each game after N plies")
	whitePolicy = flag.String("white", "random", "Policy for White: greedy or random")
	blackPolicy = flag.String("black", "greedy", "Policy for Black: greedy or random")
	seed        = flag.Int64("seed", 1, "Base seed; game i uses seed+2i")
	startFEN    = flag.String("fen", "", "Start every game from this FEN")
	noDups      = flag.Bool("D", false, "Suppress games ending in an already seen position")
	stopOnError = flag.Bool("stop-on-error", false, "Skip the remaining games once one fails")

	// Logging
	logLevel = flag.String("loglevel", "info", "Log level: trace, debug, info, warn, error")
	quiet    = flag.Bool("s", false, "Silent mode (only errors are logged)")

	// Help and version
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration builder.
func applyFlags(b *config.ConfigBuilder) *config.ConfigBuilder {
	applySelfPlayFlags(b)
	applyOutputFlags(b)
	b.WithSeed(*seed)
	if *quiet {
		return b.WithLogLevel("error")
	}
	return b.WithLogLevel(*logLevel)
}

// applySelfPlayFlags configures the batch of games.
func applySelfPlayFlags(b *config.ConfigBuilder) {
	b.WithSelfPlay(*numGames, *numWorkers, *plyLimit).
		WithPolicies(*whitePolicy, *blackPolicy).
		WithSuppressDuplicates(*noDups).
		WithStopOnError(*stopOnError)
}

// applyOutputFlags configures the record format.
func applyOutputFlags(b *config.ConfigBuilder) {
	if *jsonOutput {
		b.WithOutputFormat(config.JSONFormat)
	}
	b.WithJSONOptions(*jsonBatch, !*compact, *addFENs).
		WithTextOptions(!*noBoard, !*noNumbers)
	if *lineLength > 0 {
		b.WithMaxLineLength(uint(*lineLength))
	}
}
