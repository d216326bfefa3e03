// chess-selfplay plays batches of computer-versus-computer games and
// writes their records.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-selfplay version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := applyFlags(config.NewConfigBuilder()).Build()
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	log, err := cfg.Logger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	summary, err := runSelfPlay(cfg, *startFEN, log)
	if err != nil {
		log.Error().Err(err).Msg("self-play failed")
		os.Exit(1)
	}
	summary.log(log)
	if summary.Errors > 0 {
		os.Exit(1)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-selfplay [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play computer-versus-computer games and print their records.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nPolicies:\n")
	fmt.Fprintf(os.Stderr, "  greedy  prefer captures, then checks\n")
	fmt.Fprintf(os.Stderr, "  random  any legal move\n")
}
