// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Server options
	listenAddr   = flag.String("listen", ":8080", "Address to listen on")
	allowOrigins = flag.String("origins", "*", "Comma-separated CORS allowed origins")

	// Opponent options
	policyName = flag.String("policy", "greedy", "Opponent policy: greedy or random")
	seed       = flag.Int64("seed", 0, "Seed for the random policy (0 = from the clock)")
	replyDelay = flag.Duration("delay", config.DefaultReplyDelay, "Pause before the computer replies")
	maxGames   = flag.Int("maxgames", 1000, "Maximum live games (0 = unlimited)")

	// Logging
	logLevel = flag.String("loglevel", "info", "Log level: trace, debug, info, warn, error")
	logJSON  = flag.Bool("logjson", false, "Write JSON log lines instead of console output")

	// Help and version
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration builder.
func applyFlags(b *config.ConfigBuilder) *config.ConfigBuilder {
	applyServerFlags(b)
	applyPlayFlags(b)
	return b.WithLogLevel(*logLevel).WithLogJSON(*logJSON)
}

// applyServerFlags configures the listener.
func applyServerFlags(b *config.ConfigBuilder) {
	b.WithListenAddr(*listenAddr).WithAllowOrigins(*allowOrigins)
}

// applyPlayFlags configures the computer opponent.
func applyPlayFlags(b *config.ConfigBuilder) {
	b.WithPolicy(*policyName, *seed).
		WithReplyDelay(*replyDelay).
		WithMaxGames(*maxGames)
}
