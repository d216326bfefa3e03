// chessd serves chess games against a computer opponent over HTTP and
// websockets.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/server"
	"github.com/lgbarn/chess-rules-go/internal/session"
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
		fmt.Printf("chessd version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := applyFlags(config.NewConfigBuilder()).Build()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run starts the server and blocks until SIGINT or SIGTERM.
func run(cfg *config.Config) error {
	log, err := cfg.Logger()
	if err != nil {
		return err
	}

	sessions, err := session.NewManager(cfg.Play, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("policy", cfg.Play.Policy).
		Dur("delay", cfg.Play.ReplyDelay).
		Int("max_games", cfg.Play.MaxGames).
		Msg("starting chessd")

	return server.New(sessions, cfg.Server, log).Listen(ctx)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessd [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess against the computer over HTTP and websockets.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nRoutes:\n")
	fmt.Fprintf(os.Stderr, "  POST   /api/games               new game {\"human\":\"white\",\"fen\":\"...\"}\n")
	fmt.Fprintf(os.Stderr, "  GET    /api/games/:id           game state\n")
	fmt.Fprintf(os.Stderr, "  GET    /api/games/:id/moves     legal moves ?from=e2\n")
	fmt.Fprintf(os.Stderr, "  POST   /api/games/:id/moves     play {\"from\":\"e2\",\"to\":\"e4\"}\n")
	fmt.Fprintf(os.Stderr, "  POST   /api/games/:id/reply     computer reply\n")
	fmt.Fprintf(os.Stderr, "  DELETE /api/games/:id           end game\n")
	fmt.Fprintf(os.Stderr, "  GET    /ws/game/:id             websocket state stream\n")
}
