package config

import (
	"fmt"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// DefaultReplyDelay is the pause before the computer answers a move.
const DefaultReplyDelay = 500 * time.Millisecond

// PlayConfig holds settings for interactive games against the computer.
type PlayConfig struct {
	// Policy names the opponent policy (greedy or random)
	Policy string

	// Seed feeds the random policy; 0 means seed from the clock
	Seed int64

	// ReplyDelay is how long the computer waits before replying
	ReplyDelay time.Duration

	// MaxGames caps the number of live sessions (0 = unlimited)
	MaxGames int
}

// NewPlayConfig creates a PlayConfig with default values.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{
		Policy:     "greedy",
		ReplyDelay: DefaultReplyDelay,
		MaxGames:   1000,
	}
}

// Validate checks the play settings. Policy names are resolved by
// internal/policy, which reports unknown ones.
func (c *PlayConfig) Validate() error {
	if c.Policy == "" {
		return fmt.Errorf("policy is empty: %w", errors.ErrInvalidConfig)
	}
	if c.ReplyDelay < 0 {
		return fmt.Errorf("reply delay %v is negative: %w", c.ReplyDelay, errors.ErrInvalidConfig)
	}
	if c.MaxGames < 0 {
		return fmt.Errorf("max games %d is negative: %w", c.MaxGames, errors.ErrInvalidConfig)
	}
	return nil
}

// SelfPlayConfig holds settings for batch policy-vs-policy games.
type SelfPlayConfig struct {
	Games       int    // Number of games to play
	Workers     int    // Parallel workers
	PlyLimit    int    // Stop a game after this many plies
	WhitePolicy string // Policy for White
	BlackPolicy string // Policy for Black

	// SuppressDuplicates drops games ending in a position an earlier game
	// of the batch already reached.
	SuppressDuplicates bool

	// StopOnError skips games not yet started once one game fails.
	StopOnError bool
}

// NewSelfPlayConfig creates a SelfPlayConfig with default values.
func NewSelfPlayConfig() *SelfPlayConfig {
	return &SelfPlayConfig{
		Games:       10,
		Workers:     1,
		PlyLimit:    200,
		WhitePolicy: "random",
		BlackPolicy: "greedy",
	}
}

// Validate checks the self-play settings.
func (c *SelfPlayConfig) Validate() error {
	if c.Games < 1 {
		return fmt.Errorf("games must be at least 1, got %d: %w", c.Games, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.PlyLimit < 1 {
		return fmt.Errorf("ply limit must be at least 1, got %d: %w", c.PlyLimit, errors.ErrInvalidConfig)
	}
	if c.WhitePolicy == "" || c.BlackPolicy == "" {
		return fmt.Errorf("self-play policy is empty: %w", errors.ErrInvalidConfig)
	}
	return nil
}
