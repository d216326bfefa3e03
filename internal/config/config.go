// Package config provides configuration for the chess server and the
// self-play runner.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Config holds all program configuration. Command-line flags are applied
// on top of NewConfig defaults by the binaries in cmd/.
type Config struct {
	Server   ServerConfig
	Play     PlayConfig
	SelfPlay SelfPlayConfig
	Output   OutputConfig

	// LogLevel is a zerolog level name: trace, debug, info, warn, error.
	LogLevel string
	// LogJSON selects JSON log lines instead of the console writer.
	LogJSON bool

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Server:     *NewServerConfig(),
		Play:       *NewPlayConfig(),
		SelfPlay:   *NewSelfPlayConfig(),
		Output:     *NewOutputConfig(),
		LogLevel:   "info",
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the stream game records are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every section and the log level.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Play.Validate(); err != nil {
		return err
	}
	if err := c.SelfPlay.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", c.LogLevel, errors.ErrInvalidConfig)
	}
	return level, nil
}

// Logger builds the process logger writing to LogFile.
func (c *Config) Logger() (zerolog.Logger, error) {
	level, err := c.Level()
	if err != nil {
		return zerolog.Nop(), err
	}
	var w io.Writer = c.LogFile
	if !c.LogJSON {
		w = zerolog.ConsoleWriter{Out: c.LogFile, TimeFormat: "15:04:05"}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
