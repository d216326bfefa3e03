package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputFormat selects how game records are written.
type OutputFormat int

const (
	TextFormat OutputFormat = iota // Numbered move list with board diagram
	JSONFormat                     // One JSON document per game or a batch array
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	switch f {
	case TextFormat:
		return "text"
	case JSONFormat:
		return "json"
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// ParseOutputFormat parses "text" or "json".
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "text":
		return TextFormat, nil
	case "json":
		return JSONFormat, nil
	}
	return TextFormat, fmt.Errorf("output format %q: %w", s, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects text or JSON records
	Format OutputFormat

	// MaxLineLength is the wrap width for text move lists
	MaxLineLength uint

	// Pretty indents JSON output
	Pretty bool

	// KeepMoveNumbers controls whether move numbers are included in text
	KeepMoveNumbers bool

	// ShowBoard adds the final board diagram to text output
	ShowBoard bool

	// AddFENs records the FEN after every move in JSON output
	AddFENs bool

	// Batch collects JSON games into one array written on Close
	Batch bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:          TextFormat,
		MaxLineLength:   80,
		Pretty:          true,
		KeepMoveNumbers: true,
		ShowBoard:       true,
	}
}

// Validate checks the output settings.
func (c *OutputConfig) Validate() error {
	if c.Format != TextFormat && c.Format != JSONFormat {
		return fmt.Errorf("%v: %w", c.Format, errors.ErrInvalidConfig)
	}
	if c.MaxLineLength < 20 {
		return fmt.Errorf("line length %d is below 20: %w", c.MaxLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
