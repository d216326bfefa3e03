package config

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// TestNewConfig_Defaults verifies every section has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Server.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want :8080", cfg.Server.ListenAddr)
	}
	if cfg.Play.Policy != "greedy" {
		t.Errorf("Policy = %q, want greedy", cfg.Play.Policy)
	}
	if cfg.Play.ReplyDelay != 500*time.Millisecond {
		t.Errorf("ReplyDelay = %v, want 500ms", cfg.Play.ReplyDelay)
	}
	if cfg.SelfPlay.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.SelfPlay.Workers)
	}
	if cfg.Output.Format != TextFormat {
		t.Errorf("Format = %v, want text", cfg.Output.Format)
	}
	if cfg.Output.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d, want 80", cfg.Output.MaxLineLength)
	}
	if !cfg.Output.KeepMoveNumbers {
		t.Error("KeepMoveNumbers should be true by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config Validate() = %v", err)
	}
}

// TestConfig_Validate verifies each section rejects bad values
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty listen address", func(c *Config) { c.Server.ListenAddr = "" }},
		{"negative timeout", func(c *Config) { c.Server.ReadTimeout = -time.Second }},
		{"empty policy", func(c *Config) { c.Play.Policy = "" }},
		{"negative delay", func(c *Config) { c.Play.ReplyDelay = -1 }},
		{"negative max games", func(c *Config) { c.Play.MaxGames = -1 }},
		{"zero games", func(c *Config) { c.SelfPlay.Games = 0 }},
		{"zero workers", func(c *Config) { c.SelfPlay.Workers = 0 }},
		{"zero ply limit", func(c *Config) { c.SelfPlay.PlyLimit = 0 }},
		{"empty self-play policy", func(c *Config) { c.SelfPlay.BlackPolicy = "" }},
		{"unknown format", func(c *Config) { c.Output.Format = OutputFormat(7) }},
		{"narrow lines", func(c *Config) { c.Output.MaxLineLength = 5 }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestParseOutputFormat verifies format flag parsing
func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"text", TextFormat, false},
		{"json", JSONFormat, false},
		{"pgn", TextFormat, true},
	}
	for _, tt := range tests {
		got, err := ParseOutputFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseOutputFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if !tt.wantErr && got.String() != tt.in {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), tt.in)
		}
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfig_Logger verifies the logger honours level and format
func TestConfig_Logger(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig()
	cfg.LogFile = &buf
	cfg.LogJSON = true
	cfg.LogLevel = "warn"

	logger, err := cfg.Logger()
	if err != nil {
		t.Fatalf("Logger() error: %v", err)
	}
	if logger.GetLevel() != zerolog.WarnLevel {
		t.Errorf("level = %v, want warn", logger.GetLevel())
	}

	logger.Info().Msg("hidden")
	logger.Warn().Str("game", "g1").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message written at warn level")
	}
	if !strings.Contains(out, `"game":"g1"`) || !strings.Contains(out, `"message":"shown"`) {
		t.Errorf("JSON log line = %q", out)
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().
		WithListenAddr("127.0.0.1:9000").
		WithPolicy("random", 7).
		WithReplyDelay(0).
		WithSeed(11).
		WithMaxGames(3).
		WithSelfPlay(50, 4, 120).
		WithPolicies("greedy", "greedy").
		WithSuppressDuplicates(true).
		WithStopOnError(true).
		WithAllowOrigins("http://localhost:3000").
		WithJSONOptions(true, false, true).
		WithTextOptions(false, false).
		WithLogJSON(true).
		WithOutputFormat(JSONFormat).
		WithMaxLineLength(120).
		WithOutput(&buf).
		WithLogLevel("debug").
		Build()

	if cfg.Server.ListenAddr != "127.0.0.1:9000" {
		t.Errorf("ListenAddr = %q", cfg.Server.ListenAddr)
	}
	if cfg.Play.Policy != "random" || cfg.Play.Seed != 11 {
		t.Errorf("Play = %+v", cfg.Play)
	}
	if cfg.Play.ReplyDelay != 0 || cfg.Play.MaxGames != 3 {
		t.Errorf("Play = %+v", cfg.Play)
	}
	if cfg.SelfPlay.Games != 50 || cfg.SelfPlay.Workers != 4 || cfg.SelfPlay.PlyLimit != 120 {
		t.Errorf("SelfPlay = %+v", cfg.SelfPlay)
	}
	if !cfg.SelfPlay.SuppressDuplicates || !cfg.SelfPlay.StopOnError {
		t.Errorf("SelfPlay = %+v; want duplicates suppressed, stop on error", cfg.SelfPlay)
	}
	if cfg.Server.AllowOrigins != "http://localhost:3000" {
		t.Errorf("AllowOrigins = %q", cfg.Server.AllowOrigins)
	}
	out := cfg.Output
	if !out.Batch || out.Pretty || !out.AddFENs || out.ShowBoard || out.KeepMoveNumbers {
		t.Errorf("Output = %+v", out)
	}
	if !cfg.LogJSON {
		t.Error("LogJSON = false")
	}
	if cfg.SelfPlay.WhitePolicy != "greedy" {
		t.Errorf("WhitePolicy = %q", cfg.SelfPlay.WhitePolicy)
	}
	if cfg.Output.Format != JSONFormat || cfg.Output.MaxLineLength != 120 {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.OutputFile != &buf {
		t.Error("WithOutput did not set OutputFile")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
