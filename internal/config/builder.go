package config

import (
	"io"
	"time"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithListenAddr sets the server address.
func (b *ConfigBuilder) WithListenAddr(addr string) *ConfigBuilder {
	b.cfg.Server.ListenAddr = addr
	return b
}

// WithAllowOrigins sets the CORS allowed origins.
func (b *ConfigBuilder) WithAllowOrigins(origins string) *ConfigBuilder {
	b.cfg.Server.AllowOrigins = origins
	return b
}

// WithPolicy sets the opponent policy and its seed.
func (b *ConfigBuilder) WithPolicy(name string, seed int64) *ConfigBuilder {
	b.cfg.Play.Policy = name
	b.cfg.Play.Seed = seed
	return b
}

// WithSeed sets the base seed for randomised policies.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Play.Seed = seed
	return b
}

// WithReplyDelay sets the computer reply delay.
func (b *ConfigBuilder) WithReplyDelay(d time.Duration) *ConfigBuilder {
	b.cfg.Play.ReplyDelay = d
	return b
}

// WithMaxGames caps live sessions.
func (b *ConfigBuilder) WithMaxGames(n int) *ConfigBuilder {
	b.cfg.Play.MaxGames = n
	return b
}

// WithSelfPlay sets the batch size, worker count and ply limit.
func (b *ConfigBuilder) WithSelfPlay(games, workers, plyLimit int) *ConfigBuilder {
	b.cfg.SelfPlay.Games = games
	b.cfg.SelfPlay.Workers = workers
	b.cfg.SelfPlay.PlyLimit = plyLimit
	return b
}

// WithSuppressDuplicates drops repeated self-play games from the output.
func (b *ConfigBuilder) WithSuppressDuplicates(suppress bool) *ConfigBuilder {
	b.cfg.SelfPlay.SuppressDuplicates = suppress
	return b
}

// WithStopOnError skips the rest of a self-play batch after a failed game.
func (b *ConfigBuilder) WithStopOnError(stop bool) *ConfigBuilder {
	b.cfg.SelfPlay.StopOnError = stop
	return b
}

// WithPolicies sets the self-play policies for each side.
func (b *ConfigBuilder) WithPolicies(white, black string) *ConfigBuilder {
	b.cfg.SelfPlay.WhitePolicy = white
	b.cfg.SelfPlay.BlackPolicy = black
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithJSONOptions sets how JSON records are written.
func (b *ConfigBuilder) WithJSONOptions(batch, pretty, addFENs bool) *ConfigBuilder {
	b.cfg.Output.Batch = batch
	b.cfg.Output.Pretty = pretty
	b.cfg.Output.AddFENs = addFENs
	return b
}

// WithTextOptions sets what text records include.
func (b *ConfigBuilder) WithTextOptions(showBoard, moveNumbers bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = showBoard
	b.cfg.Output.KeepMoveNumbers = moveNumbers
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}

// WithLogJSON switches log output to JSON lines.
func (b *ConfigBuilder) WithLogJSON(enabled bool) *ConfigBuilder {
	b.cfg.LogJSON = enabled
	return b
}
