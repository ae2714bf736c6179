package config

import "io"

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

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithJSONOutput switches between JSON and text reports.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	if enabled {
		b.cfg.Output.Format = JSONFormat
	} else {
		b.cfg.Output.Format = TextFormat
	}
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// ShowMoves controls whether move lists are written.
func (b *ConfigBuilder) ShowMoves(show bool) *ConfigBuilder {
	b.cfg.Output.ShowMoves = show
	return b
}

// ShowBoard controls whether the final position is written.
func (b *ConfigBuilder) ShowBoard(show bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = show
	return b
}

// WithStateReport enables check and mate detection after each game.
func (b *ConfigBuilder) WithStateReport(enabled bool) *ConfigBuilder {
	b.cfg.Rules.ReportState = enabled
	return b
}

// WithDrawChecks enables the draw rules.
func (b *ConfigBuilder) WithDrawChecks(enabled bool) *ConfigBuilder {
	b.cfg.Rules.CheckDraws = enabled
	return b
}

// StopOnError makes the first rejected move fatal.
func (b *ConfigBuilder) StopOnError(stop bool) *ConfigBuilder {
	b.cfg.Rules.StopOnError = stop
	return b
}

// WithMaxPlies limits how far each game is replayed.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.Rules.MaxPlies = n
	return b
}

// FindDuplicates enables duplicate detection.
func (b *ConfigBuilder) FindDuplicates(exact bool) *ConfigBuilder {
	b.cfg.Rules.FindDuplicates = true
	b.cfg.Rules.ExactDuplicates = exact
	return b
}

// WithWorkers sets the worker count and channel buffer size.
func (b *ConfigBuilder) WithWorkers(workers, buffer int) *ConfigBuilder {
	b.cfg.Workers = workers
	b.cfg.BufferSize = buffer
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
