package stcisp

import (
	"github.com/rs/zerolog"

	"github.com/grigorig/stcdump/sigscan"
)

// Config holds the extractor configuration.
type Config struct {
	// ChunkSize is the scan read buffer size in bytes
	ChunkSize int

	// Logger receives progress and diagnostic events (optional)
	Logger zerolog.Logger
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		ChunkSize: sigscan.DefaultChunkSize,
		Logger:    zerolog.Nop(),
	}
}

// Option is a functional option for configuring the Extractor.
type Option func(*Config)

// WithChunkSize sets the scan read buffer size. Values below 1 are
// ignored.
//
// Example:
//
//	ex := stcisp.NewExtractor(stcisp.WithChunkSize(64 * 1024))
func WithChunkSize(size int) Option {
	return func(c *Config) {
		if size > 0 {
			c.ChunkSize = size
		}
	}
}

// WithLogger sets a logger for extraction diagnostics.
//
// Example:
//
//	ex := stcisp.NewExtractor(stcisp.WithLogger(logger))
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
