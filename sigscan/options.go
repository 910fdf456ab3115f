package sigscan

import "github.com/rs/zerolog"

// DefaultChunkSize is the read buffer size used when no override is given.
const DefaultChunkSize = 8192

// Config holds the scanner configuration.
type Config struct {
	// ChunkSize is the read buffer size in bytes
	ChunkSize int

	// Logger receives per-match debug events (optional)
	Logger zerolog.Logger
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		ChunkSize: DefaultChunkSize,
		Logger:    zerolog.Nop(),
	}
}

// Option is a functional option for configuring the Scanner.
type Option func(*Config)

// WithChunkSize sets the read buffer size. Values below 1 are ignored.
// Correctness does not depend on the chunk size; it only trades syscall
// count against buffer memory.
//
// Example:
//
//	sc := sigscan.NewScanner(sigscan.WithChunkSize(64 * 1024))
func WithChunkSize(size int) Option {
	return func(c *Config) {
		if size > 0 {
			c.ChunkSize = size
		}
	}
}

// WithLogger sets a logger for per-match debug events.
//
// Example:
//
//	sc := sigscan.NewScanner(sigscan.WithLogger(log.With().Str("component", "sigscan").Logger()))
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
