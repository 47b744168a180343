package outline

import "time"

// Config holds outline generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	// Timeout bounds each provider call. Zero disables the per-call bound.
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for outline generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.3,
		Timeout:     30 * time.Second,
	}
}
