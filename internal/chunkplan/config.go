package chunkplan

// Config controls the behavior of the chunk plan Generator.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MinParasPerSection and MaxParasPerSection bound the size of each
	// proposed section (inclusive). 0 disables the corresponding bound.
	MinParasPerSection int
	MaxParasPerSection int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.5,
	}
}
