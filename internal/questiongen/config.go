package questiongen

// Config holds generation tunables.
type Config struct {
	CountMin        int
	CountMax        int
	MaxTokens       int
	Temperature     float64
	MaxAvoidPrompts int
}

func DefaultConfig() Config {
	return Config{
		CountMin:        5,
		CountMax:        7,
		MaxTokens:       8192,
		Temperature:     0.9,
		MaxAvoidPrompts: 12,
	}
}
