package config

// Retrieval depths for the two search passes. Term identification wants
// precision; grade selection wants recall, since grading means comparing
// severity levels against each other.
const (
	DefaultTermK  = 3
	DefaultGradeK = 5
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider:          ProviderOpenAI,
		Model:             "gpt-4o-mini",
		EmbeddingProvider: ProviderOpenAI,
		EmbeddingModel:    "text-embedding-3-small",
		Collection:        "ctcae_terms",
		DataDir:           "data",
		TermK:             DefaultTermK,
		GradeK:            DefaultGradeK,
		MatchTimeoutSecs:  60,
		Server: ServerConfig{
			Port:     8080,
			AllowAll: false,
		},
	}
}
