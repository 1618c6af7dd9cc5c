package config

// ProviderType identifies an LLM or embedding provider.
type ProviderType string

const (
	ProviderAnthropic ProviderType = "anthropic"
	ProviderOpenAI    ProviderType = "openai"
	ProviderOllama    ProviderType = "ollama"
)

// Config is the top-level ctcaematch configuration, corresponding to
// .ctcaematch.yml.
type Config struct {
	Provider          ProviderType `yaml:"provider" koanf:"provider"`
	Model             string       `yaml:"model" koanf:"model"`
	EmbeddingProvider ProviderType `yaml:"embedding_provider" koanf:"embedding_provider"`
	EmbeddingModel    string       `yaml:"embedding_model" koanf:"embedding_model"`
	Collection        string       `yaml:"collection" koanf:"collection"`
	DataDir           string       `yaml:"data_dir" koanf:"data_dir"`
	TermK             int          `yaml:"term_k" koanf:"term_k"`
	GradeK            int          `yaml:"grade_k" koanf:"grade_k"`
	MatchTimeoutSecs  int          `yaml:"match_timeout_secs" koanf:"match_timeout_secs"`
	Server            ServerConfig `yaml:"server" koanf:"server"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
