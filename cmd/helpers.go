package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zkmedar/ctcaematch/internal/config"
	"github.com/zkmedar/ctcaematch/internal/ctcae"
	"github.com/zkmedar/ctcaematch/internal/embeddings"
	"github.com/zkmedar/ctcaematch/internal/llm"
	"github.com/zkmedar/ctcaematch/internal/matcher"
	"github.com/zkmedar/ctcaematch/internal/vectordb"
)

// Requests per minute for hosted LLM APIs. Ollama runs locally and is
// not rate limited.
const defaultRPM = 60

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `ctcaematch init` to create a config file", err)
	}
	return cfg, nil
}

// createEmbedderFromConfig creates an embeddings.Embedder based on config.
func createEmbedderFromConfig(cfg *config.Config) (embeddings.Embedder, error) {
	provider := cfg.EmbeddingProvider
	if provider == "" {
		provider = cfg.Provider
	}

	switch provider {
	case config.ProviderOllama:
		return embeddings.NewOllamaEmbedder(cfg.EmbeddingModel, os.Getenv("OLLAMA_HOST")), nil
	default:
		// Anthropic has no embeddings API, so everything but Ollama
		// embeds through OpenAI.
		apiKey := os.Getenv(config.APIKeyEnvVar(config.ProviderOpenAI))
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for %s embeddings", provider)
		}
		return embeddings.NewOpenAIEmbedder(apiKey, cfg.EmbeddingModel), nil
	}
}

// createLLMProviderFromConfig creates the completion provider, rate limited
// for hosted APIs.
func createLLMProviderFromConfig(cfg *config.Config) (llm.Provider, error) {
	provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model)
	if err != nil {
		return nil, err
	}
	if cfg.Provider == config.ProviderOllama {
		return provider, nil
	}
	return llm.NewRateLimitedProvider(provider, defaultRPM), nil
}

// loadStore creates the vector store and loads the persisted index from the
// data directory. A missing index is reported as a warning, not an error, so
// serve and mcp can start before the first `ctcaematch index` run.
func loadStore(ctx context.Context, cfg *config.Config) (vectordb.VectorStore, error) {
	embedder, err := createEmbedderFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating embedder: %w", err)
	}

	store, err := vectordb.NewChromemStore(cfg.Collection, embedder)
	if err != nil {
		return nil, fmt.Errorf("creating vector store: %w", err)
	}

	vectorDir := filepath.Join(cfg.DataDir, "vectordb")
	if err := store.Load(ctx, vectorDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load vector store from %s: %v\n", vectorDir, err)
		fmt.Fprintf(os.Stderr, "Matching will return empty evidence. Run `ctcaematch index` first.\n")
	}

	return store, nil
}

// buildMatcher assembles the full matching pipeline from config.
func buildMatcher(ctx context.Context, cfg *config.Config) (*matcher.Matcher, error) {
	store, err := loadStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	provider, err := createLLMProviderFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating LLM provider: %w", err)
	}

	return matcher.New(store, provider, matcher.Options{
		Model:   cfg.Model,
		TermK:   cfg.TermK,
		GradeK:  cfg.GradeK,
		Timeout: time.Duration(cfg.MatchTimeoutSecs) * time.Second,
	}), nil
}

// terminologyPath is the processed CTCAE term list within the data dir.
func terminologyPath(cfg *config.Config) string {
	return filepath.Join(cfg.DataDir, "ctcae_processed.json")
}

// loadRepository reads the processed terminology file.
func loadRepository(cfg *config.Config) (*ctcae.Repository, error) {
	repo, err := ctcae.LoadRepository(terminologyPath(cfg))
	if err != nil {
		return nil, fmt.Errorf("%w\nRun `ctcaematch download` and `ctcaematch process` first", err)
	}
	return repo, nil
}
