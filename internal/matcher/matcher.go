package matcher

import (
	"context"
	"sync"
	"time"

	"github.com/zkmedar/ctcaematch/internal/llm"
	"github.com/zkmedar/ctcaematch/internal/vectordb"
)

// Options configures a Matcher.
type Options struct {
	// Model overrides the provider's default completion model when set.
	Model string
	// TermK and GradeK are the retrieval depths for the two search passes.
	// Zero values fall back to 3 and 5.
	TermK  int
	GradeK int
	// Timeout bounds one whole Match call, retrieval and generation
	// included. Zero disables the deadline.
	Timeout time.Duration
}

// Matcher standardizes free-text symptom descriptions to CTCAE terms by
// retrieving similar reference entries and asking a language model to pick
// the best match. It is safe for concurrent use.
type Matcher struct {
	retriever *Retriever
	provider  llm.Provider
	model     string
	timeout   time.Duration
}

// New creates a Matcher over the given vector store and LLM provider.
func New(store vectordb.VectorStore, provider llm.Provider, opts Options) *Matcher {
	return &Matcher{
		retriever: NewRetriever(store, opts.TermK, opts.GradeK),
		provider:  provider,
		model:     opts.Model,
		timeout:   opts.Timeout,
	}
}

// Match runs the full pipeline for one symptom: retrieve terms, retrieve
// grade descriptions, assemble context, generate, parse. It never returns an
// error for recoverable pipeline failures; the result is either the success
// or the failure variant, and callers discriminate via IsError.
func (m *Matcher) Match(ctx context.Context, symptom, details string) MatchResult {
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	// The two searches are independent, so they run concurrently.
	var termHits, gradeHits []vectordb.SearchResult
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		termHits = m.retriever.SearchTerms(ctx, symptom)
	}()
	go func() {
		defer wg.Done()
		gradeHits = m.retriever.SearchGrades(ctx, symptom, details)
	}()
	wg.Wait()

	evidence := AssembleContext(termHits, gradeHits)

	raw, err := m.generate(ctx, symptom, details, evidence)
	if err != nil {
		return failureResult(symptom, details, err.Error(), "")
	}

	return ParseResponse(raw, symptom, details)
}

// generate performs the single completion call. Temperature is pinned to 0
// to minimize nondeterministic term selection; there are no retries at this
// layer.
func (m *Matcher) generate(ctx context.Context, symptom, details, evidence string) (string, error) {
	resp, err := m.provider.Complete(ctx, llm.CompletionRequest{
		Model: m.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: systemPrompt},
			{Role: llm.RoleUser, Content: buildMatchPrompt(symptom, details, evidence)},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}
