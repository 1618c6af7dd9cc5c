package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/zkmedar/ctcaematch/internal/ctcae"
	"github.com/zkmedar/ctcaematch/internal/llm"
	"github.com/zkmedar/ctcaematch/internal/matcher"
	"github.com/zkmedar/ctcaematch/internal/vectordb"
)

// mockStore implements vectordb.VectorStore and returns no hits.
type mockStore struct{}

func (mockStore) AddDocuments(_ context.Context, _ []vectordb.Document) error { return nil }
func (mockStore) Search(_ context.Context, _ string, _ int, _ *vectordb.SearchFilter) ([]vectordb.SearchResult, error) {
	return nil, nil
}
func (mockStore) DeleteCollection(_ context.Context) error  { return nil }
func (mockStore) Persist(_ context.Context, _ string) error { return nil }
func (mockStore) Load(_ context.Context, _ string) error    { return nil }
func (mockStore) Count() int                                { return 0 }

// mockProvider implements llm.Provider with a canned response.
type mockProvider struct {
	content string
}

func (m mockProvider) Name() string { return "mock" }
func (m mockProvider) Complete(_ context.Context, _ llm.CompletionRequest) (*llm.CompletionResponse, error) {
	return &llm.CompletionResponse{Content: m.content}, nil
}

func testServer(llmContent string) *Server {
	m := matcher.New(mockStore{}, mockProvider{content: llmContent}, matcher.Options{})
	repo := ctcae.NewRepository(ctcae.TermSet{
		Version: "5.0",
		Terms: []ctcae.TermRecord{
			{
				MedDRACode: "10019211",
				MedDRASOC:  "Nervous system disorders",
				CTCAETerm:  "Headache",
				Definition: "A disorder characterized by a sensation of marked discomfort in various parts of the head.",
				Grades: []ctcae.GradeRecord{
					{Grade: "1", Description: "Mild pain"},
					{Grade: "2", Description: "Moderate pain; limiting instrumental ADL"},
					{Grade: "3", Description: "Severe pain; limiting self care ADL"},
				},
			},
		},
		Categories: []string{"Nervous system disorders"},
	})
	return NewServer(m, repo)
}

func textContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("tool result has no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", result.Content[0])
	}
	return text.Text
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"match_symptom", matchSymptomTool, "match_symptom"},
		{"lookup_term", lookupTermTool, "lookup_term"},
		{"list_categories", listCategoriesTool, "list_categories"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := testServer("{}")
	if srv == nil {
		t.Fatal("NewServer returned nil")
	}
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
}

func TestHandleMatchSymptom(t *testing.T) {
	ctx := context.Background()

	t.Run("successful match", func(t *testing.T) {
		srv := testServer(`{"ctcae_term": "Headache", "grade": "2", "confidence": "high"}`)
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"symptom": "pounding head pain",
			"details": "for three days",
		}

		result, err := srv.handleMatchSymptom(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}

		text := textContent(t, result)
		for _, want := range []string{`"ctcae_term": "Headache"`, `"grade": "2"`, `"original_symptom": "pounding head pain"`} {
			if !strings.Contains(text, want) {
				t.Errorf("result missing %q:\n%s", want, text)
			}
		}
	})

	t.Run("unparseable completion still returns a result", func(t *testing.T) {
		srv := testServer("not json at all")
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"symptom": "pounding head pain"}

		result, err := srv.handleMatchSymptom(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatal("pipeline failures should be encoded in the result, not as tool errors")
		}
		if text := textContent(t, result); !strings.Contains(text, `"error"`) {
			t.Errorf("expected failure variant, got:\n%s", text)
		}
	})

	t.Run("missing symptom", func(t *testing.T) {
		srv := testServer("{}")
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleMatchSymptom(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing symptom")
		}
	})

	t.Run("blank symptom", func(t *testing.T) {
		srv := testServer("{}")
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"symptom": "   "}

		result, err := srv.handleMatchSymptom(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for blank symptom")
		}
	})
}

func TestHandleLookupTerm(t *testing.T) {
	srv := testServer("{}")
	ctx := context.Background()

	t.Run("existing term", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"term": "headache"}

		result, err := srv.handleLookupTerm(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}

		text := textContent(t, result)
		for _, want := range []string{"CTCAE Term: Headache", "MedDRA SOC: Nervous system disorders", "Grade 2: Moderate pain"} {
			if !strings.Contains(text, want) {
				t.Errorf("result missing %q:\n%s", want, text)
			}
		}
	})

	t.Run("unknown term", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"term": "Vomiting"}

		result, err := srv.handleLookupTerm(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for unknown term")
		}
	})

	t.Run("missing term param", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleLookupTerm(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing term")
		}
	})
}

func TestHandleListCategories(t *testing.T) {
	srv := testServer("{}")
	ctx := context.Background()

	t.Run("all categories", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleListCategories(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		if text := textContent(t, result); !strings.Contains(text, "Nervous system disorders") {
			t.Errorf("categories missing from:\n%s", text)
		}
	})

	t.Run("terms within a category", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"category": "Nervous system disorders"}

		result, err := srv.handleListCategories(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		if text := textContent(t, result); !strings.Contains(text, "- Headache") {
			t.Errorf("terms missing from:\n%s", text)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"category": "Imaginary disorders"}

		result, err := srv.handleListCategories(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for unknown category")
		}
	})
}
