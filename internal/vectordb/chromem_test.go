package vectordb

import (
	"context"
	"math"
	"testing"
)

// mockEmbedder returns deterministic embeddings based on text content.
// It produces a simple hash-based vector for reproducible tests.
type mockEmbedder struct {
	dims int
}

func newMockEmbedder(dims int) *mockEmbedder {
	return &mockEmbedder{dims: dims}
}

func (m *mockEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	results := make([][]float32, len(texts))
	for i, text := range texts {
		results[i] = m.deterministicVector(text)
	}
	return results, nil
}

func (m *mockEmbedder) Name() string { return "mock" }

// deterministicVector produces a normalized vector from text. Similar texts
// produce similar vectors because shared characters contribute to the same
// positions in the vector.
func (m *mockEmbedder) deterministicVector(text string) []float32 {
	vec := make([]float32, m.dims)
	for i, ch := range text {
		idx := (int(ch) + i) % m.dims
		vec[idx] += 1.0
	}
	var norm float64
	for _, v := range vec {
		norm += float64(v * v)
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] = float32(float64(vec[i]) / norm)
		}
	}
	return vec
}

func testDocs() []Document {
	return []Document{
		{
			ID:      "term:nausea",
			Content: "Nausea: A disorder characterized by a queasy sensation and/or the urge to vomit. Gastrointestinal disorders",
			Metadata: DocumentMetadata{
				DocType:    DocTypeTerm,
				MedDRACode: "10028813",
				MedDRASOC:  "Gastrointestinal disorders",
				CTCAETerm:  "Nausea",
				Definition: "A disorder characterized by a queasy sensation and/or the urge to vomit.",
			},
		},
		{
			ID:      "grade:nausea:2",
			Content: "Nausea Grade 2: Oral intake decreased without significant weight loss",
			Metadata: DocumentMetadata{
				DocType:     DocTypeGradeDescription,
				MedDRACode:  "10028813",
				MedDRASOC:   "Gastrointestinal disorders",
				CTCAETerm:   "Nausea",
				Grade:       "2",
				Description: "Oral intake decreased without significant weight loss",
			},
		},
		{
			ID:      "term:headache",
			Content: "Headache: A disorder characterized by a sensation of marked discomfort in various parts of the head. Nervous system disorders",
			Metadata: DocumentMetadata{
				DocType:    DocTypeTerm,
				MedDRACode: "10019211",
				MedDRASOC:  "Nervous system disorders",
				CTCAETerm:  "Headache",
				Definition: "A disorder characterized by a sensation of marked discomfort in various parts of the head.",
			},
		},
	}
}

func TestChromemStore_AddAndSearch(t *testing.T) {
	ctx := context.Background()
	store, err := NewChromemStore("ctcae_test", newMockEmbedder(64))
	if err != nil {
		t.Fatalf("NewChromemStore: %v", err)
	}

	if err := store.AddDocuments(ctx, testDocs()); err != nil {
		t.Fatalf("AddDocuments: %v", err)
	}
	if store.Count() != 3 {
		t.Fatalf("Count = %d, want 3", store.Count())
	}

	results, err := store.Search(ctx, "Nausea: A disorder characterized by a queasy sensation", 3, nil)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}
	if results[0].Document.Metadata.CTCAETerm != "Nausea" {
		t.Errorf("top hit = %q, want Nausea", results[0].Document.Metadata.CTCAETerm)
	}

	// Scores come back highest first.
	for i := 1; i < len(results); i++ {
		if results[i].Similarity > results[i-1].Similarity {
			t.Errorf("results not ordered by descending similarity at %d", i)
		}
	}
}

func TestChromemStore_DocTypeFilter(t *testing.T) {
	ctx := context.Background()
	store, err := NewChromemStore("ctcae_test", newMockEmbedder(64))
	if err != nil {
		t.Fatalf("NewChromemStore: %v", err)
	}
	if err := store.AddDocuments(ctx, testDocs()); err != nil {
		t.Fatalf("AddDocuments: %v", err)
	}

	docType := DocTypeGradeDescription
	results, err := store.Search(ctx, "decreased oral intake", 3, &SearchFilter{DocType: &docType})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected grade_description results")
	}
	for _, r := range results {
		if r.Document.Metadata.DocType != DocTypeGradeDescription {
			t.Errorf("filter leaked doc_type %q", r.Document.Metadata.DocType)
		}
	}
}

func TestChromemStore_MetadataRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewChromemStore("ctcae_test", newMockEmbedder(64))
	if err != nil {
		t.Fatalf("NewChromemStore: %v", err)
	}

	want := testDocs()[1]
	if err := store.AddDocuments(ctx, []Document{want}); err != nil {
		t.Fatalf("AddDocuments: %v", err)
	}

	results, err := store.Search(ctx, want.Content, 1, nil)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}

	got := results[0].Document.Metadata
	if got != want.Metadata {
		t.Errorf("metadata round-trip mismatch:\n got %+v\nwant %+v", got, want.Metadata)
	}
}

func TestChromemStore_DeleteCollection(t *testing.T) {
	ctx := context.Background()
	store, err := NewChromemStore("ctcae_test", newMockEmbedder(64))
	if err != nil {
		t.Fatalf("NewChromemStore: %v", err)
	}
	if err := store.AddDocuments(ctx, testDocs()); err != nil {
		t.Fatalf("AddDocuments: %v", err)
	}

	if err := store.DeleteCollection(ctx); err != nil {
		t.Fatalf("DeleteCollection: %v", err)
	}
	if store.Count() != 0 {
		t.Errorf("Count after delete = %d, want 0", store.Count())
	}

	// Deleting an already-empty collection is not an error.
	if err := store.DeleteCollection(ctx); err != nil {
		t.Errorf("second DeleteCollection: %v", err)
	}

	// The store is still usable after a reset.
	if err := store.AddDocuments(ctx, testDocs()); err != nil {
		t.Fatalf("AddDocuments after delete: %v", err)
	}
	if store.Count() != 3 {
		t.Errorf("Count after re-add = %d, want 3", store.Count())
	}
}

func TestChromemStore_PersistAndLoad(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	embedder := newMockEmbedder(64)

	store, err := NewChromemStore("ctcae_test", embedder)
	if err != nil {
		t.Fatalf("NewChromemStore: %v", err)
	}
	if err := store.AddDocuments(ctx, testDocs()); err != nil {
		t.Fatalf("AddDocuments: %v", err)
	}
	if err := store.Persist(ctx, dir); err != nil {
		t.Fatalf("Persist: %v", err)
	}

	restored, err := NewChromemStore("ctcae_test", embedder)
	if err != nil {
		t.Fatalf("NewChromemStore: %v", err)
	}
	if err := restored.Load(ctx, dir); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if restored.Count() != 3 {
		t.Errorf("Count after load = %d, want 3", restored.Count())
	}
}

func TestChromemStore_SearchEmptyStore(t *testing.T) {
	store, err := NewChromemStore("ctcae_test", newMockEmbedder(64))
	if err != nil {
		t.Fatalf("NewChromemStore: %v", err)
	}

	results, err := store.Search(context.Background(), "anything", 5, nil)
	if err != nil {
		t.Fatalf("Search on empty store: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}
