package indexer

import (
	"context"
	"errors"
	"testing"

	"github.com/zkmedar/ctcaematch/internal/ctcae"
	"github.com/zkmedar/ctcaematch/internal/vectordb"
)

// memStore is an in-memory VectorStore for indexing tests.
type memStore struct {
	docs       map[string]vectordb.Document
	deletes    int
	deleteErr  error
	failBatch  int // fail the nth AddDocuments call (1-based), 0 = never
	addCalls   int
}

func newMemStore() *memStore {
	return &memStore{docs: make(map[string]vectordb.Document)}
}

func (m *memStore) AddDocuments(ctx context.Context, docs []vectordb.Document) error {
	m.addCalls++
	if m.failBatch > 0 && m.addCalls == m.failBatch {
		return errors.New("backend write failed")
	}
	for _, d := range docs {
		m.docs[d.ID] = d
	}
	return nil
}

func (m *memStore) Search(ctx context.Context, query string, limit int, filter *vectordb.SearchFilter) ([]vectordb.SearchResult, error) {
	return nil, nil
}

func (m *memStore) DeleteCollection(ctx context.Context) error {
	m.deletes++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.docs = make(map[string]vectordb.Document)
	return nil
}

func (m *memStore) Persist(ctx context.Context, dir string) error { return nil }
func (m *memStore) Load(ctx context.Context, dir string) error    { return nil }
func (m *memStore) Count() int                                    { return len(m.docs) }

func sampleTerms() []ctcae.TermRecord {
	return []ctcae.TermRecord{
		{
			MedDRACode: "10028813",
			MedDRASOC:  "Gastrointestinal disorders",
			CTCAETerm:  "Nausea",
			Definition: "A queasy sensation.",
			Grades: []ctcae.GradeRecord{
				{Grade: "1", Description: "Loss of appetite"},
				{Grade: "2", Description: "Oral intake decreased"},
				{Grade: "3", Description: "Inadequate oral intake"},
			},
		},
		{
			MedDRACode: "10019211",
			MedDRASOC:  "Nervous system disorders",
			CTCAETerm:  "Headache",
			Definition: "Head discomfort.",
			Grades: []ctcae.GradeRecord{
				{Grade: "1", Description: "Mild pain"},
				{Grade: "3", Description: ""}, // empty descriptions are skipped
			},
		},
	}
}

func TestIndexEmitsOneTermPlusGradeDocs(t *testing.T) {
	store := newMemStore()
	ix := New(store, nil)

	count, err := ix.Index(context.Background(), sampleTerms(), false)
	if err != nil {
		t.Fatalf("Index: %v", err)
	}

	// Nausea: 1 term + 3 grades; Headache: 1 term + 1 grade (empty skipped).
	if count != 6 {
		t.Errorf("count = %d, want 6", count)
	}
	if store.Count() != 6 {
		t.Errorf("store holds %d docs, want 6", store.Count())
	}

	termDocs := 0
	for _, doc := range store.docs {
		if doc.Metadata.DocType == vectordb.DocTypeTerm {
			termDocs++
		}
	}
	if termDocs != 2 {
		t.Errorf("term docs = %d, want 2", termDocs)
	}
}

func TestIndexResetIdempotence(t *testing.T) {
	store := newMemStore()
	ix := New(store, nil)
	terms := sampleTerms()

	first, err := ix.Index(context.Background(), terms, true)
	if err != nil {
		t.Fatalf("first Index: %v", err)
	}
	second, err := ix.Index(context.Background(), terms, true)
	if err != nil {
		t.Fatalf("second Index: %v", err)
	}

	if first != second {
		t.Errorf("reset indexing not idempotent: %d vs %d", first, second)
	}
	if store.Count() != first {
		t.Errorf("store holds %d docs after second run, want %d", store.Count(), first)
	}
	if store.deletes != 2 {
		t.Errorf("expected 2 collection deletions, got %d", store.deletes)
	}
}

func TestIndexSwallowsDeleteFailure(t *testing.T) {
	store := newMemStore()
	store.deleteErr = errors.New("collection does not exist")
	ix := New(store, nil)

	count, err := ix.Index(context.Background(), sampleTerms(), true)
	if err != nil {
		t.Fatalf("Index should swallow deletion failure: %v", err)
	}
	if count != 6 {
		t.Errorf("count = %d, want 6", count)
	}
}

func TestIndexPartialBatchFailure(t *testing.T) {
	// 150 single-grade terms produce 300 documents = 3 batches of 100.
	var terms []ctcae.TermRecord
	for i := 0; i < 150; i++ {
		terms = append(terms, ctcae.TermRecord{
			CTCAETerm:  "Term" + string(rune('A'+i%26)) + string(rune('0'+i/26)),
			Definition: "def",
			Grades:     []ctcae.GradeRecord{{Grade: "1", Description: "desc"}},
		})
	}

	store := newMemStore()
	store.failBatch = 2
	ix := New(store, nil)

	count, err := ix.Index(context.Background(), terms, false)
	if err != nil {
		t.Fatalf("Index: %v", err)
	}

	// The failed middle batch is skipped; the rest still commits.
	if count != 200 {
		t.Errorf("count = %d, want 200 (one batch of 100 lost)", count)
	}
	if store.addCalls != 3 {
		t.Errorf("addCalls = %d, want 3", store.addCalls)
	}
}

func TestBuildDocumentsContent(t *testing.T) {
	docs := BuildDocuments(sampleTerms()[:1])

	if docs[0].ID != "term:nausea" {
		t.Errorf("term doc ID = %q", docs[0].ID)
	}
	if docs[0].Content != "Nausea: A queasy sensation. Gastrointestinal disorders" {
		t.Errorf("term content = %q", docs[0].Content)
	}

	if docs[1].ID != "grade:nausea:1" {
		t.Errorf("grade doc ID = %q", docs[1].ID)
	}
	if docs[1].Content != "Nausea Grade 1: Loss of appetite" {
		t.Errorf("grade content = %q", docs[1].Content)
	}
	if docs[1].Metadata.MedDRASOC != "Gastrointestinal disorders" {
		t.Errorf("grade doc missing parent SOC: %+v", docs[1].Metadata)
	}
}

func TestIndexStopsOnCancelledContext(t *testing.T) {
	store := newMemStore()
	ix := New(store, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	count, err := ix.Index(ctx, sampleTerms(), false)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if count != 0 {
		t.Errorf("committed %d documents on cancelled context, want 0", count)
	}
	if store.addCalls != 0 {
		t.Errorf("store received %d writes on cancelled context, want 0", store.addCalls)
	}
}
