package matcher

import (
	"context"
	"log"

	"github.com/zkmedar/ctcaematch/internal/vectordb"
)

// Retriever issues the two metadata-filtered searches of a matching request.
// Retrieval failures degrade to empty hit lists; the pipeline still attempts
// generation with whatever evidence it has.
type Retriever struct {
	store  vectordb.VectorStore
	termK  int
	gradeK int
}

// NewRetriever creates a Retriever over the given store. termK and gradeK
// are the retrieval depths for the term and grade passes.
func NewRetriever(store vectordb.VectorStore, termK, gradeK int) *Retriever {
	if termK < 1 {
		termK = 3
	}
	if gradeK < 1 {
		gradeK = 5
	}
	return &Retriever{store: store, termK: termK, gradeK: gradeK}
}

// SearchTerms retrieves the closest term documents for the symptom alone.
// Term identification favors precision, so the query excludes details and
// the depth is small.
func (r *Retriever) SearchTerms(ctx context.Context, symptom string) []vectordb.SearchResult {
	docType := vectordb.DocTypeTerm
	return r.search(ctx, symptom, r.termK, &vectordb.SearchFilter{DocType: &docType})
}

// SearchGrades retrieves candidate grade descriptions for symptom plus
// details. Grade selection favors recall: picking a grade means comparing
// severity levels against each other, so more candidates help.
func (r *Retriever) SearchGrades(ctx context.Context, symptom, details string) []vectordb.SearchResult {
	docType := vectordb.DocTypeGradeDescription
	return r.search(ctx, symptom+" "+details, r.gradeK, &vectordb.SearchFilter{DocType: &docType})
}

func (r *Retriever) search(ctx context.Context, query string, k int, filter *vectordb.SearchFilter) []vectordb.SearchResult {
	results, err := r.store.Search(ctx, query, k, filter)
	if err != nil {
		log.Printf("matcher: vector search failed, continuing with no hits: %v", err)
		return nil
	}
	return results
}
