package matcher

import (
	"strings"
	"testing"

	"github.com/zkmedar/ctcaematch/internal/vectordb"
)

func termHit(term, soc, definition string, score float32) vectordb.SearchResult {
	return vectordb.SearchResult{
		Document: vectordb.Document{
			Metadata: vectordb.DocumentMetadata{
				DocType:    vectordb.DocTypeTerm,
				CTCAETerm:  term,
				MedDRASOC:  soc,
				Definition: definition,
			},
		},
		Similarity: score,
	}
}

func gradeHit(term, grade, description string, score float32) vectordb.SearchResult {
	return vectordb.SearchResult{
		Document: vectordb.Document{
			Metadata: vectordb.DocumentMetadata{
				DocType:     vectordb.DocTypeGradeDescription,
				CTCAETerm:   term,
				Grade:       grade,
				Description: description,
			},
		},
		Similarity: score,
	}
}

func TestAssembleContextOrderAndFormat(t *testing.T) {
	termHits := []vectordb.SearchResult{
		termHit("Headache", "Nervous system disorders", "Marked discomfort in the head.", 0.91234),
		termHit("Nausea", "Gastrointestinal disorders", "A queasy sensation.", 0.8),
	}
	gradeHits := []vectordb.SearchResult{
		gradeHit("Headache", "3", "Severe pain; limiting self care ADL", 0.95),
	}

	got := AssembleContext(termHits, gradeHits)

	// Term blocks come before grade blocks even when a grade hit scored higher.
	headacheTerm := strings.Index(got, "Definition: Marked discomfort in the head.")
	nauseaTerm := strings.Index(got, "Definition: A queasy sensation.")
	gradeBlock := strings.Index(got, "Description: Severe pain; limiting self care ADL")
	if headacheTerm == -1 || nauseaTerm == -1 || gradeBlock == -1 {
		t.Fatalf("missing blocks in context:\n%s", got)
	}
	if !(headacheTerm < nauseaTerm && nauseaTerm < gradeBlock) {
		t.Errorf("blocks out of order:\n%s", got)
	}

	// Similarity renders with four decimal places.
	if !strings.Contains(got, "Similarity: 0.9123") {
		t.Errorf("expected 4-decimal similarity, got:\n%s", got)
	}

	// Blocks are separated by exactly one blank line.
	if !strings.Contains(got, "Similarity: 0.9123\n\nCTCAE Term: Nausea") {
		t.Errorf("expected blank line between blocks:\n%s", got)
	}

	// Grade blocks carry grade fields, not definitions.
	if !strings.Contains(got, "Grade: 3\n") {
		t.Errorf("grade block missing grade line:\n%s", got)
	}
}

func TestAssembleContextEmptyLists(t *testing.T) {
	if got := AssembleContext(nil, nil); got != "" {
		t.Errorf("empty hits should produce empty context, got %q", got)
	}

	onlyGrades := AssembleContext(nil, []vectordb.SearchResult{
		gradeHit("Nausea", "1", "Loss of appetite", 0.5),
	})
	if strings.Contains(onlyGrades, "Definition:") {
		t.Errorf("no term blocks expected:\n%s", onlyGrades)
	}
	if !strings.HasPrefix(onlyGrades, "CTCAE Term: Nausea") {
		t.Errorf("unexpected context:\n%s", onlyGrades)
	}
}
