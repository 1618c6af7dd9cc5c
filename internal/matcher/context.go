package matcher

import (
	"fmt"
	"strings"

	"github.com/zkmedar/ctcaematch/internal/vectordb"
)

// AssembleContext renders retrieved evidence into the reference block handed
// to the model. Term hits come first, then grade hits, each list in the
// order its search returned; the two lists are never re-sorted against each
// other. Blocks are separated by a blank line.
func AssembleContext(termHits, gradeHits []vectordb.SearchResult) string {
	blocks := make([]string, 0, len(termHits)+len(gradeHits))

	for _, hit := range termHits {
		md := hit.Document.Metadata
		blocks = append(blocks, fmt.Sprintf(
			"CTCAE Term: %s\nMedDRA SOC: %s\nDefinition: %s\nSimilarity: %.4f",
			md.CTCAETerm, md.MedDRASOC, md.Definition, hit.Similarity,
		))
	}

	for _, hit := range gradeHits {
		md := hit.Document.Metadata
		blocks = append(blocks, fmt.Sprintf(
			"CTCAE Term: %s\nGrade: %s\nDescription: %s\nSimilarity: %.4f",
			md.CTCAETerm, md.Grade, md.Description, hit.Similarity,
		))
	}

	return strings.Join(blocks, "\n\n")
}
