package vectordb

// DocumentType discriminates the two kinds of retrievable units. A whole
// term and each of its grade descriptions are indexed as separate documents
// so a query can match a specific grade without diluting similarity against
// the full term block.
type DocumentType string

const (
	DocTypeTerm             DocumentType = "term"
	DocTypeGradeDescription DocumentType = "grade_description"
)

// Document represents a retrievable unit stored in the vector index.
type Document struct {
	ID       string
	Content  string
	Metadata DocumentMetadata
}

// DocumentMetadata holds the CTCAE fields attached to a document. Term
// documents carry code, SOC, term name, and definition; grade_description
// documents additionally carry the grade number and description.
type DocumentMetadata struct {
	DocType     DocumentType
	MedDRACode  string
	MedDRASOC   string
	CTCAETerm   string
	Definition  string
	Grade       string
	Description string
}

// SearchResult pairs a document with its similarity score. Scores are
// cosine similarity in [0, 1]: higher is better, consistently across both
// search passes of a matching request.
type SearchResult struct {
	Document   Document
	Similarity float32
}

// SearchFilter narrows search results by metadata fields.
type SearchFilter struct {
	DocType *DocumentType
}
