package indexer

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/zkmedar/ctcaematch/internal/ctcae"
	"github.com/zkmedar/ctcaematch/internal/progress"
	"github.com/zkmedar/ctcaematch/internal/vectordb"
)

// batchSize bounds the number of documents per upsert call against the
// index backend.
const batchSize = 100

// Indexer converts CTCAE term records into retrievable documents and writes
// them to the vector store. Indexing runs must not execute concurrently
// against the same collection; run them as a singleton maintenance job.
type Indexer struct {
	store    vectordb.VectorStore
	reporter progress.Reporter
}

// New creates an Indexer over the given store. reporter may be nil.
func New(store vectordb.VectorStore, reporter progress.Reporter) *Indexer {
	return &Indexer{store: store, reporter: reporter}
}

// Index writes one "term" document per record plus one "grade_description"
// document per non-empty grade. With reset it first deletes all prior
// documents under the collection; a deletion failure (e.g. the collection
// never existed) is logged and swallowed. Batch failures are logged and do
// not abort the remaining batches, so the returned count reflects only
// documents actually committed. The error return is reserved for
// non-recoverable conditions: context cancellation stops the run and is
// reported alongside the count committed so far.
func (ix *Indexer) Index(ctx context.Context, terms []ctcae.TermRecord, reset bool) (int, error) {
	if reset {
		if err := ix.store.DeleteCollection(ctx); err != nil {
			log.Printf("indexer: collection deletion attempt: %v", err)
		}
	}

	docs := BuildDocuments(terms)

	if ix.reporter != nil {
		ix.reporter.Start(len(docs))
		defer ix.reporter.Finish()
	}

	written := 0
	for start := 0; start < len(docs); start += batchSize {
		end := start + batchSize
		if end > len(docs) {
			end = len(docs)
		}
		batch := docs[start:end]

		if err := ctx.Err(); err != nil {
			return written, err
		}

		if err := ix.store.AddDocuments(ctx, batch); err != nil {
			log.Printf("indexer: batch %d-%d failed: %v", start, end, err)
			continue
		}
		written += len(batch)

		if ix.reporter != nil {
			ix.reporter.Update(written, fmt.Sprintf("indexed %d/%d documents", written, len(docs)))
		}
	}

	return written, nil
}

// BuildDocuments expands term records into their retrievable units. Each
// grade description becomes its own document so a query can match a specific
// severity level directly.
func BuildDocuments(terms []ctcae.TermRecord) []vectordb.Document {
	var docs []vectordb.Document

	for _, term := range terms {
		docs = append(docs, vectordb.Document{
			ID:      termDocID(term.CTCAETerm),
			Content: fmt.Sprintf("%s: %s %s", term.CTCAETerm, term.Definition, term.MedDRASOC),
			Metadata: vectordb.DocumentMetadata{
				DocType:    vectordb.DocTypeTerm,
				MedDRACode: term.MedDRACode,
				MedDRASOC:  term.MedDRASOC,
				CTCAETerm:  term.CTCAETerm,
				Definition: term.Definition,
			},
		})

		for _, grade := range term.Grades {
			if grade.Description == "" {
				continue
			}
			docs = append(docs, vectordb.Document{
				ID:      gradeDocID(term.CTCAETerm, grade.Grade),
				Content: fmt.Sprintf("%s Grade %s: %s", term.CTCAETerm, grade.Grade, grade.Description),
				Metadata: vectordb.DocumentMetadata{
					DocType:     vectordb.DocTypeGradeDescription,
					MedDRACode:  term.MedDRACode,
					MedDRASOC:   term.MedDRASOC,
					CTCAETerm:   term.CTCAETerm,
					Grade:       grade.Grade,
					Description: grade.Description,
				},
			})
		}
	}

	return docs
}

// Document IDs are deterministic so re-indexing without reset upserts
// rather than duplicates.
func termDocID(term string) string {
	return "term:" + strings.ToLower(term)
}

func gradeDocID(term, grade string) string {
	return "grade:" + strings.ToLower(term) + ":" + grade
}
