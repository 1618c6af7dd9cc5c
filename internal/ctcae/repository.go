package ctcae

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Repository holds the canonical CTCAE term list. It is loaded once and
// read-only afterwards, so it is safe for concurrent readers.
type Repository struct {
	version    string
	terms      []TermRecord
	categories []string
	byName     map[string]*TermRecord
}

// NewRepository builds a Repository from a TermSet.
func NewRepository(set TermSet) *Repository {
	r := &Repository{
		version:    set.Version,
		terms:      set.Terms,
		categories: set.Categories,
		byName:     make(map[string]*TermRecord, len(set.Terms)),
	}
	for i := range r.terms {
		r.byName[strings.ToLower(r.terms[i].CTCAETerm)] = &r.terms[i]
	}
	return r
}

// LoadRepository reads the processed terminology JSON from path.
func LoadRepository(path string) (*Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading terminology file: %w", err)
	}

	var set TermSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parsing terminology file %s: %w", path, err)
	}

	if len(set.Terms) == 0 {
		return nil, fmt.Errorf("terminology file %s contains no terms", path)
	}

	return NewRepository(set), nil
}

// Save writes the repository's TermSet to a JSON file, creating parent
// directories as needed.
func (s TermSet) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating terminology directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling terminology: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing terminology file: %w", err)
	}
	return nil
}

// Version returns the CTCAE version the repository was processed from.
func (r *Repository) Version() string { return r.version }

// Terms returns all term records.
func (r *Repository) Terms() []TermRecord { return r.terms }

// Count returns the number of terms.
func (r *Repository) Count() int { return len(r.terms) }

// TermByName looks up a term by its CTCAE name, case-insensitively.
// Returns nil if no such term exists.
func (r *Repository) TermByName(name string) *TermRecord {
	return r.byName[strings.ToLower(name)]
}

// GradeDescription returns the canonical description for a specific grade of
// a term, or "" if the term or grade is not defined.
func (r *Repository) GradeDescription(termName, grade string) string {
	term := r.TermByName(termName)
	if term == nil {
		return ""
	}
	for _, g := range term.Grades {
		if g.Grade == grade {
			return g.Description
		}
	}
	return ""
}

// Categories returns all MedDRA system organ classes, sorted.
func (r *Repository) Categories() []string {
	out := make([]string, len(r.categories))
	copy(out, r.categories)
	return out
}

// TermsByCategory returns all terms belonging to the given system organ class.
func (r *Repository) TermsByCategory(soc string) []TermRecord {
	var out []TermRecord
	for _, term := range r.terms {
		if term.MedDRASOC == soc {
			out = append(out, term)
		}
	}
	return out
}

// SearchTerms returns terms whose name, definition, or any grade description
// contains the query as a case-insensitive substring.
func (r *Repository) SearchTerms(query string) []TermRecord {
	query = strings.ToLower(query)
	var out []TermRecord

	for _, term := range r.terms {
		if strings.Contains(strings.ToLower(term.CTCAETerm), query) ||
			strings.Contains(strings.ToLower(term.Definition), query) {
			out = append(out, term)
			continue
		}
		for _, g := range term.Grades {
			if strings.Contains(strings.ToLower(g.Description), query) {
				out = append(out, term)
				break
			}
		}
	}
	return out
}
