package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zkmedar/ctcaematch/internal/db"
)

// Store provides CRUD operations for match history entries.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Record inserts a new history entry. If entry.ID is empty a UUID is
// generated.
func (s *Store) Record(ctx context.Context, entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO match_history (
			id, symptom, details, ctcae_term, grade, meddra_soc,
			confidence, error, duration_ms
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Symptom,
		entry.Details,
		entry.CTCAETerm,
		entry.Grade,
		entry.MedDRASOC,
		entry.Confidence,
		entry.Error,
		entry.DurationMS,
	)
	if err != nil {
		return fmt.Errorf("inserting history entry: %w", err)
	}
	return nil
}

// GetByID retrieves a single history entry.
func (s *Store) GetByID(ctx context.Context, id string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, timestamp, symptom, details, ctcae_term, grade,
			   meddra_soc, confidence, error, duration_ms
		FROM match_history WHERE id = ?`, id)

	return scanEntry(row)
}

// QueryFilter controls which history entries are returned by Query.
type QueryFilter struct {
	Term       string
	Confidence string
	OnlyErrors bool
	Since      *time.Time
	Until      *time.Time
	Limit      int
	Offset     int
}

// Query returns history entries matching the filter, newest first.
func (s *Store) Query(ctx context.Context, filter QueryFilter) ([]Entry, error) {
	var (
		clauses []string
		args    []any
	)

	if filter.Term != "" {
		clauses = append(clauses, "ctcae_term = ?")
		args = append(args, filter.Term)
	}
	if filter.Confidence != "" {
		clauses = append(clauses, "confidence = ?")
		args = append(args, filter.Confidence)
	}
	if filter.OnlyErrors {
		clauses = append(clauses, "error != ''")
	}
	if filter.Since != nil {
		clauses = append(clauses, "timestamp >= ?")
		args = append(args, filter.Since.UTC().Format("2006-01-02 15:04:05"))
	}
	if filter.Until != nil {
		clauses = append(clauses, "timestamp <= ?")
		args = append(args, filter.Until.UTC().Format("2006-01-02 15:04:05"))
	}

	query := `
		SELECT id, timestamp, symptom, details, ctcae_term, grade,
			   meddra_soc, confidence, error, duration_ms
		FROM match_history`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY timestamp DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += " LIMIT ?"
	args = append(args, limit)

	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

// scanner abstracts sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*Entry, error) {
	var entry Entry
	var ts string

	err := row.Scan(
		&entry.ID,
		&ts,
		&entry.Symptom,
		&entry.Details,
		&entry.CTCAETerm,
		&entry.Grade,
		&entry.MedDRASOC,
		&entry.Confidence,
		&entry.Error,
		&entry.DurationMS,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("history entry not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning history entry: %w", err)
	}

	if t, err := time.Parse("2006-01-02 15:04:05", ts); err == nil {
		entry.Timestamp = t.UTC()
	}
	return &entry, nil
}
