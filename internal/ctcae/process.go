package ctcae

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Column headers expected in the CTCAE v5.0 CSV export.
const (
	colMedDRACode = "MedDRA Code"
	colMedDRASOC  = "MedDRA SOC"
	colCTCAETerm  = "CTCAE Term"
	colDefinition = "Definition"
	colNavNote    = "Navigational Note"
)

// ProcessCSV parses a CTCAE CSV export into a TermSet. Rows with an empty
// term name or no grade descriptions at all are excluded, since they cannot
// be indexed or matched against.
func ProcessCSV(r io.Reader, version string) (*TermSet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	for _, required := range []string{colMedDRACode, colCTCAETerm, "Grade 1", "Grade 5"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("CSV is missing expected column %q", required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var terms []TermRecord
	socs := make(map[string]bool)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}

		term := TermRecord{
			MedDRACode:       field(row, colMedDRACode),
			MedDRASOC:        field(row, colMedDRASOC),
			CTCAETerm:        field(row, colCTCAETerm),
			Definition:       field(row, colDefinition),
			NavigationalNote: field(row, colNavNote),
		}

		for g := 1; g <= 5; g++ {
			desc := field(row, "Grade "+strconv.Itoa(g))
			if desc == "" || desc == "-" {
				continue
			}
			term.Grades = append(term.Grades, GradeRecord{
				Grade:       strconv.Itoa(g),
				Description: desc,
			})
		}

		if term.CTCAETerm == "" || len(term.Grades) == 0 {
			continue
		}

		terms = append(terms, term)
		if term.MedDRASOC != "" {
			socs[term.MedDRASOC] = true
		}
	}

	if len(terms) == 0 {
		return nil, fmt.Errorf("no usable CTCAE terms found in CSV")
	}

	categories := make([]string, 0, len(socs))
	for soc := range socs {
		categories = append(categories, soc)
	}
	sort.Strings(categories)

	return &TermSet{
		Version:    version,
		Terms:      terms,
		Categories: categories,
	}, nil
}

// ProcessCSVFile is ProcessCSV over a file path.
func ProcessCSVFile(path, version string) (*TermSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening CTCAE file: %w", err)
	}
	defer f.Close()

	return ProcessCSV(f, version)
}
