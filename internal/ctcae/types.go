package ctcae

// GradeRecord is one severity level of a CTCAE term. Grades run "1" through
// "5" and a term may define only a subset of them.
type GradeRecord struct {
	Grade       string `json:"grade"`
	Description string `json:"description"`
}

// TermRecord is a single CTCAE adverse-event term with its per-grade
// severity descriptions. CTCAETerm is the unique key, compared
// case-insensitively.
type TermRecord struct {
	MedDRACode       string        `json:"meddra_code"`
	MedDRASOC        string        `json:"meddra_soc"`
	CTCAETerm        string        `json:"ctcae_term"`
	Definition       string        `json:"definition"`
	NavigationalNote string        `json:"navigational_note,omitempty"`
	Grades           []GradeRecord `json:"grades"`
}

// TermSet is the processed terminology file: the full term list plus the
// sorted distinct set of MedDRA system organ classes.
type TermSet struct {
	Version    string       `json:"version"`
	Terms      []TermRecord `json:"terms"`
	Categories []string     `json:"categories"`
}
