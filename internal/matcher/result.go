package matcher

// Confidence levels the model may assign to a match.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// MatchResult is the outcome of one matching request. It is a tagged union:
// either the success fields are populated, or Error (plus RawResponse when
// the model produced unparseable output). OriginalSymptom is always present.
// Callers must check IsError before using the success fields; every success
// field except OriginalSymptom may be empty if the model omitted a key.
type MatchResult struct {
	CTCAETerm        string `json:"ctcae_term,omitempty"`
	Grade            string `json:"grade,omitempty"`
	GradeDescription string `json:"grade_description,omitempty"`
	MedDRASOC        string `json:"meddra_soc,omitempty"`
	Confidence       string `json:"confidence,omitempty"`
	Rationale        string `json:"rationale,omitempty"`
	OriginalSymptom  string `json:"original_symptom"`
	Details          string `json:"details,omitempty"`
	Error            string `json:"error,omitempty"`
	RawResponse      string `json:"raw_response,omitempty"`
}

// IsError reports whether this result is the failure variant.
func (r MatchResult) IsError() bool {
	return r.Error != ""
}

// failureResult builds the failure variant.
func failureResult(symptom, details, errMsg, rawResponse string) MatchResult {
	return MatchResult{
		OriginalSymptom: symptom,
		Details:         details,
		Error:           errMsg,
		RawResponse:     rawResponse,
	}
}
