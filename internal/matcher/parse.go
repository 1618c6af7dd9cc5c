package matcher

import (
	"encoding/json"
	"strconv"
	"strings"
)

// parseFailureMessage is attached to the failure variant when the model's
// output could not be parsed as JSON.
const parseFailureMessage = "Failed to parse LLM response as JSON"

// extractJSON returns the substring between the first '{' and the last '}'
// in raw, inclusive. This tolerates models that wrap JSON in prose or code
// fences; it can be fooled by stray braces in surrounding commentary, which
// is a known limitation of the extraction strategy.
func extractJSON(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return raw[start : end+1], true
}

// ParseResponse converts the model's raw output into a MatchResult. On a
// successful parse the original symptom and non-empty details are injected
// into the result; keys absent from the model's JSON stay empty, with no
// schema enforcement beyond "parses as an object". On failure the result is
// the failure variant carrying the raw text for diagnosis.
func ParseResponse(raw, symptom, details string) MatchResult {
	candidate, ok := extractJSON(raw)
	if !ok {
		return failureResult(symptom, details, parseFailureMessage, raw)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &fields); err != nil {
		return failureResult(symptom, details, parseFailureMessage, raw)
	}

	return MatchResult{
		CTCAETerm:        stringField(fields, "ctcae_term"),
		Grade:            stringField(fields, "grade"),
		GradeDescription: stringField(fields, "grade_description"),
		MedDRASOC:        stringField(fields, "meddra_soc"),
		Confidence:       stringField(fields, "confidence"),
		Rationale:        stringField(fields, "rationale"),
		OriginalSymptom:  symptom,
		Details:          details,
	}
}

// stringField reads a key from the parsed object as a string. Models
// sometimes emit the grade as a bare number, so JSON numbers are accepted
// and formatted back to their literal form. Absent or unusable keys yield "".
func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}

	return ""
}
