package ctcae

import "strings"

// FormatGradeDescription normalizes whitespace in a grade description and
// truncates it to maxLength runes (0 means no limit), appending "..." when
// truncated.
func FormatGradeDescription(description string, maxLength int) string {
	if description == "" {
		return ""
	}

	formatted := strings.Join(strings.Fields(description), " ")

	if maxLength > 0 && len(formatted) > maxLength {
		if maxLength <= 3 {
			return formatted[:maxLength]
		}
		formatted = formatted[:maxLength-3] + "..."
	}

	return formatted
}
