package orchestration

import "strings"

// Transcript is an assistant chat history prepared for matching.
type Transcript struct {
	raw   string
	lower string
}

// NewTranscript wraps raw transcript text. Lowercasing happens once here so
// that every check can share it.
func NewTranscript(raw string) *Transcript {
	return &Transcript{raw: raw, lower: strings.ToLower(raw)}
}

// Head returns the lowercased first n characters (runes) of the transcript.
func (t *Transcript) Head(n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range t.raw {
		if count == n {
			return strings.ToLower(t.raw[:i])
		}
		count++
	}
	return t.lower
}

// ContainsAny reports whether any phrase occurs in the full transcript,
// ignoring case.
func (t *Transcript) ContainsAny(phrases []string) bool {
	return containsAnyFold(t.lower, phrases)
}

// CountAll sums the case-sensitive, non-overlapping occurrences of markers.
func (t *Transcript) CountAll(markers []string) int {
	total := 0
	for _, m := range markers {
		if m == "" {
			continue
		}
		total += strings.Count(t.raw, m)
	}
	return total
}

// containsAnyFold reports whether lowered contains any phrase after the
// phrase is lowercased.
func containsAnyFold(lowered string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lowered, strings.ToLower(p)) {
			return true
		}
	}
	return false
}
