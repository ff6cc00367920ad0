package catalog

import "strings"

// CleanText flattens raw extracted text into its canonical form: embedded
// newlines become single spaces, then leading/trailing whitespace is
// trimmed. It performs no other transformation (no case folding, no HTML
// entity decoding) and is idempotent.
func CleanText(raw string) string {
	return strings.TrimSpace(strings.ReplaceAll(raw, "\n", " "))
}

// CleanOptional is CleanText for optional fields: an input that cleans to
// the empty string becomes nil rather than "".
func CleanOptional(raw string) *string {
	s := CleanText(raw)
	if s == "" {
		return nil
	}
	return &s
}
