package catalog

import "testing"

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "CMSC131", "CMSC131"},
		{"surrounding whitespace", "  REG/P-F/AUD ", "REG/P-F/AUD"},
		{"embedded newline", "Object-Oriented\nProgramming I", "Object-Oriented Programming I"},
		{"leading newline", "\nD. Jacobs", "D. Jacobs"},
		{"multiple newlines", "a\nb\nc", "a b c"},
		{"empty", "", ""},
		{"whitespace only", " \n\t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.input); got != tt.expected {
				t.Errorf("CleanText(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCleanTextIdempotent(t *testing.T) {
	inputs := []string{"", "  x  ", "a\nb", " \n ", "Grade Method: REG."}
	for _, in := range inputs {
		once := CleanText(in)
		twice := CleanText(once)
		if once != twice {
			t.Errorf("CleanText not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestCleanOptional(t *testing.T) {
	if got := CleanOptional(" \n "); got != nil {
		t.Errorf("expected nil for whitespace-only input, got %q", *got)
	}
	if got := CleanOptional(""); got != nil {
		t.Errorf("expected nil for empty input, got %q", *got)
	}

	got := CleanOptional(" (PermReq)\n")
	if got == nil {
		t.Fatal("expected non-nil result")
	}
	if *got != "(PermReq)" {
		t.Errorf("expected %q, got %q", "(PermReq)", *got)
	}
}
