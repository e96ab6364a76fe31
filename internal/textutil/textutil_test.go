package textutil

import "testing"

func TestComposeNFC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already NFC", "blåbær", "blåbær"},
		{"empty", "", ""},
		{"ascii only", "hello world", "hello world"},
		{"a ring", "bla\u030abær", "blåbær"},
		{"o stroke stays", "øl", "øl"},
		{"e acute", "e\u0301n", "én"},
		{"upper A ring", "A\u030ase", "Åse"},
		{"mixed", "a\u030a og å", "å og å"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ComposeNFC(tt.input); got != tt.want {
				t.Errorf("ComposeNFC(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBoundaries(t *testing.T) {
	t.Parallel()

	const s = "ca. 5kg på"

	tests := []struct {
		name       string
		i          int
		wantBefore bool
		wantAfter  bool
	}{
		{"start", 0, true, false},
		{"inside word", 1, false, false},
		{"after letters", 2, false, true},
		{"after dot", 3, true, true},
		{"before digit", 4, true, false},
		{"between digit and letter", 5, false, false},
		{"after kg", 7, false, true},
		{"end", len(s), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := BoundaryBefore(s, tt.i); got != tt.wantBefore {
				t.Errorf("BoundaryBefore(%q, %d) = %v, want %v", s, tt.i, got, tt.wantBefore)
			}
			if got := BoundaryAfter(s, tt.i); got != tt.wantAfter {
				t.Errorf("BoundaryAfter(%q, %d) = %v, want %v", s, tt.i, got, tt.wantAfter)
			}
		})
	}
}

func TestRunes(t *testing.T) {
	t.Parallel()

	const s = "på"
	if r, ok := PrevRune(s, len(s)); !ok || r != 'å' {
		t.Errorf("PrevRune(%q, %d) = %q, %v", s, len(s), r, ok)
	}
	if r, ok := NextRune(s, 1); !ok || r != 'å' {
		t.Errorf("NextRune(%q, 1) = %q, %v", s, r, ok)
	}
	if _, ok := PrevRune(s, 0); ok {
		t.Error("PrevRune at start: want ok=false")
	}
	if _, ok := NextRune(s, len(s)); ok {
		t.Error("NextRune at end: want ok=false")
	}

	if !IsTokenRune('\u0301') || IsWordRune('\u0301') {
		t.Error("combining mark: want token rune but not word rune")
	}
	if IsWordRune('.') || IsTokenRune(' ') {
		t.Error("punctuation and space are not word runes")
	}
	if !DigitAfter("a1", 1) || DigitAfter("a1", 0) || DigitAfter("a1", 2) {
		t.Error("DigitAfter mismatch")
	}
}
