package matching

import "testing"

func TestNormalizeCity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "empty", input: "", expect: ""},
		{name: "already normalized", input: "lyon", expect: "lyon"},
		{name: "uppercase and padding", input: "  PARIS  ", expect: "paris"},
		{name: "accents stripped", input: "lyôn ", expect: "lyon"},
		{name: "punctuation becomes space", input: "Île-de-France / Paris", expect: "ile de france paris"},
		{name: "whitespace collapsed", input: "aix   en\tprovence", expect: "aix en provence"},
		{name: "digits kept", input: "Paris 11e", expect: "paris 11e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NormalizeCity(tt.input)
			if got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}

			// Normalization must be idempotent.
			if again := NormalizeCity(got); again != got {
				t.Fatalf("not idempotent: %q became %q", got, again)
			}
		})
	}
}

func TestNormalizeCityAccentVariantsAgree(t *testing.T) {
	if NormalizeCity("Lyon") != NormalizeCity("lyôn ") {
		t.Fatalf("accented and unaccented variants should normalize identically")
	}
}

func TestSameArea(t *testing.T) {
	if !SameArea("paris", "ile de france paris") {
		t.Fatalf("expected substring containment to match")
	}
	if !SameArea("ile de france paris", "paris") {
		t.Fatalf("expected containment to be bidirectional")
	}
	if SameArea("marseille", "lille") {
		t.Fatalf("expected distinct areas not to match")
	}
}
