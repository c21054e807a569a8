package nlp

import (
	"reflect"
	"testing"
)

func TestNormalizeNeverFails(t *testing.T) {
	inputs := []string{"", "   ", "\t\n", "!!!", "héllo wörld", "a", "Hello, World!"}
	for _, in := range inputs {
		tokens := Normalize(in)
		for _, tok := range tokens {
			if tok == "" {
				t.Fatalf("Normalize(%q) produced empty token: %v", in, tokens)
			}
		}
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	if got := Normalize("   \t  "); len(got) != 0 {
		t.Fatalf("expected no tokens, got %v", got)
	}
}

func TestNormalizeStemsAndStripsPunctuation(t *testing.T) {
	got := Normalize("What scholarships are available?")
	want := []string{"what", "scholarship", "are", "availabl"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestNormalizeKeepsAccentedLetters(t *testing.T) {
	got := Normalize("héllo wörld!")
	want := []string{"héllo", "wörld"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
	if got := CleanText("Café?"); got != "café" {
		t.Fatalf("got %q", got)
	}
}

func TestStem(t *testing.T) {
	cases := map[string]string{
		"applying":  "appli",
		"apply":     "appli",
		"courses":   "cours",
		"course":    "cours",
		"bursaries": "bursari",
		"bursary":   "bursari",
		"greetings": "greet",
		"thanks":    "thank",
		"hey":       "hey",
		"you":       "you",
		"campus":    "campus",
		"address":   "address",
		"degree":    "degre",
		"name":      "name",
		"classes":   "class",
	}
	for in, want := range cases {
		if got := Stem(in); got != want {
			t.Fatalf("Stem(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCleanText(t *testing.T) {
	if got := CleanText("  What's  Up?!  "); got != "whats up" {
		t.Fatalf("got %q", got)
	}
	if got := CleanText(" \t "); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
