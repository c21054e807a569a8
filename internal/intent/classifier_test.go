package intent

import (
	"testing"

	"unibot/internal/domain"
	"unibot/internal/nlp"
)

func TestClassifyEmptyIsUnknown(t *testing.T) {
	c := New()
	if got := c.Classify(nlp.Normalize("")); got != domain.IntentUnknown {
		t.Fatalf("got %q, want unknown", got)
	}
	if got := c.Classify(nil); got != domain.IntentUnknown {
		t.Fatalf("got %q, want unknown", got)
	}
}

func TestClassifyKeywordRules(t *testing.T) {
	c := New()
	cases := map[string]domain.Intent{
		"hello":                                 domain.IntentGreeting,
		"hey there":                             domain.IntentGreeting,
		"what scholarships are available":       domain.IntentScholarship,
		"what courses do you offer":             domain.IntentCourseInfo,
		"how do I apply for admission":          domain.IntentAdmissionInfo,
		"thanks a lot":                          domain.IntentThankYou,
		"where is the campus located":           domain.IntentGeneralInfo,
		"goodbye":                               domain.IntentGoodbye,
		"what facilities does the library have": domain.IntentCampusFacilities,
		"are there any student clubs":           domain.IntentStudentActivity,
		"when does registration open":           domain.IntentRegistrationInfo,
		"what is the tuition fee per semester":  domain.IntentTuitionInfo,
		"xyzzy plugh":                           domain.IntentUnknown,
	}
	for input, want := range cases {
		if got := c.Classify(nlp.Normalize(input)); got != want {
			t.Fatalf("Classify(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestHowAreYouRequiresAllTokens(t *testing.T) {
	c := New()
	if got := c.Classify(nlp.Normalize("how are you")); got != domain.IntentHowAreYou {
		t.Fatalf("got %q, want how_are_you", got)
	}
	// A lone "how" or "you" must not trigger small talk.
	if got := c.Classify(nlp.Normalize("how")); got == domain.IntentHowAreYou {
		t.Fatalf("partial match classified as how_are_you")
	}
	if got := c.Classify(nlp.Normalize("are you")); got == domain.IntentHowAreYou {
		t.Fatalf("partial match classified as how_are_you")
	}
}

func TestFirstMatchWins(t *testing.T) {
	c := New()
	// Contains both a greeting and a goodbye keyword; greeting is ranked first.
	if got := c.Classify(nlp.Normalize("hey bye")); got != domain.IntentGreeting {
		t.Fatalf("got %q, want greeting", got)
	}
}

func TestMatchers(t *testing.T) {
	any := NewAnyOf("foo", "bar")
	if !any.Match([]string{"baz", "bar"}) {
		t.Fatalf("AnyOf should match on intersection")
	}
	if any.Match([]string{"baz"}) {
		t.Fatalf("AnyOf matched without intersection")
	}
	all := NewAllOf("foo", "bar")
	if all.Match([]string{"foo"}) {
		t.Fatalf("AllOf matched on partial set")
	}
	if !all.Match([]string{"bar", "qux", "foo"}) {
		t.Fatalf("AllOf should match when all present")
	}
}
