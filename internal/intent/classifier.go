package intent

import (
	"unibot/internal/domain"
)

// Matcher decides whether a rule applies to a normalized token sequence.
type Matcher interface {
	Match(tokens []string) bool
}

// AnyOf matches when at least one keyword appears among the tokens.
type AnyOf struct {
	keywords map[string]struct{}
}

// NewAnyOf builds an any-match keyword set. Keywords are expected in their
// stemmed form.
func NewAnyOf(keywords ...string) AnyOf {
	set := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		set[k] = struct{}{}
	}
	return AnyOf{keywords: set}
}

func (m AnyOf) Match(tokens []string) bool {
	for _, tok := range tokens {
		if _, ok := m.keywords[tok]; ok {
			return true
		}
	}
	return false
}

// AllOf matches only when every keyword appears among the tokens.
type AllOf struct {
	keywords []string
}

// NewAllOf builds an all-match keyword set.
func NewAllOf(keywords ...string) AllOf {
	return AllOf{keywords: keywords}
}

func (m AllOf) Match(tokens []string) bool {
	if len(m.keywords) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	for _, k := range m.keywords {
		if _, ok := set[k]; !ok {
			return false
		}
	}
	return true
}

// Rule binds an intent to its matcher.
type Rule struct {
	Intent  domain.Intent
	Matcher Matcher
}

// Classifier evaluates an ordered rule list, first match wins.
type Classifier struct {
	rules []Rule
}

// New returns a classifier with the default university-domain rules.
// Greeting is checked first; "how are you" requires all three tokens so that
// a lone "how" or "you" does not trigger small talk.
func New() *Classifier {
	return NewWithRules(defaultRules())
}

// NewWithRules returns a classifier over a caller-supplied rule list.
func NewWithRules(rules []Rule) *Classifier {
	return &Classifier{rules: rules}
}

// Classify returns the intent of the first matching rule, or IntentUnknown.
// Deterministic and side-effect-free; an empty token list is always unknown.
func (c *Classifier) Classify(tokens []string) domain.Intent {
	if len(tokens) == 0 {
		return domain.IntentUnknown
	}
	for _, r := range c.rules {
		if r.Matcher.Match(tokens) {
			return r.Intent
		}
	}
	return domain.IntentUnknown
}

func defaultRules() []Rule {
	return []Rule{
		{domain.IntentGreeting, NewAnyOf("hi", "hello", "hey", "greet")},
		{domain.IntentHowAreYou, NewAllOf("how", "are", "you")},
		{domain.IntentCourseInfo, NewAnyOf("cours", "program", "subject", "field", "studi", "degre")},
		{domain.IntentAdmissionInfo, NewAnyOf("admission", "appli", "application", "enrol", "enroll", "register")},
		{domain.IntentCareerGuidance, NewAnyOf("career", "job", "intern", "internship", "employ", "employment", "work", "placement")},
		{domain.IntentScholarship, NewAnyOf("scholar", "scholarship", "fund", "aid", "grant", "bursari")},
		{domain.IntentCampusFacilities, NewAnyOf("faciliti", "lab", "librari", "gym", "pool", "cafeteria")},
		{domain.IntentStudentActivity, NewAnyOf("club", "activiti", "event", "sport", "societi")},
		{domain.IntentRegistrationInfo, NewAnyOf("registration", "timetabl")},
		{domain.IntentTuitionInfo, NewAnyOf("tuition", "fee", "cost", "price")},
		{domain.IntentGeneralInfo, NewAnyOf("locat", "location", "visit", "contact", "email", "address", "time", "campus")},
		{domain.IntentGoodbye, NewAnyOf("bye", "goodby", "later")},
		{domain.IntentThankYou, NewAnyOf("thank")},
		{domain.IntentSorry, NewAnyOf("sorri", "apologiz", "pardon")},
		{domain.IntentHelp, NewAnyOf("help", "assist", "support")},
		{domain.IntentContactInfo, NewAnyOf("reach", "speak")},
		{domain.IntentPhoneNumber, NewAnyOf("phone", "number", "call", "telephon")},
		{domain.IntentName, NewAnyOf("name")},
	}
}
