package knowledge

import (
	"os"
	"path/filepath"
	"testing"

	"unibot/internal/domain"
)

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func TestResponseMembership(t *testing.T) {
	tbl := NewTable()
	// Random choice: assert membership in the configured set, not exact value.
	for i := 0; i < 20; i++ {
		resp, ok := tbl.Response(domain.IntentGreeting)
		if !ok {
			t.Fatalf("greeting should always have a static response")
		}
		if !contains(tbl.ResponseSet(domain.IntentGreeting), resp) {
			t.Fatalf("response %q not in greeting set", resp)
		}
	}
}

func TestProtectedIntentsServeOwnSet(t *testing.T) {
	tbl := NewTable()
	protected := []domain.Intent{
		domain.IntentGreeting, domain.IntentHowAreYou, domain.IntentGoodbye,
		domain.IntentThankYou, domain.IntentSorry, domain.IntentHelp, domain.IntentName,
	}
	for _, in := range protected {
		if !tbl.IsProtected(in) {
			t.Fatalf("%q should be protected", in)
		}
		for i := 0; i < 10; i++ {
			resp, ok := tbl.Response(in)
			if !ok {
				t.Fatalf("protected intent %q has no response", in)
			}
			if !contains(tbl.ResponseSet(in), resp) {
				t.Fatalf("intent %q served %q from another set", in, resp)
			}
		}
	}
	if tbl.IsProtected(domain.IntentCourseInfo) {
		t.Fatalf("course_info should not be protected")
	}
}

func TestTopicIntentsHaveResponses(t *testing.T) {
	tbl := NewTable()
	topics := []domain.Intent{
		domain.IntentCourseInfo, domain.IntentAdmissionInfo, domain.IntentScholarship,
		domain.IntentCampusFacilities, domain.IntentStudentActivity,
		domain.IntentRegistrationInfo, domain.IntentTuitionInfo,
		domain.IntentCareerGuidance, domain.IntentGeneralInfo,
	}
	for _, in := range topics {
		resp, ok := tbl.Response(in)
		if !ok {
			t.Fatalf("intent %q has no static responses", in)
		}
		if !contains(tbl.ResponseSet(in), resp) {
			t.Fatalf("intent %q served %q from another set", in, resp)
		}
	}
}

func TestUnknownNeverHits(t *testing.T) {
	tbl := NewTable()
	if _, ok := tbl.Response(domain.IntentUnknown); ok {
		t.Fatalf("unknown must fall through to later tiers")
	}
	if tbl.IsProtected(domain.IntentUnknown) {
		t.Fatalf("unknown must never be protected")
	}
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "responses.yaml")
	data := `
protected: [greeting]
responses:
  greeting:
    - "hi!"
  course_info:
    - "we teach things"
    - "many courses"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	tbl, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if !tbl.IsProtected(domain.IntentGreeting) {
		t.Fatalf("greeting should be protected")
	}
	resp, ok := tbl.Response(domain.IntentCourseInfo)
	if !ok || !contains([]string{"we teach things", "many courses"}, resp) {
		t.Fatalf("unexpected course_info response %q ok=%v", resp, ok)
	}
}

func TestLoadTableRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "responses.yaml")
	if err := os.WriteFile(path, []byte("responses: {}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTable(path); err == nil {
		t.Fatalf("expected error for empty table")
	}
}
