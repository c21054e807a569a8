package domain

import "context"

// Intent is the symbolic category of a user request.
type Intent string

const (
	IntentUnknown          Intent = "unknown"
	IntentGreeting         Intent = "greeting"
	IntentHowAreYou        Intent = "how_are_you"
	IntentGoodbye          Intent = "goodbye"
	IntentThankYou         Intent = "thank_you"
	IntentSorry            Intent = "sorry"
	IntentHelp             Intent = "help"
	IntentName             Intent = "name"
	IntentCourseInfo       Intent = "course_info"
	IntentAdmissionInfo    Intent = "admission_info"
	IntentCareerGuidance   Intent = "career_guidance"
	IntentScholarship      Intent = "scholarship_info"
	IntentCampusFacilities Intent = "campus_facilities"
	IntentStudentActivity  Intent = "student_activities"
	IntentRegistrationInfo Intent = "registration_info"
	IntentTuitionInfo      Intent = "tuition_info"
	IntentGeneralInfo      Intent = "general_info"
	IntentContactInfo      Intent = "contact_info"
	IntentPhoneNumber      Intent = "phone_number"
)

// TrainingPair is one taught (question, answer) example. Question is stored
// in its cleaned canonical form.
type TrainingPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Classifier maps a normalized token sequence to an intent.
type Classifier interface {
	Classify(tokens []string) Intent
}

// StaticResponder serves canned responses for classified intents.
type StaticResponder interface {
	Response(intent Intent) (string, bool)
	IsProtected(intent Intent) bool
}

// DynamicStore looks up answers persisted outside the process, keyed by the
// exact question text. A miss and a storage failure look the same to callers.
type DynamicStore interface {
	Lookup(ctx context.Context, question string) (string, bool)
}

// ResponseModel is the trainable question-answer model.
type ResponseModel interface {
	Response(input string) (string, bool)
	Update(question, answer string) bool
}
