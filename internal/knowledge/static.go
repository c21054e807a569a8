package knowledge

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"unibot/internal/domain"
)

// Table is the immutable static response store: intent -> equivalent
// phrasings, plus the protected-intent set. Built once at startup.
type Table struct {
	responses map[domain.Intent][]string
	protected map[domain.Intent]struct{}
}

// NewTable returns the built-in university response table.
func NewTable() *Table {
	return &Table{
		responses: defaultResponses(),
		protected: protectedSet(defaultProtected()),
	}
}

// tableFile is the YAML shape of an external response table.
type tableFile struct {
	Protected []string            `yaml:"protected"`
	Responses map[string][]string `yaml:"responses"`
}

// LoadTable reads a replacement response table from a YAML file.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse response table: %w", err)
	}
	if len(tf.Responses) == 0 {
		return nil, fmt.Errorf("response table %s has no responses", path)
	}
	responses := make(map[domain.Intent][]string, len(tf.Responses))
	for intent, phrasings := range tf.Responses {
		if len(phrasings) == 0 {
			return nil, fmt.Errorf("intent %q has an empty response set", intent)
		}
		responses[domain.Intent(intent)] = phrasings
	}
	protected := make([]domain.Intent, len(tf.Protected))
	for i, p := range tf.Protected {
		protected[i] = domain.Intent(p)
	}
	return &Table{responses: responses, protected: protectedSet(protected)}, nil
}

// Response returns one phrasing for the intent, chosen uniformly at random,
// or a miss when the intent has no static responses. IntentUnknown is always
// a miss so that unrecognized input falls through to the later tiers.
func (t *Table) Response(intent domain.Intent) (string, bool) {
	if intent == domain.IntentUnknown {
		return "", false
	}
	set, ok := t.responses[intent]
	if !ok || len(set) == 0 {
		return "", false
	}
	return set[rand.Intn(len(set))], true
}

// IsProtected reports whether the intent's static responses may never be
// overwritten by learned data.
func (t *Table) IsProtected(intent domain.Intent) bool {
	_, ok := t.protected[intent]
	return ok
}

// ResponseSet exposes the configured phrasings for an intent, mainly so
// callers can assert membership rather than exact values.
func (t *Table) ResponseSet(intent domain.Intent) []string {
	return t.responses[intent]
}

func protectedSet(intents []domain.Intent) map[domain.Intent]struct{} {
	set := make(map[domain.Intent]struct{}, len(intents))
	for _, in := range intents {
		set[in] = struct{}{}
	}
	return set
}

func defaultProtected() []domain.Intent {
	return []domain.Intent{
		domain.IntentGreeting,
		domain.IntentHowAreYou,
		domain.IntentGoodbye,
		domain.IntentThankYou,
		domain.IntentSorry,
		domain.IntentHelp,
		domain.IntentName,
	}
}

func defaultResponses() map[domain.Intent][]string {
	return map[domain.Intent][]string{
		domain.IntentCourseInfo: {
			"We offer undergraduate and graduate programs in Computer Science, Business Administration, and Engineering.",
			"Our available courses include Computer Science, Electrical Engineering, and MBA programs. Visit our website for details.",
			"You can choose from various programs including Data Science, Artificial Intelligence, and Business Analytics.",
		},
		domain.IntentAdmissionInfo: {
			"The admission process requires an online application, academic transcripts, and two recommendation letters.",
			"To apply, complete our online application form and submit your academic records. Deadline is May 15th.",
			"Admissions are open for the fall intake. Requirements include a 3.0 GPA and an English proficiency test for international students.",
		},
		domain.IntentScholarship: {
			"We offer merit-based scholarships covering up to 50% of tuition. Application deadline is March 1st.",
			"Financial aid options include need-based grants and athletic scholarships. Complete the FAFSA for consideration.",
			"The university provides several scholarship opportunities based on academic excellence and community service.",
		},
		domain.IntentCampusFacilities: {
			"Our campus features state-of-the-art labs, a modern library, and sports complexes open 7am-10pm daily.",
			"Facilities include computer labs, research centers, and a student recreation center with a swimming pool.",
			"You'll find excellent facilities including 24/7 study spaces, cafeterias, and fitness centers across campus.",
		},
		domain.IntentStudentActivity: {
			"We have over 100 student clubs including robotics, debate, and cultural organizations.",
			"Student life includes weekly events, guest lectures, and annual festivals like our Spring Carnival.",
			"There are many extracurricular activities ranging from academic clubs to intramural sports teams.",
		},
		domain.IntentRegistrationInfo: {
			"Course registration opens April 1st for continuing students and June 1st for new students.",
			"You can register for classes through the student portal during your assigned registration period.",
			"Registration requires meeting with your academic advisor first to get your PIN for the system.",
		},
		domain.IntentTuitionInfo: {
			"Undergraduate tuition is $15,000 per semester. Financial aid options are available.",
			"Tuition varies by program. Graduate programs range from $20,000-$25,000 per academic year.",
			"You can view the complete tuition breakdown on our website under the 'Costs & Aid' section.",
		},
		domain.IntentCareerGuidance: {
			"Our career services office offers counseling, resume workshops, and job placement assistance.",
			"We run internship programs with partner companies; most students secure placements before graduation.",
			"Career guidance is available year-round. Book an appointment with a counselor through the student portal.",
		},
		domain.IntentGeneralInfo: {
			"Our campus is located in the city center at 123 Main Street. Visiting hours are 9am-5pm on weekdays.",
			"You can reach us by email at info@university.example or visit the campus during office hours.",
			"Campus facilities include a modern library, computer labs, and 24/7 study spaces.",
		},
		domain.IntentContactInfo: {
			"You can get in touch with our admissions office at admissions@university.example.",
			"The best way to reach us is by email; staff respond within one business day.",
		},
		domain.IntentPhoneNumber: {
			"You can call our helpline at +1 555 0123 during business hours.",
			"Our main telephone number is +1 555 0123.",
		},
		domain.IntentGreeting: {
			"Hello! Welcome to University Chatbot. How can I assist you today?",
			"Hi there! I'm here to help with any questions about our university.",
			"Greetings! What would you like to know about our programs and campus?",
		},
		domain.IntentHowAreYou: {
			"I'm functioning perfectly, thank you! How can I help you today?",
			"Doing great! Ready to answer your questions about the university.",
			"I'm just a chatbot, but I'm happy to assist with your inquiries!",
		},
		domain.IntentGoodbye: {
			"Goodbye! Feel free to come back if you have more questions.",
			"Have a wonderful day! Contact us anytime if you need assistance.",
			"See you later! Don't hesitate to ask if you need more information.",
		},
		domain.IntentThankYou: {
			"You're welcome! Let me know if you need anything else.",
			"Happy to help! Don't hesitate to ask more questions.",
			"My pleasure! Feel free to ask about other topics too.",
		},
		domain.IntentSorry: {
			"No worries at all! How can I help you?",
			"That's alright. What would you like to know?",
		},
		domain.IntentHelp: {
			"I can help with admissions, courses, scholarships, and campus information. What do you need?",
			"Sure! Ask me about programs, applications, fees, or campus life.",
		},
		domain.IntentName: {
			"I'm the University Chatbot, here to answer your questions about our school.",
			"My name is University Chatbot. How can I assist you?",
		},
	}
}
