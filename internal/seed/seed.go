// Package seed provides the built-in training corpus used to bootstrap the
// learned response model when no snapshot exists yet. It is plain data
// passed explicitly at construction; nothing here is global state.
package seed

import "unibot/internal/domain"

// TrainingPairs returns the default (question, answer) seed corpus.
func TrainingPairs() []domain.TrainingPair {
	return []domain.TrainingPair{
		{Question: "hi", Answer: "Hello! How can I help you?"},
		{Question: "hello", Answer: "Hi there! How can I assist you today?"},
		{Question: "what courses are available", Answer: "We offer a variety of programs in IT, Business, and Arts."},
		{Question: "what programs do you offer", Answer: "We offer programs in IT, Business, Arts, and Sciences."},
		{Question: "how to apply", Answer: "You can apply through our website under the admissions section."},
		{Question: "where can I apply", Answer: "You can apply via our online portal. Visit the admissions page."},
		{Question: "what are the admission requirements", Answer: "You need to have a high school diploma and a good academic record."},
		{Question: "what is the fee for the course", Answer: "The fee depends on the program. Please check the course details for more information."},
		{Question: "how long does the course take", Answer: "Most courses are 3 to 4 years long, depending on the program."},
		{Question: "what is the deadline for applications", Answer: "The application deadline is typically in June. Please refer to the admissions page for exact dates."},
		{Question: "can I apply online", Answer: "Yes, applications are fully online through our website."},
		{Question: "is there an entrance exam", Answer: "Some programs may require an entrance exam. Please check the program details."},
		{Question: "how do I contact support", Answer: "You can contact support via email at support@example.com or by calling our helpline."},
		{Question: "what is the program schedule", Answer: "The program schedule is flexible, with both part-time and full-time options."},
		{Question: "can I get a scholarship", Answer: "Yes, scholarships are available based on merit. Please visit the scholarships page for more details."},
		{Question: "do you offer online courses", Answer: "Yes, we offer a range of online courses. Visit our website for more information."},
		{Question: "how can I get my transcript", Answer: "You can request your transcript through the student portal."},
		{Question: "is there a student discount", Answer: "Yes, there are discounts available for students. You can check for discounts on the fee page."},
		{Question: "what is the job placement rate", Answer: "Our job placement rate is very high, with many students securing jobs within six months of graduation."},
		{Question: "can I defer my admission", Answer: "Yes, deferring your admission is possible. Please contact the admissions office for details."},
		{Question: "do you offer internships", Answer: "Yes, we offer internships as part of our programs. Check the internship page for more details."},
		{Question: "where are you located", Answer: "Our campus is located in the city center at 123 Main Street."},
		{Question: "can I visit the campus", Answer: "Yes, we offer campus tours. Please contact the admissions office to schedule a visit."},
		{Question: "is there a student club", Answer: "Yes, we have several student clubs ranging from academic to recreational interests."},
		{Question: "can I change my major", Answer: "Yes, changing your major is possible within the first year. Speak with an academic advisor for guidance."},
		{Question: "do you offer evening classes", Answer: "Yes, we offer evening classes for most programs. Please refer to the course schedule for availability."},
		{Question: "are there work-study opportunities", Answer: "Yes, we offer work-study programs for eligible students."},
		{Question: "how do I withdraw from a course", Answer: "To withdraw from a course, please visit the student portal or contact your academic advisor."},
		{Question: "what is the grading system", Answer: "Our grading system is based on a 4.0 scale. An A is worth 4 points."},
		{Question: "is there a deadline for dropping a course", Answer: "Yes, there is a deadline for course drops. Please refer to the academic calendar for dates."},
		{Question: "how do I apply for a scholarship", Answer: "You can apply for a scholarship through the scholarship page on our website."},
		{Question: "is there a fee for applying", Answer: "No, there is no application fee for most programs."},
		{Question: "what is the admission process", Answer: "The admission process includes submitting an online application, academic transcripts, and meeting program requirements."},
		{Question: "when will I receive my admission decision", Answer: "Admission decisions are typically made within 6-8 weeks after the application deadline."},
		{Question: "can I apply for multiple programs", Answer: "Yes, you can apply for multiple programs, but each program has its own requirements."},
		{Question: "is there an alumni network", Answer: "Yes, we have an alumni network that provides career support and networking opportunities."},
		{Question: "do you offer part-time programs", Answer: "Yes, we offer part-time programs for working professionals."},
		{Question: "how can I get a student ID", Answer: "You will receive a student ID during your orientation session after you're admitted."},
		{Question: "where can I find course catalogs", Answer: "You can find course catalogs on the programs page on our website."},
		{Question: "can I change my class schedule", Answer: "Yes, schedule changes are possible within the first week of classes."},
		{Question: "do you offer a counseling service", Answer: "Yes, we provide student counseling services for academic and personal support."},
		{Question: "is there a dress code", Answer: "There is no strict dress code, but we ask students to dress appropriately for class."},
		{Question: "what is the campus environment like", Answer: "Our campus is very inclusive, with a vibrant student life and beautiful green spaces."},
		{Question: "can I get a part-time job while studying", Answer: "Yes, many students work part-time while studying. Check with the career services office for opportunities."},
		{Question: "how can I request a letter of recommendation", Answer: "You can request a letter of recommendation from your professors or academic advisors."},
		{Question: "do you offer career counseling", Answer: "Yes, our career services offer counseling and job placement assistance."},
		{Question: "is the campus accessible for disabled students", Answer: "Yes, our campus is fully accessible with ramps, elevators, and other facilities for disabled students."},
		{Question: "do you offer language courses", Answer: "Yes, we offer language courses including English, Spanish, and French."},
		{Question: "how do I check my grades", Answer: "You can check your grades on the student portal."},
		{Question: "how do I reset my password", Answer: "You can reset your password by clicking the 'Forgot Password' link on the login page."},
	}
}
