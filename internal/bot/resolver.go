package bot

import (
	"context"
	"strings"

	"unibot/internal/domain"
	"unibot/internal/logger"
	"unibot/internal/nlp"
)

// User-facing pipeline messages.
const (
	MsgPromptInput = "Please type something..."
	MsgTeach       = "I don't know how to answer that. What should I say?"
	MsgLearned     = "Thanks, I've learned from that!"
	MsgLearnFailed = "I couldn't learn that response."
)

// Resolver runs the response-resolution pipeline and owns the single piece
// of conversational state: whether the next input is a taught answer.
//
// Fallback order is learned-model first, then classifier/static table, then
// the dynamic store. Model-first is required for exact-match priority: a
// verbatim taught answer must win even when a keyword rule would classify
// the question.
//
// Not safe for concurrent use; one Resolver serves one conversation.
type Resolver struct {
	classifier domain.Classifier
	statics    domain.StaticResponder
	dynamic    domain.DynamicStore  // nil when no storage is configured
	model      domain.ResponseModel // nil when no model is configured
	log        *logger.Logger

	awaitingTeach   bool
	pendingQuestion string
}

// New assembles a resolver. The dynamic store and the model are optional;
// pass nil to run without them.
func New(classifier domain.Classifier, statics domain.StaticResponder, dynamic domain.DynamicStore, model domain.ResponseModel, log *logger.Logger) *Resolver {
	return &Resolver{
		classifier: classifier,
		statics:    statics,
		dynamic:    dynamic,
		model:      model,
		log:        log,
	}
}

// AwaitingTeach reports whether the next input will be consumed as a taught
// answer.
func (r *Resolver) AwaitingTeach() bool { return r.awaitingTeach }

// Resolve turns one line of user input into one line of response. It never
// returns an error; every failure inside the fallback tiers degrades to the
// next tier.
func (r *Resolver) Resolve(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return MsgPromptInput
	}

	if r.awaitingTeach {
		question := r.pendingQuestion
		r.awaitingTeach = false
		r.pendingQuestion = ""
		if r.model == nil {
			return MsgLearnFailed
		}
		if r.model.Update(question, input) {
			r.log.Info("learned new response", "question", question)
			return MsgLearned
		}
		return MsgLearnFailed
	}

	if r.model != nil {
		if answer, ok := r.model.Response(input); ok {
			return answer
		}
	}

	tokens := nlp.Normalize(input)
	it := r.classifier.Classify(tokens)
	if response, ok := r.statics.Response(it); ok {
		return response
	}

	if r.dynamic != nil {
		if response, ok := r.dynamic.Lookup(context.Background(), input); ok {
			return response
		}
	}

	r.awaitingTeach = true
	r.pendingQuestion = input
	return MsgTeach
}
