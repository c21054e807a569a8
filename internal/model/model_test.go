package model

import (
	"path/filepath"
	"testing"

	"unibot/internal/domain"
	"unibot/internal/logger"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	return New(Options{
		SnapshotPath: filepath.Join(t.TempDir(), "model.json"),
	}, logger.Nop())
}

func seedPairs() []domain.TrainingPair {
	return []domain.TrainingPair{
		{Question: "what courses are available", Answer: "We offer IT, Business, and Arts programs."},
		{Question: "how do i apply for admission", Answer: "Apply through our website."},
		{Question: "where is the campus located", Answer: "Our campus is at 123 Main Street."},
	}
}

func TestUntrainedModelMisses(t *testing.T) {
	m := newTestModel(t)
	if m.Trained() {
		t.Fatalf("fresh model should be untrained")
	}
	if _, ok := m.Response("anything at all"); ok {
		t.Fatalf("untrained model must miss")
	}
}

func TestInitialTrainRequiresData(t *testing.T) {
	m := newTestModel(t)
	if err := m.InitialTrain(nil); err == nil {
		t.Fatalf("expected error for empty seed data")
	}
	if m.Trained() {
		t.Fatalf("model must stay untrained after empty initial train")
	}
	if err := m.InitialTrain(seedPairs()); err != nil {
		t.Fatalf("initial train: %v", err)
	}
	if !m.Trained() {
		t.Fatalf("model should be trained")
	}
}

func TestExactMatch(t *testing.T) {
	m := newTestModel(t)
	if err := m.InitialTrain(seedPairs()); err != nil {
		t.Fatal(err)
	}
	got, ok := m.Response("What courses are available?")
	if !ok || got != "We offer IT, Business, and Arts programs." {
		t.Fatalf("exact match failed: %q, %v", got, ok)
	}
}

func TestSemanticSimilarity(t *testing.T) {
	m := newTestModel(t)
	if err := m.InitialTrain(seedPairs()); err != nil {
		t.Fatal(err)
	}
	// Dropping the stopword "are" leaves the same feature set as the stored
	// question, so similarity is maximal without an exact string match.
	got, ok := m.Response("what courses available")
	if !ok || got != "We offer IT, Business, and Arts programs." {
		t.Fatalf("similarity match failed: %q, %v", got, ok)
	}
}

func TestClassificationRequiresThreeTokens(t *testing.T) {
	m := newTestModel(t)
	if err := m.InitialTrain([]domain.TrainingPair{
		{Question: "alpha beta gamma", Answer: "A1"},
	}); err != nil {
		t.Fatal(err)
	}
	// Two tokens: similarity is below threshold and classification is gated.
	if got, ok := m.Response("alpha delta"); ok {
		t.Fatalf("two-token input should miss, got %q", got)
	}
	// Four tokens: the classification tier is allowed to answer.
	got, ok := m.Response("alpha delta epsilon zeta")
	if !ok || got != "A1" {
		t.Fatalf("classification fallback failed: %q, %v", got, ok)
	}
}

func TestUpdateRejectsEmpty(t *testing.T) {
	m := newTestModel(t)
	if m.Update("", "answer") {
		t.Fatalf("empty question must be rejected")
	}
	if m.Update("question", "   ") {
		t.Fatalf("empty answer must be rejected")
	}
	if m.Update("?!.", "answer") {
		t.Fatalf("question that cleans to empty must be rejected")
	}
}

func TestUpdateIdempotence(t *testing.T) {
	m := newTestModel(t)
	if !m.Update("xyzzy plugh", "this is a test phrase") {
		t.Fatalf("first update should succeed")
	}
	if !m.Update("xyzzy plugh", "this is a test phrase") {
		t.Fatalf("duplicate update should report success")
	}
	if n := m.CorpusSize(); n != 1 {
		t.Fatalf("corpus grew to %d, want 1", n)
	}
	got, ok := m.Response("xyzzy plugh")
	if !ok || got != "this is a test phrase" {
		t.Fatalf("taught answer lost: %q, %v", got, ok)
	}
}

func TestUpdateOnUntrainedModelTrainsIt(t *testing.T) {
	m := newTestModel(t)
	if !m.Update("xyzzy plugh", "this is a test phrase") {
		t.Fatalf("update should succeed on untrained model")
	}
	if !m.Trained() {
		t.Fatalf("model should be trained after first taught pair")
	}
}

func TestTaughtAnswerWinsOverClassifier(t *testing.T) {
	m := newTestModel(t)
	if err := m.InitialTrain(seedPairs()); err != nil {
		t.Fatal(err)
	}
	// Dissimilar to every seed question, so the pair is actually stored.
	if !m.Update("what does tuition cost per year", "Tuition varies by program.") {
		t.Fatalf("update failed")
	}
	if n := m.CorpusSize(); n != len(seedPairs())+1 {
		t.Fatalf("corpus size %d, want %d", n, len(seedPairs())+1)
	}
	got, ok := m.Response("what does tuition cost per year")
	if !ok || got != "Tuition varies by program." {
		t.Fatalf("verbatim taught answer must win, got %q, %v", got, ok)
	}
}

func TestUpdateDeduplicatesSimilarQuestion(t *testing.T) {
	m := newTestModel(t)
	if err := m.InitialTrain(seedPairs()); err != nil {
		t.Fatal(err)
	}
	// Shares "what", "courses" and the "what courses" bigram with the seed
	// question, which puts cosine similarity above the threshold: the pair
	// is treated as already known and must not be stored.
	if !m.Update("what courses cost money here", "Tuition varies by program.") {
		t.Fatalf("duplicate update should report success")
	}
	if n := m.CorpusSize(); n != len(seedPairs()) {
		t.Fatalf("corpus grew to %d, want %d", n, len(seedPairs()))
	}
	got, ok := m.Response("what courses cost money here")
	if !ok || got != "We offer IT, Business, and Arts programs." {
		t.Fatalf("similar question should resolve to the existing answer, got %q, %v", got, ok)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	m := New(Options{SnapshotPath: path}, logger.Nop())
	if err := m.InitialTrain(seedPairs()); err != nil {
		t.Fatal(err)
	}
	if !m.Update("xyzzy plugh", "this is a test phrase") {
		t.Fatalf("update failed")
	}

	restored := New(Options{SnapshotPath: path}, logger.Nop())
	if err := restored.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if !restored.Trained() {
		t.Fatalf("restored model should be trained")
	}
	if restored.CorpusSize() != m.CorpusSize() {
		t.Fatalf("corpus size %d != %d", restored.CorpusSize(), m.CorpusSize())
	}
	queries := []string{
		"what courses are available",
		"how do i apply for admission",
		"where is the campus located",
		"xyzzy plugh",
		"what courses available",
	}
	for _, q := range queries {
		want, wantOK := m.Response(q)
		got, gotOK := restored.Response(q)
		if want != got || wantOK != gotOK {
			t.Fatalf("Response(%q): restored (%q, %v) != original (%q, %v)", q, got, gotOK, want, wantOK)
		}
	}
}

func TestLoadMissingSnapshot(t *testing.T) {
	m := New(Options{SnapshotPath: filepath.Join(t.TempDir(), "absent.json")}, logger.Nop())
	if err := m.Load(); err == nil {
		t.Fatalf("expected error for missing snapshot")
	}
	if m.Trained() {
		t.Fatalf("model must stay untrained after failed load")
	}
}
