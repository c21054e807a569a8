package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"unibot/internal/domain"
	"unibot/internal/logger"
	"unibot/internal/nlp"
)

// Default acceptance thresholds. Both comparisons are strict (score must
// exceed the threshold, not merely reach it).
const (
	DefaultSimilarityThreshold = 0.7
	DefaultConfidenceThreshold = 0.7
)

// Options configures a learned response model.
type Options struct {
	SnapshotPath        string
	SimilarityThreshold float64
	ConfidenceThreshold float64
}

// Model is the trainable question-answer model: an exact-match corpus, a
// cosine-similarity search over TF-IDF vectors, and a naive Bayes
// classification fallback. It owns the training corpus and the snapshot;
// a mutex makes update, lookup and persistence atomic with respect to each
// other.
type Model struct {
	mu            sync.Mutex
	vectorizer    *Vectorizer
	classifier    *NaiveBayes
	corpus        []domain.TrainingPair
	questionVecs  [][]float64
	fitted        bool
	snapshotPath  string
	simThreshold  float64
	confThreshold float64
	log           *logger.Logger
}

// snapshot is the persisted model state.
type snapshot struct {
	Vocabulary   map[string]int        `json:"vocabulary"`
	IDF          []float64             `json:"idf"`
	Classifier   *NaiveBayesState      `json:"classifier,omitempty"`
	TrainingData []domain.TrainingPair `json:"training_data"`
	Fitted       bool                  `json:"fitted"`
}

// New creates an untrained model. Call Load to restore a snapshot or
// InitialTrain to fit from seed data.
func New(opts Options, log *logger.Logger) *Model {
	sim := opts.SimilarityThreshold
	if sim <= 0 {
		sim = DefaultSimilarityThreshold
	}
	conf := opts.ConfidenceThreshold
	if conf <= 0 {
		conf = DefaultConfidenceThreshold
	}
	return &Model{
		vectorizer:    NewVectorizer(),
		classifier:    NewNaiveBayes(),
		snapshotPath:  opts.SnapshotPath,
		simThreshold:  sim,
		confThreshold: conf,
		log:           log,
	}
}

// Trained reports whether the model can serve responses.
func (m *Model) Trained() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fitted
}

// CorpusSize returns the number of stored training pairs.
func (m *Model) CorpusSize() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.corpus)
}

// InitialTrain fits the model on seed data and persists a snapshot.
// Pairs whose question or answer cleans to empty are dropped; if nothing
// remains the model stays untrained and an error is returned.
func (m *Model) InitialTrain(pairs []domain.TrainingPair) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	corpus := make([]domain.TrainingPair, 0, len(pairs))
	for _, p := range pairs {
		q := cleanQuestion(p.Question)
		a := strings.TrimSpace(p.Answer)
		if q == "" || a == "" {
			continue
		}
		corpus = append(corpus, domain.TrainingPair{Question: q, Answer: a})
	}
	if len(corpus) == 0 {
		return errors.New("initial training requires at least one usable pair")
	}
	m.corpus = corpus
	if err := m.refitLocked(); err != nil {
		m.corpus = nil
		return err
	}
	return m.saveLocked()
}

// Update teaches the model one (question, answer) pair. It returns false
// when either argument normalizes to empty. A question similar to an
// already-stored one is treated as known: success without growing the
// corpus. Otherwise the pair is appended and the vectorizer and classifier
// are refit on the full corpus, which is O(n) per update; acceptable at
// this corpus scale.
func (m *Model) Update(question, answer string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	q := cleanQuestion(question)
	a := strings.TrimSpace(answer)
	if q == "" || cleanQuestion(a) == "" {
		return false
	}
	if m.fitted {
		if _, ok := m.similarLocked(q); ok {
			return true
		}
	}
	m.corpus = append(m.corpus, domain.TrainingPair{Question: q, Answer: a})
	if err := m.refitLocked(); err != nil {
		m.log.Error("model refit failed", "error", err)
		m.corpus = m.corpus[:len(m.corpus)-1]
		return false
	}
	if err := m.saveLocked(); err != nil {
		// The in-memory model did learn; losing the snapshot is loud but
		// does not undo the exchange.
		m.log.Error("model snapshot write failed", "path", m.snapshotPath, "error", err)
	}
	return true
}

// Response resolves input through three tiers, short-circuiting on the
// first hit: exact match on the cleaned text, cosine similarity above the
// similarity threshold, then naive Bayes classification (inputs of at
// least 3 tokens only) above the confidence threshold. Misses when the
// model is untrained or all tiers miss.
func (m *Model) Response(input string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.fitted {
		return "", false
	}
	q := cleanQuestion(input)
	if q == "" {
		return "", false
	}
	for _, p := range m.corpus {
		if p.Question == q {
			return p.Answer, true
		}
	}
	if answer, ok := m.similarLocked(q); ok {
		return answer, true
	}
	if len(strings.Fields(q)) >= 3 {
		vec, err := m.vectorizer.Transform(q)
		if err != nil {
			m.log.Warn("vectorize for classification failed", "error", err)
			return "", false
		}
		label, confidence, err := m.classifier.Predict(vec)
		if err != nil {
			m.log.Warn("classification failed", "error", err)
			return "", false
		}
		if confidence > m.confThreshold {
			return label, true
		}
	}
	return "", false
}

// Save persists the full model state to the snapshot path. Failures are
// returned, not swallowed: losing learned data is high-cost.
func (m *Model) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveLocked()
}

// Load restores the model from its snapshot. The vectorizer is
// reconstructed from the saved vocabulary and IDF values rather than
// refit. A missing snapshot is reported via os.ErrNotExist so callers can
// fall back to initial training.
func (m *Model) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, err := os.ReadFile(m.snapshotPath)
	if err != nil {
		return err
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decode snapshot %s: %w", m.snapshotPath, err)
	}
	m.corpus = snap.TrainingData
	m.vectorizer = NewVectorizerFromState(snap.Vocabulary, snap.IDF)
	if snap.Classifier != nil {
		m.classifier = NewNaiveBayesFromState(*snap.Classifier)
	} else {
		m.classifier = NewNaiveBayes()
	}
	m.fitted = snap.Fitted && m.vectorizer.Fitted()
	if !m.fitted {
		m.questionVecs = nil
		return nil
	}
	vecs := make([][]float64, len(m.corpus))
	for i, p := range m.corpus {
		vec, err := m.vectorizer.Transform(p.Question)
		if err != nil {
			return fmt.Errorf("rebuild question vectors: %w", err)
		}
		vecs[i] = vec
	}
	m.questionVecs = vecs
	return nil
}

// similarLocked returns the answer of the most similar stored question when
// its cosine similarity strictly exceeds the threshold.
func (m *Model) similarLocked(cleaned string) (string, bool) {
	vec, err := m.vectorizer.Transform(cleaned)
	if err != nil {
		m.log.Warn("vectorize for similarity failed", "error", err)
		return "", false
	}
	bestIdx, bestScore := -1, 0.0
	for i, qv := range m.questionVecs {
		if score := dot(vec, qv); score > bestScore {
			bestIdx, bestScore = i, score
		}
	}
	if bestIdx >= 0 && bestScore > m.simThreshold {
		return m.corpus[bestIdx].Answer, true
	}
	return "", false
}

// refitLocked refits the vectorizer and classifier on the full corpus and
// refreshes the cached question vectors.
func (m *Model) refitLocked() error {
	questions := make([]string, len(m.corpus))
	answers := make([]string, len(m.corpus))
	for i, p := range m.corpus {
		questions[i] = p.Question
		answers[i] = p.Answer
	}
	vectorizer := NewVectorizer()
	if err := vectorizer.Fit(questions); err != nil {
		return err
	}
	vecs := make([][]float64, len(questions))
	for i, q := range questions {
		vec, err := vectorizer.Transform(q)
		if err != nil {
			return err
		}
		vecs[i] = vec
	}
	classifier := NewNaiveBayes()
	if err := classifier.Fit(vecs, answers); err != nil {
		return err
	}
	m.vectorizer = vectorizer
	m.classifier = classifier
	m.questionVecs = vecs
	m.fitted = true
	return nil
}

func (m *Model) saveLocked() error {
	snap := snapshot{
		Vocabulary:   m.vectorizer.Vocabulary(),
		IDF:          m.vectorizer.IDF(),
		TrainingData: m.corpus,
		Fitted:       m.fitted,
	}
	if m.classifier.Fitted() {
		st := m.classifier.State()
		snap.Classifier = &st
	}
	data, err := json.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if dir := filepath.Dir(m.snapshotPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}
	if err := os.WriteFile(m.snapshotPath, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", m.snapshotPath, err)
	}
	return nil
}

// cleanQuestion is the canonical stored form of a question.
func cleanQuestion(text string) string {
	return nlp.CleanText(text)
}

func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
