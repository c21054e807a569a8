package model

import (
	"errors"
	"math"
	"sort"
	"strings"

	"unibot/internal/nlp"
)

// Vectorizer is a TF-IDF text vectorizer over unigrams and bigrams.
// It builds a vocabulary from the training corpus and computes smoothed IDF
// values; vectors are L2-normalized so a dot product is cosine similarity.
type Vectorizer struct {
	vocabulary map[string]int
	idf        []float64
	dimension  int
	fitted     bool
	stopwords  map[string]struct{}
}

// NewVectorizer creates an unfitted vectorizer.
func NewVectorizer() *Vectorizer {
	return &Vectorizer{
		vocabulary: make(map[string]int),
		stopwords:  defaultStopwords(),
	}
}

// NewVectorizerFromState reconstructs a fitted vectorizer from a snapshot's
// vocabulary and IDF values without refitting.
func NewVectorizerFromState(vocabulary map[string]int, idf []float64) *Vectorizer {
	return &Vectorizer{
		vocabulary: vocabulary,
		idf:        idf,
		dimension:  len(idf),
		fitted:     len(vocabulary) > 0 && len(vocabulary) == len(idf),
		stopwords:  defaultStopwords(),
	}
}

// Fitted reports whether the vectorizer has a vocabulary.
func (v *Vectorizer) Fitted() bool { return v.fitted }

// Dimension returns the vector dimensionality.
func (v *Vectorizer) Dimension() int { return v.dimension }

// Vocabulary exposes the term index for snapshot persistence.
func (v *Vectorizer) Vocabulary() map[string]int { return v.vocabulary }

// IDF exposes the inverse document frequencies for snapshot persistence.
func (v *Vectorizer) IDF() []float64 { return v.idf }

// Fit builds the vocabulary and IDF values from the corpus.
func (v *Vectorizer) Fit(corpus []string) error {
	if len(corpus) == 0 {
		return errors.New("empty corpus for TF-IDF fit")
	}
	df := make(map[string]int)
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, feat := range v.features(text) {
			if _, ok := seen[feat]; ok {
				continue
			}
			seen[feat] = struct{}{}
			df[feat]++
		}
	}
	if len(df) == 0 {
		return errors.New("no features found in corpus")
	}
	// Stable vocabulary ordering
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	v.vocabulary = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	n := float64(len(corpus))
	for i, term := range terms {
		v.vocabulary[term] = i
		// Smoothed IDF
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	v.dimension = len(terms)
	v.fitted = true
	return nil
}

// Transform computes the L2-normalized TF-IDF vector for the text. Terms
// outside the vocabulary are ignored; text with no known terms yields a
// zero vector.
func (v *Vectorizer) Transform(text string) ([]float64, error) {
	if !v.fitted {
		return nil, errors.New("vectorizer not fitted")
	}
	vec := make([]float64, v.dimension)
	tf := make(map[int]int)
	total := 0
	for _, feat := range v.features(text) {
		if idx, ok := v.vocabulary[feat]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec, nil
	}
	for idx, count := range tf {
		vec[idx] = float64(count) / float64(total) * v.idf[idx]
	}
	norm := 0.0
	for _, x := range vec {
		norm += x * x
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec, nil
}

// features yields stopword-filtered unigrams plus adjacent bigrams.
func (v *Vectorizer) features(text string) []string {
	words := strings.Fields(nlp.CleanText(text))
	kept := words[:0]
	for _, w := range words {
		if _, isStop := v.stopwords[w]; isStop {
			continue
		}
		kept = append(kept, w)
	}
	feats := make([]string, 0, len(kept)*2)
	feats = append(feats, kept...)
	for i := 0; i+1 < len(kept); i++ {
		feats = append(feats, kept[i]+" "+kept[i+1])
	}
	return feats
}

func defaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "this", "that", "these", "those", "from", "up", "down", "over", "under", "again", "further", "than", "so", "such", "into", "about", "between", "through", "during", "before", "after", "above", "below", "out", "off", "own", "same", "too", "very", "can", "will", "just", "don", "should", "now",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
