package model

import (
	"errors"
	"math"
)

const bayesAlpha = 1.0

// NaiveBayes is a multinomial naive Bayes classifier over TF-IDF features.
// Labels are the answer strings themselves.
type NaiveBayes struct {
	classes        []string
	logPrior       []float64
	featureLogProb [][]float64
	fitted         bool
}

// NaiveBayesState is the serializable form of a fitted classifier.
type NaiveBayesState struct {
	Classes        []string    `json:"classes"`
	LogPrior       []float64   `json:"log_prior"`
	FeatureLogProb [][]float64 `json:"feature_log_prob"`
}

// NewNaiveBayes creates an unfitted classifier.
func NewNaiveBayes() *NaiveBayes {
	return &NaiveBayes{}
}

// NewNaiveBayesFromState reconstructs a fitted classifier from a snapshot.
func NewNaiveBayesFromState(st NaiveBayesState) *NaiveBayes {
	return &NaiveBayes{
		classes:        st.Classes,
		logPrior:       st.LogPrior,
		featureLogProb: st.FeatureLogProb,
		fitted:         len(st.Classes) > 0,
	}
}

// Fitted reports whether the classifier has been trained.
func (nb *NaiveBayes) Fitted() bool { return nb.fitted }

// State returns the serializable classifier parameters.
func (nb *NaiveBayes) State() NaiveBayesState {
	return NaiveBayesState{
		Classes:        nb.classes,
		LogPrior:       nb.logPrior,
		FeatureLogProb: nb.featureLogProb,
	}
}

// Fit estimates class priors and per-feature likelihoods with Laplace
// smoothing. Rows of x must share one dimensionality; labels[i] is the
// class of x[i].
func (nb *NaiveBayes) Fit(x [][]float64, labels []string) error {
	if len(x) == 0 || len(x) != len(labels) {
		return errors.New("naive bayes fit needs matching samples and labels")
	}
	dim := len(x[0])
	if dim == 0 {
		return errors.New("naive bayes fit needs at least one feature")
	}
	classIndex := make(map[string]int)
	var classes []string
	for _, label := range labels {
		if _, ok := classIndex[label]; !ok {
			classIndex[label] = len(classes)
			classes = append(classes, label)
		}
	}
	counts := make([][]float64, len(classes))
	totals := make([]float64, len(classes))
	sizes := make([]float64, len(classes))
	for i := range counts {
		counts[i] = make([]float64, dim)
	}
	for i, row := range x {
		if len(row) != dim {
			return errors.New("naive bayes fit: inconsistent feature dimensions")
		}
		c := classIndex[labels[i]]
		sizes[c]++
		for j, val := range row {
			counts[c][j] += val
			totals[c] += val
		}
	}
	nb.classes = classes
	nb.logPrior = make([]float64, len(classes))
	nb.featureLogProb = make([][]float64, len(classes))
	n := float64(len(x))
	for c := range classes {
		nb.logPrior[c] = math.Log(sizes[c] / n)
		nb.featureLogProb[c] = make([]float64, dim)
		denom := totals[c] + bayesAlpha*float64(dim)
		for j := 0; j < dim; j++ {
			nb.featureLogProb[c][j] = math.Log((counts[c][j] + bayesAlpha) / denom)
		}
	}
	nb.fitted = true
	return nil
}

// Predict returns the most probable class and its posterior probability.
func (nb *NaiveBayes) Predict(x []float64) (string, float64, error) {
	if !nb.fitted {
		return "", 0, errors.New("naive bayes not fitted")
	}
	joint := make([]float64, len(nb.classes))
	for c := range nb.classes {
		if len(x) != len(nb.featureLogProb[c]) {
			return "", 0, errors.New("naive bayes predict: dimension mismatch")
		}
		score := nb.logPrior[c]
		for j, val := range x {
			if val != 0 {
				score += val * nb.featureLogProb[c][j]
			}
		}
		joint[c] = score
	}
	// Normalize with log-sum-exp to obtain posteriors.
	maxJoint := joint[0]
	for _, s := range joint[1:] {
		if s > maxJoint {
			maxJoint = s
		}
	}
	sum := 0.0
	for _, s := range joint {
		sum += math.Exp(s - maxJoint)
	}
	best, bestProb := 0, 0.0
	for c, s := range joint {
		p := math.Exp(s-maxJoint) / sum
		if p > bestProb {
			best, bestProb = c, p
		}
	}
	return nb.classes[best], bestProb, nil
}
