package nlp

import (
	"regexp"
	"strings"
)

// Word characters are Unicode letters and digits; Go's \w is ASCII-only and
// would strip accented letters.
var nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

// Normalize lowercases the text, strips punctuation, splits on whitespace
// and stems each token. It never fails; whitespace-only input yields an
// empty slice and callers must handle that case.
func Normalize(text string) []string {
	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(text), "")
	fields := strings.Fields(cleaned)
	if len(fields) == 0 {
		return nil
	}
	tokens := make([]string, len(fields))
	for i, f := range fields {
		tokens[i] = Stem(f)
	}
	return tokens
}

// CleanText lowercases, strips punctuation and collapses whitespace. This is
// the canonical form under which learned questions are stored and compared.
func CleanText(text string) string {
	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), "")
	return strings.Join(strings.Fields(cleaned), " ")
}

// Stem reduces a word to an approximate root by stripping common suffixes,
// e.g. "applying"->"appli", "courses"->"cours", "bursaries"->"bursari".
// Short words pass through unchanged.
func Stem(word string) string {
	w := word
	if len(w) <= 3 {
		return w
	}
	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		w = w[:len(w)-3] + "i"
	case strings.HasSuffix(w, "sses"):
		w = w[:len(w)-2]
	case strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") && !strings.HasSuffix(w, "us"):
		w = w[:len(w)-1]
	}
	switch {
	case strings.HasSuffix(w, "ing") && len(w) > 5:
		w = w[:len(w)-3]
	case strings.HasSuffix(w, "ed") && len(w) > 4:
		w = w[:len(w)-2]
	}
	if strings.HasSuffix(w, "y") && len(w) > 2 && !isVowel(w[len(w)-2]) {
		w = w[:len(w)-1] + "i"
	}
	if strings.HasSuffix(w, "e") && len(w) >= 6 {
		w = w[:len(w)-1]
	}
	return w
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
