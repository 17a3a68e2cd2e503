package textanalysis

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball"
)

var (
	clauseSplit = regexp.MustCompile(`[,;:!?()\[\]{}<>"\n\r\t•|/]+|\.(?:\s+|$)`)
	wordToken   = regexp.MustCompile(`[a-z0-9][a-z0-9+#.'\-]*`)
	lettersOnly = regexp.MustCompile(`^[a-z]+$`)
)

// token is a single content word
type token struct {
	surface string // lower-cased text as written
	lemma   string // comparison key
	clause  int    // index of the clause the token came from
	pos     int    // word position in text, stopwords included
}

// tokenize splits text into lower-cased word tokens, dropping punctuation and stopwords
func (v *vocabulary) tokenize(text string) []token {
	var tokens []token
	pos := 0
	for ci, clause := range clauseSplit.Split(strings.ToLower(text), -1) {
		for _, w := range wordToken.FindAllString(clause, -1) {
			pos++
			w = strings.TrimRight(w, ".'-")
			if w == "" || v.stopwords[w] {
				continue
			}
			tokens = append(tokens, token{surface: w, lemma: lemmatize(w), clause: ci, pos: pos})
		}
	}
	return tokens
}

// lemmatize reduces a word to its Snowball stem. Tokens with digits or symbols are kept as is.
func lemmatize(word string) string {
	if !lettersOnly.MatchString(word) {
		return word
	}
	stem, err := snowball.Stem(word, "english", true)
	if err != nil || stem == "" {
		return word
	}
	return stem
}

// lemmaSet returns the distinct lemmas of the content words in text
func (v *vocabulary) lemmaSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range v.tokenize(text) {
		set[t.lemma] = struct{}{}
	}
	return set
}
