package textanalysis

import (
	"sort"
	"strings"
)

const (
	// MaxKeywords caps the important keyword list
	MaxKeywords = 20
	// DefaultMaxPhrases is the key phrase limit used when none is given
	DefaultMaxPhrases = 10

	minKeywordLength = 2 // exclusive
	maxPhraseWords   = 4
	minPhraseLength  = 3 // exclusive
)

// counted is a term with its frequency and first position
type counted struct {
	key   string
	text  string
	count int
	first int
}

// rankByFrequency orders terms by descending count, ties by first appearance
func rankByFrequency(terms []*counted, limit int) []string {
	sort.SliceStable(terms, func(i, j int) bool {
		if terms[i].count != terms[j].count {
			return terms[i].count > terms[j].count
		}
		return terms[i].first < terms[j].first
	})
	if limit > 0 && len(terms) > limit {
		terms = terms[:limit]
	}
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = t.text
	}
	return out
}

// ExtractKeywords returns up to MaxKeywords lemmatized content words ranked by frequency.
// Words sharing a lemma are counted together. Each keyword is the lemma form: the
// stem cut back to the prefix all of its inflections share, so "managing", "manage"
// and "managers" are reported as "manag" and still match any of them as a substring.
func (h *Heuristic) ExtractKeywords(text string) []string {
	v := backend()

	byLemma := make(map[string]*counted)
	var order []*counted
	for i, t := range v.tokenize(text) {
		if len(t.surface) <= minKeywordLength {
			continue
		}
		c, ok := byLemma[t.lemma]
		if !ok {
			c = &counted{key: t.lemma, text: commonPrefix(t.lemma, t.surface), first: i}
			byLemma[t.lemma] = c
			order = append(order, c)
		} else {
			c.text = commonPrefix(c.text, t.surface)
		}
		c.count++
	}

	for _, c := range order {
		if len(c.text) <= minKeywordLength {
			c.text = c.key
		}
	}
	return rankByFrequency(order, MaxKeywords)
}

// commonPrefix returns the longest shared prefix of a and b
func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}

// ExtractKeyPhrases returns the most frequent phrases of up to four consecutive content words.
// Stopwords and punctuation end a run; runs longer than four words are cut into four-word chunks.
func ExtractKeyPhrases(text string, maxPhrases int) []string {
	if maxPhrases <= 0 {
		maxPhrases = DefaultMaxPhrases
	}
	v := backend()
	tokens := v.tokenize(text)

	byPhrase := make(map[string]*counted)
	var order []*counted
	add := func(words []string, pos int) {
		phrase := strings.Join(words, " ")
		if len(phrase) <= minPhraseLength || v.stopwords[phrase] {
			return
		}
		c, ok := byPhrase[phrase]
		if !ok {
			c = &counted{key: phrase, text: phrase, first: pos}
			byPhrase[phrase] = c
			order = append(order, c)
		}
		c.count++
	}

	var run []string
	start := 0
	for i, t := range tokens {
		if len(run) > 0 && (t.clause != tokens[i-1].clause || t.pos != tokens[i-1].pos+1 || len(run) == maxPhraseWords) {
			add(run, start)
			run = nil
		}
		if len(run) == 0 {
			start = i
		}
		run = append(run, t.surface)
	}
	if len(run) > 0 {
		add(run, start)
	}

	return rankByFrequency(order, maxPhrases)
}
