// Package langid provides the language-identification collaborator the
// driver consults through a tokenizer.SettingSelector. It is
// intentionally lightweight: a frequency count of known stopwords per
// candidate language, not a statistical model. Callers needing serious
// accuracy should wrap a real language-ID library behind the same
// Identifier interface instead.
package langid

import "strings"

// Identifier guesses the language of one line of text, returning a
// language ID (matching some Setting.ID the caller knows about) and
// false when no guess could be made above the identifier's internal
// confidence floor.
type Identifier interface {
	Identify(line string) (lang string, ok bool)
}

// None is the Identifier that never guesses - the default when no
// language data has been loaded for more than one language.
type None struct{}

// Identify implements Identifier, always declining.
func (None) Identify(string) (string, bool) { return "", false }

// StopwordIdentifier picks the language whose stopword list matches the
// most whitespace-delimited words in the line, case-insensitively.
// Ties and all-zero matches decline rather than guess.
type StopwordIdentifier struct {
	stopwords map[string]map[string]bool
	minVotes  int
}

// New builds a StopwordIdentifier from a language -> stopword-list map.
// minVotes is the minimum number of matching words required before a
// guess is returned at all (use 1 for no floor).
func New(lists map[string][]string, minVotes int) *StopwordIdentifier {
	id := &StopwordIdentifier{stopwords: map[string]map[string]bool{}, minVotes: minVotes}
	for lang, words := range lists {
		set := make(map[string]bool, len(words))
		for _, w := range words {
			set[strings.ToLower(w)] = true
		}
		id.stopwords[lang] = set
	}
	return id
}

// Identify implements Identifier.
func (id *StopwordIdentifier) Identify(line string) (string, bool) {
	words := strings.Fields(strings.ToLower(line))
	if len(words) == 0 {
		return "", false
	}

	scores := make(map[string]int, len(id.stopwords))
	for _, w := range words {
		for lang, set := range id.stopwords {
			if set[w] {
				scores[lang]++
			}
		}
	}

	best, bestScore := "", 0
	tie := false
	for lang, score := range scores {
		switch {
		case score > bestScore:
			best, bestScore, tie = lang, score, false
		case score == bestScore && score > 0:
			tie = true
		}
	}
	if tie || bestScore < id.minVotes {
		return "", false
	}
	return best, true
}
