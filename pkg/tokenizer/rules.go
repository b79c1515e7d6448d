package tokenizer

import (
	"regexp"
)

// Rule is a single named regular expression applied by the word tokenizer.
// Its id doubles as the token type emitted when it matches, unless the
// match is folded into the caller's assigned type (see MatchAll callers).
type Rule struct {
	ID      string
	Pattern *regexp.Regexp
}

// NewRule compiles pattern and names it id. An invalid pattern is a
// ConfigError, raised at settings-load time, never at tokenize time.
func NewRule(id, pattern string) (*Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &ConfigError{Section: "RULES", Detail: "rule " + id + ": " + err.Error()}
	}
	return &Rule{ID: id, Pattern: re}, nil
}

// MatchAll locates the first match of r's pattern in s and decomposes it
// into the text before the match (pre), the matched fragment(s) (matches),
// and the text after the match (post), following the capture-group
// contract:
//
//   - 0 groups: matches is the whole match; pre/post surround it.
//   - 1 group, present: matches is that group; pre/post surround the
//     group itself (not the whole match). If the group did not
//     participate in the match, fall back to the 0-group behavior.
//   - >=2 groups: matches is the ordered list of present groups; text
//     strictly between two consecutive present groups is discarded (not
//     folded into pre or post). pre is the text before the first present
//     group, post the text after the last present group.
//
// A failed match returns matched=false with every other return zeroed.
func (r *Rule) MatchAll(s string) (matched bool, pre string, matches []string, post string) {
	loc := r.Pattern.FindStringSubmatchIndex(s)
	if loc == nil {
		return false, "", nil, ""
	}
	numGroups := len(loc)/2 - 1

	if numGroups == 0 {
		return true, s[:loc[0]], []string{s[loc[0]:loc[1]]}, s[loc[1]:]
	}

	if numGroups == 1 {
		start, end := loc[2], loc[3]
		if start == -1 {
			return true, s[:loc[0]], []string{s[loc[0]:loc[1]]}, s[loc[1]:]
		}
		return true, s[:start], []string{s[start:end]}, s[end:]
	}

	var firstStart, lastEnd int = -1, -1
	for g := 1; g <= numGroups; g++ {
		start, end := loc[2*g], loc[2*g+1]
		if start == -1 {
			continue
		}
		if firstStart == -1 {
			firstStart = start
		}
		lastEnd = end
		matches = append(matches, s[start:end])
	}
	if firstStart == -1 {
		// Every group was optional and absent: fall back to group 0.
		return true, s[:loc[0]], []string{s[loc[0]:loc[1]]}, s[loc[1]:]
	}
	return true, s[:firstStart], matches, s[lastEnd:]
}
