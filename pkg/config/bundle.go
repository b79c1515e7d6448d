// Package config loads ucto-style settings files into compiled Setting
// bundles. It owns the ambient concern of external-file parsing and
// %include resolution; the core tokenizer package never reads a file.
package config

import (
	"github.com/spicery/uctogo/pkg/normalize"
	"github.com/spicery/uctogo/pkg/textfilter"
	"github.com/spicery/uctogo/pkg/tokenizer"
)

// Bundle is the section-by-section result of parsing one settings file.
// Parse returns it with every %include spliced in and every [META-RULES]
// entry already expanded into Rules.
type Bundle struct {
	Lang string

	Rules     []RuleLine     // [RULES]: NAME=PATTERN, in file order
	RuleOrder []string       // [RULE-ORDER]
	MetaRules []MetaRuleLine // [META-RULES]: NAME=PART1%PART2%...
	Splitter  string         // overridden by a META-RULES "SPLITTER" line

	Accumulate map[string][]string // ABBREVIATIONS, TOKENS, PREFIXES, ...

	// Stopwords is the [STOPWORDS] section: common words used to vote for
	// this language when the caller loads more than one and gives no
	// explicit override (see pkg/langid).
	Stopwords []string

	EOSMarkers []rune // [EOSMARKERS]
	Quotes     []QuotePair
	Filter     []FilterLine

	PunctuationFilter bool
	SentencePerLine   bool
	QuoteDetection    bool

	// Normalization is the [OPTIONS] "normalization" value (NFC, NFD,
	// NFKC, or NFKD), empty meaning ucto's own NFC default.
	Normalization string

	// FoldQuotes is the [OPTIONS] "foldquotes" boolean: curly quote and
	// en/em-dash variants are folded to their ASCII equivalents before
	// normalization.
	FoldQuotes bool
}

// RuleLine is one NAME=PATTERN line from [RULES], after meta-rule
// substitution has resolved PATTERN to a concrete regular expression.
type RuleLine struct {
	Name    string
	Pattern string
}

// MetaRuleLine is one NAME=PART1%PART2%... line from [META-RULES],
// unexpanded; Parts are the raw, unsplit segments (literal text or a
// section-name placeholder) in declaration order.
type MetaRuleLine struct {
	Name  string
	Parts []string
}

// QuotePair is one OPENCLASS CLOSECLASS line from [QUOTES].
type QuotePair struct {
	Open  string
	Close string
}

// FilterLine is one input-line substitution pattern from [FILTER],
// passed to the filter component verbatim.
type FilterLine struct {
	Pattern     string
	Replacement string
}

// accumulateSections names the sections that feed [META-RULES]
// placeholders via `\|`-joined alternation.
var accumulateSections = []string{
	"ABBREVIATIONS", "TOKENS", "PREFIXES", "SUFFIXES",
	"ATTACHEDPREFIXES", "ATTACHEDSUFFIXES", "UNITS", "ORDINALS", "CURRENCY",
}

// CompileSetting turns a fully-resolved Bundle into an immutable
// tokenizer.Setting, compiling every rule pattern and building the
// quote table and EOS marker set. Returns a *tokenizer.ConfigError on
// any invalid regex, duplicate rule name, or [RULE-ORDER] name with no
// matching rule. Malformed quote/EOS entries are rejected earlier, by Parse.
func CompileSetting(b *Bundle) (*tokenizer.Setting, error) {
	s := tokenizer.NewSetting(b.Lang)
	s.PunctuationFilter = b.PunctuationFilter
	s.SentencePerLine = b.SentencePerLine
	s.QuoteDetection = b.QuoteDetection

	if len(b.EOSMarkers) > 0 {
		s.EOSMarkers = string(b.EOSMarkers)
	}

	if len(b.Quotes) > 0 {
		qt := &tokenizer.QuoteTable{}
		for _, q := range b.Quotes {
			qt.Add(q.Open, q.Close)
		}
		s.Quotes = qt
	}

	s.Normalizer = buildNormalizer(b)

	if len(b.Filter) > 0 {
		subs := make([]textfilter.Substitution, len(b.Filter))
		for i, fl := range b.Filter {
			subs[i] = textfilter.Substitution{From: fl.Pattern, To: fl.Replacement}
		}
		s.Filter = textfilter.New(subs)
	}

	ordered, err := orderRules(b)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	for _, rl := range ordered {
		if seen[rl.Name] {
			return nil, &tokenizer.ConfigError{Section: "RULES", Detail: "duplicate rule name " + rl.Name}
		}
		seen[rl.Name] = true
		rule, err := tokenizer.NewRule(rl.Name, rl.Pattern)
		if err != nil {
			return nil, err
		}
		s.Rules = append(s.Rules, rule)
	}
	return s, nil
}

// buildNormalizer turns b's [OPTIONS] normalization/foldquotes settings
// into the tokenizer.Normalizer CompileSetting installs on the Setting.
// Empty/absent options yield ucto's own default: plain NFC, no folding.
func buildNormalizer(b *Bundle) tokenizer.Normalizer {
	form := normalize.NFC
	switch b.Normalization {
	case "NFD":
		form = normalize.NFD
	case "NFKC":
		form = normalize.NFKC
	case "NFKD":
		form = normalize.NFKD
	}
	n := normalize.New(form)
	if b.FoldQuotes {
		return &normalize.QuoteNormalizer{Next: n}
	}
	return n
}

// orderRules applies rules named in RuleOrder first, in that order, then
// appends any remaining declared rule in [RULES] declaration order -
// the rule-order determinism invariant §4.4/§9.
func orderRules(b *Bundle) ([]RuleLine, error) {
	byName := make(map[string]RuleLine, len(b.Rules))
	for _, rl := range b.Rules {
		byName[rl.Name] = rl
	}

	var ordered []RuleLine
	used := map[string]bool{}
	for _, name := range b.RuleOrder {
		rl, ok := byName[name]
		if !ok {
			return nil, &tokenizer.ConfigError{Section: "RULE-ORDER", Detail: "unknown rule " + name}
		}
		ordered = append(ordered, rl)
		used[name] = true
	}
	for _, rl := range b.Rules {
		if !used[rl.Name] {
			ordered = append(ordered, rl)
		}
	}
	return ordered, nil
}
