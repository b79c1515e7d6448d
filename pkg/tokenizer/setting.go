package tokenizer

// Normalizer is the external Unicode-normalization collaborator. The core
// consumes its output; it never normalizes text itself.
type Normalizer interface {
	Normalize(s string) string
}

// Filter is the external character-substitution collaborator, applied to
// a line before it reaches the scanner.
type Filter interface {
	Filter(s string) string
}

type identityNormalizer struct{}

func (identityNormalizer) Normalize(s string) string { return s }

type identityFilter struct{}

func (identityFilter) Filter(s string) string { return s }

// DefaultEOSMarkers is the marker set used when a settings bundle carries
// no [EOSMARKERS] section.
const DefaultEOSMarkers = ".!?"

// DefaultUtteranceMarker is the literal string recognized anywhere in
// input as an explicit end-of-sentence marker.
const DefaultUtteranceMarker = "<utt>"

// Setting is an immutable, per-language bundle: everything the engine
// needs to tokenize one language's text. Once built it is never mutated,
// so a single Setting may be shared read-only across tokenizer instances.
type Setting struct {
	// ID identifies the language (or "passthru"); it is copied onto every
	// token this setting produces and used verbatim in structured output.
	ID string

	Rules  []*Rule
	Quotes *QuoteTable

	// EOSMarkers is the set of single code points that tentatively end a
	// sentence, stored as a string tested with strings.ContainsRune.
	EOSMarkers string

	// UtteranceMarker is the literal explicit end-of-sentence marker
	// recognized anywhere in input (default "<utt>").
	UtteranceMarker string

	Normalizer Normalizer
	Filter     Filter

	// NormalizationSet holds type/rule-id names whose emitted tokens have
	// their text replaced by the placeholder "{{ID}}".
	NormalizationSet map[string]bool

	// PunctuationFilter, when true, drops tokens whose type begins with
	// PUNCTUATION from the output stream; single-code-point tokens
	// classified CURRENCY, EMOTICON or PICTOGRAM are dropped as well.
	// Passthru mode drops only the words it classifies as PUNCTUATION.
	PunctuationFilter bool

	// Passthru selects C9 (whitespace-split, no rules) over C4/C5.
	Passthru bool

	// SentencePerLine, when set, treats each input line as exactly one
	// sentence: the first and last token of a non-empty line are marked
	// BeginOfSentence/EndOfSentence directly, bypassing EOS detection.
	SentencePerLine bool

	// QuoteDetection enables the quote-aware sentence-boundary mode
	// (detectQuotedSentenceBounds) instead of the simple mode.
	QuoteDetection bool

	// TrackPositions is carried on the Setting but not read by the engine:
	// Token.Pos is never populated, whatever its value.
	TrackPositions bool
}

// NewSetting returns a Setting with every collaborator defaulted to the
// identity/no-op implementation and the built-in EOS markers and quote
// table. Callers (typically the config loader) override fields after
// construction or replace Rules/Quotes/EOSMarkers wholesale.
func NewSetting(id string) *Setting {
	return &Setting{
		ID:               id,
		Quotes:           DefaultQuoteTable(),
		EOSMarkers:       DefaultEOSMarkers,
		UtteranceMarker:  DefaultUtteranceMarker,
		Normalizer:       identityNormalizer{},
		Filter:           identityFilter{},
		NormalizationSet: map[string]bool{},
		QuoteDetection:   true,
	}
}

// PassthruSetting returns the minimal Setting used when no language-
// specific rules are configured: rule-free, quote-aware off (passthru has
// no quote resolver), sentence-per-line input.
func PassthruSetting() *Setting {
	s := NewSetting("passthru")
	s.Passthru = true
	s.QuoteDetection = false
	s.SentencePerLine = true
	return s
}
