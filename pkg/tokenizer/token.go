package tokenizer

import (
	"encoding/json"
	"strings"
)

// Built-in token type names. A rule-specific classification uses the
// rule's own id as the type string instead of one of these constants.
const (
	Word        = "WORD"
	Number      = "NUMBER"
	Punctuation = "PUNCTUATION"
	Currency    = "CURRENCY"
	Symbol      = "SYMBOL"
	Emoticon    = "EMOTICON"
	Pictogram   = "PICTOGRAM"
	Space       = "SPACE"
	Unknown     = "UNKNOWN"
)

// Role is a bitmask of the sentence/quote/paragraph roles a token can carry.
type Role uint16

const (
	NoSpace Role = 1 << iota
	BeginOfSentence
	EndOfSentence
	NewParagraph
	BeginQuote
	EndQuote
	TempEndOfSentence
	LineBreak
)

var roleNames = []struct {
	flag Role
	name string
}{
	{NoSpace, "NOSPACE"},
	{BeginOfSentence, "BEGINOFSENTENCE"},
	{EndOfSentence, "ENDOFSENTENCE"},
	{NewParagraph, "NEWPARAGRAPH"},
	{BeginQuote, "BEGINQUOTE"},
	{EndQuote, "ENDQUOTE"},
	{TempEndOfSentence, "TEMPENDOFSENTENCE"},
	{LineBreak, "LINEBREAK"},
}

// Has reports whether every flag in mask is set on r.
func (r Role) Has(mask Role) bool {
	return r&mask == mask
}

// Set returns r with mask set.
func (r Role) Set(mask Role) Role { return r | mask }

// Clear returns r with mask cleared.
func (r Role) Clear(mask Role) Role { return r &^ mask }

// String renders the set flags in declaration order, comma-separated.
func (r Role) String() string {
	var names []string
	for _, rn := range roleNames {
		if r.Has(rn.flag) {
			names = append(names, rn.name)
		}
	}
	return strings.Join(names, ",")
}

// Position is a diagnostic line/column location. The engine does not fill
// it in (Token.Pos stays nil), and no correctness invariant consults it.
type Position struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

// Token is the unit produced by the engine: a classified span of text
// carrying sentence/quote/paragraph role bits and the language setting
// that produced it.
type Token struct {
	Text string `json:"text"`
	Type string `json:"type"`
	Role Role   `json:"role"`
	Lang string `json:"lang,omitempty"`

	Pos *Position `json:"pos,omitempty"`
}

// tokenJSON mirrors Token but renders Role as a list of flag names rather
// than a raw bitmask.
type tokenJSON struct {
	Text string    `json:"text"`
	Type string    `json:"type"`
	Role []string  `json:"role,omitempty"`
	Lang string    `json:"lang,omitempty"`
	Pos  *Position `json:"pos,omitempty"`
}

func (t Token) MarshalJSON() ([]byte, error) {
	var names []string
	for _, rn := range roleNames {
		if t.Role.Has(rn.flag) {
			names = append(names, rn.name)
		}
	}
	return json.Marshal(tokenJSON{
		Text: t.Text,
		Type: t.Type,
		Role: names,
		Lang: t.Lang,
		Pos:  t.Pos,
	})
}

func (t *Token) UnmarshalJSON(data []byte) error {
	var tj tokenJSON
	if err := json.Unmarshal(data, &tj); err != nil {
		return err
	}
	t.Text, t.Type, t.Lang, t.Pos = tj.Text, tj.Type, tj.Lang, tj.Pos
	t.Role = 0
	for _, name := range tj.Role {
		for _, rn := range roleNames {
			if rn.name == name {
				t.Role |= rn.flag
			}
		}
	}
	return nil
}

// NewToken builds a token whose only role bit derived at construction time
// is NoSpace, set when no space follows this fragment. Sentence, quote and
// paragraph roles are assigned later by the boundary detector and resolver.
func NewToken(text, typ string, trailingSpace bool, lang string) *Token {
	var role Role
	if !trailingSpace {
		role = NoSpace
	}
	return &Token{Text: text, Type: typ, Role: role, Lang: lang}
}
