// Package normalize provides the Unicode-normalization collaborator the
// tokenizer core consumes through the tokenizer.Normalizer interface. It
// never changes the number of sentence or token boundaries, only the
// representation of the code points within a token's text.
package normalize

import (
	"golang.org/x/text/unicode/norm"
)

// Form is a supported Unicode normalization form.
type Form int

const (
	NFC Form = iota
	NFD
	NFKC
	NFKD
)

func (f Form) goForm() norm.Form {
	switch f {
	case NFD:
		return norm.NFD
	case NFKC:
		return norm.NFKC
	case NFKD:
		return norm.NFKD
	default:
		return norm.NFC
	}
}

// Normalizer applies one Unicode normalization form to every string it
// is given. The zero value normalizes to NFC, ucto's own default.
type Normalizer struct {
	Form Form
}

// New returns a Normalizer for the given form.
func New(form Form) *Normalizer {
	return &Normalizer{Form: form}
}

// Normalize implements tokenizer.Normalizer.
func (n *Normalizer) Normalize(s string) string {
	return n.Form.goForm().String(s)
}

// QuoteNormalizer rewrites the handful of visually-similar quotation and
// dash characters ucto's language data otherwise has to special-case
// everywhere - curly quotes to straight, en/em dash to hyphen-minus -
// before the scanner ever sees them, when enabled.
type QuoteNormalizer struct {
	Next *Normalizer
}

var quoteFold = map[rune]rune{
	'‘': '\'', '’': '\'',
	'“': '"', '”': '"',
	'–': '-', '—': '-',
}

// Normalize implements tokenizer.Normalizer, folding quote/dash variants
// and then delegating to Next (if set) for the Unicode normalization
// form proper.
func (q *QuoteNormalizer) Normalize(s string) string {
	out := []rune(s)
	changed := false
	for i, r := range out {
		if rep, ok := quoteFold[r]; ok {
			out[i] = rep
			changed = true
		}
	}
	result := s
	if changed {
		result = string(out)
	}
	if q.Next != nil {
		result = q.Next.Normalize(result)
	}
	return result
}
