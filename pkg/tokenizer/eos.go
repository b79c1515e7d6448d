package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// detectEos reports whether tokens[i] plausibly ends a sentence: it must
// start with '.' or a configured EOS marker, and then satisfy one of the
// lookahead conditions on the following token(s).
func (e *Engine) detectEos(i int) bool {
	tok := e.buf.At(i)
	c, _ := utf8.DecodeRuneInString(tok.Text)
	if c != '.' && !strings.ContainsRune(e.setting.EOSMarkers, c) {
		return false
	}

	size := e.buf.Len()
	if i+1 == size {
		return true
	}

	next := e.buf.At(i + 1)
	nc, _ := utf8.DecodeRuneInString(next.Text)

	if e.setting.Quotes.IsQuote(nc) {
		if e.setting.QuoteDetection {
			return true
		}
		if i+2 < size {
			nnc, _ := utf8.DecodeRuneInString(e.buf.At(i + 2).Text)
			if unicode.IsUpper(nnc) || unicode.IsTitle(nnc) || unicode.IsPunct(nnc) {
				return true
			}
		}
		return false
	}

	if utf8.RuneCountInString(tok.Text) > 1 {
		return unicode.IsUpper(nc) || unicode.IsTitle(nc)
	}
	return true
}

// isClosingBracket reports whether tok is a single-character closing
// bracket: the fixup condition the boundary detectors treat specially.
func isClosingBracket(tok *Token) bool {
	if utf8.RuneCountInString(tok.Text) != 1 {
		return false
	}
	switch tok.Text {
	case ")", "}", "]", ">":
		return true
	}
	return false
}

// transferEosFromPredecessor moves a stray ENDOFSENTENCE off tokens[i-1]
// onto the rationale that tokens[i] now takes its place, clearing any
// spurious BEGINOFSENTENCE it had just received.
func (e *Engine) transferEosFromPredecessor(i int) {
	if i == 0 {
		return
	}
	prev := e.buf.At(i - 1)
	if prev.Role.Has(EndOfSentence) && !prev.Role.Has(BeginOfSentence) {
		prev.Role = prev.Role.Clear(EndOfSentence)
		cur := e.buf.At(i)
		if cur.Role.Has(BeginOfSentence) {
			cur.Role = cur.Role.Clear(BeginOfSentence)
		}
	}
}

// detectSentenceBounds is the simple (quote-oblivious) boundary detector.
func (e *Engine) detectSentenceBounds(offset int) {
	size := e.buf.Len()
	for i := offset; i < size; i++ {
		tok := e.buf.At(i)
		if !hasPrefixFold(tok.Type, Punctuation) {
			continue
		}
		if e.detectEos(i) {
			tok.Role = tok.Role.Set(EndOfSentence)
			if i+1 < size && !e.buf.At(i+1).Role.Has(BeginOfSentence) {
				e.buf.At(i + 1).Role = e.buf.At(i + 1).Role.Set(BeginOfSentence)
			}
			e.transferEosFromPredecessor(i)
		} else if isClosingBracket(tok) {
			e.transferEosFromPredecessor(i)
		}
	}

	for i := size - 1; i > offset; i-- {
		tok := e.buf.At(i)
		if !hasPrefixFold(tok.Type, Punctuation) {
			break
		}
		if tok.Role.Has(BeginOfSentence) {
			tok.Role = tok.Role.Clear(BeginOfSentence)
		}
		if i != size-1 && tok.Role.Has(EndOfSentence) {
			tok.Role = tok.Role.Clear(EndOfSentence)
		}
	}
}

// detectQuotedSentenceBounds is the quote-aware boundary detector: a
// provisional TempEndOfSentence is used instead of EndOfSentence while
// any quote remains open, and the quote resolver runs after each
// punctuation token.
func (e *Engine) detectQuotedSentenceBounds(offset int) {
	size := e.buf.Len()
	for i := offset; i < size; i++ {
		tok := e.buf.At(i)
		if !hasPrefixFold(tok.Type, Punctuation) {
			continue
		}
		if e.detectEos(i) {
			if !e.buf.Quotes().Empty() {
				tok.Role = tok.Role.Set(TempEndOfSentence)
				if i > 0 && e.buf.At(i-1).Role.Has(TempEndOfSentence) {
					e.buf.At(i - 1).Role = e.buf.At(i - 1).Role.Clear(TempEndOfSentence)
				}
			} else if !e.setting.SentencePerLine {
				tok.Role = tok.Role.Set(EndOfSentence)
				if i+1 < size && !e.buf.At(i+1).Role.Has(BeginOfSentence) {
					e.buf.At(i + 1).Role = e.buf.At(i + 1).Role.Set(BeginOfSentence)
				}
				e.transferEosFromPredecessor(i)
			}
		} else if isClosingBracket(tok) {
			e.transferEosFromPredecessor(i)
		}
		e.detectQuoteBounds(i)
	}
}
