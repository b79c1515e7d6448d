package tokenizer

import "unicode/utf8"

// detectQuoteBounds is invoked for each token classified as punctuation
// that is also a quote character, pushing unmatched opens and attempting
// to resolve matched closes.
func (e *Engine) detectQuoteBounds(i int) {
	tok := e.buf.At(i)
	c, _ := utf8.DecodeRuneInString(tok.Text)

	switch c {
	case '"', '＂':
		if !e.resolveQuote(i, string(c)) {
			e.buf.Quotes().Push(i, c)
		}
		return
	case '\'':
		if !e.resolveQuote(i, string(c)) {
			e.buf.Quotes().Push(i, c)
		}
		return
	}

	if _, ok := e.setting.Quotes.OpenToClose(c); ok {
		e.buf.Quotes().Push(i, c)
		return
	}
	if openClass, ok := e.setting.Quotes.CloseToOpen(c); ok {
		e.resolveQuote(i, openClass)
	}
}

// resolveQuote pairs the quote token at endIndex with the most recent
// unresolved open on the stack whose character lies in openClass. It
// returns false (a no-op) when no such open exists.
func (e *Engine) resolveQuote(endIndex int, openClass string) bool {
	beginIndex, slot, ok := e.buf.Quotes().Lookup(openClass)
	if !ok {
		return false
	}

	beginSentence := beginIndex + 1
	expectingEnd := 0
	subquote := 0
	size := e.buf.Len()

	for i := beginSentence; i < endIndex; i++ {
		tok := e.buf.At(i)
		if tok.Role.Has(BeginQuote) {
			subquote++
		}
		if subquote == 0 {
			if tok.Role.Has(BeginOfSentence) {
				expectingEnd++
			}
			if tok.Role.Has(EndOfSentence) {
				expectingEnd--
			}
			if tok.Role.Has(TempEndOfSentence) {
				tok.Role = tok.Role.Clear(TempEndOfSentence).Set(EndOfSentence)
				e.buf.At(beginSentence).Role = e.buf.At(beginSentence).Role.Set(BeginOfSentence)
				beginSentence = i + 1
			}
		} else if tok.Role.Has(EndQuote) && tok.Role.Has(EndOfSentence) {
			e.buf.At(beginSentence).Role = e.buf.At(beginSentence).Role.Set(BeginOfSentence)
			beginSentence = i + 1
		}
		if tok.Role.Has(EndQuote) {
			subquote--
		}
	}

	switch {
	case expectingEnd == 0 && subquote == 0:
		e.buf.At(beginIndex).Role = e.buf.At(beginIndex).Role.Set(BeginQuote)
		e.buf.At(endIndex).Role = e.buf.At(endIndex).Role.Set(EndQuote)
	case expectingEnd == 1 && subquote == 0 && !e.buf.At(endIndex-1).Role.Has(EndOfSentence):
		e.buf.At(endIndex - 1).Role = e.buf.At(endIndex - 1).Role.Set(EndOfSentence)
		e.buf.At(beginIndex).Role = e.buf.At(beginIndex).Role.Set(BeginQuote)
		e.buf.At(endIndex).Role = e.buf.At(endIndex).Role.Set(EndQuote)
	default:
		// Sentences/subquotes inside the quote are unbalanced: leave it unmarked.
	}

	e.buf.Quotes().EraseAt(slot)

	// Post-quote EOS heuristic: only when the close was confirmed and the
	// token just inside the quote already carried EndOfSentence.
	endTok := e.buf.At(endIndex)
	if endTok.Role.Has(EndQuote) && e.buf.At(endIndex-1).Role.Has(EndOfSentence) {
		switch {
		case endIndex+1 == size:
			endTok.Role = endTok.Role.Set(EndOfSentence)
		case endIndex+1 < size && isBOS(firstRuneOf(e.buf.At(endIndex+1))):
			endTok.Role = endTok.Role.Set(EndOfSentence)
		case endIndex+2 < size && e.setting.Quotes.IsQuote(firstRuneOf(e.buf.At(endIndex+1))) && isBOS(firstRuneOf(e.buf.At(endIndex+2))):
			endTok.Role = endTok.Role.Set(EndOfSentence)
		case endIndex+2 == size && e.setting.Quotes.IsQuote(firstRuneOf(e.buf.At(endIndex+1))):
			endTok.Role = endTok.Role.Set(EndOfSentence)
		}
	}

	return true
}

func firstRuneOf(t *Token) rune {
	r, _ := utf8.DecodeRuneInString(t.Text)
	return r
}
