package tokenizer

import (
	"strings"
	"unicode"
)

// TokenizeLine is the character scanner (C4). It consumes one logical
// input line and returns the number of new tokens appended to the
// buffer. Callers normalize and filter the line first (LineProcessor
// does this via Setting.Normalizer/Setting.Filter before calling in).
func (e *Engine) TokenizeLine(line string) int {
	runes := []rune(line)
	length := len(runes)
	beginCount := e.buf.Len()

	var word []rune
	needsFullEngine := false
	dropped := false

	flush := func(isLast bool, last rune) {
		if isLast && len(word) > 0 {
			if unicode.IsPunct(last) || unicode.IsDigit(last) || e.setting.Quotes.IsQuote(last) || isEmoticon(last) || isPictogram(last) {
				needsFullEngine = true
			}
		}
		if len(word) == 0 {
			needsFullEngine = false
			return
		}
		if len(word) > maxWordCodepoints {
			e.warn("word exceeds maximum length, entire line dropped")
			dropped = true
			word = nil
			needsFullEngine = false
			return
		}
		w := string(word)
		marker := e.setting.UtteranceMarker
		if idx := strings.LastIndex(w, marker); marker != "" && idx != -1 {
			eosPos := e.buf.Len() - 1
			if idx > 0 {
				e.tokenizeWord(w[:idx], false, "")
				eosPos++
			}
			if idx+len(marker) < len(w) {
				e.tokenizeWord(w[idx+len(marker):], true, "")
			}
			if e.buf.Len() > 0 && eosPos >= 0 && eosPos < e.buf.Len() {
				e.buf.At(eosPos).Role = e.buf.At(eosPos).Role.Set(EndOfSentence)
			}
		} else if len(word) > 0 {
			if needsFullEngine {
				e.tokenizeWord(w, true, "")
			} else {
				e.tokenizeWord(w, true, Word)
			}
		}
		word = nil
		needsFullEngine = false
	}

	for i, c := range runes {
		isLast := i == length-1
		if unicode.IsSpace(c) {
			flush(isLast, c)
			if dropped {
				break
			}
			continue
		}
		word = append(word, c)
		if unicode.IsPunct(c) || unicode.IsDigit(c) || e.setting.Quotes.IsQuote(c) || isEmoticon(c) || isPictogram(c) {
			needsFullEngine = true
		}
		if isLast {
			flush(true, c)
		}
	}

	if dropped {
		e.buf.tokens = e.buf.tokens[:beginCount]
		return 0
	}

	numNew := e.buf.Len() - beginCount
	if numNew > 0 {
		if e.paragraphSignal {
			first := e.buf.At(beginCount)
			first.Role = first.Role.Set(NewParagraph).Set(BeginOfSentence)
			e.paragraphSignal = false
		}
		if e.setting.SentencePerLine {
			e.buf.At(beginCount).Role = e.buf.At(beginCount).Role.Set(BeginOfSentence)
			e.buf.At(e.buf.Len() - 1).Role = e.buf.At(e.buf.Len() - 1).Role.Set(EndOfSentence)
			if e.setting.QuoteDetection {
				e.detectQuotedSentenceBounds(beginCount)
			}
		} else if e.setting.QuoteDetection {
			e.detectQuotedSentenceBounds(beginCount)
		} else {
			e.detectSentenceBounds(beginCount)
		}
	}
	return numNew
}

// RaiseParagraphSignal sets the one-shot paragraph flag, consumed by the
// next non-empty line's first token (NewParagraph | BeginOfSentence).
func (e *Engine) RaiseParagraphSignal() { e.paragraphSignal = true }
