package tokenizer

import "unicode"

// PassthruLine is the rule-free tokenizer (C9): whitespace-split, with
// each word classified by the character-category majority over the
// alphabetic/digit/punctuation counts (anything mixed, or none of the
// three, is Unknown). It honors the normalization set and punctuation
// filter exactly as the rule engine does, and (when SentencePerLine is
// set) marks the first and last token of a non-empty line.
func (e *Engine) PassthruLine(line string) int {
	beginCount := e.buf.Len()

	var word []rune
	emit := func(trailingSpace bool) {
		if len(word) == 0 {
			return
		}
		w := string(word)
		if w == e.setting.UtteranceMarker && e.setting.UtteranceMarker != "" {
			if e.buf.Len() > 0 {
				last := e.buf.At(e.buf.Len() - 1)
				last.Role = last.Role.Set(EndOfSentence)
			}
			word = nil
			return
		}
		typ := majorityClass(word)
		if e.setting.PunctuationFilter && (typ == Punctuation) {
			e.stripTrailingNoSpace()
			word = nil
			return
		}
		text := w
		if e.setting.NormalizationSet[typ] {
			text = "{{" + typ + "}}"
		}
		e.buf.Append(NewToken(text, typ, trailingSpace, e.setting.ID))
		word = nil
	}

	runes := []rune(line)
	for i, c := range runes {
		if unicode.IsSpace(c) {
			emit(true)
			continue
		}
		word = append(word, c)
		if i == len(runes)-1 {
			emit(true)
		}
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
		}
	}
	return numNew
}

// majorityClass classifies a word by the three-way majority over its
// characters: Word if every character is alphabetic, Number if every
// character is a digit, Punctuation if every character is punctuation,
// Unknown otherwise (mixed, or none of the three).
func majorityClass(word []rune) string {
	var alpha, num, punct, other bool
	for _, r := range word {
		switch {
		case unicode.IsLetter(r):
			alpha = true
		case unicode.IsDigit(r):
			num = true
		case unicode.IsPunct(r):
			punct = true
		default:
			other = true
		}
	}
	switch {
	case alpha && !num && !punct && !other:
		return Word
	case num && !alpha && !punct && !other:
		return Number
	case punct && !alpha && !num && !other:
		return Punctuation
	default:
		return Unknown
	}
}
