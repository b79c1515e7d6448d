package tokenizer

import "unicode/utf8"

// tokenizeWord is the recursive word tokenizer (C5). input is a non-
// whitespace fragment; trailingSpace reports whether a space follows it
// in the original line; assignedType, when non-empty, is a provisional
// classification (Word from the scanner, or the matching rule's id when a
// rule match is tokenized again) and switches on the
// recursion-preservation branch.
func (e *Engine) tokenizeWord(input string, trailingSpace bool, assignedType string) {
	recurse := assignedType != ""

	if input == e.setting.UtteranceMarker && e.setting.UtteranceMarker != "" {
		if e.buf.Len() > 0 {
			last := e.buf.At(e.buf.Len() - 1)
			last.Role = last.Role.Set(EndOfSentence)
		} else {
			e.warn("explicit EOS marker found by itself, has no effect")
		}
		return
	}

	if n := utf8.RuneCountInString(input); n == 1 {
		r, _ := utf8.DecodeRuneInString(input)
		typ := detectType(r)
		if typ == Space {
			return
		}
		if e.setting.PunctuationFilter && (typ == Punctuation || typ == Currency || typ == Emoticon || typ == Pictogram) {
			e.stripTrailingNoSpace()
			return
		}
		text := input
		if e.setting.NormalizationSet[typ] {
			text = "{{" + typ + "}}"
		}
		e.buf.Append(NewToken(text, typ, trailingSpace, e.setting.ID))
		return
	}

	for _, rule := range e.setting.Rules {
		matched, pre, matches, post := rule.MatchAll(input)
		if !matched {
			continue
		}
		typ := rule.ID

		if recurse && (typ == Word || (pre == "" && post == "")) {
			if assignedType != Word {
				e.buf.Append(NewToken(input, assignedType, trailingSpace, e.setting.ID))
			} else {
				e.buf.Append(NewToken(input, typ, trailingSpace, e.setting.ID))
			}
			return
		}

		if pre != "" {
			e.tokenizeWord(pre, false, "")
		}

		internalSpace := trailingSpace
		if post != "" {
			internalSpace = false
		}
		for _, m := range matches {
			if e.setting.PunctuationFilter && hasPrefixFold(typ, Punctuation) {
				e.stripTrailingNoSpace()
				continue
			}
			if e.setting.NormalizationSet[typ] {
				e.buf.Append(NewToken("{{"+typ+"}}", typ, internalSpace, e.setting.ID))
			} else if recurse {
				e.buf.Append(NewToken(m, typ, internalSpace, e.setting.ID))
			} else {
				e.tokenizeWord(m, internalSpace, typ)
			}
		}

		if post != "" {
			e.tokenizeWord(post, trailingSpace, "")
		}
		return
	}

	// No rule matched: emit the fragment unchanged, typed by the caller's
	// guess if any (empty type reads as Unknown to consumers).
	e.buf.Append(NewToken(input, assignedType, trailingSpace, e.setting.ID))
}

// stripTrailingNoSpace clears NoSpace from the buffer's last token, used
// when a punctuation-filtered emission is skipped so the gap it would
// have occupied doesn't leave a phantom "no space" marker behind.
func (e *Engine) stripTrailingNoSpace() {
	if e.buf.Len() == 0 {
		return
	}
	last := e.buf.At(e.buf.Len() - 1)
	last.Role = last.Role.Clear(NoSpace)
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
