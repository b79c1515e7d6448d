package tokenizer

import "unicode"

// emoticonRange covers the Unicode Emoticons block (U+1F600-U+1F64F),
// the block the original UBLOCK_EMOTICONS check names directly.
var emoticonRange = &unicode.RangeTable{
	R32: []unicode.Range32{
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1},
	},
}

// pictogramRange covers the pictograph-bearing blocks that are not the
// dedicated emoticon block: dingbats, misc symbols & pictographs,
// transport & map symbols, and supplemental symbols & pictographs.
var pictogramRange = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2700, Hi: 0x27BF, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1},
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1},
		{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1},
	},
}

// isEmoticon reports whether r falls in the dedicated emoticon block.
func isEmoticon(r rune) bool {
	return unicode.Is(emoticonRange, r)
}

// isPictogram reports whether r falls in one of the pictograph blocks
// that aren't the dedicated emoticon block.
func isPictogram(r rune) bool {
	return unicode.Is(pictogramRange, r)
}

// bosBlocks are the case-distinguishing scripts the beginning-of-sentence
// heuristic restricts itself to. Basic Latin has no unicode.RangeTable of
// its own; it's checked as the ASCII range directly.
var bosBlocks = []*unicode.RangeTable{
	unicode.Greek,
	unicode.Cyrillic,
	unicode.Georgian,
	unicode.Armenian,
	unicode.Deseret,
}

// isBOS reports whether r is a beginning-of-sentence candidate: an
// uppercase or titlecase letter in one of the case-distinguishing blocks.
func isBOS(r rune) bool {
	if !unicode.IsUpper(r) && !unicode.IsTitle(r) {
		return false
	}
	if r <= 0x7F {
		return true // Basic Latin
	}
	for _, rt := range bosBlocks {
		if unicode.Is(rt, r) {
			return true
		}
	}
	return false
}

// detectType classifies a single code point into one of the built-in
// token types, used by the singleton fast path (C5 step 1) and by
// passthru mode's character-category majority vote (C9).
func detectType(r rune) string {
	switch {
	case unicode.IsSpace(r):
		return Space
	case unicode.Is(unicode.Sc, r):
		return Currency
	case unicode.IsPunct(r):
		return Punctuation
	case isEmoticon(r):
		return Emoticon
	case isPictogram(r):
		return Pictogram
	case unicode.IsLetter(r):
		return Word
	case unicode.IsDigit(r) || unicode.IsNumber(r):
		return Number
	case unicode.IsSymbol(r):
		return Symbol
	default:
		return Unknown
	}
}
