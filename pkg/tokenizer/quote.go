package tokenizer

import "unicode"

// quoteClass pairs an open class with its close class: each class is a
// string of alternative code points that play the same role, e.g. the
// open class "“„‟" closes with "”".
type quoteClass struct {
	open  string
	close string
}

// QuoteTable holds the static open/close quote pairings for a Setting.
// Lookups are linear over the (small, configuration-bounded) pair list.
type QuoteTable struct {
	pairs []quoteClass
}

// DefaultQuoteTable returns the built-in pairing used when a settings
// file carries no [QUOTES] section.
func DefaultQuoteTable() *QuoteTable {
	qt := &QuoteTable{}
	qt.Add(`"`, `"`)
	qt.Add("‘", "’")
	qt.Add("“„‟", "”")
	return qt
}

// Add registers one open/close class pair.
func (qt *QuoteTable) Add(open, close string) {
	qt.pairs = append(qt.pairs, quoteClass{open: open, close: close})
}

// OpenToClose returns the close class paired with c's open class, if c
// appears in any open class.
func (qt *QuoteTable) OpenToClose(c rune) (string, bool) {
	for _, p := range qt.pairs {
		if containsRune(p.open, c) {
			return p.close, true
		}
	}
	return "", false
}

// CloseToOpen is the symmetric counterpart of OpenToClose.
func (qt *QuoteTable) CloseToOpen(c rune) (string, bool) {
	for _, p := range qt.pairs {
		if containsRune(p.close, c) {
			return p.open, true
		}
	}
	return "", false
}

// IsQuote reports whether c is usable as a quotation mark: it carries the
// Unicode Quotation_Mark property, is one of the two ambiguous ASCII/typed
// quote characters, or appears in this table's pairings.
func (qt *QuoteTable) IsQuote(c rune) bool {
	if unicode.Is(unicode.Quotation_Mark, c) {
		return true
	}
	if c == '`' || c == '´' {
		return true
	}
	if _, ok := qt.OpenToClose(c); ok {
		return true
	}
	if _, ok := qt.CloseToOpen(c); ok {
		return true
	}
	return false
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

// quoteEntry is one unresolved open quote: the buffer index of the token
// that opened it, and the open character itself.
type quoteEntry struct {
	index int
	open  rune
}

// QuoteStack tracks unresolved open quotes by plain buffer index, not by
// pointer: flush rebasing is then a trivial integer subtraction, and no
// entry can outlive the buffer slot it names.
type QuoteStack struct {
	entries []quoteEntry
}

// Push records a newly seen open quote at the given buffer index.
func (qs *QuoteStack) Push(index int, open rune) {
	qs.entries = append(qs.entries, quoteEntry{index: index, open: open})
}

// Lookup scans the stack top-down for the first entry whose open
// character lies in openClass, returning its buffer index and stack slot.
func (qs *QuoteStack) Lookup(openClass string) (bufferIndex, slot int, ok bool) {
	for i := len(qs.entries) - 1; i >= 0; i-- {
		if containsRune(openClass, qs.entries[i].open) {
			return qs.entries[i].index, i, true
		}
	}
	return 0, 0, false
}

// EraseAt removes the stack entry at slot.
func (qs *QuoteStack) EraseAt(slot int) {
	qs.entries = append(qs.entries[:slot], qs.entries[slot+1:]...)
}

// Flush drops every entry whose buffer index is below boundary (an
// unresolved open falling out of scope) and rebases the rest by
// subtracting boundary from their index.
func (qs *QuoteStack) Flush(boundary int) {
	kept := qs.entries[:0]
	for _, e := range qs.entries {
		if e.index < boundary {
			continue
		}
		e.index -= boundary
		kept = append(kept, e)
	}
	qs.entries = kept
}

// Clear empties the stack.
func (qs *QuoteStack) Clear() {
	qs.entries = nil
}

// Empty reports whether the stack holds no unresolved opens.
func (qs *QuoteStack) Empty() bool {
	return len(qs.entries) == 0
}

// Depth returns the current nesting depth (number of unresolved opens).
func (qs *QuoteStack) Depth() int {
	return len(qs.entries)
}
