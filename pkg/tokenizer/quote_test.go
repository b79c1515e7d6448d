package tokenizer

import "testing"

func TestDefaultQuoteTableStraightDoubleQuote(t *testing.T) {
	qt := DefaultQuoteTable()
	if close, ok := qt.OpenToClose('"'); !ok || close != `"` {
		t.Fatalf("OpenToClose('\"') = %q, %v", close, ok)
	}
}

func TestDefaultQuoteTableCurlyPair(t *testing.T) {
	qt := DefaultQuoteTable()
	close, ok := qt.OpenToClose('“')
	if !ok || close != "”" {
		t.Fatalf("OpenToClose('“') = %q, %v", close, ok)
	}
	open, ok := qt.CloseToOpen('”')
	if !ok || open != "“„‟" {
		t.Fatalf("CloseToOpen('”') = %q, %v", open, ok)
	}
}

func TestIsQuoteRecognizesUnicodeQuotationMark(t *testing.T) {
	qt := DefaultQuoteTable()
	if !qt.IsQuote('‘') {
		t.Error("expected U+2018 to be recognized as a quote")
	}
	if !qt.IsQuote('`') {
		t.Error("expected backtick to be recognized as a quote")
	}
	if qt.IsQuote('x') {
		t.Error("'x' should not be recognized as a quote")
	}
}

func TestQuoteStackPushLookupErase(t *testing.T) {
	var qs QuoteStack
	qs.Push(3, '"')
	qs.Push(7, '\'')
	if idx, slot, ok := qs.Lookup(`'`); !ok || idx != 7 || slot != 1 {
		t.Fatalf("Lookup = %d, %d, %v, want 7, 1, true", idx, slot, ok)
	}
	qs.EraseAt(1)
	if !qs.Empty() {
		if qs.Depth() != 1 {
			t.Fatalf("want depth 1 after erase, got %d", qs.Depth())
		}
	}
	if _, _, ok := qs.Lookup(`'`); ok {
		t.Fatal("expected erased entry to be gone")
	}
}

func TestQuoteStackLookupTopDown(t *testing.T) {
	var qs QuoteStack
	qs.Push(1, '"')
	qs.Push(5, '"')
	idx, slot, ok := qs.Lookup(`"`)
	if !ok || idx != 5 || slot != 1 {
		t.Fatalf("Lookup = %d, %d, %v, want the most recent (5, 1)", idx, slot, ok)
	}
}

func TestQuoteStackFlushDropsAndRebases(t *testing.T) {
	var qs QuoteStack
	qs.Push(2, '"')
	qs.Push(10, '\'')
	qs.Flush(5)
	if qs.Depth() != 1 {
		t.Fatalf("want 1 entry surviving flush, got %d", qs.Depth())
	}
	idx, _, ok := qs.Lookup(`'`)
	if !ok || idx != 5 {
		t.Fatalf("want rebased index 5, got %d, %v", idx, ok)
	}
}

func TestQuoteStackClear(t *testing.T) {
	var qs QuoteStack
	qs.Push(0, '"')
	qs.Clear()
	if !qs.Empty() {
		t.Fatal("expected stack to be empty after Clear")
	}
}
