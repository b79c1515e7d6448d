package tokenizer

import "testing"

func appendTok(b *Buffer, text, typ string, role Role) {
	b.Append(&Token{Text: text, Type: typ, Role: role})
}

func TestCountSentencesSimple(t *testing.T) {
	var b Buffer
	appendTok(&b, "Hi", Word, BeginOfSentence)
	appendTok(&b, ".", Punctuation, EndOfSentence)
	appendTok(&b, "Bye", Word, BeginOfSentence)
	appendTok(&b, ".", Punctuation, EndOfSentence)

	if n := b.CountSentences(false); n != 2 {
		t.Fatalf("CountSentences = %d, want 2", n)
	}
}

func TestCountSentencesForceDrainsIncompleteTail(t *testing.T) {
	var b Buffer
	appendTok(&b, "Hi", Word, BeginOfSentence)
	appendTok(&b, "there", Word, 0)

	if n := b.CountSentences(false); n != 0 {
		t.Fatalf("CountSentences(false) = %d, want 0 (no EOS yet)", n)
	}
	if n := b.CountSentences(true); n != 1 {
		t.Fatalf("CountSentences(true) = %d, want 1 (force-drained)", n)
	}
	if !b.At(1).Role.Has(EndOfSentence) {
		t.Fatal("expected the last token to gain EndOfSentence on force drain")
	}
}

func TestCountSentencesIgnoresBoundaryInsideOpenQuote(t *testing.T) {
	var b Buffer
	appendTok(&b, "She", Word, BeginOfSentence)
	appendTok(&b, "\"", Punctuation, BeginQuote)
	appendTok(&b, ".", Punctuation, EndOfSentence) // inside the quote: not a real boundary
	appendTok(&b, "\"", Punctuation, EndQuote)

	if n := b.CountSentences(false); n != 0 {
		t.Fatalf("CountSentences = %d, want 0 (quote still open at EOS)", n)
	}
}

func TestFlushRemovesAndRebases(t *testing.T) {
	var b Buffer
	appendTok(&b, "Hi", Word, BeginOfSentence)
	appendTok(&b, ".", Punctuation, EndOfSentence)
	appendTok(&b, "Bye", Word, BeginOfSentence)
	appendTok(&b, ".", Punctuation, EndOfSentence)
	b.Quotes().Push(3, '"')

	remaining, err := b.Flush(1)
	if err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if remaining != 2 {
		t.Fatalf("remaining = %d, want 2", remaining)
	}
	if !b.At(0).Role.Has(BeginOfSentence) {
		t.Fatal("expected new first token to carry BeginOfSentence")
	}
	idx, _, ok := b.Quotes().Lookup(`"`)
	if !ok || idx != 1 {
		t.Fatalf("expected quote stack rebased to index 1, got %d, %v", idx, ok)
	}
}

func TestFlushZeroIsNoOp(t *testing.T) {
	var b Buffer
	appendTok(&b, "Hi", Word, BeginOfSentence|EndOfSentence)
	remaining, err := b.Flush(0)
	if err != nil || remaining != 1 {
		t.Fatalf("Flush(0) = %d, %v, want 1, nil", remaining, err)
	}
}

func TestFlushTooManyIsRangeError(t *testing.T) {
	var b Buffer
	appendTok(&b, "Hi", Word, BeginOfSentence|EndOfSentence)
	_, err := b.Flush(2)
	if err == nil {
		t.Fatal("expected an error flushing more sentences than exist")
	}
	if _, ok := err.(*RangeError); !ok {
		t.Fatalf("expected *RangeError, got %T", err)
	}
}

func TestGetSentenceOutOfRangeIsRangeError(t *testing.T) {
	var b Buffer
	appendTok(&b, "Hi", Word, BeginOfSentence|EndOfSentence)
	_, err := b.GetSentence(3)
	if err == nil {
		t.Fatal("expected an error for a nonexistent sentence index")
	}
	if _, ok := err.(*RangeError); !ok {
		t.Fatalf("expected *RangeError, got %T", err)
	}
}

func TestExtractDrainsInOrder(t *testing.T) {
	var b Buffer
	appendTok(&b, "Hi", Word, BeginOfSentence)
	appendTok(&b, ".", Punctuation, EndOfSentence)
	appendTok(&b, "Bye", Word, BeginOfSentence)
	appendTok(&b, ".", Punctuation, EndOfSentence)

	out, err := b.Extract(2)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(out) != 4 {
		t.Fatalf("Extract returned %d tokens, want 4", len(out))
	}
	if b.Len() != 0 {
		t.Fatalf("buffer should be empty after extracting everything, got %d", b.Len())
	}
}
