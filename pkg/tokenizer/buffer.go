package tokenizer

// Buffer is the shared mutable token vector plus its quote stack: the
// state C4-C7 write into and C8 drains. A Buffer is per-instance state,
// never a process-global singleton.
type Buffer struct {
	tokens []*Token
	quotes QuoteStack
}

// Len returns the number of tokens currently held.
func (b *Buffer) Len() int { return len(b.tokens) }

// At returns the token at i. It panics on an out-of-range i, matching the
// "calling-contract violation" character of RangeError conditions — but
// callers never construct i from anything but b.Len()-bounded loops.
func (b *Buffer) At(i int) *Token { return b.tokens[i] }

// Tokens returns the live backing slice. Callers in this package may
// mutate roles in place; callers outside it should treat the result as
// read-only.
func (b *Buffer) Tokens() []*Token { return b.tokens }

// Append adds a newly produced token to the end of the buffer and returns
// its index.
func (b *Buffer) Append(t *Token) int {
	b.tokens = append(b.tokens, t)
	return len(b.tokens) - 1
}

// Quotes exposes the buffer's quote stack to the resolver.
func (b *Buffer) Quotes() *QuoteStack { return &b.quotes }

// CountSentences walks the buffer and returns the number of complete
// sentences found at quote-level zero. When forceDrain is true it also:
//   - promotes any TempEndOfSentence found at quote-level zero to
//     EndOfSentence, marking the sentence that started it accordingly;
//   - if the very last token still lacks EndOfSentence, sets it and
//     counts one extra sentence.
//
// Quote level resets to zero at every NewParagraph.
func (b *Buffer) CountSentences(forceDrain bool) int {
	var quoteLevel int
	count := 0
	begin := 0
	size := len(b.tokens)
	for i, tok := range b.tokens {
		if tok.Role.Has(NewParagraph) {
			quoteLevel = 0
		}
		if tok.Role.Has(BeginQuote) {
			quoteLevel++
		}
		if tok.Role.Has(EndQuote) {
			quoteLevel--
		}
		if forceDrain && tok.Role.Has(TempEndOfSentence) && quoteLevel == 0 {
			tok.Role = tok.Role.Clear(TempEndOfSentence).Set(EndOfSentence)
			b.tokens[begin].Role = b.tokens[begin].Role.Set(BeginOfSentence)
		}
		if tok.Role.Has(EndOfSentence) && quoteLevel == 0 {
			begin = i + 1
			count++
			if begin < size {
				b.tokens[begin].Role = b.tokens[begin].Role.Set(BeginOfSentence)
			}
		}
		if forceDrain && i == size-1 && !tok.Role.Has(EndOfSentence) {
			count++
			tok.Role = tok.Role.Set(EndOfSentence)
		}
	}
	return count
}

// Flush removes the first n complete sentences from the buffer, rebases
// the quote stack by the number of tokens removed, and ensures the new
// first token (if any remain) carries BeginOfSentence. It returns the
// number of tokens remaining.
func (b *Buffer) Flush(n int) (int, error) {
	if n == 0 {
		return len(b.tokens), nil
	}
	var quoteLevel int
	size := len(b.tokens)
	begin := 0
	remaining := n
	for i := 0; i < size && remaining > 0; i++ {
		if b.tokens[i].Role.Has(NewParagraph) {
			quoteLevel = 0
		}
		if b.tokens[i].Role.Has(BeginQuote) {
			quoteLevel++
		}
		if b.tokens[i].Role.Has(EndQuote) {
			quoteLevel--
		}
		if b.tokens[i].Role.Has(EndOfSentence) && quoteLevel == 0 {
			begin = i + 1
			remaining--
		}
	}
	if remaining > 0 {
		return 0, &RangeError{Op: "Flush", Detail: "unable to flush, not so many sentences in buffer"}
	}
	if begin == size {
		b.tokens = nil
		b.quotes.Clear()
	} else {
		b.tokens = append([]*Token{}, b.tokens[begin:]...)
		if !b.quotes.Empty() {
			b.quotes.Flush(begin)
		}
	}
	if len(b.tokens) > 0 {
		b.tokens[0].Role = b.tokens[0].Role.Set(BeginOfSentence)
	}
	return len(b.tokens), nil
}

// GetSentence returns a copy of the tokens making up the index'th
// complete sentence (0-based), inclusive of its terminating token.
func (b *Buffer) GetSentence(index int) ([]Token, error) {
	var quoteLevel int
	size := len(b.tokens)
	var begin, end int
	count := 0
	for i := 0; i < size; i++ {
		tok := b.tokens[i]
		if tok.Role.Has(NewParagraph) {
			quoteLevel = 0
		}
		if tok.Role.Has(EndQuote) {
			quoteLevel--
		}
		if tok.Role.Has(BeginOfSentence) && quoteLevel == 0 {
			begin = i
		}
		if tok.Role.Has(BeginQuote) {
			quoteLevel++
		}
		if tok.Role.Has(EndOfSentence) && quoteLevel == 0 {
			if count == index {
				end = i
				b.tokens[begin].Role = b.tokens[begin].Role.Set(BeginOfSentence)
				out := make([]Token, 0, end-begin+1)
				for j := begin; j <= end; j++ {
					out = append(out, *b.tokens[j])
				}
				return out, nil
			}
			count++
		}
	}
	return nil, &RangeError{Op: "GetSentence", Detail: "no sentence exists with the specified index"}
}

// Extract drains the first n complete sentences out of the buffer as a
// flat token slice (sentence boundaries remain visible via the role
// bits) and erases them from the buffer.
func (b *Buffer) Extract(n int) ([]Token, error) {
	var out []Token
	for i := 0; i < n; i++ {
		sent, err := b.GetSentence(0) // GetSentence(0) after each flush is always the next pending sentence.
		if err != nil {
			return out, err
		}
		out = append(out, sent...)
		if _, err := b.Flush(1); err != nil {
			return out, err
		}
	}
	return out, nil
}
