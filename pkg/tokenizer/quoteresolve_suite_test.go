package tokenizer

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestQuoteResolveSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "quote resolver and sentence boundary suite")
}

var _ = Describe("detectQuoteBounds and resolveQuote", func() {
	var e *Engine

	BeforeEach(func() {
		e = NewEngine(newTestSetting("en"))
	})

	push := func(text, typ string, role Role) int {
		return e.Buffer().Append(&Token{Text: text, Type: typ, Role: role})
	}

	It("pairs a balanced straight double quote", func() {
		push("She", Word, BeginOfSentence)
		push("said", Word, 0)
		open := push(`"`, Punctuation, 0)
		push("hi", Word, 0)
		closeIdx := push(`"`, Punctuation, 0)

		e.detectQuoteBounds(open)
		e.detectQuoteBounds(closeIdx)

		Expect(e.Buffer().At(open).Role.Has(BeginQuote)).To(BeTrue())
		Expect(e.Buffer().At(closeIdx).Role.Has(EndQuote)).To(BeTrue())
		Expect(e.Buffer().Quotes().Empty()).To(BeTrue())
	})

	It("leaves an unmatched close quote unresolved on the stack", func() {
		push("hi", Word, 0)
		closeIdx := push(`"`, Punctuation, 0)

		e.detectQuoteBounds(closeIdx)

		Expect(e.Buffer().At(closeIdx).Role.Has(EndQuote)).To(BeFalse())
	})

	It("pushes an unmatched open quote onto the stack", func() {
		openIdx := push(`"`, Punctuation, 0)
		e.detectQuoteBounds(openIdx)

		idx, _, ok := e.Buffer().Quotes().Lookup(`"`)
		Expect(ok).To(BeTrue())
		Expect(idx).To(Equal(openIdx))
	})

	It("auto-fixes a single missing end-of-sentence inside a balanced quote", func() {
		open := push(`"`, Punctuation, 0)
		push("He", Word, BeginOfSentence)
		push("left", Word, 0)
		lastWordInQuote := push("now", Word, 0) // should gain EndOfSentence
		closeIdx := push(`"`, Punctuation, 0)

		e.buf.Quotes().Push(open, '"')
		e.resolveQuote(closeIdx, `"`)

		Expect(e.Buffer().At(lastWordInQuote).Role.Has(EndOfSentence)).To(BeTrue())
		Expect(e.Buffer().At(open).Role.Has(BeginQuote)).To(BeTrue())
		Expect(e.Buffer().At(closeIdx).Role.Has(EndQuote)).To(BeTrue())
	})

	It("directional open/close quote classes resolve against each other", func() {
		s := e.Setting()
		openTok := push("“", Punctuation, 0)
		push("word", Word, 0)
		closeTok := push("”", Punctuation, 0)

		e.detectQuoteBounds(openTok)
		e.detectQuoteBounds(closeTok)

		Expect(s.Quotes.IsQuote('“')).To(BeTrue())
		Expect(e.Buffer().At(openTok).Role.Has(BeginQuote)).To(BeTrue())
		Expect(e.Buffer().At(closeTok).Role.Has(EndQuote)).To(BeTrue())
	})
})

var _ = Describe("detectSentenceBounds", func() {
	var e *Engine

	BeforeEach(func() {
		e = NewEngine(newTestSetting("en"))
	})

	It("marks the final period of a sentence as EndOfSentence", func() {
		e.buf.Append(NewToken("Hi", Word, true, "en"))
		e.buf.Append(NewToken(".", Punctuation, true, "en"))
		e.detectSentenceBounds(0)

		Expect(e.Buffer().At(1).Role.Has(EndOfSentence)).To(BeTrue())
	})

	It("does not end a sentence on a bare comma", func() {
		e.buf.Append(NewToken("Hi", Word, true, "en"))
		e.buf.Append(NewToken(",", Punctuation, true, "en"))
		e.buf.Append(NewToken("there", Word, true, "en"))
		e.detectSentenceBounds(0)

		Expect(e.Buffer().At(1).Role.Has(EndOfSentence)).To(BeFalse())
	})

	It("transfers a trailing EndOfSentence off a closing bracket's predecessor", func() {
		// "Hi.) Bye." - the bracket right after the first period clears the
		// period's EndOfSentence (the bracket itself gets none), and the
		// real sentence-ending period at the end keeps its EndOfSentence.
		e.buf.Append(NewToken("Hi", Word, true, "en"))
		e.buf.Append(NewToken(".", Punctuation, true, "en"))
		e.buf.Append(NewToken(")", Punctuation, true, "en"))
		e.buf.Append(NewToken("Bye", Word, true, "en"))
		e.buf.Append(NewToken(".", Punctuation, true, "en"))

		e.detectSentenceBounds(0)

		Expect(e.Buffer().At(1).Role.Has(EndOfSentence)).To(BeFalse())
		Expect(e.Buffer().At(4).Role.Has(EndOfSentence)).To(BeTrue())
	})
})

var _ = Describe("detectQuotedSentenceBounds", func() {
	var e *Engine

	BeforeEach(func() {
		e = NewEngine(newTestSetting("en"))
	})

	It("provisionally marks a sentence end inside an open quote as TempEndOfSentence", func() {
		e.buf.Append(NewToken(`"`, Punctuation, true, "en"))
		e.buf.Quotes().Push(0, '"')
		e.buf.Append(NewToken("Hi", Word, true, "en"))
		e.buf.Append(NewToken(".", Punctuation, true, "en"))

		// The open quote at index 0 is already on the stack, so detection
		// starts after it.
		e.detectQuotedSentenceBounds(1)

		Expect(e.Buffer().At(2).Role.Has(TempEndOfSentence)).To(BeTrue())
		Expect(e.Buffer().At(2).Role.Has(EndOfSentence)).To(BeFalse())
	})

	It("marks EndOfSentence directly when no quote is open", func() {
		e.buf.Append(NewToken("Hi", Word, true, "en"))
		e.buf.Append(NewToken(".", Punctuation, true, "en"))

		e.detectQuotedSentenceBounds(0)

		Expect(e.Buffer().At(1).Role.Has(EndOfSentence)).To(BeTrue())
	})
})
