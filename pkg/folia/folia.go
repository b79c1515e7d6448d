// Package folia builds the structured-output document (a FoLiA-style
// nesting of paragraphs, sentences, quotes and words) from a stream of
// tokenizer.Token values, and serializes it with encoding/xml. It is the
// XML Adapter collaborator spec.md's Output (structured mode) describes:
// the tokenizer core never imports this package.
package folia

import (
	"encoding/xml"
	"io"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/spicery/uctogo/pkg/tokenizer"
)

// Word is one token rendered as a FoLiA word element.
type Word struct {
	XMLName xml.Name `xml:"w"`
	ID      string   `xml:"xml:id,attr,omitempty"`
	Class   string   `xml:"class,attr"`
	Set     string   `xml:"set,attr,omitempty"`
	Space   string   `xml:"space,attr,omitempty"`
	Text    string   `xml:",chardata"`
}

// Quote is a BEGINQUOTE..ENDQUOTE span, nesting the words and any
// sub-quotes between its boundaries.
type Quote struct {
	XMLName xml.Name `xml:"quote"`
	Words   []Word   `xml:"w"`
	Quotes  []Quote  `xml:"quote"`
}

// Sentence is a BEGINOFSENTENCE..ENDOFSENTENCE span.
type Sentence struct {
	XMLName xml.Name `xml:"s"`
	Words   []Word   `xml:"w"`
	Quotes  []Quote  `xml:"quote"`
}

// Paragraph is a NEWPARAGRAPH-delimited span of sentences.
type Paragraph struct {
	XMLName   xml.Name   `xml:"p"`
	Sentences []Sentence `xml:"s"`
}

// Doc is the top-level structured document.
type Doc struct {
	XMLName    xml.Name    `xml:"FoLiA"`
	Paragraphs []Paragraph `xml:"p"`
}

// CaseFold, when set, lowercases word text before it reaches the
// document (ucto's own "lowercase everything in structured output"
// convenience mode), using the given language tag's case rules.
type Builder struct {
	CaseFold bool
	Lang     language.Tag

	doc   Doc
	para  *Paragraph
	sent  *Sentence
	stack []*Quote // open quotes, outermost first
	seq   int
}

// NewBuilder returns a Builder ready to accept tokens via Add.
func NewBuilder() *Builder {
	b := &Builder{Lang: language.Und}
	b.startParagraph()
	return b
}

func (b *Builder) startParagraph() {
	b.doc.Paragraphs = append(b.doc.Paragraphs, Paragraph{})
	b.para = &b.doc.Paragraphs[len(b.doc.Paragraphs)-1]
	b.sent = nil
}

func (b *Builder) startSentence() {
	b.para.Sentences = append(b.para.Sentences, Sentence{})
	b.sent = &b.para.Sentences[len(b.para.Sentences)-1]
	b.stack = nil
}

// Add appends one token to the document under construction, opening and
// closing paragraph/sentence/quote elements as its Role bits demand.
func (b *Builder) Add(t tokenizer.Token) {
	if t.Role.Has(tokenizer.NewParagraph) && len(b.para.Sentences) > 0 {
		b.startParagraph()
	}
	if b.sent == nil || t.Role.Has(tokenizer.BeginOfSentence) {
		b.startSentence()
	}

	text := t.Text
	if b.CaseFold {
		text = cases.Lower(b.Lang).String(text)
	}

	b.seq++
	w := Word{
		ID:    "w." + strconv.Itoa(b.seq),
		Class: t.Type,
		Set:   t.Lang,
		Text:  text,
	}
	if t.Role.Has(tokenizer.NoSpace) {
		w.Space = "no"
	}

	if t.Role.Has(tokenizer.BeginQuote) {
		b.stack = append(b.stack, &Quote{})
	}

	b.appendWord(w)

	if t.Role.Has(tokenizer.EndQuote) && len(b.stack) > 0 {
		closed := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		b.appendQuote(*closed)
	}

	if t.Role.Has(tokenizer.EndOfSentence) {
		b.sent = nil
	}
}

func (b *Builder) appendWord(w Word) {
	if len(b.stack) > 0 {
		top := b.stack[len(b.stack)-1]
		top.Words = append(top.Words, w)
		return
	}
	b.sent.Words = append(b.sent.Words, w)
}

func (b *Builder) appendQuote(q Quote) {
	if len(b.stack) > 0 {
		top := b.stack[len(b.stack)-1]
		top.Quotes = append(top.Quotes, q)
		return
	}
	b.sent.Quotes = append(b.sent.Quotes, q)
}

// Doc returns the document built so far, flushing any quotes left open
// at EOF (an unterminated quote still needs to appear in the output).
func (b *Builder) Doc() Doc {
	if len(b.stack) > 0 && b.sent == nil {
		// The sentence holding the open quote has already ended.
		b.sent = &b.para.Sentences[len(b.para.Sentences)-1]
		defer func() { b.sent = nil }()
	}
	for len(b.stack) > 0 {
		closed := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		b.appendQuote(*closed)
	}
	return b.doc
}

// Write serializes the document built so far to w as indented XML.
func (b *Builder) Write(w io.Writer) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return enc.Encode(b.Doc())
}
