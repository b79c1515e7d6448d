package normalize

import "testing"

func TestNFCComposesCombiningMarks(t *testing.T) {
	n := New(NFC)
	decomposed := "é" // e + combining acute accent
	got := n.Normalize(decomposed)
	want := "é" // é, precomposed
	if got != want {
		t.Fatalf("Normalize(%q) = %q, want %q", decomposed, got, want)
	}
}

func TestQuoteNormalizerFoldsCurlyQuotes(t *testing.T) {
	q := &QuoteNormalizer{}
	got := q.Normalize("“Hello,” she said — softly.")
	want := `"Hello," she said - softly.`
	if got != want {
		t.Fatalf("Normalize = %q, want %q", got, want)
	}
}

func TestQuoteNormalizerChainsToForm(t *testing.T) {
	q := &QuoteNormalizer{Next: New(NFC)}
	got := q.Normalize("é")
	if got != "é" {
		t.Fatalf("Normalize = %q, want composed form", got)
	}
}
