// Package textfilter implements the tokenizer.Filter collaborator: a
// configurable, ordered sequence of literal substitutions applied to a
// line of input text before the scanner ever sees it. It is how a
// settings bundle's [FILTER] section reaches the core without the core
// depending on any particular filter representation.
package textfilter

import "strings"

// Substitution is one FROM -> TO replacement, applied literally (never
// as a regular expression - ucto's own filter files are plain text
// substitution lists, not pattern rules).
type Substitution struct {
	From string
	To   string
}

// Chain applies an ordered list of Substitutions, each over the result
// of the one before it, left to right.
type Chain struct {
	subs []Substitution
}

// New builds a Chain from subs, skipping any entry whose From is empty
// (a malformed [FILTER] line with nothing to match).
func New(subs []Substitution) *Chain {
	c := &Chain{}
	for _, s := range subs {
		if s.From == "" {
			continue
		}
		c.subs = append(c.subs, s)
	}
	return c
}

// Filter implements tokenizer.Filter.
func (c *Chain) Filter(s string) string {
	for _, sub := range c.subs {
		if sub.To == "" {
			s = strings.ReplaceAll(s, sub.From, "")
			continue
		}
		s = strings.ReplaceAll(s, sub.From, sub.To)
	}
	return s
}

// Len reports how many substitutions are active, mostly for debug
// output (--dump-config).
func (c *Chain) Len() int { return len(c.subs) }
