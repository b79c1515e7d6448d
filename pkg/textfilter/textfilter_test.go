package textfilter

import "testing"

func TestChainAppliesInOrder(t *testing.T) {
	c := New([]Substitution{
		{From: "…", To: "..."},
		{From: "\t", To: " "},
	})
	got := c.Filter("wait…\tthen")
	want := "wait... then"
	if got != want {
		t.Fatalf("Filter = %q, want %q", got, want)
	}
}

func TestChainEmptyToDeletes(t *testing.T) {
	c := New([]Substitution{{From: "​"}})
	got := c.Filter("zero​width")
	if got != "zerowidth" {
		t.Fatalf("Filter = %q, want deletion", got)
	}
}

func TestChainSkipsMalformedEntries(t *testing.T) {
	c := New([]Substitution{{From: "", To: "x"}})
	if c.Len() != 0 {
		t.Fatalf("want 0 active substitutions, got %d", c.Len())
	}
}
