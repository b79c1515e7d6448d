package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spicery/uctogo/pkg/tokenizer"
)

func TestRunPassthruTextOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	stdin := strings.NewReader("Hello world.\n")
	code := run([]string{"--passthru"}, stdin, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr = %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Hello") {
		t.Fatalf("expected tokenized output, got %q", stdout.String())
	}
}

func TestRunVersionFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--version"}, strings.NewReader(""), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d", code)
	}
	if !strings.Contains(stdout.String(), version) {
		t.Fatalf("expected version string, got %q", stdout.String())
	}
}

func TestRunHelpFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-h"}, strings.NewReader(""), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d", code)
	}
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Fatalf("expected usage text on stderr, got %q", stderr.String())
	}
}

func TestConfigFlagParsesLangEqualsPath(t *testing.T) {
	c := &configFlag{}
	if err := c.Set("en=en.rules"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if c.settings["en"] != "en.rules" {
		t.Fatalf("unexpected settings map: %v", c.settings)
	}
}

func TestSelectorVotesUsingStopwords(t *testing.T) {
	en := tokenizer.NewSetting("en")
	nl := tokenizer.NewSetting("nl")
	settings := map[string]*tokenizer.Setting{"en": en, "nl": nl}
	stopwords := map[string][]string{
		"en": {"the", "and", "of"},
		"nl": {"de", "het", "en"},
	}

	sel := newSelector(settings, []string{"en", "nl"}, "", stopwords)

	got := sel.Select("de het en is mooi", "")
	if got != nl {
		t.Fatalf("Select picked %v, want the nl setting via stopword vote", got)
	}
}

func TestSelectorSkipsVotingWithoutMultipleStopwordLists(t *testing.T) {
	en := tokenizer.NewSetting("en")
	settings := map[string]*tokenizer.Setting{"en": en}
	stopwords := map[string][]string{"en": {"the", "and", "of"}}

	sel := newSelector(settings, []string{"en"}, "", stopwords)

	if got := sel.Select("the and of", ""); got != en {
		t.Fatalf("Select = %v, want fallback en setting (no vote possible with one list)", got)
	}
}

func TestConfigFlagDefaultsLangWhenNoEquals(t *testing.T) {
	c := &configFlag{}
	if err := c.Set("plain.rules"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if c.settings["default"] != "plain.rules" {
		t.Fatalf("unexpected settings map: %v", c.settings)
	}
}
