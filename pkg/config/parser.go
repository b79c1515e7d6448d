package config

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/spicery/uctogo/pkg/tokenizer"
)

// Includer resolves a %include NAME directive to the contents of an
// external file, given the extension the current section implies
// (.rule, .filter, .quote, .eos, .abr, .stw).
type Includer interface {
	Open(name, ext string) (io.ReadCloser, error)
}

// sectionExt maps a section header to the file extension %include uses
// while that section is active.
var sectionExt = map[string]string{
	"RULES":            ".rule",
	"RULE-ORDER":       ".rule",
	"META-RULES":       ".rule",
	"FILTER":           ".filter",
	"QUOTES":           ".quote",
	"EOSMARKERS":       ".eos",
	"ABBREVIATIONS":    ".abr",
	"TOKENS":           ".abr",
	"PREFIXES":         ".abr",
	"SUFFIXES":         ".abr",
	"ATTACHEDPREFIXES": ".abr",
	"ATTACHEDSUFFIXES": ".abr",
	"UNITS":            ".abr",
	"ORDINALS":         ".abr",
	"CURRENCY":         ".abr",
	"STOPWORDS":        ".stw",
}

// Parse reads a settings file in ucto's grammar and returns the raw
// Bundle, with %include directives resolved via inc (nil disables
// includes; a %include line is then a ConfigError).
func Parse(r io.Reader, lang string, inc Includer) (*Bundle, error) {
	b := &Bundle{Lang: lang, Splitter: "%", Accumulate: map[string][]string{}}
	if err := parseInto(b, r, inc, ""); err != nil {
		return nil, err
	}
	if err := expandMetaRules(b); err != nil {
		return nil, err
	}
	return b, nil
}

func parseInto(b *Bundle, r io.Reader, inc Includer, section string) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			section = strings.ToUpper(strings.TrimSpace(trimmed[1 : len(trimmed)-1]))
			continue
		}
		if strings.HasPrefix(trimmed, "%include ") {
			name := strings.TrimSpace(strings.TrimPrefix(trimmed, "%include "))
			if err := includeFile(b, section, name, inc); err != nil {
				return err
			}
			continue
		}
		if err := applyLine(b, section, trimmed); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func includeFile(b *Bundle, section, name string, inc Includer) error {
	if inc == nil {
		return &tokenizer.ConfigError{Section: section, Detail: "cannot resolve %include " + name + ": no includer configured"}
	}
	ext := sectionExt[section]
	rc, err := inc.Open(name, ext)
	if err != nil {
		return &tokenizer.ConfigError{Section: section, Detail: "missing required include " + name + ext + ": " + err.Error()}
	}
	defer rc.Close()
	return parseInto(b, rc, inc, section)
}

func applyLine(b *Bundle, section, line string) error {
	switch section {
	case "RULES":
		name, pattern, ok := splitKV(line)
		if !ok {
			return &tokenizer.ConfigError{Section: section, Detail: "malformed rule line: " + line}
		}
		b.Rules = append(b.Rules, RuleLine{Name: name, Pattern: pattern})
	case "RULE-ORDER":
		b.RuleOrder = append(b.RuleOrder, strings.Fields(line)...)
	case "META-RULES":
		name, value, ok := splitKV(line)
		if !ok {
			return &tokenizer.ConfigError{Section: section, Detail: "malformed meta-rule line: " + line}
		}
		if strings.EqualFold(name, "SPLITTER") {
			b.Splitter = value
			return nil
		}
		b.MetaRules = append(b.MetaRules, MetaRuleLine{Name: name, Parts: splitParts(value, b.Splitter)})
	case "EOSMARKERS":
		r, err := decodeEscape(line)
		if err != nil {
			return &tokenizer.ConfigError{Section: section, Detail: err.Error()}
		}
		b.EOSMarkers = append(b.EOSMarkers, r)
	case "QUOTES":
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return &tokenizer.ConfigError{Section: section, Detail: "malformed quote line: " + line}
		}
		open, err := decodeEscapeClass(fields[0])
		if err != nil {
			return &tokenizer.ConfigError{Section: section, Detail: err.Error()}
		}
		closeClass, err := decodeEscapeClass(fields[1])
		if err != nil {
			return &tokenizer.ConfigError{Section: section, Detail: err.Error()}
		}
		b.Quotes = append(b.Quotes, QuotePair{Open: open, Close: closeClass})
	case "FILTER":
		if pattern, repl, ok := splitKV(line); ok {
			b.Filter = append(b.Filter, FilterLine{Pattern: pattern, Replacement: repl})
		} else {
			b.Filter = append(b.Filter, FilterLine{Pattern: line})
		}
	case "STOPWORDS":
		b.Stopwords = append(b.Stopwords, strings.Fields(line)...)
	case "OPTIONS":
		name, value, ok := splitKV(line)
		if !ok {
			return &tokenizer.ConfigError{Section: section, Detail: "malformed option line: " + line}
		}
		if err := applyOption(b, strings.ToLower(strings.TrimSpace(name)), strings.TrimSpace(value)); err != nil {
			return err
		}
	default:
		if isAccumulateSection(section) {
			b.Accumulate[section] = append(b.Accumulate[section], line)
			return nil
		}
		return &tokenizer.ConfigError{Section: section, Detail: "line outside any recognized section: " + line}
	}
	return nil
}

// applyOption sets one [OPTIONS] key=value pair on b. Boolean options
// accept "yes"/"true"/"1" (anything else is false).
func applyOption(b *Bundle, name, value string) error {
	switch name {
	case "normalization":
		switch strings.ToUpper(value) {
		case "NFC", "NFD", "NFKC", "NFKD":
			b.Normalization = strings.ToUpper(value)
		default:
			return &tokenizer.ConfigError{Section: "OPTIONS", Detail: "unknown normalization form: " + value}
		}
	case "foldquotes":
		b.FoldQuotes = isTruthy(value)
	case "punctuationfilter":
		b.PunctuationFilter = isTruthy(value)
	case "sentenceperline":
		b.SentencePerLine = isTruthy(value)
	case "quotedetection":
		b.QuoteDetection = isTruthy(value)
	default:
		return &tokenizer.ConfigError{Section: "OPTIONS", Detail: "unknown option: " + name}
	}
	return nil
}

func isTruthy(value string) bool {
	switch strings.ToLower(value) {
	case "yes", "true", "1":
		return true
	default:
		return false
	}
}

func isAccumulateSection(section string) bool {
	for _, s := range accumulateSections {
		if s == section {
			return true
		}
	}
	return false
}

func splitKV(line string) (key, value string, ok bool) {
	idx := strings.Index(line, "=")
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:idx]), line[idx+1:], true
}

func splitParts(value, splitter string) []string {
	if splitter == "" {
		return []string{value}
	}
	return strings.Split(value, splitter)
}

var unicodeEscape = regexp.MustCompile(`^\\u([0-9a-fA-F]{4})$|^\\U([0-9a-fA-F]{8})$`)

func decodeEscape(s string) (rune, error) {
	m := unicodeEscape.FindStringSubmatch(s)
	if m == nil {
		if utf8RuneLen(s) == 1 {
			r := []rune(s)[0]
			return r, nil
		}
		return 0, fmt.Errorf("invalid EOS marker entry: %s", s)
	}
	hex := m[1]
	if hex == "" {
		hex = m[2]
	}
	v, err := strconv.ParseInt(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid unicode escape %s: %w", s, err)
	}
	return rune(v), nil
}

func utf8RuneLen(s string) int {
	return len([]rune(s))
}

// decodeEscapeClass decodes a class string (possibly several code
// points concatenated) where each code point may be written literally or
// as a \uXXXX / \UXXXXXXXX escape.
func decodeEscapeClass(s string) (string, error) {
	var out strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\\' && i+1 < len(runes) && (runes[i+1] == 'u' || runes[i+1] == 'U') {
			width := 4
			if runes[i+1] == 'U' {
				width = 8
			}
			if i+2+width > len(runes) {
				return "", fmt.Errorf("truncated unicode escape in %s", s)
			}
			hex := string(runes[i+2 : i+2+width])
			v, err := strconv.ParseInt(hex, 16, 32)
			if err != nil {
				return "", fmt.Errorf("invalid unicode escape %s: %w", hex, err)
			}
			out.WriteRune(rune(v))
			i += 1 + width
			continue
		}
		out.WriteRune(runes[i])
	}
	return out.String(), nil
}

// expandMetaRules resolves [META-RULES] entries into concrete RuleLine
// entries appended to b.Rules: each PART is either a literal fragment or
// the name of an accumulate section, substituted with a non-capturing
// alternation of that section's (regex-escaped) entries.
func expandMetaRules(b *Bundle) error {
	for _, mr := range b.MetaRules {
		var pattern strings.Builder
		for _, part := range mr.Parts {
			if entries, ok := b.Accumulate[strings.ToUpper(part)]; ok {
				pattern.WriteString(alternation(entries))
				continue
			}
			pattern.WriteString(part)
		}
		b.Rules = append(b.Rules, RuleLine{Name: mr.Name, Pattern: pattern.String()})
	}
	return nil
}

func alternation(entries []string) string {
	if len(entries) == 0 {
		return "(?:)"
	}
	escaped := make([]string, len(entries))
	for i, e := range entries {
		escaped[i] = regexp.QuoteMeta(e)
	}
	return "(?:" + strings.Join(escaped, "|") + ")"
}
