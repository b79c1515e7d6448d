package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cloudfoundry/jibber_jabber"
	"gopkg.in/yaml.v3"

	"github.com/spicery/uctogo/pkg/config"
	"github.com/spicery/uctogo/pkg/encoding"
	"github.com/spicery/uctogo/pkg/folia"
	"github.com/spicery/uctogo/pkg/langid"
	"github.com/spicery/uctogo/pkg/tokenizer"
)

const (
	version = "0.1.0"
	usage   = `ucto - a configurable, rule-based sentence and word tokenizer

Usage:
  ucto [options] [file]

Options:
  -h, --help              Show this help message
  -v, --version           Show version information
  -c, --config <file>     Settings file for LANG (repeatable: -c en=en.rules)
  -L, --lang <tag>        Force this language for every line
  -e, --encoding <enc>    Declared input encoding: UTF8, UTF16LE, UTF16BE
  -o, --output <file>     Output file (defaults to stdout)
  -P, --passthru          Passthru mode: whitespace-split, no rules
  -F, --xml               Structured (FoLiA-style) XML output
  --verbose               One token per line, with role names
  --dump-config           Print the compiled settings bundle as YAML and exit

With no [file] given, input is read from stdin line by line (REPL mode):
each line is tokenized as soon as it completes a sentence.
`
)

type configFlag struct {
	settings map[string]string // lang -> path
	order    []string
}

func (c *configFlag) String() string { return "" }

func (c *configFlag) Set(value string) error {
	lang, path, ok := strings.Cut(value, "=")
	if !ok {
		lang, path = "default", value
	}
	if c.settings == nil {
		c.settings = map[string]string{}
	}
	if _, exists := c.settings[lang]; !exists {
		c.order = append(c.order, lang)
	}
	c.settings[lang] = path
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	fs := flag.NewFlagSet("ucto", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgs := &configFlag{}
	var showHelp, showVersion, passthru, xmlOut, verbose, dumpConfig bool
	var lang, encName, outPath string

	fs.BoolVar(&showHelp, "h", false, "show help")
	fs.BoolVar(&showHelp, "help", false, "show help")
	fs.BoolVar(&showVersion, "v", false, "show version")
	fs.BoolVar(&showVersion, "version", false, "show version")
	fs.Var(cfgs, "c", "settings file for LANG (repeatable: -c en=en.rules)")
	fs.Var(cfgs, "config", "settings file for LANG (repeatable: -c en=en.rules)")
	fs.StringVar(&lang, "L", "", "force this language for every line")
	fs.StringVar(&lang, "lang", "", "force this language for every line")
	fs.StringVar(&encName, "e", "UTF8", "declared input encoding")
	fs.StringVar(&encName, "encoding", "UTF8", "declared input encoding")
	fs.StringVar(&outPath, "o", "", "output file (defaults to stdout)")
	fs.StringVar(&outPath, "output", "", "output file (defaults to stdout)")
	fs.BoolVar(&passthru, "P", false, "passthru mode")
	fs.BoolVar(&passthru, "passthru", false, "passthru mode")
	fs.BoolVar(&xmlOut, "F", false, "structured XML output")
	fs.BoolVar(&xmlOut, "xml", false, "structured XML output")
	fs.BoolVar(&verbose, "verbose", false, "one token per line, with role names")
	fs.BoolVar(&dumpConfig, "dump-config", false, "print the compiled settings bundle as YAML and exit")

	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	if err := fs.Parse(args); err != nil {
		return 2
	}
	rest := fs.Args()
	if showHelp {
		fmt.Fprint(stderr, usage)
		return 0
	}
	if showVersion {
		fmt.Fprintf(stdout, "ucto version %s\n", version)
		return 0
	}

	settings, order, stopwords, err := loadSettings(cfgs, passthru)
	if err != nil {
		logger.Error("loading settings", "error", err)
		return 1
	}

	if dumpConfig {
		if err := dumpSettings(stdout, settings, order); err != nil {
			logger.Error("dumping config", "error", err)
			return 1
		}
		return 0
	}

	selector := newSelector(settings, order, lang, stopwords)
	proc := tokenizer.NewLineProcessor(selector)
	proc.OnWarning = func(msg string) { logger.Warn(msg) }

	out := stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			logger.Error("opening output", "error", err)
			return 1
		}
		defer f.Close()
		out = f
	}

	var in io.Reader = stdin
	if len(rest) > 0 {
		f, err := os.Open(rest[0])
		if err != nil {
			logger.Error("opening input", "error", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	declared := parseEncoding(encName)
	decoded, err := encoding.NewReader(in, declared)
	if err != nil {
		logger.Error("decoding input", "error", err)
		return 1
	}

	w := newOutputWriter(out, xmlOut, verbose)
	defer w.Close()

	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		w.WriteTokens(proc.ProcessLine(scanner.Text(), lang))
	}
	if err := scanner.Err(); err != nil {
		logger.Error("reading input", "error", err)
		return 1
	}
	w.WriteTokens(proc.Finish())
	return 0
}

func parseEncoding(name string) encoding.Kind {
	switch strings.ToUpper(name) {
	case "UTF16LE":
		return encoding.UTF16LE
	case "UTF16BE":
		return encoding.UTF16BE
	default:
		return encoding.UTF8
	}
}

// loadSettings compiles every -c/--config entry into a Setting, plus the
// passthru fallback when none were given, and collects each language's
// [STOPWORDS] section for the selector's language-identification vote.
func loadSettings(cfgs *configFlag, passthru bool) (map[string]*tokenizer.Setting, []string, map[string][]string, error) {
	settings := map[string]*tokenizer.Setting{}
	stopwords := map[string][]string{}
	var order []string

	if passthru || len(cfgs.order) == 0 {
		s := tokenizer.PassthruSetting()
		settings[s.ID] = s
		order = append(order, s.ID)
	}

	for _, lang := range cfgs.order {
		path := cfgs.settings[lang]
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, nil, err
		}
		dir := stripFileName(path)
		b, err := config.Parse(f, lang, config.DirIncluder{Dir: dir})
		f.Close()
		if err != nil {
			return nil, nil, nil, err
		}
		s, err := config.CompileSetting(b)
		if err != nil {
			return nil, nil, nil, err
		}
		settings[lang] = s
		order = append(order, lang)
		if len(b.Stopwords) > 0 {
			stopwords[lang] = b.Stopwords
		}
	}
	return settings, order, stopwords, nil
}

func stripFileName(path string) string {
	idx := strings.LastIndexByte(path, '/')
	if idx < 0 {
		return "."
	}
	return path[:idx]
}

func dumpSettings(w io.Writer, settings map[string]*tokenizer.Setting, order []string) error {
	type ruleDump struct {
		ID      string `yaml:"id"`
		Pattern string `yaml:"pattern"`
	}
	type settingDump struct {
		ID                string     `yaml:"id"`
		Rules             []ruleDump `yaml:"rules"`
		EOSMarkers        string     `yaml:"eos_markers"`
		PunctuationFilter bool       `yaml:"punctuation_filter"`
		SentencePerLine   bool       `yaml:"sentence_per_line"`
		QuoteDetection    bool       `yaml:"quote_detection"`
		Passthru          bool       `yaml:"passthru"`
	}

	var dumps []settingDump
	for _, id := range order {
		s := settings[id]
		d := settingDump{
			ID:                s.ID,
			EOSMarkers:        s.EOSMarkers,
			PunctuationFilter: s.PunctuationFilter,
			SentencePerLine:   s.SentencePerLine,
			QuoteDetection:    s.QuoteDetection,
			Passthru:          s.Passthru,
		}
		for _, r := range s.Rules {
			d.Rules = append(d.Rules, ruleDump{ID: r.ID, Pattern: r.Pattern.String()})
		}
		dumps = append(dumps, d)
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(dumps)
}

// selector picks a Setting per line: an explicit override first, then
// lightweight stopword-based language identification across the loaded
// settings, then the OS locale (via jibber_jabber), then the first
// setting loaded.
type selector struct {
	settings map[string]*tokenizer.Setting
	fallback *tokenizer.Setting
	fixed    *tokenizer.Setting
	id       langid.Identifier
	osLocale string
}

// minStopwordVotes is the fewest stopword hits the selector requires
// before trusting a language guess over the OS locale/fallback.
const minStopwordVotes = 2

func newSelector(settings map[string]*tokenizer.Setting, order []string, fixedLang string, stopwords map[string][]string) tokenizer.SettingSelector {
	sel := &selector{settings: settings, id: langid.None{}}
	if len(stopwords) > 1 {
		sel.id = langid.New(stopwords, minStopwordVotes)
	}
	if len(order) > 0 {
		sel.fallback = settings[order[0]]
	}
	if fixedLang != "" {
		if s, ok := settings[fixedLang]; ok {
			sel.fixed = s
		}
	}
	if tag, err := jibber_jabber.DetectLanguage(); err == nil {
		sel.osLocale = tag
	}
	return sel
}

func (s *selector) Select(line, override string) *tokenizer.Setting {
	if s.fixed != nil {
		return s.fixed
	}
	if override != "" {
		if set, ok := s.settings[override]; ok {
			return set
		}
	}
	if tag, ok := s.id.Identify(line); ok {
		if set, ok := s.settings[tag]; ok {
			return set
		}
	}
	if set, ok := s.settings[s.osLocale]; ok {
		return set
	}
	return s.fallback
}

// outputWriter renders a stream of tokens in one of text/verbose/XML
// mode.
type outputWriter struct {
	w           io.Writer
	verbose     bool
	xml         bool
	builder     *folia.Builder
	sentenceAt  int // tokens written since the last EndOfSentence
	prevNoSpace bool
}

func newOutputWriter(w io.Writer, xmlOut, verbose bool) *outputWriter {
	ow := &outputWriter{w: w, verbose: verbose, xml: xmlOut}
	if xmlOut {
		ow.builder = folia.NewBuilder()
	}
	return ow
}

func (o *outputWriter) WriteTokens(tokens []tokenizer.Token) {
	for _, t := range tokens {
		switch {
		case o.xml:
			o.builder.Add(t)
		case o.verbose:
			fmt.Fprintf(o.w, "%s\t%s\t%s\n", t.Text, t.Type, t.Role)
		default:
			o.writeTextToken(t)
		}
	}
}

func (o *outputWriter) writeTextToken(t tokenizer.Token) {
	if o.sentenceAt > 0 && !o.prevNoSpace {
		fmt.Fprint(o.w, " ")
	}
	fmt.Fprint(o.w, t.Text)
	o.sentenceAt++
	o.prevNoSpace = t.Role.Has(tokenizer.NoSpace)
	if t.Role.Has(tokenizer.EndOfSentence) {
		fmt.Fprintln(o.w)
		o.sentenceAt = 0
		o.prevNoSpace = false
	}
}

func (o *outputWriter) Close() error {
	if o.xml && o.builder != nil {
		return o.builder.Write(o.w)
	}
	return nil
}
