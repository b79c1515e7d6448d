package tokenizer

import "strings"

// SettingSelector resolves the Setting to use for one input line, given
// an optional per-line language override supplied by the caller. It is
// how the driver consults language identification without the core
// depending on any concrete LID implementation.
type SettingSelector interface {
	Select(line string, override string) *Setting
}

// fixedSelector always returns the same Setting, ignoring both the line
// text and any override - the degenerate case of "one language only".
type fixedSelector struct{ setting *Setting }

func (f fixedSelector) Select(string, string) *Setting { return f.setting }

// NewFixedSelector returns a SettingSelector that always resolves to s.
func NewFixedSelector(s *Setting) SettingSelector { return fixedSelector{setting: s} }

// LineProcessor is the driver (C10): it turns a sequence of decoded
// input lines into a sequence of extracted sentences, selecting a
// Setting per line, running that Setting's Normalizer and Filter, then
// routing to the rule engine or passthru mode and extracting whatever
// complete sentences result.
type LineProcessor struct {
	selector SettingSelector
	engines  map[string]*Engine
	order    []*Engine // insertion order, for deterministic fallback lookups

	// OnWarning receives descriptions of recoverable per-line problems.
	OnWarning func(msg string)
}

// NewLineProcessor builds a driver around selector. Each distinct
// Setting.ID the selector returns gets its own Engine, lazily created,
// so state (buffer, quote stack, paragraph signal) never leaks between
// languages sharing one process.
func NewLineProcessor(selector SettingSelector) *LineProcessor {
	return &LineProcessor{
		selector:  selector,
		engines:   map[string]*Engine{},
		OnWarning: func(string) {},
	}
}

func (p *LineProcessor) engineFor(setting *Setting) *Engine {
	if e, ok := p.engines[setting.ID]; ok {
		return e
	}
	e := NewEngine(setting)
	e.OnWarning = p.OnWarning
	p.engines[setting.ID] = e
	p.order = append(p.order, e)
	return e
}

// ProcessLine feeds one already-decoded, already-trimmed line through the
// pipeline: strip a trailing '\r', select a Setting, run the scanner or
// passthru mode, then extract any complete sentences (non-draining). An
// empty line raises the paragraph signal on every active engine and
// force-drains each of them instead.
func (p *LineProcessor) ProcessLine(line, langOverride string) []Token {
	line = strings.TrimSuffix(line, "\r")

	if line == "" {
		var out []Token
		for _, e := range p.order {
			out = append(out, p.drain(e, true)...)
		}
		for _, e := range p.order {
			e.RaiseParagraphSignal()
		}
		return out
	}

	setting := p.selector.Select(line, langOverride)
	e := p.engineFor(setting)

	normalized := setting.Filter.Filter(setting.Normalizer.Normalize(line))

	if setting.Passthru {
		e.PassthruLine(normalized)
	} else {
		e.TokenizeLine(normalized)
	}

	return p.drain(e, false)
}

// Finish force-drains every engine this processor has created, for use
// at end-of-input.
func (p *LineProcessor) Finish() []Token {
	var out []Token
	for _, e := range p.order {
		out = append(out, p.drain(e, true)...)
	}
	return out
}

func (p *LineProcessor) drain(e *Engine, forceDrain bool) []Token {
	n := e.Buffer().CountSentences(forceDrain)
	if n == 0 {
		return nil
	}
	out, err := e.Buffer().Extract(n)
	if err != nil {
		e.warn(err.Error())
	}
	return out
}
