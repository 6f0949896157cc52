package splitter

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mgpai22/subsplit/internal/subtitle"
)

const (
	DefaultMaxLineLength = 42 // standard subtitle line length
	DefaultChineseRatio  = 0.5
)

var ErrUnknownStrategy = errors.New("unknown split strategy")

// Strategy selects how long text is broken into lines.
type Strategy string

const (
	// split at sentence punctuation first, then at spaces
	StrategyPunctuationFirst Strategy = "punctuation"
	// pack words (Latin) or runes (CJK) up to the budget
	StrategyLengthOnly Strategy = "length"
)

// Options holds the caller-supplied length limits.
type Options struct {
	MaxLineLength int
	ChineseRatio  float64
}

func DefaultOptions() Options {
	return Options{
		MaxLineLength: DefaultMaxLineLength,
		ChineseRatio:  DefaultChineseRatio,
	}
}

// interface for breaking one entry's text into display lines
type Splitter interface {
	// Split returns trimmed, non-empty lines in reading order; nil for blank text.
	Split(text string) []subtitle.SplitLine
}

// creates Splitter based on strategy
func New(strategy Strategy, opts Options) (Splitter, error) {
	switch strategy {
	case StrategyPunctuationFirst, "":
		return &PunctuationSplitter{opts: opts}, nil
	case StrategyLengthOnly:
		return &LengthSplitter{opts: opts}, nil
	default:
		return nil, fmt.Errorf("%w: %q (use punctuation or length)", ErrUnknownStrategy, strategy)
	}
}

// PunctuationSplitter accumulates punctuation-terminated pieces into lines,
// falling back to space boundaries for pieces longer than the budget.
type PunctuationSplitter struct {
	opts Options
}

func (s *PunctuationSplitter) Split(text string) []subtitle.SplitLine {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	script := Classify(text)
	budget := s.opts.Budget(script)

	var lines []subtitle.SplitLine
	var current []rune
	flush := func() {
		if line := trimRunes(current); line != "" {
			lines = append(lines, subtitle.SplitLine{Text: line})
		}
		current = nil
	}

	for _, piece := range pieces(text, script) {
		candidate := append(current[:len(current):len(current)], piece...)
		if utf8.RuneCountInString(trimRunes(candidate)) <= budget {
			current = candidate
			continue
		}

		flush()
		cut, rest := cutLong([]rune(trimRunes(piece)), budget, script)
		lines = append(lines, cut...)
		current = rest
	}
	flush()

	return lines
}

// pieces splits text after every punctuation rune of script, keeping the mark
// with the piece it ends. Concatenating the pieces yields text.
func pieces(text string, script Script) [][]rune {
	var out [][]rune
	var cur []rune
	for _, r := range text {
		cur = append(cur, r)
		if isPunctuation(script, r) {
			out = append(out, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// cutLong emits lines from the front of rest until the remainder fits budget.
// rest must be trimmed. Cuts happen at the last ASCII space at or before
// rune position budget; without one, CJK text is cut at budget and a Latin
// leading token is emitted whole as an overflow line.
func cutLong(rest []rune, budget int, script Script) ([]subtitle.SplitLine, []rune) {
	var lines []subtitle.SplitLine
	for len(rest) > budget {
		if i := lastSpace(rest, budget); i > 0 {
			lines = append(lines, subtitle.SplitLine{Text: trimRunes(rest[:i])})
			rest = skipSpaces(rest[i+1:])
			continue
		}

		if script == ScriptCJK {
			lines = append(lines, subtitle.SplitLine{Text: trimRunes(rest[:budget])})
			rest = skipSpaces(rest[budget:])
			continue
		}

		end := indexSpace(rest)
		if end < 0 {
			end = len(rest)
		}
		lines = append(lines, subtitle.SplitLine{Text: string(rest[:end]), Overflow: true})
		rest = skipSpaces(rest[end:])
	}
	return lines, rest
}

// lastSpace returns the last space at or before limit, scanning back no
// further than index 1.
func lastSpace(r []rune, limit int) int {
	if limit >= len(r) {
		limit = len(r) - 1
	}
	for i := limit; i > 0; i-- {
		if r[i] == ' ' {
			return i
		}
	}
	return -1
}

func indexSpace(r []rune) int {
	for i, c := range r {
		if c == ' ' {
			return i
		}
	}
	return -1
}

func skipSpaces(r []rune) []rune {
	i := 0
	for i < len(r) && r[i] == ' ' {
		i++
	}
	return r[i:]
}

func trimRunes(r []rune) string {
	return strings.TrimSpace(string(r))
}

// LengthSplitter is the legacy strategy: CJK text is chunked every budget
// runes, Latin text is packed word by word without looking at punctuation.
type LengthSplitter struct {
	opts Options
}

func (s *LengthSplitter) Split(text string) []subtitle.SplitLine {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	script := Classify(text)
	budget := s.opts.Budget(script)

	var lines []subtitle.SplitLine
	push := func(line string) {
		line = strings.TrimSpace(line)
		if line == "" {
			return
		}
		lines = append(lines, subtitle.SplitLine{
			Text:     line,
			Overflow: utf8.RuneCountInString(line) > budget,
		})
	}

	if script == ScriptCJK {
		var current []rune
		for _, r := range text {
			current = append(current, r)
			if len(current) >= budget {
				push(string(current))
				current = nil
			}
		}
		push(string(current))
		return lines
	}

	var current strings.Builder
	for _, word := range strings.Split(text, " ") {
		if utf8.RuneCountInString(current.String()+word) > budget {
			push(current.String())
			current.Reset()
		}
		current.WriteString(word)
		current.WriteString(" ")
	}
	push(current.String())

	return lines
}
