package resegment

import (
	"fmt"
	"math"

	"github.com/mgpai22/subsplit/internal/splitter"
	"github.com/mgpai22/subsplit/internal/subtitle"
	"github.com/mgpai22/subsplit/internal/timing"
)

// Options configures an Engine.
type Options struct {
	MaxLineLength int
	ChineseRatio  float64
	Strategy      splitter.Strategy
}

func DefaultOptions() Options {
	return Options{
		MaxLineLength: splitter.DefaultMaxLineLength,
		ChineseRatio:  splitter.DefaultChineseRatio,
		Strategy:      splitter.StrategyPunctuationFirst,
	}
}

// Validate rejects option values no document could be resegmented with.
func (o Options) Validate() error {
	if o.MaxLineLength <= 0 {
		return fmt.Errorf("max line length must be positive, got %d", o.MaxLineLength)
	}
	if o.ChineseRatio <= 0 || math.IsInf(o.ChineseRatio, 0) || math.IsNaN(o.ChineseRatio) {
		return fmt.Errorf("chinese ratio must be positive and finite, got %v", o.ChineseRatio)
	}
	return nil
}

func (o Options) splitterOptions() splitter.Options {
	return splitter.Options{
		MaxLineLength: o.MaxLineLength,
		ChineseRatio:  o.ChineseRatio,
	}
}

// EntryReport describes what happened to one source entry.
type EntryReport struct {
	Entry  subtitle.Entry
	Script splitter.Script
	Budget int
	Lines  []subtitle.TimedLine
	// index of the first output cue for this entry, 0 when it produced none
	FirstCue int
}

// Result is the full outcome of one resegmentation run.
type Result struct {
	Output    string
	Entries   []EntryReport
	Cues      []subtitle.Cue
	Anomalies []Anomaly
}

// Engine runs parse, split, allocate and format over whole documents.
// It holds no per-document state and is safe for concurrent use.
type Engine struct {
	opts     Options
	splitter splitter.Splitter
}

func New(opts Options) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	s, err := splitter.New(opts.Strategy, opts.splitterOptions())
	if err != nil {
		return nil, err
	}
	return &Engine{opts: opts, splitter: s}, nil
}

func (e *Engine) Options() Options {
	return e.opts
}

// Resegment returns the rewritten document. It never fails; anomalies
// degrade the affected entries only.
func (e *Engine) Resegment(document string) string {
	return e.Process(document).Output
}

// Process runs the pipeline and reports per-entry decisions and anomalies.
func (e *Engine) Process(document string) *Result {
	entries := subtitle.Parse(document)
	result := &Result{}

	if len(entries) == 0 {
		result.Anomalies = append(result.Anomalies, Anomaly{Kind: EmptyInput})
		return result
	}

	sopts := e.opts.splitterOptions()
	groups := make([][]subtitle.TimedLine, 0, len(entries))
	next := 1

	for _, entry := range entries {
		if entry.Malformed {
			result.Anomalies = append(result.Anomalies, Anomaly{
				Kind:  MalformedBlock,
				Index: entry.Index,
				Text:  entry.Text,
			})
		}

		script := splitter.Classify(entry.Text)
		lines := e.splitter.Split(entry.Text)
		for _, line := range lines {
			if line.Overflow {
				result.Anomalies = append(result.Anomalies, Anomaly{
					Kind:  UnsplittableToken,
					Index: entry.Index,
					Text:  line.Text,
				})
			}
		}

		timed := timing.Allocate(entry, lines)
		report := EntryReport{
			Entry:  entry,
			Script: script,
			Budget: sopts.Budget(script),
			Lines:  timed,
		}
		if len(timed) > 0 {
			report.FirstCue = next
			next += len(timed)
		}

		result.Entries = append(result.Entries, report)
		groups = append(groups, timed)
	}

	result.Cues = subtitle.Renumber(groups)
	result.Output = subtitle.Render(result.Cues)
	return result
}

// Resegment runs the default punctuation-first strategy with the given
// limits. A zero argument selects its default (42, 0.5); other values are
// used as given and every budget is clamped to at least one rune.
func Resegment(document string, maxLineLength int, chineseRatio float64) string {
	opts := DefaultOptions()
	if maxLineLength != 0 {
		opts.MaxLineLength = maxLineLength
	}
	if chineseRatio != 0 {
		opts.ChineseRatio = chineseRatio
	}

	// the punctuation strategy is always known
	s, _ := splitter.New(opts.Strategy, opts.splitterOptions())
	engine := &Engine{opts: opts, splitter: s}
	return engine.Resegment(document)
}
