package resegment

import (
	"errors"
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mgpai22/subsplit/internal/splitter"
	"github.com/mgpai22/subsplit/internal/subtitle"
)

func TestResegmentLatinScenario(t *testing.T) {
	input := "1\n00:00:00,000 --> 00:00:04,000\nThis is a sentence that is definitely longer than forty two characters total.\n\n"

	want := "1\n00:00:00,000 --> 00:00:02,000\nThis is a sentence that is definitely\n\n" +
		"2\n00:00:02,000 --> 00:00:04,000\nlonger than forty two characters total.\n\n"

	if got := Resegment(input, 42, 0.5); got != want {
		t.Errorf("Resegment mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestResegmentCJKScenario(t *testing.T) {
	input := "1\n00:00:00,000 --> 00:00:02,000\n这是一段用于测试中文字幕分割功能的长句子，用来验证效果。\n\n"

	engine, err := New(DefaultOptions())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	result := engine.Process(input)

	if len(result.Cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(result.Cues))
	}
	for _, cue := range result.Cues {
		if n := utf8.RuneCountInString(cue.Text); n > 21 {
			t.Errorf("cue %d has %d runes, budget 21", cue.Index, n)
		}
	}
	if !strings.HasSuffix(result.Cues[0].Text, "，") {
		t.Errorf("expected first line to end at the comma, got %q", result.Cues[0].Text)
	}
	if result.Cues[0].EndTime.String() != "00:00:01,000" ||
		result.Cues[1].StartTime.String() != "00:00:01,000" ||
		result.Cues[1].EndTime.String() != "00:00:02,000" {
		t.Errorf("unexpected timing: %s-%s, %s-%s",
			result.Cues[0].StartTime, result.Cues[0].EndTime,
			result.Cues[1].StartTime, result.Cues[1].EndTime)
	}
	if result.Entries[0].Script != splitter.ScriptCJK || result.Entries[0].Budget != 21 {
		t.Errorf("expected cjk entry with budget 21, got %v/%d",
			result.Entries[0].Script, result.Entries[0].Budget)
	}
}

func TestResegmentMalformedScenario(t *testing.T) {
	input := "5\nnot a time line\nHello\n\n"

	engine, err := New(DefaultOptions())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	result := engine.Process(input)

	if !strings.Contains(result.Output, "Hello") {
		t.Errorf("expected output to contain Hello, got %q", result.Output)
	}
	if !strings.Contains(result.Output, "00:00:00,000 --> 00:00:00,000") {
		t.Errorf("expected zero-length timing, got %q", result.Output)
	}
	if result.Count(MalformedBlock) != 1 {
		t.Errorf("expected 1 malformed block anomaly, got %v", result.Anomalies)
	}
	if result.Anomalies[0].Index != 5 {
		t.Errorf("expected anomaly for entry 5, got %d", result.Anomalies[0].Index)
	}
}

func TestResegmentEmptyInput(t *testing.T) {
	engine, err := New(DefaultOptions())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	for _, input := range []string{"", "\n\n\n", "just some text\n"} {
		result := engine.Process(input)
		if result.Output != "" {
			t.Errorf("Process(%q): expected empty output, got %q", input, result.Output)
		}
		if result.Count(EmptyInput) != 1 {
			t.Errorf("Process(%q): expected empty input anomaly, got %v", input, result.Anomalies)
		}
	}
}

func TestResegmentUnsplittableToken(t *testing.T) {
	input := "1\n00:00:00,000 --> 00:00:03,000\nsee pneumonoultramicroscopicsilicovolcanoconiosis here\n"

	engine, err := New(Options{MaxLineLength: 20, ChineseRatio: 0.5})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	result := engine.Process(input)

	if len(result.Cues) != 3 {
		t.Fatalf("expected 3 cues, got %d: %q", len(result.Cues), result.Output)
	}
	if result.Cues[1].Text != "pneumonoultramicroscopicsilicovolcanoconiosis" {
		t.Errorf("expected the long token kept whole, got %q", result.Cues[1].Text)
	}
	if result.Count(UnsplittableToken) != 1 {
		t.Errorf("expected 1 unsplittable token anomaly, got %v", result.Anomalies)
	}
}

func TestResegmentRenumbersAcrossEntries(t *testing.T) {
	input := `17
00:00:00,000 --> 00:00:06,000
One short clause. Then another short clause. And a third one to finish.

3
00:00:06,000 --> 00:00:07,000
Tiny.

99
00:00:07,000 --> 00:00:10,000
A final entry that has to wrap around because it is quite long indeed.
`
	engine, err := New(Options{MaxLineLength: 30, ChineseRatio: 0.5})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	result := engine.Process(input)

	if len(result.Cues) < 4 {
		t.Fatalf("expected entries to be split, got %d cues", len(result.Cues))
	}
	for i, cue := range result.Cues {
		if cue.Index != i+1 {
			t.Errorf("cue %d: index %d, want %d", i, cue.Index, i+1)
		}
	}

	reparsed := subtitle.Parse(result.Output)
	if len(reparsed) != len(result.Cues) {
		t.Fatalf("output reparses to %d entries, want %d", len(reparsed), len(result.Cues))
	}
	for i, e := range reparsed {
		if e.Index != i+1 {
			t.Errorf("reparsed entry %d has index %d", i, e.Index)
		}
	}

	if result.Entries[1].FirstCue == 0 || result.Entries[1].Lines[0].Text != "Tiny." {
		t.Errorf("unexpected report for second entry: %+v", result.Entries[1])
	}
	last := result.Entries[2]
	if got := last.Lines[len(last.Lines)-1].EndTime.String(); got != "00:00:10,000" {
		t.Errorf("last line of final entry ends at %s, want 00:00:10,000", got)
	}
}

func TestResegmentIdempotenceBoundary(t *testing.T) {
	input := `4
00:00:01,500 --> 00:00:03,250
Short enough.

8
00:01:00,000 --> 00:01:02,500
也很短。
`
	want := `1
00:00:01,500 --> 00:00:03,250
Short enough.

2
00:01:00,000 --> 00:01:02,500
也很短。

`
	got := Resegment(input, 42, 0.5)
	if got != want {
		t.Errorf("Resegment mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}

	if again := Resegment(got, 42, 0.5); again != got {
		t.Errorf("second pass changed output:\n%s", again)
	}
}

func TestResegmentLengthOnlyStrategy(t *testing.T) {
	input := "1\n00:00:00,000 --> 00:00:02,000\none two three four\n"

	engine, err := New(Options{MaxLineLength: 10, ChineseRatio: 0.5, Strategy: splitter.StrategyLengthOnly})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	want := "1\n00:00:00,000 --> 00:00:01,000\none two\n\n" +
		"2\n00:00:01,000 --> 00:00:02,000\nthree four\n\n"
	if got := engine.Resegment(input); got != want {
		t.Errorf("Resegment mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"zero length", Options{MaxLineLength: 0, ChineseRatio: 0.5}},
		{"negative ratio", Options{MaxLineLength: 42, ChineseRatio: -1}},
		{"infinite ratio", Options{MaxLineLength: 42, ChineseRatio: math.Inf(1)}},
		{"nan ratio", Options{MaxLineLength: 42, ChineseRatio: math.NaN()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opts); err == nil {
				t.Error("expected error")
			}
		})
	}

	_, err := New(Options{MaxLineLength: 42, ChineseRatio: 0.5, Strategy: "bogus"})
	if !errors.Is(err, splitter.ErrUnknownStrategy) {
		t.Errorf("expected ErrUnknownStrategy, got %v", err)
	}
}

func TestResegmentFallsBackToDefaults(t *testing.T) {
	input := "1\n00:00:00,000 --> 00:00:04,000\nThis is a sentence that is definitely longer than forty two characters total.\n"
	if Resegment(input, 0, 0) != Resegment(input, 42, 0.5) {
		t.Error("expected non-positive options to fall back to defaults")
	}
}

func TestResegmentRatioAboveOne(t *testing.T) {
	text := strings.Repeat("中文字幕", 10)
	input := "1\n00:00:00,000 --> 00:00:04,000\n" + text + "\n"

	want := "1\n00:00:00,000 --> 00:00:04,000\n" + text + "\n\n"
	if got := Resegment(input, 42, 1.5); got != want {
		t.Errorf("expected one block with budget 63, got:\n%s", got)
	}

	engine, err := New(Options{MaxLineLength: 42, ChineseRatio: 1.5})
	if err != nil {
		t.Fatalf("New rejected ratio 1.5: %v", err)
	}
	if budget := engine.Process(input).Entries[0].Budget; budget != 63 {
		t.Errorf("budget = %d, want 63", budget)
	}
}

func TestResegmentUsesExplicitValues(t *testing.T) {
	input := "1\n00:00:00,000 --> 00:00:02,000\none two three four\n"
	if Resegment(input, 10, 0.5) == Resegment(input, 0, 0.5) {
		t.Error("explicit max line length should not be replaced by the default")
	}
	if got := Resegment(input, -3, 0.5); strings.Count(got, "-->") != 4 {
		t.Errorf("negative length should clamp the budget to one rune per token, got:\n%s", got)
	}
}
