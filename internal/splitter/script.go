package splitter

import "math"

// Script is the whole-text classification driving budget and punctuation.
type Script int

const (
	ScriptLatin Script = iota
	ScriptCJK
)

func (s Script) String() string {
	if s == ScriptCJK {
		return "cjk"
	}
	return "latin"
}

const (
	cjkFirst rune = 0x4E00
	cjkLast  rune = 0x9FA5
)

// Classify reports ScriptCJK when text contains any CJK Unified Ideograph
// in U+4E00..U+9FA5, ScriptLatin otherwise.
func Classify(text string) Script {
	for _, r := range text {
		if r >= cjkFirst && r <= cjkLast {
			return ScriptCJK
		}
	}
	return ScriptLatin
}

// sentence punctuation that ends a piece, per script
var punctuation = map[Script]string{
	ScriptCJK:   "，。！？；",
	ScriptLatin: ".,!?;",
}

func isPunctuation(script Script, r rune) bool {
	for _, p := range punctuation[script] {
		if p == r {
			return true
		}
	}
	return false
}

// Budget returns the maximum rune count of one line for script.
// CJK text gets floor(MaxLineLength * ChineseRatio); the result is at least 1.
func (o Options) Budget(script Script) int {
	if script != ScriptCJK {
		return max(o.MaxLineLength, 1)
	}

	scaled := math.Floor(float64(o.MaxLineLength) * o.ChineseRatio)
	switch {
	case math.IsNaN(scaled) || scaled < 1:
		return 1
	case scaled > math.MaxInt32:
		return math.MaxInt32
	default:
		return int(scaled)
	}
}
