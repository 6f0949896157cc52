package timing

import (
	"github.com/mgpai22/subsplit/internal/subtitle"
)

// Allocate divides the entry's interval evenly across lines, in order.
//
// Line i covers [start + i*d, start + i*d + d] with d = (end - start) / n.
// Durations are not weighted by line length. Malformed entries carry zero
// timestamps, so their lines get a zero-length interval at 0.
func Allocate(entry subtitle.Entry, lines []subtitle.SplitLine) []subtitle.TimedLine {
	if len(lines) == 0 {
		return nil
	}

	start := entry.StartTime
	lineDuration := (entry.EndTime - start) / subtitle.Timestamp(len(lines))

	timed := make([]subtitle.TimedLine, len(lines))
	for i, line := range lines {
		lineStart := start + subtitle.Timestamp(i)*lineDuration
		timed[i] = subtitle.TimedLine{
			Text:      line.Text,
			StartTime: lineStart,
			EndTime:   lineStart + lineDuration,
		}
	}
	return timed
}
