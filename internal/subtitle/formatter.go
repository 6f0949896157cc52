package subtitle

import (
	"fmt"
	"strings"
)

// Renumber assigns sequential 1-based indices across all groups in order.
// Original entry indices are discarded.
func Renumber(groups [][]TimedLine) []Cue {
	var cues []Cue
	index := 1
	for _, lines := range groups {
		for _, line := range lines {
			cues = append(cues, Cue{Index: index, TimedLine: line})
			index++
		}
	}
	return cues
}

// Render serializes cues as SRT blocks, each followed by a blank line.
func Render(cues []Cue) string {
	var sb strings.Builder
	for _, cue := range cues {
		// index
		sb.WriteString(fmt.Sprintf("%d\n", cue.Index))

		// timestamps: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(fmt.Sprintf("%s --> %s\n", cue.StartTime, cue.EndTime))

		// text
		sb.WriteString(cue.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}
