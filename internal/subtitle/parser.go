package subtitle

import (
	"strconv"
	"strings"
)

// time-range separator between start and end timestamps
const TimeSeparator = "-->"

type parsePhase int

const (
	expectIndex parsePhase = iota
	expectTime
	collectingText
)

// parserState accumulates entries as lines are folded into it.
type parserState struct {
	phase     parsePhase
	current   Entry
	textParts []string
	completed []Entry
}

// Parse converts a subtitle document into its entries in document order.
// Malformed blocks are kept with zero timestamps and Malformed set.
func Parse(document string) []Entry {
	document = strings.TrimPrefix(document, "\ufeff")

	state := &parserState{phase: expectIndex}
	for _, line := range strings.Split(document, "\n") {
		state.step(strings.TrimRight(line, "\r"))
	}
	state.finish()
	return state.completed
}

func (s *parserState) step(line string) {
	trimmed := strings.TrimSpace(line)

	if isIndexLine(trimmed) {
		s.finish()
		// indices only mark block boundaries, so range errors are ignored
		index, _ := strconv.Atoi(trimmed)
		s.phase = expectTime
		s.current = Entry{Index: index}
		return
	}

	if trimmed == "" {
		return
	}

	switch s.phase {
	case expectTime:
		s.phase = collectingText
		if strings.Contains(trimmed, TimeSeparator) {
			start, end, ok := parseTimeRange(trimmed)
			s.current.StartTime = start
			s.current.EndTime = end
			s.current.Malformed = !ok
			return
		}
		s.current.Malformed = true
		s.textParts = append(s.textParts, trimmed)
	case collectingText:
		s.textParts = append(s.textParts, trimmed)
	}
}

// finish appends the entry in progress, if any, and resets for the next block.
func (s *parserState) finish() {
	if s.phase == expectIndex {
		return
	}
	entry := s.current
	if s.phase == expectTime {
		entry.Malformed = true
	}
	entry.Text = strings.Join(s.textParts, " ")

	s.completed = append(s.completed, entry)
	s.phase = expectIndex
	s.current = Entry{}
	s.textParts = s.textParts[:0]
}

func isIndexLine(line string) bool {
	if line == "" {
		return false
	}
	for i := 0; i < len(line); i++ {
		if line[i] < '0' || line[i] > '9' {
			return false
		}
	}
	return true
}

// parseTimeRange splits "start --> end [position...]" into timestamps.
// Both values are zero when either side fails to parse or the range is inverted.
func parseTimeRange(line string) (Timestamp, Timestamp, bool) {
	startStr, endStr, _ := strings.Cut(line, TimeSeparator)
	endFields := strings.Fields(endStr)
	if len(endFields) == 0 {
		return 0, 0, false
	}

	start, err := ParseTimestamp(strings.TrimSpace(startStr))
	if err != nil {
		return 0, 0, false
	}
	end, err := ParseTimestamp(endFields[0])
	if err != nil || end < start {
		return 0, 0, false
	}
	return start, end, true
}
