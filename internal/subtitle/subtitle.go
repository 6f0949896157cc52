package subtitle

// represents single subtitle block as authored in the source document
type Entry struct {
	Index     int
	StartTime Timestamp
	EndTime   Timestamp
	Text      string
	// set when the index line was not followed by a usable time line
	Malformed bool
}

// Duration of the entry, zero for malformed entries.
func (e Entry) Duration() Timestamp {
	return e.EndTime - e.StartTime
}

// one output line derived from an entry's text
type SplitLine struct {
	Text string
	// line exceeds the budget because it is a single unsplittable token
	Overflow bool
}

// split line with its allocated time interval
type TimedLine struct {
	Text      string
	StartTime Timestamp
	EndTime   Timestamp
}

// represents a renumbered block ready for serialization
type Cue struct {
	Index int
	TimedLine
}

// represents supported subtitle formats
type Format string

const FormatSRT Format = "srt"

// file extension for a format
func GetExtensionForFormat(format Format) string {
	switch format {
	case FormatSRT:
		return ".srt"
	default:
		return ".srt"
	}
}
