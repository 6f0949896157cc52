package subtitle

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

// Timestamp is a subtitle time offset in seconds.
//
// Equal time division happens in float seconds; rendering floors every
// component, so sub-millisecond remainders are truncated.
type Timestamp float64

var timestampRegex = regexp.MustCompile(`^(\d+):(\d{1,2}):(\d{1,2}),(\d{1,3})$`)

// ParseTimestamp parses an HH:MM:SS,mmm literal.
func ParseTimestamp(s string) (Timestamp, error) {
	matches := timestampRegex.FindStringSubmatch(s)
	if len(matches) != 5 {
		return 0, fmt.Errorf("invalid timestamp %q", s)
	}

	parts := make([]float64, 4)
	for i, m := range matches[1:] {
		v, err := strconv.Atoi(m)
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp %q: %w", s, err)
		}
		parts[i] = float64(v)
	}

	return Timestamp(parts[0]*3600 + parts[1]*60 + parts[2] + parts[3]/1000), nil
}

// String renders the timestamp as HH:MM:SS,mmm, flooring every component.
func (t Timestamp) String() string {
	s := float64(t)
	if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
		s = 0
	}

	hours := math.Floor(s / 3600)
	minutes := math.Floor(math.Mod(s, 3600) / 60)
	seconds := math.Floor(math.Mod(s, 60))
	millis := math.Floor(math.Mod(s, 1) * 1000)

	return fmt.Sprintf("%02d:%02d:%02d,%03d",
		int64(hours), int64(minutes), int64(seconds), int64(millis))
}

// Duration converts the timestamp for logging and comparisons.
func (t Timestamp) Duration() time.Duration {
	return time.Duration(float64(t) * float64(time.Second))
}
