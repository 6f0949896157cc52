package resegment

import "fmt"

// AnomalyKind classifies a non-fatal problem found while resegmenting.
type AnomalyKind string

const (
	// index line without a usable time line; entry kept with zero timestamps
	MalformedBlock AnomalyKind = "malformed_block"
	// document has no index lines; output is empty
	EmptyInput AnomalyKind = "empty_input"
	// single token longer than the line budget; emitted whole
	UnsplittableToken AnomalyKind = "unsplittable_token"
)

// Anomaly records one degraded spot in the input.
type Anomaly struct {
	Kind AnomalyKind
	// original entry index, 0 for document-level anomalies
	Index int
	Text  string
}

func (a Anomaly) String() string {
	switch a.Kind {
	case EmptyInput:
		return "document contains no subtitle entries"
	case MalformedBlock:
		return fmt.Sprintf("entry %d has no valid time line", a.Index)
	case UnsplittableToken:
		return fmt.Sprintf("entry %d: token %q exceeds the line budget", a.Index, a.Text)
	default:
		return fmt.Sprintf("entry %d: %s", a.Index, a.Kind)
	}
}

// Count returns the number of anomalies of the given kind.
func (r *Result) Count(kind AnomalyKind) int {
	n := 0
	for _, a := range r.Anomalies {
		if a.Kind == kind {
			n++
		}
	}
	return n
}
