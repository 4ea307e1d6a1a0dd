package clock

// CompareResult represents the causal relation between two clocks.
type CompareResult int

const (
	// Before indicates the clock happened before the other.
	Before CompareResult = iota
	// After indicates the clock happened after the other.
	After
	// Concurrent indicates the clocks are concurrent (no causal relationship).
	Concurrent
	// Equal indicates the clocks are equal.
	Equal
)

// Sign collapses the result to a sort ordering: -1 for Before, +1 for
// After, and 0 for both Equal and Concurrent. IsIndependent recovers the
// distinction Sign discards.
func (r CompareResult) Sign() int {
	switch r {
	case Before:
		return -1
	case After:
		return 1
	default:
		return 0
	}
}

func (r CompareResult) String() string {
	switch r {
	case Before:
		return "before"
	case After:
		return "after"
	case Concurrent:
		return "concurrent"
	case Equal:
		return "equal"
	default:
		return "unknown"
	}
}

// Compare reports the causal relation between a and b over the union of
// their keys, with missing entries counting as zero.
// Returns:
//   - Equal: every pair of counters matches
//   - Before: a happened before b (all counters <=, at least one <)
//   - After: a happened after b (all counters >=, at least one >)
//   - Concurrent: neither dominates (some counters greater, some less)
func Compare(a, b *Clock) CompareResult {
	allNodes := make(map[string]bool, len(a.Counters)+len(b.Counters))
	for node := range a.Counters {
		allNodes[node] = true
	}
	for node := range b.Counters {
		allNodes[node] = true
	}

	var less, greater bool
	for node := range allNodes {
		av := a.Counters[node]
		bv := b.Counters[node]
		if av < bv {
			less = true
		} else if av > bv {
			greater = true
		}
	}

	switch {
	case less && greater:
		return Concurrent
	case less:
		return Before
	case greater:
		return After
	default:
		return Equal
	}
}

// Compare is the normalized method form of the package-level Compare:
// other may be a live Clock or a serialized form.
func (c *Clock) Compare(other any) (CompareResult, error) {
	o, err := From(other)
	if err != nil {
		return 0, err
	}
	return Compare(c, o), nil
}
