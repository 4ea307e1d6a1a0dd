package order

import (
	"sort"

	"vclock/clock"
)

// Entry is one element of an ordering: a single clock, or an ordered
// group of clocks tied at the same causal rank of which at least one
// pair is concurrent.
type Entry struct {
	Clocks []*clock.Clock
}

// Concurrent reports whether the entry is a group of concurrent clocks.
func (e Entry) Concurrent() bool {
	return len(e.Clocks) > 1
}

// Clock returns the entry's first member, which for a standalone entry
// is its only one.
func (e Entry) Clock() *clock.Clock {
	return e.Clocks[0]
}

// Clocks sorts the given clocks into causal order, latest first. Each
// source may be a live clock or a serialized form; the first malformed
// source aborts with its *ParseError.
//
// Clocks that tie under the causal comparison form contiguous blocks. A
// block holding at least one concurrent pair is emitted as a single
// group entry preserving the sorted order of its members; a block of
// merely equal clocks is emitted as one standalone entry per member,
// since grouping is reserved for genuine concurrency rather than
// duplicate observations of the same state.
func Clocks(sources ...any) ([]Entry, error) {
	cs := make([]*clock.Clock, 0, len(sources))
	for _, src := range sources {
		c, err := clock.From(src)
		if err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}

	sort.SliceStable(cs, func(i, j int) bool {
		return clock.Compare(cs[i], cs[j]).Sign() > 0
	})

	entries := make([]Entry, 0, len(cs))
	for start := 0; start < len(cs); {
		end := start + 1
		for end < len(cs) && clock.Compare(cs[end-1], cs[end]).Sign() == 0 {
			end++
		}

		block := cs[start:end:end]
		if hasConcurrentPair(block) {
			entries = append(entries, Entry{Clocks: block})
		} else {
			for _, c := range block {
				entries = append(entries, Entry{Clocks: []*clock.Clock{c}})
			}
		}
		start = end
	}
	return entries, nil
}

// hasConcurrentPair reports whether some pair in the block is concurrent
// rather than merely equal.
func hasConcurrentPair(block []*clock.Clock) bool {
	for i := 0; i < len(block); i++ {
		for j := i + 1; j < len(block); j++ {
			if clock.Compare(block[i], block[j]) == clock.Concurrent {
				return true
			}
		}
	}
	return false
}
