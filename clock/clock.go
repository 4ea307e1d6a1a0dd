package clock

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// IDProvider supplies a node identifier when the caller does not pick one.
type IDProvider func() string

// Hostname is a ready-made IDProvider returning the local machine's
// network name, or a random UUID when the hostname cannot be read.
func Hostname() string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return uuid.NewString()
	}
	return name
}

// Clock is a node's vector clock: the owning node's identifier plus a
// counter per node identifier. Entries missing from Counters count as
// zero. Only the owning node ever increments its own entry; entries for
// other nodes advance through Merge alone.
// Thread-safe access should be handled by the caller.
type Clock struct {
	ID       string           `json:"id"`
	Counters map[string]int64 `json:"clocks"`
}

// New creates a fresh clock owned by the given node identifier, with all
// counters at zero.
func New(id string) *Clock {
	return &Clock{
		ID:       id,
		Counters: make(map[string]int64),
	}
}

// NewDefault creates a fresh clock whose identifier comes from the given
// provider, typically Hostname.
func NewDefault(provider IDProvider) *Clock {
	return New(provider())
}

// Increment records a local event: the owner's own counter grows by one,
// starting from zero if absent. A node about to send a message increments
// first, then serializes. Returns the clock to allow chaining.
func (c *Clock) Increment() *Clock {
	if c.Counters == nil {
		c.Counters = make(map[string]int64)
	}
	c.Counters[c.ID]++
	return c
}

// Merge folds another clock's causal knowledge into this one, taking the
// maximum counter value per node over the union of keys. other may be a
// live Clock or a serialized form; malformed input surfaces as *ParseError.
// Merge never touches the receiver's own counter: recording the receive
// event is the caller's explicit Increment afterwards.
func (c *Clock) Merge(other any) (*Clock, error) {
	o, err := From(other)
	if err != nil {
		return nil, err
	}
	if c.Counters == nil {
		c.Counters = make(map[string]int64)
	}
	for node, counter := range o.Counters {
		if c.Counters[node] < counter {
			c.Counters[node] = counter
		}
	}
	return c, nil
}

// Get returns the counter recorded for the given node identifier, or 0
// if not present.
func (c *Clock) Get(node string) int64 {
	return c.Counters[node]
}

// Set overwrites the counter for the given node identifier.
func (c *Clock) Set(node string, counter int64) {
	if c.Counters == nil {
		c.Counters = make(map[string]int64)
	}
	c.Counters[node] = counter
}

// Copy creates an independent clock with the same identifier and
// counters. Mutating the copy leaves the original untouched.
func (c *Clock) Copy() *Clock {
	cp := New(c.ID)
	for node, counter := range c.Counters {
		cp.Counters[node] = counter
	}
	return cp
}

// Equal reports whether both clocks carry the same counters over the
// union of their keys, with missing entries counting as zero. The owning
// identifiers do not participate. other may be a live Clock or a
// serialized form.
func (c *Clock) Equal(other any) (bool, error) {
	o, err := From(other)
	if err != nil {
		return false, err
	}
	return Compare(c, o) == Equal, nil
}

// IsIndependent reports true concurrency: neither clock dominates the
// other and the two are not equal. Symmetric in its operands.
func (c *Clock) IsIndependent(other any) (bool, error) {
	o, err := From(other)
	if err != nil {
		return false, err
	}
	return Compare(c, o) == Concurrent, nil
}

// String returns a deterministic rendering of the clock, owner identifier
// first, counters sorted by node identifier.
func (c *Clock) String() string {
	keys := make([]string, 0, len(c.Counters))
	for k := range c.Counters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s:%d", k, c.Counters[k]))
	}
	return c.ID + "{" + strings.Join(parts, ", ") + "}"
}
