package clock

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ParseError reports serialized input that is not a well-formed clock
// representation: wrong top-level shape, unknown fields, or a counter
// that is not a non-negative integer.
type ParseError struct {
	Reason string
	Err    error // underlying decode error, if any
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse clock: %s: %v", e.Reason, e.Err)
	}
	return "parse clock: " + e.Reason
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Marshal produces the transport form of the clock, a JSON object with
// exactly the fields id and clocks. Parse(Marshal(c)) reconstructs a
// clock equal to c.
func (c *Clock) Marshal() ([]byte, error) {
	if c.Counters == nil {
		return json.Marshal(&Clock{ID: c.ID, Counters: map[string]int64{}})
	}
	return json.Marshal(c)
}

// Parse reconstructs a clock from its serialized form. The input must be
// a JSON object {"id":...,"clocks":{...}} whose counters are non-negative
// integers; anything else yields a *ParseError.
func Parse(data []byte) (*Clock, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var c Clock
	if err := dec.Decode(&c); err != nil {
		return nil, &ParseError{Reason: "malformed clock document", Err: err}
	}
	if dec.More() {
		return nil, &ParseError{Reason: "trailing data after clock document"}
	}
	if c.ID == "" {
		return nil, &ParseError{Reason: "missing or empty id"}
	}
	for node, counter := range c.Counters {
		if counter < 0 {
			return nil, &ParseError{Reason: fmt.Sprintf("negative counter %d for node %q", counter, node)}
		}
	}
	if c.Counters == nil {
		c.Counters = make(map[string]int64)
	}
	return &c, nil
}

// From normalizes any accepted clock source into a live Clock. A *Clock
// or Clock value yields an independent copy; []byte, string, and
// json.RawMessage are parsed as the serialized form. Every binary clock
// operation funnels its argument through From, so malformed arguments
// surface as *ParseError at the call site.
func From(src any) (*Clock, error) {
	switch v := src.(type) {
	case *Clock:
		if v == nil {
			return nil, &ParseError{Reason: "nil clock"}
		}
		return v.Copy(), nil
	case Clock:
		return v.Copy(), nil
	case json.RawMessage:
		return Parse(v)
	case []byte:
		return Parse(v)
	case string:
		return Parse([]byte(v))
	default:
		return nil, &ParseError{Reason: fmt.Sprintf("unsupported clock source type %T", src)}
	}
}
