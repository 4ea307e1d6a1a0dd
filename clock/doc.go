// Package clock implements vector clocks for tracking causality between
// events on independently operating nodes. Each node owns one clock that
// it advances on local events and merges with clocks received from peers;
// comparing two clocks tells whether one causally precedes the other,
// they are equal, or they are concurrent.
package clock
