// Package order sorts collections of vector clocks into causal order,
// latest first, grouping clocks that tie at the same causal rank and are
// truly concurrent with one another.
package order
