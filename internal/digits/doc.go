// Package digits holds the embedded expansion of e and turns decimal text
// into an immutable digit Sequence.
//
// A Sequence is built once and never mutated; any number of scanners may read
// the same Sequence.
package digits
