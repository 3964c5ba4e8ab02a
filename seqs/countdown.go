package seqs

import (
	"iter"
	"strconv"
)

// LiftoffText is how the terminal marker of a countdown is rendered.
const LiftoffText = "Blast off"

// Count is one element produced by Countdown: either a number or the terminal marker.
// The zero value is Number(0).
type Count struct {
	n    int
	done bool
}

// Liftoff is the terminal marker that ends every countdown.
var Liftoff = Count{done: true}

// Number returns the Count carrying n.
func Number(n int) Count {
	return Count{n: n}
}

// Int returns the number carried by c. ok is false for the terminal marker.
func (c Count) Int() (n int, ok bool) {
	return c.n, !c.done
}

// Done reports whether c is the terminal marker.
func (c Count) Done() bool {
	return c.done
}

func (c Count) String() string {
	if c.done {
		return LiftoffText
	}
	return strconv.Itoa(c.n)
}

// MarshalText implements encoding.TextMarshaler.
func (c Count) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// MarshalYAML encodes a number as a YAML int and the marker as a string.
func (c Count) MarshalYAML() (any, error) {
	if c.done {
		return LiftoffText, nil
	}
	return c.n, nil
}

// Countdown yields k, k-1, ..., 1 and then Liftoff.
//
// Only positive k produces numbers: Countdown(0) and any negative k yield Liftoff alone.
// The marker is always the last element and appears exactly once.
func Countdown(k int) iter.Seq[Count] {
	return func(yield func(Count) bool) {
		countdown(k, yield)
	}
}

// countdown reports whether the consumer wants more.
func countdown(k int, yield func(Count) bool) bool {
	if k > 0 {
		return yield(Number(k)) && countdown(k-1, yield)
	}
	return yield(Liftoff)
}
