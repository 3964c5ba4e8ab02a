package seqs

import "iter"

// Len drains seq and reports how many elements it produced.
// Countdown(k) has length max(k, 0)+1; Substrings of n elements has length n*(n+1)/2.
func Len[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// Last drains seq and returns its final element. ok is false if seq was empty.
// For Countdown this is always Liftoff, for Prefixes it is the whole input.
func Last[T any](seq iter.Seq[T]) (last T, ok bool) {
	for v := range seq {
		last, ok = v, true
	}
	return last, ok
}
