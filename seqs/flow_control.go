package seqs

import "iter"

// Take yields at most n elements of seq. It stops pulling from seq as soon as
// the n-th element has been yielded, so Take(Substrings(s), 1) never recurses
// past the first prefix.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		left := n
		if left <= 0 {
			return
		}
		for v := range seq {
			left--
			if !yield(v) || left == 0 {
				return
			}
		}
	}
}
