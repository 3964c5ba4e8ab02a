package seqs

import "iter"

// Prefixes yields every non-empty prefix of s, shortest first.
// The last element is s itself. An empty s yields nothing.
//
// Prefixes of s are the prefixes of s without its last element, followed by s.
func Prefixes[S ~[]E, E any](s S) iter.Seq[S] {
	return func(yield func(S) bool) {
		prefixes(s, yield)
	}
}

// StringPrefixes yields every non-empty prefix of s by rune, shortest first.
func StringPrefixes(s string) iter.Seq[string] {
	return runeStrings(Prefixes([]rune(s)))
}

func prefixes[S ~[]E, E any](s S, yield func(S) bool) bool {
	n := len(s)
	if n == 0 {
		return true
	}
	return prefixes(s[:n-1], yield) && yield(s[:n:n])
}

// runeStrings converts each rune slice of seq to a string as it is pulled.
func runeStrings(seq iter.Seq[[]rune]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for r := range seq {
			if !yield(string(r)) {
				return
			}
		}
	}
}
