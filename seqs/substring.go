package seqs

import "iter"

// Substrings yields every non-empty contiguous sub-slice of s exactly once.
//
// Elements are grouped by start index ascending and, within a group, by length ascending:
// Substrings([]int{1, 2}) yields [1], [1 2], [2]. A slice of length n yields n*(n+1)/2
// elements; an empty s yields nothing.
func Substrings[S ~[]E, E any](s S) iter.Seq[S] {
	return func(yield func(S) bool) {
		substrings(s, yield)
	}
}

// StringSubstrings yields every non-empty substring of s by rune, in the order of [Substrings].
// StringSubstrings("ab") yields "a", "ab", "b".
func StringSubstrings(s string) iter.Seq[string] {
	return runeStrings(Substrings([]rune(s)))
}

// substrings emits the prefixes of s, which are exactly the substrings
// starting at index 0, then recurses on the rest.
func substrings[S ~[]E, E any](s S, yield func(S) bool) bool {
	if len(s) == 0 {
		return true
	}
	return prefixes(s, yield) && substrings(s[1:], yield)
}
