/*
Package seqs provides recursive, lazily evaluated generators built on Go 1.23+ iterators (iter.Seq).

It includes:

  - **Generators**: [Countdown], [Prefixes] and [Substrings], each defined by structural
    recursion where the recursive case re-emits an inner generator of the same kind.
  - **Producers**: pull-based equivalents ([CountdownProducer], [PrefixProducer],
    [SubstringProducer]) implementing [Producer] with explicit step state.
  - **Helpers**: [Take], [Len], [Last], plus [Drain] and [Pull] to move
    between the push and pull models.

# Laziness

Nothing is computed before the consumer asks for it. Every generator suspends after each
element and stops as soon as the consumer stops, so abandoning an enumeration early costs
nothing and holds no resources.

	for sub := range seqs.Substrings([]int{1, 2, 3}) {
		if len(sub) > 2 {
			break
		}
		fmt.Println(sub)
	}

# Ordering

[Prefixes] yields shortest first. [Substrings] yields every substring anchored at index 0
(shortest first), then those anchored at index 1, and so on. Inputs are never modified;
yielded slices alias the input with their capacity clipped to their length.
*/
package seqs
