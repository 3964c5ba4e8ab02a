package seqs

import "iter"

// Producer is a pull-based, single-pass source of values.
// Consumers call HasNext before each Next and cannot rewind.
type Producer[T any] interface {
	// HasNext reports whether another element is available.
	HasNext() bool

	// Next returns the next element and advances the producer.
	// Once the producer is exhausted it returns the zero value of T.
	Next() T

	// Index returns the position of the element last returned by Next, or -1 before the first call.
	Index() int
}

var (
	_ Producer[Count] = (*CountdownProducer)(nil)
	_ Producer[[]int] = (*PrefixProducer[[]int, int])(nil)
	_ Producer[[]int] = (*SubstringProducer[[]int, int])(nil)
)

// Drain returns a sequence that pulls the remaining elements of p.
// The sequence shares p's position, so it can only be ranged over once.
func Drain[T any](p Producer[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for p.HasNext() {
			if !yield(p.Next()) {
				return
			}
		}
	}
}

// Pull converts seq into a Producer. The caller must call stop when done
// with the producer unless it was read to the end.
func Pull[T any](seq iter.Seq[T]) (Producer[T], func()) {
	next, stop := iter.Pull(seq)
	return &pulled[T]{next: next, index: -1}, stop
}

type pulled[T any] struct {
	next    func() (T, bool)
	buf     T
	ok      bool
	fetched bool
	index   int
}

func (p *pulled[T]) HasNext() bool {
	if !p.fetched {
		p.buf, p.ok = p.next()
		p.fetched = true
	}
	return p.ok
}

func (p *pulled[T]) Next() T {
	var zero T
	if !p.HasNext() {
		return zero
	}
	v := p.buf
	p.buf, p.fetched = zero, false
	p.index++
	return v
}

func (p *pulled[T]) Index() int {
	return p.index
}

// CountdownProducer is the pull-based form of Countdown.
// It emits its own number, then drains a producer for k-1 created on first use.
type CountdownProducer struct {
	k       int
	emitted bool
	inner   *CountdownProducer
	index   int
}

// NewCountdownProducer returns a producer yielding the same elements as Countdown(k).
func NewCountdownProducer(k int) *CountdownProducer {
	return &CountdownProducer{k: k, index: -1}
}

func (p *CountdownProducer) HasNext() bool {
	if !p.emitted {
		return true
	}
	if p.k <= 0 {
		return false
	}
	return p.delegate().HasNext()
}

func (p *CountdownProducer) Next() Count {
	if !p.HasNext() {
		return Count{}
	}
	p.index++
	if !p.emitted {
		p.emitted = true
		if p.k > 0 {
			return Number(p.k)
		}
		return Liftoff
	}
	return p.delegate().Next()
}

func (p *CountdownProducer) Index() int {
	return p.index
}

func (p *CountdownProducer) delegate() *CountdownProducer {
	if p.inner == nil {
		p.inner = NewCountdownProducer(p.k - 1)
	}
	return p.inner
}

// PrefixProducer is the pull-based form of Prefixes.
// It drains a producer over s without its last element before emitting s.
type PrefixProducer[S ~[]E, E any] struct {
	s       S
	emitted bool
	inner   *PrefixProducer[S, E]
	index   int
}

// NewPrefixProducer returns a producer yielding the same elements as Prefixes(s).
func NewPrefixProducer[S ~[]E, E any](s S) *PrefixProducer[S, E] {
	return &PrefixProducer[S, E]{s: s, index: -1}
}

func (p *PrefixProducer[S, E]) HasNext() bool {
	// The inner producer only holds shorter prefixes, so s itself is always still pending.
	return len(p.s) > 0 && !p.emitted
}

func (p *PrefixProducer[S, E]) Next() S {
	if !p.HasNext() {
		var zero S
		return zero
	}
	p.index++
	if inner := p.delegate(); inner.HasNext() {
		return inner.Next()
	}
	p.emitted = true
	n := len(p.s)
	return p.s[:n:n]
}

func (p *PrefixProducer[S, E]) Index() int {
	return p.index
}

func (p *PrefixProducer[S, E]) delegate() *PrefixProducer[S, E] {
	if p.inner == nil {
		p.inner = NewPrefixProducer(p.s[:len(p.s)-1])
	}
	return p.inner
}

// SubstringProducer is the pull-based form of Substrings.
// It drains a PrefixProducer over s, then a SubstringProducer over s without its first element.
type SubstringProducer[S ~[]E, E any] struct {
	s     S
	head  *PrefixProducer[S, E]
	rest  *SubstringProducer[S, E]
	index int
}

// NewSubstringProducer returns a producer yielding the same elements as Substrings(s).
func NewSubstringProducer[S ~[]E, E any](s S) *SubstringProducer[S, E] {
	return &SubstringProducer[S, E]{s: s, index: -1}
}

func (p *SubstringProducer[S, E]) HasNext() bool {
	if len(p.s) == 0 {
		return false
	}
	return p.prefixes().HasNext() || p.remainder().HasNext()
}

func (p *SubstringProducer[S, E]) Next() S {
	if !p.HasNext() {
		var zero S
		return zero
	}
	p.index++
	if head := p.prefixes(); head.HasNext() {
		return head.Next()
	}
	return p.remainder().Next()
}

func (p *SubstringProducer[S, E]) Index() int {
	return p.index
}

func (p *SubstringProducer[S, E]) prefixes() *PrefixProducer[S, E] {
	if p.head == nil {
		p.head = NewPrefixProducer(p.s)
	}
	return p.head
}

func (p *SubstringProducer[S, E]) remainder() *SubstringProducer[S, E] {
	if p.rest == nil {
		p.rest = NewSubstringProducer(p.s[1:])
	}
	return p.rest
}
