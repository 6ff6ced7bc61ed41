package tagvec

import (
	"iter"

	"go.uber.org/zap"
)

// bound is a predicate with its tag names resolved against a store.
type bound struct {
	kind        Kind
	id          TagID
	known       bool
	left, right *bound
}

// Cursor iterates over the indices of the values matching a predicate, in insertion order. It holds the next index
// to probe. The tag names of the predicate are resolved, and the length of the store is taken, when the cursor is
// created or reset, so values pushed afterwards are visited only after a Reset.
type Cursor[T any] struct {
	store *Store[T]
	pred  Predicate
	root  *bound
	next  int
	end   int
}

func bind[T any](s *Store[T], p Predicate) *bound {
	b := &bound{kind: p.kind}
	switch p.kind {
	case KindTag:
		b.id, b.known = s.ResolveTag(p.name)
	case KindAnd, KindOr:
		b.left = bind(s, *p.left)
		b.right = bind(s, *p.right)
	case KindNot:
		b.left = bind(s, *p.left)
	}

	return b
}

func (b *bound) eval(tags TagSet) bool {
	switch b.kind {
	case KindTag:
		return b.known && tags.Contains(b.id)
	case KindAnd:
		return b.left.eval(tags) && b.right.eval(tags)
	case KindOr:
		return b.left.eval(tags) || b.right.eval(tags)
	default:
		return !b.left.eval(tags)
	}
}

// Matches tells whether the value at index i matches a predicate. It returns ErrInvalidPredicate for an invalid
// predicate, and ErrOutOfRange when i is outside of the store.
func Matches[T any](s *Store[T], p Predicate, i int) (bool, error) {
	if err := Check(p); err != nil {
		return false, err
	}

	tags, err := s.TagsOf(i)
	if err != nil {
		return false, err
	}

	return bind(s, p).eval(tags), nil
}

// NewCursor creates a cursor over the values of a store matching a predicate. A cursor over an invalid predicate
// yields no indices.
func NewCursor[T any](s *Store[T], p Predicate) *Cursor[T] {
	c := &Cursor[T]{store: s, pred: p}
	c.Reset()
	return c
}

// Reset restarts the iteration from the first value, resolving the tag names again against the current state of
// the store.
func (c *Cursor[T]) Reset() {
	c.next = 0
	c.end = c.store.Len()
	c.root = nil

	s := c.store
	s.metrics.queries.Inc(1)
	if err := Check(c.pred); err != nil {
		s.log.Debug("query rejected", zap.Error(err))
		return
	}

	c.root = bind(s, c.pred)
	s.log.Debug("query started", zap.Stringer("predicate", c.pred), zap.Int("len", c.end))
}

// Next returns the next matching index. The second return value is false when there are no more matches.
func (c *Cursor[T]) Next() (int, bool) {
	if c.root == nil {
		return 0, false
	}

	m := c.store.metrics
	for c.next < c.end {
		i := c.next
		c.next++
		m.visited.Inc(1)
		if c.root.eval(c.store.slots[i].tags) {
			m.matched.Inc(1)
			return i, true
		}
	}

	return 0, false
}

// Query returns the indices of the values matching a predicate, in ascending order. The sequence is evaluated
// lazily: values are checked only as the sequence is consumed, and nothing is checked after the consumer stops.
// Every iteration starts over, and sees the store as it is at the start of the iteration.
func Query[T any](s *Store[T], p Predicate) iter.Seq[int] {
	return func(yield func(int) bool) {
		c := NewCursor(s, p)
		for {
			i, ok := c.Next()
			if !ok || !yield(i) {
				return
			}
		}
	}
}

// Collect returns all the indices matching a predicate.
func Collect[T any](s *Store[T], p Predicate) []int {
	var indices []int
	for i := range Query(s, p) {
		indices = append(indices, i)
	}

	return indices
}

// Count returns the number of values matching a predicate.
func Count[T any](s *Store[T], p Predicate) int {
	var n int
	for range Query(s, p) {
		n++
	}

	return n
}
