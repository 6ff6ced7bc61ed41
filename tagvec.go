package tagvec

import (
	"iter"

	"github.com/pkg/errors"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

// Options are used to initialize a store.
type Options struct {

	// Logger receives debug level entries about interned tags, pushes and queries. Defaults to a no-op logger.
	Logger *zap.Logger

	// Scope receives the store metrics, under the tagvec sub-scope. Defaults to tally.NoopScope.
	Scope tally.Scope

	// ExpectedElements is a capacity hint for the number of values that will be pushed.
	ExpectedElements int

	// ExpectedTags is a capacity hint for the number of distinct tag names.
	ExpectedTags int
}

type slot[T any] struct {
	value T
	tags  TagSet
}

// Store holds values together with their tags, in insertion order. Values can be only appended, and the index of a
// value never changes.
type Store[T any] struct {
	slots   []slot[T]
	tags    *tagTable
	log     *zap.Logger
	metrics *metrics
}

// ErrOutOfRange is returned when a value is addressed with an index outside of the store.
var ErrOutOfRange = errors.New("index out of range")

// New creates an empty store.
func New[T any](o Options) *Store[T] {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	if o.ExpectedElements < 0 {
		o.ExpectedElements = 0
	}

	return &Store[T]{
		slots:   make([]slot[T], 0, o.ExpectedElements),
		tags:    newTagTable(o.ExpectedTags),
		log:     o.Logger.Named("tagvec"),
		metrics: newMetrics(o.Scope),
	}
}

func (s *Store[T]) checkIndex(i int) error {
	if i < 0 || i >= len(s.slots) {
		return errors.Wrapf(ErrOutOfRange, "index %d, length %d", i, len(s.slots))
	}

	return nil
}

// Push appends a value with its tags. Repeated tags are stored only once. Panics if the tags would exceed the
// 2^32 distinct names that a TagID can address.
func (s *Store[T]) Push(value T, tags ...string) {
	ids := make([]TagID, 0, len(tags))
	for _, name := range tags {
		id, isNew := s.tags.intern(name)
		if isNew {
			s.log.Debug("tag interned", zap.String("tag", name), zap.Uint32("id", uint32(id)))
			s.metrics.interned.Inc(1)
		}

		ids = append(ids, id)
	}

	set := newTagSet(ids)
	s.slots = append(s.slots, slot[T]{value: value, tags: set})

	s.log.Debug("element pushed", zap.Int("index", len(s.slots)-1), zap.Int("tags", set.Len()))
	s.metrics.pushes.Inc(1)
	s.metrics.elements.Update(float64(len(s.slots)))
	s.metrics.tags.Update(float64(s.tags.len()))
}

// Len returns the number of values in the store.
func (s *Store[T]) Len() int { return len(s.slots) }

// NumTags returns the number of distinct tag names seen by the store.
func (s *Store[T]) NumTags() int { return s.tags.len() }

// ValueAt returns the value at an index, or ErrOutOfRange.
func (s *Store[T]) ValueAt(i int) (T, error) {
	if err := s.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}

	return s.slots[i].value, nil
}

// TagsOf returns the tag set of the value at an index, or ErrOutOfRange.
func (s *Store[T]) TagsOf(i int) (TagSet, error) {
	if err := s.checkIndex(i); err != nil {
		return TagSet{}, err
	}

	return s.slots[i].tags, nil
}

// TagNames returns the tag names of the value at an index, in the order the store first saw them.
func (s *Store[T]) TagNames(i int) ([]string, error) {
	set, err := s.TagsOf(i)
	if err != nil {
		return nil, err
	}

	ids := set.IDs()
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		name, _ := s.tags.name(id)
		names = append(names, name)
	}

	return names, nil
}

// ResolveTag returns the id of a tag name, without registering it. The second return value is false when the store
// has never seen the name.
func (s *Store[T]) ResolveTag(name string) (TagID, bool) {
	return s.tags.lookup(name)
}

// TagName returns the name of an interned tag.
func (s *Store[T]) TagName(id TagID) (string, bool) {
	return s.tags.name(id)
}

// All iterates over every value of the store in insertion order.
func (s *Store[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := len(s.slots)
		for i := 0; i < n; i++ {
			if !yield(i, s.slots[i].value) {
				return
			}
		}
	}
}
