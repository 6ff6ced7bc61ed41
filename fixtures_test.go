package tagvec

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type food struct {
	name string
	tags []string
}

var foods = []food{
	{"salad", []string{"healthy", "veg"}},
	{"chips", []string{"junk"}},
	{"broccoli", []string{"healthy", "veg"}},
	{"fries", []string{"junk", "veg"}},
	{"candy", []string{"junk"}},
}

var vocabulary = []string{"a", "b", "c", "d", "e", "f"}

type observed struct {
	logs  *observer.ObservedLogs
	scope tally.TestScope
}

func newFoodStore() *Store[string] {
	s := New[string](Options{})
	for _, f := range foods {
		s.Push(f.name, f.tags...)
	}

	return s
}

func newObservedStore() (*Store[string], observed) {
	core, logs := observer.New(zap.DebugLevel)
	scope := tally.NewTestScope("", nil)
	s := New[string](Options{
		Logger: zap.New(core),
		Scope:  scope,
	})

	return s, observed{logs: logs, scope: scope}
}

func (o observed) counter(name string) int64 {
	for _, c := range o.scope.Snapshot().Counters() {
		if c.Name() == name {
			return c.Value()
		}
	}

	return 0
}

func (o observed) gauge(name string) float64 {
	for _, g := range o.scope.Snapshot().Gauges() {
		if g.Name() == name {
			return g.Value()
		}
	}

	return 0
}

// randomStore creates a store with n values, each tagged with a random subset of the vocabulary, sometimes with
// repeated tags.
func randomStore(r *rand.Rand, n int) *Store[int] {
	s := New[int](Options{})
	for i := 0; i < n; i++ {
		var tags []string
		for _, t := range vocabulary {
			if r.IntN(3) == 0 {
				tags = append(tags, t)
			}
		}

		if len(tags) > 0 && r.IntN(4) == 0 {
			tags = append(tags, tags[0])
		}

		s.Push(i, tags...)
	}

	return s
}

// randomPredicate creates a predicate of the given depth over the vocabulary, including a tag that no store knows.
func randomPredicate(r *rand.Rand, depth int) Predicate {
	if depth == 0 || r.IntN(4) == 0 {
		if r.IntN(10) == 0 {
			return Tag("unknown")
		}

		return Tag(vocabulary[r.IntN(len(vocabulary))])
	}

	switch r.IntN(3) {
	case 0:
		return And(randomPredicate(r, depth-1), randomPredicate(r, depth-1))
	case 1:
		return Or(randomPredicate(r, depth-1), randomPredicate(r, depth-1))
	default:
		return Not(randomPredicate(r, depth-1))
	}
}

func newRand(t *testing.T) *rand.Rand {
	t.Helper()
	return rand.New(rand.NewPCG(42, uint64(len(t.Name()))))
}

func indexSet(indices []int) map[int]bool {
	m := make(map[int]bool, len(indices))
	for _, i := range indices {
		m[i] = true
	}

	return m
}

func describe(p Predicate) string {
	return fmt.Sprintf("%v (size %d)", p, p.Size())
}
