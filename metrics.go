package tagvec

import "github.com/uber-go/tally/v4"

const metricsScope = "tagvec"

type metrics struct {
	pushes   tally.Counter
	interned tally.Counter
	queries  tally.Counter
	visited  tally.Counter
	matched  tally.Counter
	elements tally.Gauge
	tags     tally.Gauge
}

func newMetrics(scope tally.Scope) *metrics {
	if scope == nil {
		scope = tally.NoopScope
	}

	scope = scope.SubScope(metricsScope)
	return &metrics{
		pushes:   scope.Counter("pushes"),
		interned: scope.Counter("tags.interned"),
		queries:  scope.Counter("queries"),
		visited:  scope.Counter("query.visited"),
		matched:  scope.Counter("query.matched"),
		elements: scope.Gauge("elements"),
		tags:     scope.Gauge("tags"),
	}
}
