package tagvec

import "math"

// TagID identifies an interned tag name within a single store. Ids are assigned in the order the names are first
// seen, starting from zero, and are never reused. Ids of different stores are not comparable.
type TagID uint32

type tagTable struct {
	ids   map[string]TagID
	names []string
}

func newTagTable(expected int) *tagTable {
	if expected < 0 {
		expected = 0
	}

	return &tagTable{
		ids:   make(map[string]TagID, expected),
		names: make([]string, 0, expected),
	}
}

// intern returns the id of a tag name, registering it when it was not seen before. The second return value tells
// whether the name was new.
func (t *tagTable) intern(name string) (TagID, bool) {
	if id, ok := t.ids[name]; ok {
		return id, false
	}

	if uint64(len(t.names)) > math.MaxUint32 {
		panic("tagvec: tag id space exhausted")
	}

	id := TagID(len(t.names))
	t.ids[name] = id
	t.names = append(t.names, name)
	return id, true
}

func (t *tagTable) lookup(name string) (TagID, bool) {
	id, ok := t.ids[name]
	return id, ok
}

func (t *tagTable) name(id TagID) (string, bool) {
	if int(id) >= len(t.names) {
		return "", false
	}

	return t.names[id], true
}

func (t *tagTable) len() int { return len(t.names) }
