package tagvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagSet(t *testing.T) {
	t.Run("zero set", func(t *testing.T) {
		var s TagSet
		assert.Equal(t, 0, s.Len())
		assert.False(t, s.Contains(0))
		assert.Nil(t, s.IDs())
		assert.True(t, s.Equal(newTagSet(nil)))
	})

	t.Run("contains", func(t *testing.T) {
		s := newTagSet([]TagID{3, 1, 70000})
		assert.True(t, s.Contains(1))
		assert.True(t, s.Contains(3))
		assert.True(t, s.Contains(70000))
		assert.False(t, s.Contains(2))
		assert.Equal(t, 3, s.Len())
	})

	t.Run("ids ascending and unique", func(t *testing.T) {
		s := newTagSet([]TagID{5, 2, 5, 9, 2})
		assert.Equal(t, []TagID{2, 5, 9}, s.IDs())
	})

	t.Run("equal", func(t *testing.T) {
		assert.True(t, newTagSet([]TagID{1, 2}).Equal(newTagSet([]TagID{2, 1, 1})))
		assert.False(t, newTagSet([]TagID{1, 2}).Equal(newTagSet([]TagID{1})))
		assert.False(t, newTagSet([]TagID{1}).Equal(TagSet{}))
	})
}
