package tagvec

import "github.com/RoaringBitmap/roaring"

// TagSet is the read-only set of tags of a single value. The zero TagSet is empty.
type TagSet struct {
	bitmap *roaring.Bitmap
}

func newTagSet(ids []TagID) TagSet {
	b := roaring.New()
	for _, id := range ids {
		b.Add(uint32(id))
	}

	b.RunOptimize()
	return TagSet{bitmap: b}
}

// Contains tells whether the set holds a tag.
func (s TagSet) Contains(id TagID) bool {
	return s.bitmap != nil && s.bitmap.Contains(uint32(id))
}

// Len returns the number of tags in the set.
func (s TagSet) Len() int {
	if s.bitmap == nil {
		return 0
	}

	return int(s.bitmap.GetCardinality())
}

// IDs returns the tags of the set in ascending order.
func (s TagSet) IDs() []TagID {
	if s.bitmap == nil {
		return nil
	}

	ids := make([]TagID, 0, s.bitmap.GetCardinality())
	s.bitmap.Iterate(func(x uint32) bool {
		ids = append(ids, TagID(x))
		return true
	})

	return ids
}

// Equal tells whether two sets hold the same tags.
func (s TagSet) Equal(o TagSet) bool {
	if s.Len() == 0 || o.Len() == 0 {
		return s.Len() == o.Len()
	}

	return s.bitmap.Equals(o.bitmap)
}
