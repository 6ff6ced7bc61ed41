/*
Package tagvec provides an in-memory, append-only vector of values where every value carries a set of tags.

Values are pushed together with their tags, and addressed afterwards by their insertion index. The indices of the
values matching a boolean expression over their tags can be queried, e.g. "everything tagged veg, but not tagged
healthy". Expressions are built from the Tag, And, Or and Not constructors, or parsed from a short textual form with
Parse. Query results are produced lazily and always in insertion order.

Tag names are interned by the store: every distinct name gets a small, stable TagID on first sight, and the tag set
of each value is stored as a compressed bitmap of these ids. A tag name in a query that the store has never seen
simply matches nothing.

The store does no locking. Pushing requires exclusive access, while queries may run concurrently with each other as
long as no push is in progress.
*/
package tagvec
