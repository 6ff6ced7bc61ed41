package tagvec

import (
	"strings"

	"github.com/pkg/errors"
)

// Kind tells the shape of a predicate node.
type Kind int

// The zero Kind marks an invalid, zero Predicate.
const (
	KindInvalid Kind = iota
	KindTag
	KindAnd
	KindOr
	KindNot
)

// Predicate is an immutable boolean expression over the tags of a value. Predicates are not bound to a store: the
// tag names are resolved against whichever store the predicate is evaluated on, so the same predicate can be used
// with multiple stores.
//
// The zero Predicate is invalid. Use Tag, And, Or, Not, All, Any or Parse to create one.
type Predicate struct {
	kind        Kind
	name        string
	left, right *Predicate
}

// ErrInvalidPredicate is returned when evaluating a zero Predicate, or one built from a zero Predicate.
var ErrInvalidPredicate = errors.New("invalid predicate")

func (k Kind) String() string {
	switch k {
	case KindTag:
		return "tag"
	case KindAnd:
		return "and"
	case KindOr:
		return "or"
	case KindNot:
		return "not"
	default:
		return "invalid"
	}
}

// Tag matches the values that have the named tag.
func Tag(name string) Predicate {
	return Predicate{kind: KindTag, name: name}
}

// And matches the values matching both p and q. q is not evaluated when p doesn't match.
func And(p, q Predicate) Predicate {
	return Predicate{kind: KindAnd, left: &p, right: &q}
}

// Or matches the values matching either p or q. q is not evaluated when p matches.
func Or(p, q Predicate) Predicate {
	return Predicate{kind: KindOr, left: &p, right: &q}
}

// Not matches the values that don't match p.
func Not(p Predicate) Predicate {
	return Predicate{kind: KindNot, left: &p}
}

func fold(op func(Predicate, Predicate) Predicate, p []Predicate) Predicate {
	if len(p) == 0 {
		return Predicate{}
	}

	r := p[0]
	for _, pi := range p[1:] {
		r = op(r, pi)
	}

	return r
}

// All combines the arguments with And, from left to right. Without arguments, it returns the zero Predicate.
func All(p ...Predicate) Predicate { return fold(And, p) }

// Any combines the arguments with Or, from left to right. Without arguments, it returns the zero Predicate.
func Any(p ...Predicate) Predicate { return fold(Or, p) }

// Kind returns the shape of the predicate.
func (p Predicate) Kind() Kind { return p.kind }

// Name returns the tag name of a Tag predicate, and an empty string otherwise.
func (p Predicate) Name() string { return p.name }

// Children returns the operands of And, Or and Not predicates.
func (p Predicate) Children() []Predicate {
	switch p.kind {
	case KindAnd, KindOr:
		return []Predicate{*p.left, *p.right}
	case KindNot:
		return []Predicate{*p.left}
	default:
		return nil
	}
}

// Size returns the number of nodes in the expression.
func (p Predicate) Size() int {
	n := 1
	for _, c := range p.Children() {
		n += c.Size()
	}

	return n
}

// Check returns ErrInvalidPredicate when the expression contains a zero Predicate.
func Check(p Predicate) error {
	switch p.kind {
	case KindTag:
		return nil
	case KindAnd, KindOr, KindNot:
		for _, c := range p.Children() {
			if err := Check(c); err != nil {
				return err
			}
		}

		return nil
	default:
		return errors.WithStack(ErrInvalidPredicate)
	}
}

func isBare(name string) bool {
	if name == "" {
		return false
	}

	for i := 0; i < len(name); i++ {
		if isSpace(name[i]) || isSpecial(name[i]) || name[i] == '\\' {
			return false
		}
	}

	return true
}

func quote(name string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(name); i++ {
		if name[i] == '"' || name[i] == '\\' {
			b.WriteByte('\\')
		}

		b.WriteByte(name[i])
	}

	b.WriteByte('"')
	return b.String()
}

func (p Predicate) operand() string {
	switch p.kind {
	case KindAnd, KindOr:
		return "(" + p.String() + ")"
	default:
		return p.String()
	}
}

// String returns the textual form of the predicate, as accepted by Parse.
func (p Predicate) String() string {
	switch p.kind {
	case KindTag:
		if isBare(p.name) {
			return p.name
		}

		return quote(p.name)
	case KindAnd:
		return p.left.operand() + " && " + p.right.operand()
	case KindOr:
		return p.left.operand() + " || " + p.right.operand()
	case KindNot:
		return "!" + p.left.operand()
	default:
		return "<invalid>"
	}
}
