package tagvec

import (
	"strings"

	"github.com/pkg/errors"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenTag
	tokenAnd
	tokenOr
	tokenNot
	tokenLParen
	tokenRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

type parser struct {
	tokens  []token
	current int
}

// ErrSyntax is returned by Parse when the query text is malformed.
var ErrSyntax = errors.New("syntax error")

func syntaxError(pos int, format string, args ...interface{}) error {
	return errors.Wrapf(ErrSyntax, "offset %d: "+format, append([]interface{}{pos}, args...)...)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func isSpecial(c byte) bool {
	switch c {
	case '!', '&', '|', '(', ')', '"':
		return true
	default:
		return false
	}
}

func (k tokenKind) String() string {
	switch k {
	case tokenTag:
		return "tag"
	case tokenAnd:
		return "'&&'"
	case tokenOr:
		return "'||'"
	case tokenNot:
		return "'!'"
	case tokenLParen:
		return "'('"
	case tokenRParen:
		return "')'"
	default:
		return "end of query"
	}
}

func readQuoted(query string, pos int) (string, int, error) {
	var b strings.Builder
	start := pos
	pos++
	for pos < len(query) {
		switch c := query[pos]; c {
		case '"':
			return b.String(), pos + 1, nil
		case '\\':
			if pos+1 == len(query) {
				return "", 0, syntaxError(start, "unterminated string")
			}

			b.WriteByte(query[pos+1])
			pos += 2
		default:
			b.WriteByte(c)
			pos++
		}
	}

	return "", 0, syntaxError(start, "unterminated string")
}

func tokenize(query string) ([]token, error) {
	var tokens []token
	for pos := 0; pos < len(query); {
		c := query[pos]
		switch {
		case isSpace(c):
			pos++
		case c == '(':
			tokens = append(tokens, token{kind: tokenLParen, text: "(", pos: pos})
			pos++
		case c == ')':
			tokens = append(tokens, token{kind: tokenRParen, text: ")", pos: pos})
			pos++
		case c == '!':
			tokens = append(tokens, token{kind: tokenNot, text: "!", pos: pos})
			pos++
		case c == '&' || c == '|':
			if pos+1 == len(query) || query[pos+1] != c {
				return nil, syntaxError(pos, "expected '%c%c'", c, c)
			}

			kind := tokenAnd
			if c == '|' {
				kind = tokenOr
			}

			tokens = append(tokens, token{kind: kind, text: query[pos : pos+2], pos: pos})
			pos += 2
		case c == '"':
			name, next, err := readQuoted(query, pos)
			if err != nil {
				return nil, err
			}

			tokens = append(tokens, token{kind: tokenTag, text: name, pos: pos})
			pos = next
		default:
			start := pos
			for pos < len(query) && !isSpace(query[pos]) && !isSpecial(query[pos]) {
				pos++
			}

			tokens = append(tokens, token{kind: tokenTag, text: query[start:pos], pos: start})
		}
	}

	tokens = append(tokens, token{kind: tokenEOF, pos: len(query)})
	return tokens, nil
}

func (p *parser) peek() token { return p.tokens[p.current] }

func (p *parser) read() token {
	t := p.tokens[p.current]
	if t.kind != tokenEOF {
		p.current++
	}

	return t
}

func (p *parser) parseOr() (Predicate, error) {
	left, err := p.parseAnd()
	if err != nil {
		return Predicate{}, err
	}

	for p.peek().kind == tokenOr {
		p.read()
		right, err := p.parseAnd()
		if err != nil {
			return Predicate{}, err
		}

		left = Or(left, right)
	}

	return left, nil
}

func (p *parser) parseAnd() (Predicate, error) {
	left, err := p.parseUnary()
	if err != nil {
		return Predicate{}, err
	}

	for p.peek().kind == tokenAnd {
		p.read()
		right, err := p.parseUnary()
		if err != nil {
			return Predicate{}, err
		}

		left = And(left, right)
	}

	return left, nil
}

func (p *parser) parseUnary() (Predicate, error) {
	t := p.read()
	switch t.kind {
	case tokenTag:
		return Tag(t.text), nil
	case tokenNot:
		inner, err := p.parseUnary()
		if err != nil {
			return Predicate{}, err
		}

		return Not(inner), nil
	case tokenLParen:
		inner, err := p.parseOr()
		if err != nil {
			return Predicate{}, err
		}

		if closing := p.read(); closing.kind != tokenRParen {
			return Predicate{}, syntaxError(closing.pos, "expected ')', got %v", closing.kind)
		}

		return inner, nil
	default:
		return Predicate{}, syntaxError(t.pos, "unexpected %v", t.kind)
	}
}

// Parse creates a predicate from its textual form. Tags are written as bare words, or between double quotes when
// they contain whitespace or any of the characters !&|()"\. Inside quotes, a backslash escapes the next character.
// The operators are ! (not), && (and) and || (or), in decreasing order of precedence, and parentheses can be used
// for grouping. E.g:
//
//	veg && !(junk || "deep fried")
//
// Parse returns an error wrapping ErrSyntax when the query is malformed or empty.
func Parse(query string) (Predicate, error) {
	tokens, err := tokenize(query)
	if err != nil {
		return Predicate{}, err
	}

	p := &parser{tokens: tokens}
	if p.peek().kind == tokenEOF {
		return Predicate{}, syntaxError(0, "empty query")
	}

	root, err := p.parseOr()
	if err != nil {
		return Predicate{}, err
	}

	if t := p.peek(); t.kind != tokenEOF {
		return Predicate{}, syntaxError(t.pos, "unexpected %v", t.kind)
	}

	return root, nil
}
