package iban

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// CharClass is the set of characters a pattern segment accepts.
type CharClass uint8

const (
	Digits       CharClass = iota + 1 // 0-9
	Letters                           // A-Z
	Alphanumeric                      // A-Z and 0-9
)

// Accepts reports whether c belongs to the class. Only uppercase letters are accepted.
func (cc CharClass) Accepts(c byte) bool {
	isDigit := c >= '0' && c <= '9'
	isLetter := c >= 'A' && c <= 'Z'
	switch cc {
	case Digits:
		return isDigit
	case Letters:
		return isLetter
	case Alphanumeric:
		return isDigit || isLetter
	default:
		return false
	}
}

func (cc CharClass) String() string {
	switch cc {
	case Digits:
		return "[0-9]"
	case Letters:
		return "[A-Z]"
	case Alphanumeric:
		return "[A-Z0-9]"
	default:
		return "[]"
	}
}

// Segment is a run of Count characters of one class.
type Segment struct {
	Class CharClass
	Count int
}

// Pattern is an anchored sequence of segments describing the shape of a BBAN.
// The zero value matches only the empty string.
type Pattern struct {
	segments []Segment
	length   int
}

// NewPattern builds a Pattern from segments. Segments with a non-positive count
// or an unknown class are rejected.
func NewPattern(segments ...Segment) (Pattern, error) {
	p := Pattern{segments: make([]Segment, 0, len(segments))}
	for i, s := range segments {
		if s.Count <= 0 {
			return Pattern{}, fmt.Errorf("segment %d: count must be positive, got %d", i, s.Count)
		}
		if s.Class < Digits || s.Class > Alphanumeric {
			return Pattern{}, fmt.Errorf("segment %d: unknown character class %d", i, s.Class)
		}
		p.segments = append(p.segments, s)
		p.length += s.Count
	}
	return p, nil
}

var segmentRe = regexp.MustCompile(`\[(0-9|A-Z|A-Z0-9)\]\{([0-9]+)\}`)

// ParsePattern reads the anchored regular-expression form produced by
// Pattern.String, e.g. "^[A-Z]{4}[0-9]{10}$".
func ParsePattern(expr string) (Pattern, error) {
	body, ok := strings.CutPrefix(expr, "^")
	if ok {
		body, ok = strings.CutSuffix(body, "$")
	}
	if !ok {
		return Pattern{}, fmt.Errorf("pattern %q must be anchored with ^ and $", expr)
	}

	var segments []Segment
	rest := body
	for rest != "" {
		loc := segmentRe.FindStringSubmatchIndex(rest)
		if loc == nil || loc[0] != 0 {
			return Pattern{}, fmt.Errorf("pattern %q: unexpected input at %q", expr, rest)
		}
		count, err := strconv.Atoi(rest[loc[4]:loc[5]])
		if err != nil {
			return Pattern{}, fmt.Errorf("pattern %q: %w", expr, err)
		}
		var class CharClass
		switch rest[loc[2]:loc[3]] {
		case "0-9":
			class = Digits
		case "A-Z":
			class = Letters
		default:
			class = Alphanumeric
		}
		segments = append(segments, Segment{Class: class, Count: count})
		rest = rest[loc[1]:]
	}
	return NewPattern(segments...)
}

// MustParsePattern is like ParsePattern but panics on error. Use it for
// pattern literals known to be well formed.
func MustParsePattern(expr string) Pattern {
	p, err := ParsePattern(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Match reports whether s has exactly the shape of the pattern.
func (p Pattern) Match(s string) bool {
	if len(s) != p.length {
		return false
	}
	pos := 0
	for _, seg := range p.segments {
		for end := pos + seg.Count; pos < end; pos++ {
			if !seg.Class.Accepts(s[pos]) {
				return false
			}
		}
	}
	return true
}

// Len returns the number of characters a matching string has.
func (p Pattern) Len() int {
	return p.length
}

// Segments returns a copy of the pattern's segments.
func (p Pattern) Segments() []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// IsZero reports whether the pattern has no segments.
func (p Pattern) IsZero() bool {
	return len(p.segments) == 0
}

// String renders the pattern as an anchored regular expression.
func (p Pattern) String() string {
	var b strings.Builder
	b.WriteByte('^')
	for _, seg := range p.segments {
		fmt.Fprintf(&b, "%s{%d}", seg.Class, seg.Count)
	}
	b.WriteByte('$')
	return b.String()
}
