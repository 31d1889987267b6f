// Package rangemap implements piecewise-linear maps over uint64 values.
//
// A Map is a set of disjoint rules, each translating a source interval to a
// destination interval of the same length. Values not covered by any rule map
// to themselves. Maps are chained into a Pipeline to carry points or whole
// intervals through several translation stages.
package rangemap

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// A Rule maps the source interval [Src, Src+Len) onto [Dst, Dst+Len).
type Rule struct {
	Dst uint64
	Src uint64
	Len uint64
}

// SrcEnd is the exclusive end of r's source interval.
func (r Rule) SrcEnd() uint64 { return r.Src + r.Len }

// Offset is the amount r adds to each source value, in wrapping arithmetic.
func (r Rule) Offset() uint64 { return r.Dst - r.Src }

func (r Rule) contains(v uint64) bool { return v >= r.Src && v < r.SrcEnd() }

func (r Rule) translate(v uint64) uint64 { return v + r.Offset() }

func (r Rule) String() string {
	return fmt.Sprintf("[%d,%d)->[%d,%d)", r.Src, r.SrcEnd(), r.Dst, r.Dst+r.Len)
}

// ParseRule parses a line of the form "dst src len".
func ParseRule(line string) (Rule, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Rule{}, &ParseError{
			Text: line,
			Err:  fmt.Errorf("got %d fields; want 3", len(fields)),
		}
	}
	var nums [3]uint64
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return Rule{}, &ParseError{Text: line, Err: err}
		}
		nums[i] = n
	}
	return Rule{Dst: nums[0], Src: nums[1], Len: nums[2]}, nil
}

// A Map is an immutable set of rules sorted by source start.
type Map struct {
	// Name is optional and only used for display (e.g. "seed-to-soil").
	Name string

	rules []Rule
}

// New builds a Map from rules given in any order. The rules are copied.
// New returns a *ValidationError if any rule is empty, overflows, or
// overlaps another rule in source space.
func New(rules []Rule) (*Map, error) {
	rs := make([]Rule, len(rules))
	copy(rs, rules)
	sort.Slice(rs, func(i, j int) bool { return rs[i].Src < rs[j].Src })
	for i, r := range rs {
		if r.Len == 0 {
			return nil, &ValidationError{Rule: r, Reason: "zero length"}
		}
		if r.Src > math.MaxUint64-r.Len || r.Dst > math.MaxUint64-r.Len {
			return nil, &ValidationError{Rule: r, Reason: "overflows uint64"}
		}
		if i > 0 && rs[i-1].SrcEnd() > r.Src {
			return nil, &ValidationError{
				Rule:   r,
				Reason: fmt.Sprintf("overlaps %s", rs[i-1]),
			}
		}
	}
	return &Map{rules: rs}, nil
}

// Parse builds a Map from rule lines, as accepted by ParseRule.
// Any malformed line fails the whole parse with a *ParseError.
func Parse(lines []string) (*Map, error) {
	rules := make([]Rule, 0, len(lines))
	for i, line := range lines {
		r, err := ParseRule(line)
		if err != nil {
			err.(*ParseError).Line = i + 1
			return nil, err
		}
		rules = append(rules, r)
	}
	return New(rules)
}

// Rules returns a copy of m's rules in ascending source order.
func (m *Map) Rules() []Rule {
	rs := make([]Rule, len(m.rules))
	copy(rs, m.rules)
	return rs
}

// first returns the index of the first rule ending after v.
func (m *Map) first(v uint64) int {
	return sort.Search(len(m.rules), func(i int) bool { return m.rules[i].SrcEnd() > v })
}

// Correspond maps a single value. Values outside every rule are unchanged.
func (m *Map) Correspond(v uint64) uint64 {
	if i := m.first(v); i < len(m.rules) && m.rules[i].contains(v) {
		return m.rules[i].translate(v)
	}
	return v
}

// CorrespondRange splits iv at rule boundaries and maps each piece.
// Pieces inside a rule are translated by that rule's offset; pieces in the
// gaps pass through unchanged. The pieces are returned in source order and
// none is empty. An empty iv yields no pieces.
func (m *Map) CorrespondRange(iv Interval) []Interval {
	if iv.Empty() {
		return nil
	}
	var out []Interval
	cur := iv.Start
	for _, r := range m.rules[m.first(cur):] {
		if r.Src >= iv.End {
			break
		}
		if cur < r.Src {
			out = append(out, Interval{cur, r.Src})
			cur = r.Src
		}
		hi := min(r.SrcEnd(), iv.End)
		out = append(out, Interval{r.translate(cur), r.translate(hi)})
		cur = hi
	}
	if cur < iv.End {
		out = append(out, Interval{cur, iv.End})
	}
	return out
}
