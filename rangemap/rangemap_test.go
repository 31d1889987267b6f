package rangemap

import (
	"errors"
	"strconv"
	"testing"

	"github.com/kr/pretty"
)

func mustParse(t *testing.T, lines ...string) *Map {
	t.Helper()
	m, err := Parse(lines)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestParseSorts(t *testing.T) {
	m := mustParse(t, "50 98 2", "52 50 48")
	want := []Rule{
		{Dst: 52, Src: 50, Len: 48},
		{Dst: 50, Src: 98, Len: 2},
	}
	if diff := pretty.Diff(m.Rules(), want); len(diff) > 0 {
		t.Errorf("rules differ:\n%s", diff)
	}
}

func TestParseRuleErrors(t *testing.T) {
	for _, line := range []string{
		"",
		"1 2",
		"1 2 3 4",
		"a 2 3",
		"1 -2 3",
		"1 2 99999999999999999999999",
	} {
		_, err := ParseRule(line)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("ParseRule(%q): got err %v; want *ParseError", line, err)
		}
	}
}

func TestParseReportsLine(t *testing.T) {
	_, err := Parse([]string{"1 2 3", "4 5 x"})
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("got err %v; want *ParseError", err)
	}
	if pe.Line != 2 || pe.Text != "4 5 x" {
		t.Errorf("got line %d text %q; want line 2 text %q", pe.Line, pe.Text, "4 5 x")
	}
	var ne *strconv.NumError
	if !errors.As(err, &ne) {
		t.Errorf("got err %v; want it to wrap *strconv.NumError", err)
	}
}

func TestNewValidation(t *testing.T) {
	for _, tt := range []struct {
		name  string
		rules []Rule
	}{
		{"zero length", []Rule{{Dst: 1, Src: 2, Len: 0}}},
		{"overlap", []Rule{{Dst: 0, Src: 10, Len: 5}, {Dst: 100, Src: 14, Len: 2}}},
		{"overlap unsorted", []Rule{{Dst: 100, Src: 14, Len: 2}, {Dst: 0, Src: 10, Len: 5}}},
		{"same start", []Rule{{Dst: 0, Src: 3, Len: 1}, {Dst: 9, Src: 3, Len: 1}}},
		{"src overflow", []Rule{{Dst: 0, Src: 1<<64 - 2, Len: 3}}},
		{"dst overflow", []Rule{{Dst: 1<<64 - 1, Src: 0, Len: 2}}},
	} {
		_, err := New(tt.rules)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("%s: got err %v; want *ValidationError", tt.name, err)
		}
	}

	// Adjacent rules are fine.
	if _, err := New([]Rule{{Dst: 0, Src: 10, Len: 5}, {Dst: 100, Src: 15, Len: 2}}); err != nil {
		t.Errorf("adjacent rules: %s", err)
	}
}

func TestNewCopiesRules(t *testing.T) {
	rules := []Rule{{Dst: 5, Src: 0, Len: 2}}
	m, err := New(rules)
	if err != nil {
		t.Fatal(err)
	}
	rules[0].Dst = 100
	if got := m.Correspond(0); got != 5 {
		t.Errorf("Correspond(0) = %d after mutating input; want 5", got)
	}
}

func TestCorrespond(t *testing.T) {
	for _, tt := range []struct {
		lines []string
		in    uint64
		want  uint64
	}{
		{[]string{"52 50 48"}, 49, 49},
		{[]string{"52 50 48"}, 50, 52},
		{[]string{"52 50 48"}, 97, 99},
		{[]string{"52 50 48"}, 98, 98},

		{[]string{"50 98 2", "52 50 48"}, 13, 13},
		{[]string{"50 98 2", "52 50 48"}, 14, 14},
		{[]string{"50 98 2", "52 50 48"}, 55, 57},
		{[]string{"50 98 2", "52 50 48"}, 79, 81},
		{[]string{"50 98 2", "52 50 48"}, 98, 50},
		{[]string{"50 98 2", "52 50 48"}, 99, 51},
		{[]string{"50 98 2", "52 50 48"}, 100, 100},

		{[]string{"0 15 37", "37 52 2", "39 0 15"}, 81, 81},
		{[]string{"0 15 37", "37 52 2", "39 0 15"}, 14, 53},
		{[]string{"0 15 37", "37 52 2", "39 0 15"}, 57, 57},
		{[]string{"0 15 37", "37 52 2", "39 0 15"}, 13, 52},

		{[]string{"49 53 8", "0 11 42", "42 0 7", "57 7 4"}, 81, 81},
		{[]string{"49 53 8", "0 11 42", "42 0 7", "57 7 4"}, 53, 49},
		{[]string{"49 53 8", "0 11 42", "42 0 7", "57 7 4"}, 57, 53},
		{[]string{"49 53 8", "0 11 42", "42 0 7", "57 7 4"}, 52, 41},
	} {
		m := mustParse(t, tt.lines...)
		if got := m.Correspond(tt.in); got != tt.want {
			t.Errorf("%v: Correspond(%d): got %d; want %d", tt.lines, tt.in, got, tt.want)
		}
	}
}

func TestEmptyMapIsIdentity(t *testing.T) {
	m, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range []uint64{0, 1, 79, 1<<64 - 1} {
		if got := m.Correspond(v); got != v {
			t.Errorf("Correspond(%d): got %d", v, got)
		}
	}
	iv := Interval{3, 17}
	if diff := pretty.Diff(m.CorrespondRange(iv), []Interval{iv}); len(diff) > 0 {
		t.Errorf("CorrespondRange differs:\n%s", diff)
	}
}

func TestCorrespondRange(t *testing.T) {
	fertilizer := []string{"49 53 8", "0 11 42", "42 0 7", "57 7 4"}
	for _, tt := range []struct {
		lines []string
		in    Interval
		want  []Interval
	}{
		{
			fertilizer,
			Interval{0, 50},
			[]Interval{{42, 49}, {57, 61}, {0, 39}},
		},
		{
			fertilizer,
			Interval{5, 9},
			[]Interval{{47, 49}, {57, 59}},
		},
		{
			fertilizer,
			Interval{58, 70},
			[]Interval{{54, 57}, {61, 70}},
		},
		{
			fertilizer,
			Interval{61, 62},
			[]Interval{{61, 62}},
		},
		{
			[]string{"52 50 48"},
			Interval{0, 200},
			[]Interval{{0, 50}, {52, 100}, {98, 200}},
		},
		{
			// Gap between two rules.
			[]string{"100 10 5", "200 20 5"},
			Interval{12, 22},
			[]Interval{{102, 105}, {15, 20}, {200, 202}},
		},
		{
			[]string{"100 10 5"},
			Interval{0, 10},
			[]Interval{{0, 10}},
		},
		{
			[]string{"100 10 5"},
			Interval{10, 15},
			[]Interval{{100, 105}},
		},
		{
			[]string{"100 10 5"},
			Interval{7, 7},
			nil,
		},
	} {
		m := mustParse(t, tt.lines...)
		got := m.CorrespondRange(tt.in)
		if diff := pretty.Diff(got, tt.want); len(diff) > 0 {
			t.Errorf("%v: CorrespondRange(%s) differs:\n%s", tt.lines, tt.in, diff)
		}
	}
}

var propertyMaps = [][]Rule{
	nil,
	{{Dst: 52, Src: 50, Len: 48}, {Dst: 50, Src: 98, Len: 2}},
	{{Dst: 0, Src: 15, Len: 37}, {Dst: 37, Src: 52, Len: 2}, {Dst: 39, Src: 0, Len: 15}},
	{{Dst: 49, Src: 53, Len: 8}, {Dst: 0, Src: 11, Len: 42}, {Dst: 42, Src: 0, Len: 7}, {Dst: 57, Src: 7, Len: 4}},
	{{Dst: 3, Src: 1, Len: 1}, {Dst: 1, Src: 3, Len: 1}, {Dst: 90, Src: 5, Len: 3}},
}

// TestCorrespondRangePartition checks, for every small interval, that the
// pieces are non-empty, add up to the input length, and agree with
// Correspond point by point.
func TestCorrespondRangePartition(t *testing.T) {
	for _, rules := range propertyMaps {
		m, err := New(rules)
		if err != nil {
			t.Fatal(err)
		}
		for start := uint64(0); start < 110; start++ {
			for end := start + 1; end <= 110; end += 3 {
				iv := Interval{start, end}
				pieces := m.CorrespondRange(iv)
				var total uint64
				for _, p := range pieces {
					if p.Empty() {
						t.Fatalf("%v: CorrespondRange(%s) emitted empty piece", rules, iv)
					}
					total += p.Len()
				}
				if total != iv.Len() {
					t.Fatalf("%v: CorrespondRange(%s): total length %d; want %d", rules, iv, total, iv.Len())
				}
				v := start
				for _, p := range pieces {
					for i := uint64(0); i < p.Len(); i++ {
						got := m.Correspond(v)
						if !p.Contains(got) {
							t.Fatalf("%v: in %s, Correspond(%d) = %d is outside piece %s",
								rules, iv, v, got, p)
						}
						if want := p.Start + i; got != want {
							t.Fatalf("%v: in %s, Correspond(%d) = %d; piece %s says %d",
								rules, iv, v, got, p, want)
						}
						v++
					}
				}
			}
		}
	}
}

func TestQueryErrors(t *testing.T) {
	_, err := NewInterval(5, 3)
	var qe *QueryError
	if !errors.As(err, &qe) {
		t.Fatalf("NewInterval(5, 3): got err %v; want *QueryError", err)
	}
	if qe.Overflow || qe.Start != 5 || qe.End != 3 {
		t.Errorf("NewInterval(5, 3): got %+v", qe)
	}

	_, err = SeedRange(1<<64-2, 5)
	if !errors.As(err, &qe) {
		t.Fatalf("SeedRange overflow: got err %v; want *QueryError", err)
	}
	if !qe.Overflow {
		t.Errorf("SeedRange overflow: got %+v; want Overflow", qe)
	}

	for _, tt := range []struct {
		start, n uint64
		want     Interval
	}{
		{3, 0, Interval{3, 3}},
		{1<<64 - 6, 5, Interval{1<<64 - 6, 1<<64 - 1}},
	} {
		got, err := SeedRange(tt.start, tt.n)
		if err != nil {
			t.Errorf("SeedRange(%d, %d): %s", tt.start, tt.n, err)
			continue
		}
		if got != tt.want {
			t.Errorf("SeedRange(%d, %d): got %s; want %s", tt.start, tt.n, got, tt.want)
		}
	}
	if iv, err := NewInterval(4, 4); err != nil || !iv.Empty() {
		t.Errorf("NewInterval(4, 4): got %s, %v; want empty interval", iv, err)
	}
}

func TestIntervalContains(t *testing.T) {
	iv := Interval{10, 13}
	for _, tt := range []struct {
		v    uint64
		want bool
	}{
		{9, false},
		{10, true},
		{12, true},
		{13, false},
	} {
		if got := iv.Contains(tt.v); got != tt.want {
			t.Errorf("%s.Contains(%d): got %t; want %t", iv, tt.v, got, tt.want)
		}
	}
}
