package rangemap

import (
	"fmt"
	"math"
)

// An Interval is the half-open range [Start, End).
type Interval struct {
	Start uint64
	End   uint64
}

// NewInterval returns [start, end), or a *QueryError if start > end.
func NewInterval(start, end uint64) (Interval, error) {
	if start > end {
		return Interval{}, &QueryError{Start: start, End: end}
	}
	return Interval{start, end}, nil
}

// SeedRange returns [start, start+length), or a *QueryError if the end
// doesn't fit in a uint64.
func SeedRange(start, length uint64) (Interval, error) {
	if start > math.MaxUint64-length {
		return Interval{}, &QueryError{Start: start, Length: length, Overflow: true}
	}
	return Interval{start, start + length}, nil
}

func (iv Interval) Len() uint64 {
	if iv.End < iv.Start {
		return 0
	}
	return iv.End - iv.Start
}

func (iv Interval) Empty() bool { return iv.End <= iv.Start }

func (iv Interval) Contains(v uint64) bool { return v >= iv.Start && v < iv.End }

func (iv Interval) String() string { return fmt.Sprintf("[%d,%d)", iv.Start, iv.End) }
