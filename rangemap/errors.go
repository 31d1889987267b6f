package rangemap

import "fmt"

// A ParseError reports a malformed rule line.
type ParseError struct {
	Line int // 1-based; 0 if the line stood alone
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("rangemap: bad rule on line %d (%q): %s", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("rangemap: bad rule %q: %s", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// A ValidationError reports a well-formed rule that can't be part of a Map.
type ValidationError struct {
	Rule   Rule
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("rangemap: invalid rule %d %d %d: %s", e.Rule.Dst, e.Rule.Src, e.Rule.Len, e.Reason)
}

// A QueryError reports a malformed range query.
type QueryError struct {
	Start    uint64
	End      uint64
	Length   uint64
	Overflow bool
}

func (e *QueryError) Error() string {
	if e.Overflow {
		return fmt.Sprintf("rangemap: range of length %d at %d overflows", e.Length, e.Start)
	}
	return fmt.Sprintf("rangemap: range start %d is after end %d", e.Start, e.End)
}
