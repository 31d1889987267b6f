// Package almanac parses the seed almanac and answers location queries
// through a rangemap.Pipeline.
package almanac

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cespare/aoc2023/rangemap"
)

// An Almanac is the parsed seeds and the stages that map them to locations.
type Almanac struct {
	Seeds  []uint64
	Stages rangemap.Pipeline
}

// A FormatError reports almanac text that doesn't have the expected shape
// (as opposed to a bad rule line, which is a *rangemap.ParseError).
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("almanac: line %d: %s", e.Line, e.Msg)
	}
	return "almanac: " + e.Msg
}

// A StageError wraps an error building one named stage.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("almanac: stage %s: %s", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Parse reads an almanac: a "seeds:" line followed by blank-line separated
// blocks, each headed by "<src>-to-<dst> map:".
func Parse(r io.Reader) (*Almanac, error) {
	var (
		a       Almanac
		lineNum int
		seeds   bool
		name    string
		lines   []string
		inBlock bool
	)
	flush := func() error {
		if !inBlock {
			return nil
		}
		m, err := rangemap.Parse(lines)
		if err != nil {
			return &StageError{Stage: name, Err: err}
		}
		m.Name = name
		a.Stages = append(a.Stages, m)
		lines = nil
		inBlock = false
		return nil
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			if err := flush(); err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, "seeds:"):
			if seeds {
				return nil, &FormatError{Line: lineNum, Msg: "duplicate seeds line"}
			}
			seeds = true
			for _, f := range strings.Fields(strings.TrimPrefix(line, "seeds:")) {
				n, err := strconv.ParseUint(f, 10, 64)
				if err != nil {
					return nil, &FormatError{Line: lineNum, Msg: fmt.Sprintf("bad seed %q", f)}
				}
				a.Seeds = append(a.Seeds, n)
			}
		case strings.HasSuffix(line, " map:"):
			if err := flush(); err != nil {
				return nil, err
			}
			name = strings.TrimSuffix(line, " map:")
			inBlock = true
		default:
			if !inBlock {
				return nil, &FormatError{Line: lineNum, Msg: fmt.Sprintf("rule %q outside of a map", line)}
			}
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if !seeds {
		return nil, &FormatError{Msg: "no seeds line"}
	}
	return &a, nil
}

// SeedRanges reads Seeds as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]rangemap.Interval, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, &FormatError{Msg: fmt.Sprintf("odd number of seed values (%d)", len(a.Seeds))}
	}
	ivs := make([]rangemap.Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		iv, err := rangemap.SeedRange(a.Seeds[i], a.Seeds[i+1])
		if err != nil {
			return nil, err
		}
		ivs = append(ivs, iv)
	}
	return ivs, nil
}

// LowestLocation is the lowest location of any individual seed.
func (a *Almanac) LowestLocation() (uint64, error) {
	loc, ok := a.Stages.LowestPoint(a.Seeds)
	if !ok {
		return 0, &FormatError{Msg: "no seeds"}
	}
	return loc, nil
}

// LowestRangeLocation is the lowest location of any seed in the seed ranges.
func (a *Almanac) LowestRangeLocation(workers int) (uint64, error) {
	ivs, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	loc, ok := a.Stages.LowestRangeParallel(ivs, workers)
	if !ok {
		return 0, &FormatError{Msg: "seed ranges are empty"}
	}
	return loc, nil
}

// A Step is the value of a seed after one stage.
type Step struct {
	Stage string
	Value uint64
}

// Trace follows seed through each stage.
func (a *Almanac) Trace(seed uint64) []Step {
	steps := make([]Step, 0, len(a.Stages))
	v := seed
	for _, m := range a.Stages {
		v = m.Correspond(v)
		steps = append(steps, Step{Stage: m.Name, Value: v})
	}
	return steps
}

// StageNames lists the stage names in order.
func (a *Almanac) StageNames() []string {
	names := make([]string, len(a.Stages))
	for i, m := range a.Stages {
		names[i] = m.Name
	}
	return names
}
