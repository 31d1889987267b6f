package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func init() {
	register("6a", day6a)
	register("6b", day6b)
}

func day6a(e *env) (any, error) {
	times, dists, err := readRaces(e)
	if err != nil {
		return nil, err
	}
	product := 1
	for i, t := range times {
		product *= waysToWin(t, dists[i])
	}
	return product, nil
}

func day6b(e *env) (any, error) {
	times, dists, err := readRaces(e)
	if err != nil {
		return nil, err
	}
	t, err := joinDigits(times)
	if err != nil {
		return nil, err
	}
	d, err := joinDigits(dists)
	if err != nil {
		return nil, err
	}
	return waysToWin(t, d), nil
}

func readRaces(e *env) (times, dists []int, err error) {
	lines, err := e.lines()
	if err != nil {
		return nil, nil, err
	}
	if len(lines) != 2 {
		return nil, nil, fmt.Errorf("got %d lines; want 2", len(lines))
	}
	for i, prefix := range []string{"Time:", "Distance:"} {
		rest, ok := strings.CutPrefix(lines[i], prefix)
		if !ok {
			return nil, nil, fmt.Errorf("line %d: missing %q", i+1, prefix)
		}
		ns, err := parseInts(rest)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %s", i+1, err)
		}
		if i == 0 {
			times = ns
		} else {
			dists = ns
		}
	}
	if len(times) != len(dists) {
		return nil, nil, fmt.Errorf("%d times but %d distances", len(times), len(dists))
	}
	return times, dists, nil
}

// joinDigits treats the numbers as one number with the spaces removed.
func joinDigits(ns []int) (int, error) {
	var b strings.Builder
	for _, n := range ns {
		b.WriteString(strconv.Itoa(n))
	}
	return strconv.Atoi(b.String())
}

// waysToWin counts the hold times h in [0, t] for which h*(t-h) > record.
func waysToWin(t, record int) int {
	beats := func(h int) bool { return h*(t-h) > record }
	disc := float64(t)*float64(t) - 4*float64(record)
	if disc < 0 {
		return 0
	}
	// The float root is only a guess; nudge it to the exact boundary.
	lo := int((float64(t) - math.Sqrt(disc)) / 2)
	lo = max(lo, 0)
	for lo > 0 && beats(lo-1) {
		lo--
	}
	for lo <= t/2 && !beats(lo) {
		lo++
	}
	if lo > t/2 {
		return 0
	}
	// The winning holds are symmetric around t/2.
	hi := t - lo
	return hi - lo + 1
}
