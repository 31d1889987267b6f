package main

import (
	"fmt"
	"strings"
)

func init() {
	register("1a", day1a)
	register("1b", day1b)
}

func day1a(e *env) (any, error) {
	return calibrationSum(e, false)
}

func day1b(e *env) (any, error) {
	return calibrationSum(e, true)
}

func calibrationSum(e *env, words bool) (any, error) {
	lines, err := e.lines()
	if err != nil {
		return nil, err
	}
	sum := 0
	for i, line := range lines {
		v, err := calibrationValue(line, words)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s", i+1, err)
		}
		sum += v
	}
	return sum, nil
}

// digitWords[i] spells i+1.
var digitWords = []string{
	"one", "two", "three", "four", "five",
	"six", "seven", "eight", "nine",
}

// digitAt reports the digit starting at s[i], if any.
// Spelled-out digits may share letters ("twone" has both 2 and 1).
func digitAt(s string, i int, words bool) (int, bool) {
	if c := s[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !words {
		return 0, false
	}
	for d, w := range digitWords {
		if strings.HasPrefix(s[i:], w) {
			return d + 1, true
		}
	}
	return 0, false
}

func calibrationValue(line string, words bool) (int, error) {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		d, ok := digitAt(line, i, words)
		if !ok {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0, fmt.Errorf("no digits in %q", line)
	}
	return first*10 + last, nil
}
