package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// lines reads the whole input and returns its lines, with any trailing
// blank lines dropped.
func (e *env) lines() ([]string, error) {
	r, err := e.input()
	if err != nil {
		return nil, err
	}
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, 1<<20)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// parseInts parses whitespace-separated non-negative integers.
func parseInts(s string) ([]int, error) {
	var ns []int
	for _, f := range strings.Fields(s) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("negative number %d", n)
		}
		ns = append(ns, n)
	}
	return ns, nil
}
