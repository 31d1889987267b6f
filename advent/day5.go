package main

import (
	"github.com/cespare/aoc2023/almanac"
)

func init() {
	register("5a", day5a)
	register("5b", day5b)
}

func day5a(e *env) (any, error) {
	a, err := readAlmanac(e)
	if err != nil {
		return nil, err
	}
	return a.LowestLocation()
}

func day5b(e *env) (any, error) {
	a, err := readAlmanac(e)
	if err != nil {
		return nil, err
	}
	return a.LowestRangeLocation(e.cfg.workers)
}

func readAlmanac(e *env) (*almanac.Almanac, error) {
	r, err := e.input()
	if err != nil {
		return nil, err
	}
	return almanac.Parse(r)
}
