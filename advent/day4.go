package main

import (
	"fmt"
	"strings"
)

func init() {
	register("4a", day4a)
	register("4b", day4b)
}

func day4a(e *env) (any, error) {
	wins, err := readScratchcards(e)
	if err != nil {
		return nil, err
	}
	points := 0
	for _, w := range wins {
		if w > 0 {
			points += 1 << (w - 1)
		}
	}
	return points, nil
}

func day4b(e *env) (any, error) {
	wins, err := readScratchcards(e)
	if err != nil {
		return nil, err
	}
	copies := make([]int, len(wins))
	for i := range copies {
		copies[i] = 1
	}
	total := 0
	for i, w := range wins {
		total += copies[i]
		for j := i + 1; j <= i+w && j < len(copies); j++ {
			copies[j] += copies[i]
		}
	}
	return total, nil
}

// readScratchcards returns the number of winning numbers on each card.
func readScratchcards(e *env) ([]int, error) {
	lines, err := e.lines()
	if err != nil {
		return nil, err
	}
	var wins []int
	for _, line := range lines {
		if line == "" {
			continue
		}
		w, err := scratchcardWins(line)
		if err != nil {
			return nil, err
		}
		wins = append(wins, w)
	}
	return wins, nil
}

// scratchcardWins parses a line like
//
//	Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
func scratchcardWins(line string) (int, error) {
	_, nums, ok := strings.Cut(line, ":")
	if !ok {
		return 0, fmt.Errorf("bad card %q", line)
	}
	winning, have, ok := strings.Cut(nums, "|")
	if !ok {
		return 0, fmt.Errorf("bad card %q", line)
	}
	ws, err := parseInts(winning)
	if err != nil {
		return 0, fmt.Errorf("bad card %q: %s", line, err)
	}
	hs, err := parseInts(have)
	if err != nil {
		return 0, fmt.Errorf("bad card %q: %s", line, err)
	}
	isWinning := make(map[int]bool)
	for _, n := range ws {
		isWinning[n] = true
	}
	wins := 0
	for _, n := range hs {
		if isWinning[n] {
			wins++
		}
	}
	return wins, nil
}
