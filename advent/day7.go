package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

func init() {
	register("7a", day7a)
	register("7b", day7b)
}

func day7a(e *env) (any, error) { return camelWinnings(e, false) }

func day7b(e *env) (any, error) { return camelWinnings(e, true) }

type handType int

const (
	highCard handType = iota
	onePair
	twoPair
	threeOfAKind
	fullHouse
	fourOfAKind
	fiveOfAKind
)

type camelHand struct {
	cards [5]int // card strengths
	typ   handType
	bid   int
}

func camelWinnings(e *env, jokers bool) (any, error) {
	lines, err := e.lines()
	if err != nil {
		return nil, err
	}
	var hands []camelHand
	for _, line := range lines {
		if line == "" {
			continue
		}
		h, err := parseCamelHand(line, jokers)
		if err != nil {
			return nil, err
		}
		hands = append(hands, h)
	}
	sort.Slice(hands, func(i, j int) bool { return hands[i].less(hands[j]) })
	total := 0
	for i, h := range hands {
		total += h.bid * (i + 1)
	}
	return total, nil
}

// cardStrength ranks a card label. With jokers, J is the weakest card.
func cardStrength(c byte, jokers bool) (int, bool) {
	switch {
	case c >= '2' && c <= '9':
		return int(c - '0'), true
	case c == 'T':
		return 10, true
	case c == 'J':
		if jokers {
			return 1, true
		}
		return 11, true
	case c == 'Q':
		return 12, true
	case c == 'K':
		return 13, true
	case c == 'A':
		return 14, true
	}
	return 0, false
}

func parseCamelHand(line string, jokers bool) (camelHand, error) {
	var h camelHand
	cards, bid, ok := strings.Cut(line, " ")
	if !ok || len(cards) != 5 {
		return h, fmt.Errorf("bad hand %q", line)
	}
	for i := 0; i < len(cards); i++ {
		s, ok := cardStrength(cards[i], jokers)
		if !ok {
			return h, fmt.Errorf("bad card %q in %q", cards[i], line)
		}
		h.cards[i] = s
	}
	var err error
	h.bid, err = strconv.Atoi(strings.TrimSpace(bid))
	if err != nil {
		return h, fmt.Errorf("bad bid in %q: %s", line, err)
	}
	h.typ = classify(h.cards, jokers)
	return h, nil
}

func classify(cards [5]int, jokers bool) handType {
	counts := make(map[int]int)
	wild := 0
	for _, c := range cards {
		if jokers && c == 1 {
			wild++
			continue
		}
		counts[c]++
	}
	var groups []int
	for _, n := range counts {
		groups = append(groups, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(groups)))
	// Jokers always do best joining the largest group.
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += wild
	switch {
	case groups[0] == 5:
		return fiveOfAKind
	case groups[0] == 4:
		return fourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return fullHouse
	case groups[0] == 3:
		return threeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return twoPair
	case groups[0] == 2:
		return onePair
	}
	return highCard
}

func (h camelHand) less(other camelHand) bool {
	if h.typ != other.typ {
		return h.typ < other.typ
	}
	for i := range h.cards {
		if h.cards[i] != other.cards[i] {
			return h.cards[i] < other.cards[i]
		}
	}
	return false
}
