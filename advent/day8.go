package main

import (
	"fmt"
	"strings"
)

func init() {
	register("8", day8)
}

func day8(e *env) (any, error) {
	lines, err := e.lines()
	if err != nil {
		return nil, err
	}
	n, err := parseNetwork(lines)
	if err != nil {
		return nil, err
	}
	return n.walk("AAA", "ZZZ")
}

type network struct {
	dirs  string
	nodes map[string][2]string
}

// parseNetwork parses the L/R instructions, a blank line, and then
// lines like
//
//	AAA = (BBB, CCC)
func parseNetwork(lines []string) (*network, error) {
	if len(lines) < 1 || lines[0] == "" {
		return nil, fmt.Errorf("missing instructions")
	}
	n := &network{
		dirs:  strings.TrimSpace(lines[0]),
		nodes: make(map[string][2]string),
	}
	for _, c := range n.dirs {
		if c != 'L' && c != 'R' {
			return nil, fmt.Errorf("bad instruction %q", c)
		}
	}
	for _, line := range lines[1:] {
		if line == "" {
			continue
		}
		name, rest, ok := strings.Cut(line, " = ")
		if !ok {
			return nil, fmt.Errorf("bad node %q", line)
		}
		rest, ok = strings.CutPrefix(rest, "(")
		if ok {
			rest, ok = strings.CutSuffix(rest, ")")
		}
		if !ok {
			return nil, fmt.Errorf("bad node %q", line)
		}
		left, right, ok := strings.Cut(rest, ", ")
		if !ok {
			return nil, fmt.Errorf("bad node %q", line)
		}
		if _, ok := n.nodes[name]; ok {
			return nil, fmt.Errorf("duplicate node %q", name)
		}
		n.nodes[name] = [2]string{left, right}
	}
	return n, nil
}

// walk follows the instructions, repeating them as needed, and returns the
// number of steps to get from start to end.
func (n *network) walk(start, end string) (int, error) {
	// A walk that visits the same (node, instruction index) twice loops forever.
	type state struct {
		node string
		i    int
	}
	seen := make(map[state]bool)
	cur := start
	for steps := 0; ; steps++ {
		if cur == end {
			return steps, nil
		}
		i := steps % len(n.dirs)
		s := state{cur, i}
		if seen[s] {
			return 0, fmt.Errorf("%s is unreachable from %s", end, start)
		}
		seen[s] = true
		next, ok := n.nodes[cur]
		if !ok {
			return 0, fmt.Errorf("unknown node %q", cur)
		}
		if n.dirs[i] == 'L' {
			cur = next[0]
		} else {
			cur = next[1]
		}
	}
}
