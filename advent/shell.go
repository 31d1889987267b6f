package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/aoc2023/almanac"
	"github.com/cespare/aoc2023/rangemap"
	"github.com/chzyer/readline"
)

func init() {
	register("5shell", day5shell)
}

// day5shell loads an almanac and answers lookups interactively.
func day5shell(e *env) (any, error) {
	if len(e.args) != 1 {
		return nil, errors.New("usage: 5shell <almanac file>")
	}
	f, err := os.Open(e.args[0])
	if err != nil {
		return nil, err
	}
	a, err := almanac.Parse(f)
	f.Close()
	if err != nil {
		return nil, err
	}

	var history string
	if dir, err := os.UserCacheDir(); err == nil {
		history = filepath.Join(dir, "advent-5shell.txt")
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: history,
	})
	if err != nil {
		return nil, err
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil, nil
		default:
			return nil, err
		}
		if quit := shellCommand(l.Stdout(), a, line); quit {
			return nil, nil
		}
	}
}

// shellCommand runs one line of shell input and reports whether to quit.
func shellCommand(w io.Writer, a *almanac.Almanac, line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	switch fields[0] {
	case "quit", "exit":
		return true
	case "stages":
		for i, name := range a.StageNames() {
			fmt.Fprintf(w, "%d\t%s\n", i+1, name)
		}
		return false
	case "help":
		fmt.Fprintln(w, "commands: <seed> | <start> <length> | range <start> <end> | stages | quit")
		return false
	case "range":
		nums, ok := shellNumbers(w, fields[1:])
		if !ok {
			return false
		}
		if len(nums) != 2 {
			fmt.Fprintln(w, "want range <start> <end> (try help)")
			return false
		}
		iv, err := rangemap.NewInterval(nums[0], nums[1])
		if err != nil {
			fmt.Fprintln(w, err)
			return false
		}
		printRanges(w, a, iv)
		return false
	}

	nums, ok := shellNumbers(w, fields)
	if !ok {
		return false
	}
	switch len(nums) {
	case 1:
		parts := []string{strconv.FormatUint(nums[0], 10)}
		for _, step := range a.Trace(nums[0]) {
			parts = append(parts, strconv.FormatUint(step.Value, 10))
		}
		fmt.Fprintln(w, strings.Join(parts, " -> "))
	case 2:
		iv, err := rangemap.SeedRange(nums[0], nums[1])
		if err != nil {
			fmt.Fprintln(w, err)
			return false
		}
		printRanges(w, a, iv)
	default:
		fmt.Fprintln(w, "want a seed or a start and length (try help)")
	}
	return false
}

func shellNumbers(w io.Writer, fields []string) ([]uint64, bool) {
	nums := make([]uint64, len(fields))
	for i, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			fmt.Fprintf(w, "bad number %q (try help)\n", f)
			return nil, false
		}
		nums[i] = n
	}
	return nums, true
}

// printRanges shows iv after each stage and the lowest final value.
func printRanges(w io.Writer, a *almanac.Almanac, iv rangemap.Interval) {
	ivs := []rangemap.Interval{iv}
	for _, m := range a.Stages {
		var next []rangemap.Interval
		for _, iv := range ivs {
			next = append(next, m.CorrespondRange(iv)...)
		}
		ivs = next
		fmt.Fprintf(w, "%s: %v\n", m.Name, ivs)
	}
	if len(ivs) == 0 {
		fmt.Fprintln(w, "empty range")
		return
	}
	lowest := ivs[0].Start
	for _, iv := range ivs[1:] {
		lowest = min(lowest, iv.Start)
	}
	fmt.Fprintf(w, "lowest: %d\n", lowest)
}
