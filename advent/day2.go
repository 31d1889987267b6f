package main

import (
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register("2a", day2a)
	register("2b", day2b)
}

func day2a(e *env) (any, error) {
	games, err := readCubeGames(e)
	if err != nil {
		return nil, err
	}
	limit := cubeCounts{red: 12, green: 13, blue: 14}
	sum := 0
	for _, g := range games {
		if g.max.red <= limit.red && g.max.green <= limit.green && g.max.blue <= limit.blue {
			sum += g.id
		}
	}
	return sum, nil
}

func day2b(e *env) (any, error) {
	games, err := readCubeGames(e)
	if err != nil {
		return nil, err
	}
	sum := 0
	for _, g := range games {
		sum += g.max.red * g.max.green * g.max.blue
	}
	return sum, nil
}

type cubeCounts struct {
	red, green, blue int
}

type cubeGame struct {
	id  int
	max cubeCounts
}

func readCubeGames(e *env) ([]cubeGame, error) {
	lines, err := e.lines()
	if err != nil {
		return nil, err
	}
	var games []cubeGame
	for _, line := range lines {
		if line == "" {
			continue
		}
		g, err := parseCubeGame(line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

// parseCubeGame parses a line like
//
//	Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
func parseCubeGame(line string) (cubeGame, error) {
	var g cubeGame
	head, rest, ok := strings.Cut(line, ": ")
	if !ok {
		return g, fmt.Errorf("bad game %q", line)
	}
	id, ok := strings.CutPrefix(head, "Game ")
	if !ok {
		return g, fmt.Errorf("bad game header %q", head)
	}
	var err error
	g.id, err = strconv.Atoi(id)
	if err != nil {
		return g, fmt.Errorf("bad game id %q: %s", id, err)
	}
	for _, set := range strings.Split(rest, "; ") {
		var c cubeCounts
		for _, draw := range strings.Split(set, ", ") {
			num, color, ok := strings.Cut(draw, " ")
			if !ok {
				return g, fmt.Errorf("bad draw %q", draw)
			}
			n, err := strconv.Atoi(num)
			if err != nil {
				return g, fmt.Errorf("bad draw %q: %s", draw, err)
			}
			switch color {
			case "red":
				c.red += n
			case "green":
				c.green += n
			case "blue":
				c.blue += n
			default:
				return g, fmt.Errorf("unknown color %q", color)
			}
		}
		g.max.red = max(g.max.red, c.red)
		g.max.green = max(g.max.green, c.green)
		g.max.blue = max(g.max.blue, c.blue)
	}
	return g, nil
}
