package main

func init() {
	register("3a", day3a)
	register("3b", day3b)
}

func day3a(e *env) (any, error) {
	s, err := readSchematic(e)
	if err != nil {
		return nil, err
	}
	sum := 0
	for _, pn := range s.numbers {
		for _, p := range pn.neighbors() {
			if s.isSymbol(p) {
				sum += pn.value
				break
			}
		}
	}
	return sum, nil
}

func day3b(e *env) (any, error) {
	s, err := readSchematic(e)
	if err != nil {
		return nil, err
	}
	adjacent := make(map[point][]int) // gear position -> indexes into s.numbers
	for i, pn := range s.numbers {
		for _, p := range pn.neighbors() {
			if s.at(p) == '*' {
				adjacent[p] = append(adjacent[p], i)
			}
		}
	}
	sum := 0
	for _, nums := range adjacent {
		if len(nums) == 2 {
			sum += s.numbers[nums[0]].value * s.numbers[nums[1]].value
		}
	}
	return sum, nil
}

type point struct {
	row, col int
}

type partNumber struct {
	pos   point // leftmost digit
	len   int
	value int
}

// neighbors lists the cells around pn, including ones off the grid.
func (pn partNumber) neighbors() []point {
	var ps []point
	for c := pn.pos.col - 1; c <= pn.pos.col+pn.len; c++ {
		ps = append(ps, point{pn.pos.row - 1, c}, point{pn.pos.row + 1, c})
	}
	ps = append(ps, point{pn.pos.row, pn.pos.col - 1}, point{pn.pos.row, pn.pos.col + pn.len})
	return ps
}

type schematic struct {
	grid    []string
	numbers []partNumber
}

func readSchematic(e *env) (*schematic, error) {
	lines, err := e.lines()
	if err != nil {
		return nil, err
	}
	s := &schematic{grid: lines}
	for r, line := range lines {
		for c := 0; c < len(line); {
			if !isDigit(line[c]) {
				c++
				continue
			}
			pn := partNumber{pos: point{r, c}}
			for ; c < len(line) && isDigit(line[c]); c++ {
				pn.value = pn.value*10 + int(line[c]-'0')
				pn.len++
			}
			s.numbers = append(s.numbers, pn)
		}
	}
	return s, nil
}

// at returns the byte at p, or '.' off the grid.
func (s *schematic) at(p point) byte {
	if p.row < 0 || p.row >= len(s.grid) || p.col < 0 || p.col >= len(s.grid[p.row]) {
		return '.'
	}
	return s.grid[p.row][p.col]
}

func (s *schematic) isSymbol(p point) bool {
	b := s.at(p)
	return b != '.' && !isDigit(b)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
