package refactor

import "github.com/OSCC-Project/iMap-sub000/aig"

// factor rebuilds cubes as a balanced AND/OR tree over leaves, by
// repeatedly picking the literal shared by the most cubes, splitting
// into "cubes containing it" (recombined as literal AND remainder) and
// "cubes without it", and combining with OR (spec.md §4.9 step 5). This
// is literal-based quick factoring rather than full kernel/co-kernel
// extraction — see DESIGN.md.
func factor(g *aig.Graph, leaves []aig.Signal, cubes []Cube) aig.Signal {
	if len(cubes) == 0 {
		return aig.ConstFalse
	}
	if len(cubes) == 1 {
		return cubeSignal(g, leaves, cubes[0])
	}

	v, pos := mostCommonLiteral(cubes)

	var withLit, without []Cube
	for _, c := range cubes {
		if hasLiteral(c, v, pos) {
			withLit = append(withLit, clearLiteral(c, v, pos))
		} else {
			without = append(without, c)
		}
	}

	lit := leaves[v].Xor(!pos)
	quotient := factor(g, leaves, withLit)
	term := g.CreateAnd(lit, quotient)
	remainder := factor(g, leaves, without)
	return orSignal(g, term, remainder)
}

// cubeSignal ANDs together every literal of c; a cube with no literals
// is the constant-true cube produced when the cofactored function is a
// tautology over the remaining variables.
func cubeSignal(g *aig.Graph, leaves []aig.Signal, c Cube) aig.Signal {
	if c.Pos == 0 && c.Neg == 0 {
		return aig.ConstTrue
	}
	s := aig.ConstTrue
	first := true
	for v := 0; v < len(leaves); v++ {
		var lit aig.Signal
		switch {
		case c.Pos&(1<<uint(v)) != 0:
			lit = leaves[v]
		case c.Neg&(1<<uint(v)) != 0:
			lit = leaves[v].Not()
		default:
			continue
		}
		if first {
			s = lit
			first = false
		} else {
			s = g.CreateAnd(s, lit)
		}
	}
	return s
}

func orSignal(g *aig.Graph, a, b aig.Signal) aig.Signal {
	return g.CreateAnd(a.Not(), b.Not()).Not()
}

// mostCommonLiteral returns the (variable, polarity) pair appearing in
// the most cubes. cubes has at least 2 entries and, by construction of
// isop, none of them is the literal-free tautology cube.
func mostCommonLiteral(cubes []Cube) (v int, pos bool) {
	bestCount := -1
	for bit := 0; bit < 16; bit++ {
		mask := uint16(1) << uint(bit)
		posCount, negCount := 0, 0
		for _, c := range cubes {
			if c.Pos&mask != 0 {
				posCount++
			}
			if c.Neg&mask != 0 {
				negCount++
			}
		}
		if posCount > bestCount {
			bestCount, v, pos = posCount, bit, true
		}
		if negCount > bestCount {
			bestCount, v, pos = negCount, bit, false
		}
	}
	return v, pos
}

func hasLiteral(c Cube, v int, pos bool) bool {
	mask := uint16(1) << uint(v)
	if pos {
		return c.Pos&mask != 0
	}
	return c.Neg&mask != 0
}

func clearLiteral(c Cube, v int, pos bool) Cube {
	mask := uint16(1) << uint(v)
	if pos {
		c.Pos &^= mask
	} else {
		c.Neg &^= mask
	}
	return c
}
