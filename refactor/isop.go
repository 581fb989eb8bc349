package refactor

import "github.com/OSCC-Project/iMap-sub000/ttable"

// Cube is one product term of a sum-of-products cover over up to 16
// variables. Bit v of Pos set means variable v appears asserted; bit v
// of Neg set means variable v appears complemented; a variable absent
// from both is not in the cube.
type Cube struct {
	Pos uint16
	Neg uint16
}

// literalCount sums the literal count of every cube in cubes.
func literalCount(cubes []Cube) int {
	n := 0
	for _, c := range cubes {
		n += popcount16(c.Pos) + popcount16(c.Neg)
	}
	return n
}

func popcount16(v uint16) int {
	n := 0
	for v != 0 {
		v &= v - 1
		n++
	}
	return n
}

// isop computes an irredundant minimal-literal sum-of-products cover of
// the function given by words over nVars variables (variable i is bit i
// of the minterm index), using the standard recursive unate-paradigm
// cofactor algorithm: split on the top variable, factor out the part
// shared between both cofactors (coverable without that variable), and
// recurse on each remainder (spec.md §4.9 step 4, "minimum-literal SOP
// using ISOP").
func isop(words []uint64, nVars uint) []Cube {
	if isZeroWords(words, nVars) {
		return nil
	}
	if isAllOnesWords(words, nVars) {
		return []Cube{{}}
	}

	top := nVars - 1
	lo, hi := splitTop(words, nVars)

	if wordsEqual(lo, hi, top) {
		return isop(lo, top)
	}

	common := andWords(lo, hi, top)
	cubesCommon := isop(common, top)

	loRem := andNotWords(lo, common, top)
	hiRem := andNotWords(hi, common, top)

	cubesLo := isop(loRem, top)
	cubesHi := isop(hiRem, top)

	out := make([]Cube, 0, len(cubesCommon)+len(cubesLo)+len(cubesHi))
	out = append(out, cubesCommon...)
	for _, c := range cubesLo {
		c.Neg |= 1 << top
		out = append(out, c)
	}
	for _, c := range cubesHi {
		c.Pos |= 1 << top
		out = append(out, c)
	}
	return out
}

// splitTop cofactors an nVars-variable function on its top variable,
// returning the (var=0) and (var=1) halves as (nVars-1)-variable
// functions.
func splitTop(words []uint64, nVars uint) (lo, hi []uint64) {
	half := 1 << (nVars - 1)
	lo = make([]uint64, ttable.NumWords(nVars-1))
	hi = make([]uint64, ttable.NumWords(nVars-1))
	for m := 0; m < half; m++ {
		if getBit(words, m) {
			setBit(lo, m)
		}
		if getBit(words, m+half) {
			setBit(hi, m)
		}
	}
	return lo, hi
}

func isZeroWords(words []uint64, nVars uint) bool {
	for _, w := range maskedWords(words, nVars) {
		if w != 0 {
			return false
		}
	}
	return true
}

func isAllOnesWords(words []uint64, nVars uint) bool {
	total := uint(1) << nVars
	full := total / 64
	var i uint
	for ; i < full; i++ {
		if words[i] != ^uint64(0) {
			return false
		}
	}
	if rem := total % 64; rem != 0 {
		mask := (uint64(1) << rem) - 1
		if words[i]&mask != mask {
			return false
		}
	}
	return true
}

func wordsEqual(a, b []uint64, nVars uint) bool {
	ma, mb := maskedWords(a, nVars), maskedWords(b, nVars)
	for i := range ma {
		if ma[i] != mb[i] {
			return false
		}
	}
	return true
}

func andWords(a, b []uint64, nVars uint) []uint64 {
	out := make([]uint64, ttable.NumWords(nVars))
	for i := range out {
		out[i] = a[i] & b[i]
	}
	return out
}

func andNotWords(a, b []uint64, nVars uint) []uint64 {
	out := make([]uint64, ttable.NumWords(nVars))
	for i := range out {
		out[i] = a[i] &^ b[i]
	}
	return out
}

// maskedWords returns a copy of words with any padding bits beyond
// 2^nVars cleared, so equality/zero/all-ones checks ignore them.
func maskedWords(words []uint64, nVars uint) []uint64 {
	out := copyWords(words)
	total := uint(1) << nVars
	full := total / 64
	if int(full) < len(out) {
		if rem := total % 64; rem != 0 {
			mask := (uint64(1) << rem) - 1
			out[full] &= mask
			full++
		}
		for i := full; i < uint(len(out)); i++ {
			out[i] = 0
		}
	}
	return out
}
