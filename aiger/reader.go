package aiger

import (
	"bufio"
	"fmt"
	"io"

	"github.com/OSCC-Project/iMap-sub000/aig"
)

// Read sniffs the magic word ("aag" or "aig") and dispatches to the
// matching format reader.
func Read(r io.Reader) (*aig.Graph, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(3)
	if err != nil {
		return nil, fmt.Errorf("aiger: reading magic: %w", err)
	}
	switch string(magic) {
	case "aag":
		return readASCII(br)
	case "aig":
		return readBinary(br)
	default:
		return nil, fmt.Errorf("aiger: unrecognized magic %q", magic)
	}
}

func readHeader(br *bufio.Reader, wantMagic string) (header, error) {
	var magic string
	var h header
	n, err := fmt.Fscanf(br, "%3s %d %d %d %d %d\n", &magic, &h.M, &h.I, &h.L, &h.O, &h.A)
	if err != nil || n != 6 {
		return h, fmt.Errorf("aiger: malformed header: %w", err)
	}
	if magic != wantMagic {
		return h, fmt.Errorf("aiger: expected magic %q, got %q", wantMagic, magic)
	}
	if err := h.validate(); err != nil {
		return h, err
	}
	return h, nil
}

// sigFromLiteral resolves an AIGER literal to a graph signal using the
// var-to-signal table built so far (every literal's var must already be
// resolved: PIs up front, gates in ascending-var/topological order).
func sigFromLiteral(varToSig []aig.Signal, lit uint32) aig.Signal {
	if lit == 0 {
		return aig.ConstFalse
	}
	if lit == 1 {
		return aig.ConstTrue
	}
	return varToSig[lit>>1].Xor(lit&1 != 0)
}

func readASCII(br *bufio.Reader) (*aig.Graph, error) {
	h, err := readHeader(br, "aag")
	if err != nil {
		return nil, err
	}

	g := aig.NewGraph()
	varToSig := make([]aig.Signal, h.M+1)

	for i := 0; i < h.I; i++ {
		var lit uint32
		if _, err := fmt.Fscanf(br, "%d\n", &lit); err != nil {
			return nil, fmt.Errorf("aiger: reading input %d: %w", i, err)
		}
		varToSig[lit>>1] = g.CreatePI()
	}

	outLits := make([]uint32, h.O)
	for i := 0; i < h.O; i++ {
		if _, err := fmt.Fscanf(br, "%d\n", &outLits[i]); err != nil {
			return nil, fmt.Errorf("aiger: reading output %d: %w", i, err)
		}
	}

	for i := 0; i < h.A; i++ {
		var lhs, l0, l1 uint32
		if _, err := fmt.Fscanf(br, "%d %d %d\n", &lhs, &l0, &l1); err != nil {
			return nil, fmt.Errorf("aiger: reading and-gate %d: %w", i, err)
		}
		s0 := sigFromLiteral(varToSig, l0)
		s1 := sigFromLiteral(varToSig, l1)
		varToSig[lhs>>1] = g.CreateAnd(s0, s1)
	}

	for _, lit := range outLits {
		g.CreatePO(sigFromLiteral(varToSig, lit))
	}
	return g, nil
}

func readBinary(br *bufio.Reader) (*aig.Graph, error) {
	h, err := readHeader(br, "aig")
	if err != nil {
		return nil, err
	}

	g := aig.NewGraph()
	varToSig := make([]aig.Signal, h.M+1)

	for i := 0; i < h.I; i++ {
		varToSig[i+1] = g.CreatePI()
	}

	outLits := make([]uint32, h.O)
	for i := 0; i < h.O; i++ {
		if _, err := fmt.Fscanf(br, "%d\n", &outLits[i]); err != nil {
			return nil, fmt.Errorf("aiger: reading output %d: %w", i, err)
		}
	}

	for i := 0; i < h.A; i++ {
		v := uint32(h.I + i + 1)
		lhs := v << 1
		d0, err := readVarint(br)
		if err != nil {
			return nil, fmt.Errorf("aiger: reading and-gate %d delta0: %w", i, err)
		}
		d1, err := readVarint(br)
		if err != nil {
			return nil, fmt.Errorf("aiger: reading and-gate %d delta1: %w", i, err)
		}
		l0 := lhs - d0
		l1 := l0 - d1
		s0 := sigFromLiteral(varToSig, l0)
		s1 := sigFromLiteral(varToSig, l1)
		varToSig[v] = g.CreateAnd(s0, s1)
	}

	for _, lit := range outLits {
		g.CreatePO(sigFromLiteral(varToSig, lit))
	}
	return g, nil
}
