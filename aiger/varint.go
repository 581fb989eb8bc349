package aiger

import "bufio"

// writeVarint writes x as a 7-bit little-endian varint (spec.md §6: the
// binary form delta-encodes literals this way).
func writeVarint(w *bufio.Writer, x uint32) error {
	for {
		b := byte(x & 0x7f)
		x >>= 7
		if x != 0 {
			b |= 0x80
		}
		if err := w.WriteByte(b); err != nil {
			return err
		}
		if x == 0 {
			return nil
		}
	}
}

func readVarint(r *bufio.Reader) (uint32, error) {
	var x uint32
	var shift uint
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		x |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return x, nil
		}
		shift += 7
	}
}
