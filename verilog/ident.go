package verilog

import "strings"

func isSimpleIdentChar(c byte, first bool) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		return true
	case c >= '0' && c <= '9', c == '$':
		return !first
	default:
		return false
	}
}

// escapeIdent quotes name as a Verilog escaped identifier ("\name ", with
// the mandatory trailing space) whenever it isn't already a valid simple
// identifier, mirroring the quoting convention bart's dumper applies to
// arbitrary prefix/path text.
func escapeIdent(name string) string {
	if name == "" {
		return "\\_ "
	}
	simple := true
	for i := 0; i < len(name); i++ {
		if !isSimpleIdentChar(name[i], i == 0) {
			simple = false
			break
		}
	}
	if simple {
		return name
	}
	var b strings.Builder
	b.WriteByte('\\')
	b.WriteString(name)
	b.WriteByte(' ')
	return b.String()
}
