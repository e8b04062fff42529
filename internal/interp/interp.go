// Package interp finds variable interpolation markers in the raw text of a
// PHP string literal.
package interp

// Marker is one "$" that starts an interpolated variable.
type Marker struct {
	Offset int  // byte offset of "$"
	Braced bool // written as ${name}
}

// Find returns the first marker at or after offset.
//
// A "$" preceded by "\" is literal. "${" must be followed by a label and
// "}"; otherwise the next byte must start a label. Text like "{$name}" is
// reported as an unbraced marker: only the byte after "$" is inspected.
func Find(s string, offset int) (Marker, bool) {
	for i := max(offset, 0); i < len(s); i++ {
		if s[i] != '$' {
			continue
		}
		if i > 0 && s[i-1] == '\\' {
			continue
		}
		next := i + 1
		if next >= len(s) {
			break
		}
		if s[next] == '{' {
			if bracedLabel(s[next+1:]) {
				return Marker{Offset: i, Braced: true}, true
			}
			continue
		}
		if isLabelStart(s[next]) {
			return Marker{Offset: i}, true
		}
	}
	return Marker{}, false
}

// All lists every marker in s in order.
func All(s string) []Marker {
	var out []Marker
	for off := 0; ; {
		m, ok := Find(s, off)
		if !ok {
			return out
		}
		out = append(out, m)
		off = m.Offset + 1
	}
}

// FirstUnbraced returns the first marker not written as ${name}.
func FirstUnbraced(s string) (Marker, bool) {
	for off := 0; ; {
		m, ok := Find(s, off)
		if !ok || !m.Braced {
			return m, ok
		}
		off = m.Offset + 1
	}
}

// bracedLabel matches ^[a-zA-Z_\x7f-\xff][a-zA-Z0-9_\x7f-\xff]*\}
func bracedLabel(s string) bool {
	if s == "" || !isLabelStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		switch {
		case s[i] == '}':
			return true
		case !isLabelContinue(s[i]):
			return false
		}
	}
	return false
}

func isLabelStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= 0x7f
}

func isLabelContinue(b byte) bool {
	return isLabelStart(b) || (b >= '0' && b <= '9')
}
