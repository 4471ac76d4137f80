package keymap

import "strings"

// ShouldWait reports whether an exact match on seq should defer because a
// longer binding could still follow.
//
// Multi-character sequences wait for any strict extension. A single
// character is stricter, so that common uppercase commands stay immediate:
//   - "D" and "C" wait only for "d…"/"c…" followed by a lowercase letter,
//     which no sequence starting with the uppercase letter can be.
//   - other uppercase letters wait only for keys made of uppercase letters
//     and digits ("ZZ").
//   - lowercase letters and symbols wait for any extension.
//
// An extension whose remainder is all digits never counts.
func (t *Table) ShouldWait(seq string) bool {
	for k := range t.bindings {
		if len(k) <= len(seq) || !strings.HasPrefix(k, seq) {
			continue
		}
		if allDigits(k[len(seq):]) {
			continue
		}
		if len(seq) != 1 || legitimateExtension(seq[0], k) {
			return true
		}
	}
	return false
}

func legitimateExtension(first byte, k string) bool {
	switch {
	case first == 'D':
		return strings.HasPrefix(k, "d") && isLower(k[1])
	case first == 'C':
		return strings.HasPrefix(k, "c") && isLower(k[1])
	case first >= 'A' && first <= 'Z':
		for i := 0; i < len(k); i++ {
			if !isUpper(k[i]) && !isDigit(k[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return s != ""
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
