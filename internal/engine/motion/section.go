package motion

import (
	"strings"
	"unicode"
)

// sectionPrefixes start a section wherever they appear after indentation.
var sectionPrefixes = []string{
	"# ", "## ", "### ",
	"class ", "impl ", "mod ",
	"pub struct ", "struct ", "enum ", "trait ",
	"function ",
}

// topLevelPrefixes only start a section on an unindented line.
var topLevelPrefixes = []string{"fn ", "pub fn ", "def "}

// IsSectionStart reports whether line opens a section: a header,
// a type or function declaration, or a lone opening brace.
func IsSectionStart(line []rune) bool {
	s := string(line)
	trimmed := strings.TrimLeftFunc(s, unicode.IsSpace)
	for _, prefix := range sectionPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	if trimmed == s {
		for _, prefix := range topLevelPrefixes {
			if strings.HasPrefix(s, prefix) {
				return true
			}
		}
	}
	return strings.HasPrefix(s, "{") && strings.TrimSpace(s) == "{"
}

func sectionForward(t Text, p Position) Position {
	n := t.LineCount()
	for row := p.Row + 1; row < n; row++ {
		if IsSectionStart(t.Line(row)) {
			return Position{Row: row}
		}
	}
	return Position{Row: n - 1}
}

func sectionBackward(t Text, p Position) Position {
	for row := p.Row - 1; row >= 0; row-- {
		if IsSectionStart(t.Line(row)) {
			return Position{Row: row}
		}
	}
	return Position{}
}
