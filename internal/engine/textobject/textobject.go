// Package textobject resolves Vim text objects such as "iw" or "a(" into
// buffer ranges.
//
// Resolution is read-only. Find returns mo.None when the cursor is not
// inside an object of the requested type; callers treat that as a no-op.
package textobject

import (
	"github.com/samber/mo"

	"github.com/dshills/modalkit/internal/engine/cursor"
)

// Position is an alias for cursor.Position.
type Position = cursor.Position

// Text is the read-only view of a buffer that text objects are found in.
type Text interface {
	LineCount() int
	Line(row int) []rune
}

// Type identifies the structure a text object selects.
type Type uint8

const (
	Word Type = iota
	BigWord
	Sentence
	Paragraph
	Quote
	Paren
	Bracket
	Brace
	Angle
	Tag
)

var typeNames = [...]string{
	Word:      "word",
	BigWord:   "WORD",
	Sentence:  "sentence",
	Paragraph: "paragraph",
	Quote:     "quote",
	Paren:     "paren",
	Bracket:   "bracket",
	Brace:     "brace",
	Angle:     "angle",
	Tag:       "tag",
}

// String returns the type name.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// Mode selects between the inner and around variants.
type Mode uint8

const (
	// Inner excludes delimiters and surrounding whitespace (i).
	Inner Mode = iota

	// Around includes them (a).
	Around
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	if m == Around {
		return "around"
	}
	return "inner"
}

// Spec is a parsed text object code such as "i(".
type Spec struct {
	Type Type
	Mode Mode

	// Delim is the quote character for Quote objects. Zero means any of
	// the supported quotes.
	Delim rune
}

// Range is the span a text object covers. End is exclusive.
type Range struct {
	Start Position
	End   Position
	Type  Type
	Mode  Mode
}

// IsValid reports whether the range is ordered.
func (r Range) IsValid() bool {
	return !r.End.Before(r.Start)
}

// IsEmpty reports whether the range covers nothing.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// typeKeys maps the second character of a text object code to its type.
var typeKeys = map[rune]Type{
	'w':  Word,
	'W':  BigWord,
	's':  Sentence,
	'p':  Paragraph,
	'"':  Quote,
	'\'': Quote,
	'`':  Quote,
	'(':  Paren,
	')':  Paren,
	'b':  Paren,
	'[':  Bracket,
	']':  Bracket,
	'{':  Brace,
	'}':  Brace,
	'B':  Brace,
	'<':  Angle,
	'>':  Angle,
	't':  Tag,
}

// Parse parses a two-character code like "iw" or "a\"". Anything else
// yields None.
func Parse(code string) mo.Option[Spec] {
	runes := []rune(code)
	if len(runes) != 2 {
		return mo.None[Spec]()
	}

	var mode Mode
	switch runes[0] {
	case 'i':
		mode = Inner
	case 'a':
		mode = Around
	default:
		return mo.None[Spec]()
	}

	typ, ok := typeKeys[runes[1]]
	if !ok {
		return mo.None[Spec]()
	}
	spec := Spec{Type: typ, Mode: mode}
	if typ == Quote {
		spec.Delim = runes[1]
	}
	return mo.Some(spec)
}

// IsPrefix reports whether r starts a text object code.
func IsPrefix(r rune) bool {
	return r == 'i' || r == 'a'
}
