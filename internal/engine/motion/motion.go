package motion

import (
	"unicode"

	"github.com/dshills/modalkit/internal/engine/cursor"
)

// Position is an alias for cursor.Position.
type Position = cursor.Position

// Text is the read-only view of a buffer that motions navigate.
type Text interface {
	LineCount() int
	Line(row int) []rune
}

// Kind identifies a motion.
type Kind uint8

const (
	Left Kind = iota
	Right
	Up
	Down
	LineStart
	LineEnd
	FirstNonBlank
	BufferStart
	BufferEnd
	WordForward
	WordBackward
	WordEnd
	BigWordForward
	BigWordBackward
	BigWordEnd
	ParagraphForward
	ParagraphBackward
	SentenceForward
	SentenceBackward
	SectionForward
	SectionBackward
	BracketMatch
)

// Type categorizes motions by the span an operator applies to.
type Type uint8

const (
	// Charwise motions cover the characters between the two ends.
	Charwise Type = iota

	// Linewise motions cover every row between the two ends.
	Linewise
)

// Motion describes how a motion behaves under an operator.
type Motion struct {
	// Kind is the motion identifier.
	Kind Kind

	// Name is the motion's name, used in logs.
	Name string

	// Type is charwise or linewise.
	Type Type

	// Inclusive indicates the landing character belongs to the span.
	// e.g., 'e' is inclusive, 'w' is exclusive.
	Inclusive bool
}

var motions = [...]Motion{
	Left:              {Kind: Left, Name: "left"},
	Right:             {Kind: Right, Name: "right"},
	Up:                {Kind: Up, Name: "up", Type: Linewise},
	Down:              {Kind: Down, Name: "down", Type: Linewise},
	LineStart:         {Kind: LineStart, Name: "lineStart"},
	LineEnd:           {Kind: LineEnd, Name: "lineEnd", Inclusive: true},
	FirstNonBlank:     {Kind: FirstNonBlank, Name: "firstNonBlank"},
	BufferStart:       {Kind: BufferStart, Name: "bufferStart", Type: Linewise},
	BufferEnd:         {Kind: BufferEnd, Name: "bufferEnd", Type: Linewise},
	WordForward:       {Kind: WordForward, Name: "wordForward"},
	WordBackward:      {Kind: WordBackward, Name: "wordBackward"},
	WordEnd:           {Kind: WordEnd, Name: "wordEnd", Inclusive: true},
	BigWordForward:    {Kind: BigWordForward, Name: "WORDForward"},
	BigWordBackward:   {Kind: BigWordBackward, Name: "WORDBackward"},
	BigWordEnd:        {Kind: BigWordEnd, Name: "WORDEnd", Inclusive: true},
	ParagraphForward:  {Kind: ParagraphForward, Name: "paragraphForward"},
	ParagraphBackward: {Kind: ParagraphBackward, Name: "paragraphBackward"},
	SentenceForward:   {Kind: SentenceForward, Name: "sentenceForward"},
	SentenceBackward:  {Kind: SentenceBackward, Name: "sentenceBackward"},
	SectionForward:    {Kind: SectionForward, Name: "sectionForward"},
	SectionBackward:   {Kind: SectionBackward, Name: "sectionBackward"},
	BracketMatch:      {Kind: BracketMatch, Name: "bracketMatch", Inclusive: true},
}

// Describe returns the descriptor for k.
func Describe(k Kind) Motion {
	if int(k) < len(motions) {
		return motions[k]
	}
	return Motion{Kind: k, Name: "unknown"}
}

// String returns the motion name.
func (k Kind) String() string {
	return Describe(k).Name
}

// Apply moves pos by the motion k. Only BracketMatch can fail; every other
// motion stays put when it has nowhere to go.
func Apply(t Text, pos Position, k Kind) (Position, error) {
	if t.LineCount() == 0 {
		return Position{}, nil
	}
	pos = clamp(t, pos)

	switch k {
	case Left:
		if pos.Col > 0 {
			pos.Col--
		}
	case Right:
		if pos.Col < len(t.Line(pos.Row)) {
			pos.Col++
		}
	case Up:
		if pos.Row > 0 {
			pos.Row--
			pos.Col = min(pos.Col, len(t.Line(pos.Row)))
		}
	case Down:
		if pos.Row+1 < t.LineCount() {
			pos.Row++
			pos.Col = min(pos.Col, len(t.Line(pos.Row)))
		}
	case LineStart:
		pos.Col = 0
	case LineEnd:
		pos.Col = len(t.Line(pos.Row))
	case FirstNonBlank:
		pos.Col = firstNonBlank(t.Line(pos.Row))
	case BufferStart:
		pos = Position{}
	case BufferEnd:
		last := t.LineCount() - 1
		pos = Position{Row: last, Col: len(t.Line(last))}
	case WordForward:
		pos = wordForward(t, pos, IsWordSeparator)
	case WordBackward:
		pos = wordBackward(t, pos, IsWordSeparator)
	case WordEnd:
		pos = wordEnd(t, pos, IsWordSeparator)
	case BigWordForward:
		pos = wordForward(t, pos, unicode.IsSpace)
	case BigWordBackward:
		pos = wordBackward(t, pos, unicode.IsSpace)
	case BigWordEnd:
		pos = wordEnd(t, pos, unicode.IsSpace)
	case ParagraphForward:
		pos = paragraphForward(t, pos)
	case ParagraphBackward:
		pos = paragraphBackward(t, pos)
	case SentenceForward:
		pos = sentenceForward(t, pos)
	case SentenceBackward:
		pos = sentenceBackward(t, pos)
	case SectionForward:
		pos = sectionForward(t, pos)
	case SectionBackward:
		pos = sectionBackward(t, pos)
	case BracketMatch:
		return MatchBracket(t, pos)
	}
	return pos, nil
}

func clamp(t Text, p Position) Position {
	return cursor.Clamp(p, lengths{t})
}

// lengths adapts a Text to cursor.LineLengther.
type lengths struct{ Text }

func (l lengths) LineLen(row int) int { return len(l.Line(row)) }

func firstNonBlank(line []rune) int {
	for i, r := range line {
		if !unicode.IsSpace(r) {
			return i
		}
	}
	return 0
}

func isBlank(line []rune) bool {
	for _, r := range line {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
