package textobject

import (
	"strings"
	"unicode"

	"github.com/samber/mo"
)

// WordSeparators end a word for the iw and aw objects.
const WordSeparators = " \t\n\r.,;:!?()[]{}\"'<>"

const sentenceEnders = ".!?"

var quoteChars = []rune{'"', '\'', '`'}

var pairs = map[Type][2]rune{
	Paren:   {'(', ')'},
	Bracket: {'[', ']'},
	Brace:   {'{', '}'},
	Angle:   {'<', '>'},
}

// Find returns the range of the text object of typ around cur.
func Find(t Text, cur Position, typ Type, mode Mode) mo.Option[Range] {
	return FindSpec(t, cur, Spec{Type: typ, Mode: mode})
}

// FindSpec is Find for a parsed code. A quote spec with a delimiter only
// matches that quote character.
func FindSpec(t Text, cur Position, spec Spec) mo.Option[Range] {
	if cur.Row < 0 || cur.Row >= t.LineCount() || cur.Col < 0 {
		return mo.None[Range]()
	}

	var start, end int
	var ok bool
	line := t.Line(cur.Row)

	switch spec.Type {
	case Word:
		start, end, ok = findWord(line, cur.Col, spec.Mode, isWordSeparator)
	case BigWord:
		start, end, ok = findWord(line, cur.Col, spec.Mode, unicode.IsSpace)
	case Sentence:
		start, end = findSentence(line, cur.Col, spec.Mode)
		ok = true
	case Paragraph:
		return findParagraph(t, cur.Row, spec.Mode)
	case Quote:
		delims := quoteChars
		if spec.Delim != 0 {
			delims = []rune{spec.Delim}
		}
		for _, q := range delims {
			if start, end, ok = findQuote(line, cur.Col, q, spec.Mode); ok {
				break
			}
		}
	case Paren, Bracket, Brace, Angle:
		p := pairs[spec.Type]
		start, end, ok = findPair(line, cur.Col, p[0], p[1], spec.Mode)
	case Tag:
		// Tags would need a markup parser.
		return mo.None[Range]()
	}

	if !ok {
		return mo.None[Range]()
	}
	return mo.Some(Range{
		Start: Position{Row: cur.Row, Col: start},
		End:   Position{Row: cur.Row, Col: end},
		Type:  spec.Type,
		Mode:  spec.Mode,
	})
}

func isWordSeparator(r rune) bool {
	return strings.ContainsRune(WordSeparators, r)
}

func findWord(line []rune, col int, mode Mode, sep func(rune) bool) (int, int, bool) {
	if len(line) == 0 {
		return 0, 0, false
	}
	col = min(col, len(line)-1)

	if sep(line[col]) {
		if mode == Inner {
			return 0, 0, false
		}
		return whitespaceAround(line, col)
	}

	start, end := col, col
	for start > 0 && !sep(line[start-1]) {
		start--
	}
	for end < len(line) && !sep(line[end]) {
		end++
	}

	if mode == Around {
		extended := end
		for extended < len(line) && unicode.IsSpace(line[extended]) {
			extended++
		}
		if extended == end && start > 0 {
			for start > 0 && unicode.IsSpace(line[start-1]) {
				start--
			}
		} else {
			end = extended
		}
	}
	return start, end, true
}

func whitespaceAround(line []rune, col int) (int, int, bool) {
	start, end := col, col
	for start > 0 && unicode.IsSpace(line[start-1]) {
		start--
	}
	for end < len(line) && unicode.IsSpace(line[end]) {
		end++
	}
	return start, end, start < end
}

// findSentence bounds the sentence on the cursor's line: from just after
// the previous terminator to the next terminator inclusive.
func findSentence(line []rune, col int, mode Mode) (int, int) {
	col = min(col, len(line))

	start := 0
	for pos := col; pos > 0; pos-- {
		if strings.ContainsRune(sentenceEnders, line[pos-1]) {
			start = pos
			for start < len(line) && unicode.IsSpace(line[start]) {
				start++
			}
			break
		}
	}

	end := len(line)
	for pos := col; pos < len(line); pos++ {
		if strings.ContainsRune(sentenceEnders, line[pos]) {
			end = pos + 1
			break
		}
	}

	if mode == Around {
		for end < len(line) && unicode.IsSpace(line[end]) {
			end++
		}
	}
	if start > end {
		start = end
	}
	return start, end
}

func isBlank(line []rune) bool {
	for _, r := range line {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// findParagraph selects the run of lines sharing the cursor row's
// blankness. Around also takes the blank line that follows.
func findParagraph(t Text, row int, mode Mode) mo.Option[Range] {
	n := t.LineCount()
	blank := isBlank(t.Line(row))

	first := row
	for first > 0 && isBlank(t.Line(first-1)) == blank {
		first--
	}
	next := row
	for next < n && isBlank(t.Line(next)) == blank {
		next++
	}

	r := Range{Start: Position{Row: first}, Type: Paragraph, Mode: mode}
	switch {
	case next >= n:
		r.End = Position{Row: n - 1, Col: len(t.Line(n - 1))}
	case mode == Around && next+1 < n:
		r.End = Position{Row: next + 1}
	case mode == Around:
		r.End = Position{Row: next, Col: len(t.Line(next))}
	default:
		r.End = Position{Row: next}
	}
	return mo.Some(r)
}

// findQuote pairs the quote characters on the line in order and picks the
// pair containing col.
func findQuote(line []rune, col int, q rune, mode Mode) (int, int, bool) {
	var quotes []int
	for i, r := range line {
		if r == q {
			quotes = append(quotes, i)
		}
	}
	for i := 0; i+1 < len(quotes); i += 2 {
		open, closing := quotes[i], quotes[i+1]
		if col >= open && col <= closing {
			return bounds(open, closing, mode)
		}
	}
	return 0, 0, false
}

// findPair returns the innermost open/close pair on the line containing col.
func findPair(line []rune, col int, open, closing rune, mode Mode) (int, int, bool) {
	var stack []int
	for i, r := range line {
		switch r {
		case open:
			stack = append(stack, i)
		case closing:
			if len(stack) == 0 {
				continue
			}
			start := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if col >= start && col <= i {
				return bounds(start, i, mode)
			}
		}
	}
	return 0, 0, false
}

func bounds(open, closing int, mode Mode) (int, int, bool) {
	if mode == Inner {
		return open + 1, closing, true
	}
	return open, closing + 1, true
}
