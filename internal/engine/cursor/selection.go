package cursor

// SelectionKind selects how a selection's bounds are interpreted.
type SelectionKind uint8

const (
	// SelectCharacter spans from Start to End inclusive, across lines.
	SelectCharacter SelectionKind = iota
	// SelectLine spans every line between Start and End.
	SelectLine
	// SelectBlock spans the column rectangle between Start and End.
	SelectBlock
)

// String returns the selection kind name.
func (k SelectionKind) String() string {
	switch k {
	case SelectCharacter:
		return "character"
	case SelectLine:
		return "line"
	case SelectBlock:
		return "block"
	default:
		return "unknown"
	}
}

// Selection represents a visual selection.
// Anchor is where the selection started; Head is the current cursor position.
// Selection is an immutable value type.
type Selection struct {
	Anchor Position
	Head   Position
	Kind   SelectionKind
}

// NewSelection creates a collapsed selection of the given kind at p.
func NewSelection(p Position, kind SelectionKind) Selection {
	return Selection{Anchor: p, Head: p, Kind: kind}
}

// Start returns the lower bound of the selection.
func (s Selection) Start() Position {
	start, _ := Order(s.Anchor, s.Head)
	return start
}

// End returns the upper bound of the selection.
func (s Selection) End() Position {
	_, end := Order(s.Anchor, s.Head)
	return end
}

// Extend returns a new selection with the head moved to p.
// The anchor remains fixed.
func (s Selection) Extend(p Position) Selection {
	return Selection{Anchor: s.Anchor, Head: p, Kind: s.Kind}
}

// WithKind returns the selection with a different kind, keeping its bounds.
func (s Selection) WithKind(kind SelectionKind) Selection {
	s.Kind = kind
	return s
}

// Rows returns the first and last row touched by the selection.
func (s Selection) Rows() (int, int) {
	return s.Start().Row, s.End().Row
}

// Columns returns the leftmost and rightmost column of a block selection.
func (s Selection) Columns() (int, int) {
	if s.Anchor.Col <= s.Head.Col {
		return s.Anchor.Col, s.Head.Col
	}
	return s.Head.Col, s.Anchor.Col
}
