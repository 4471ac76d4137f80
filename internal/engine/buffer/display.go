package buffer

import "github.com/rivo/uniseg"

// DisplayColumn returns the terminal cell column at which the rune column
// col of row starts. Tabs advance to the next tab stop and wide characters
// take two cells.
func (b *Buffer) DisplayColumn(row, col int) int {
	line := b.Line(row)
	col = min(max(col, 0), len(line))
	return displayWidth(line[:col], b.tabWidth)
}

// DisplayWidth returns the number of terminal cells row occupies.
func (b *Buffer) DisplayWidth(row int) int {
	return displayWidth(b.Line(row), b.tabWidth)
}

func displayWidth(runes []rune, tabWidth int) int {
	width := 0
	start := 0
	for i, r := range runes {
		if r != '\t' {
			continue
		}
		width += uniseg.StringWidth(string(runes[start:i]))
		width += tabWidth - width%tabWidth
		start = i + 1
	}
	return width + uniseg.StringWidth(string(runes[start:]))
}

// TabWidth returns the number of cells between tab stops.
func (b *Buffer) TabWidth() int {
	return b.tabWidth
}
