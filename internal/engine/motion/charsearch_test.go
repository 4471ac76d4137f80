package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/modalkit/internal/engine/cursor"
)

func TestFindChar(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		from   int
		search CharSearch
		repeat bool
		want   int
		found  bool
	}{
		{"f forward", "xaxbx", 0, CharSearch{Find, 'x', true}, false, 2, true},
		{"f repeat", "xaxbx", 2, CharSearch{Find, 'x', true}, true, 4, true},
		{"f missing", "abc", 0, CharSearch{Find, 'z', true}, false, 0, false},
		{"F backward", "xaxbx", 4, CharSearch{Find, 'x', false}, false, 2, true},
		{"F at start", "xab", 0, CharSearch{Find, 'x', false}, false, 0, false},
		{"t forward", "a,b,c", 0, CharSearch{Till, ',', true}, false, 0, true},
		{"t forward further", "abc,d", 0, CharSearch{Till, ',', true}, false, 2, true},
		{"t repeat skips adjacent", "a,b,c", 0, CharSearch{Till, ',', true}, true, 2, true},
		{"T backward", "a,bc", 3, CharSearch{Till, ',', false}, false, 2, true},
		{"T repeat skips adjacent", "a,b,c", 4, CharSearch{Till, ',', false}, true, 2, true},
		{"multibyte", "ébé", 0, CharSearch{Find, 'é', true}, false, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindChar(textFrom(tt.text), cursor.Pos(0, tt.from), tt.search, tt.repeat)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, cursor.Pos(0, tt.want), got)
		})
	}
}

func TestCharSearchRepeat(t *testing.T) {
	text := textFrom("xaxbx")
	cs := CharSearch{Kind: Find, Char: 'x', Forward: true}

	p, ok := FindChar(text, cursor.Pos(0, 0), cs, false)
	assert.True(t, ok)
	assert.Equal(t, 2, p.Col)

	p, ok = FindChar(text, p, cs, true)
	assert.True(t, ok)
	assert.Equal(t, 4, p.Col)

	p, ok = FindChar(text, p, cs.Reverse(), true)
	assert.True(t, ok)
	assert.Equal(t, 2, p.Col)
}

func TestCharSearchInclusive(t *testing.T) {
	assert.True(t, CharSearch{Kind: Till, Forward: true}.Inclusive())
	assert.False(t, CharSearch{Kind: Find, Forward: false}.Inclusive())
	assert.Equal(t, "till", Till.String())
}
