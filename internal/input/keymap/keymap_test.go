package keymap

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/dshills/modalkit/internal/engine/textobject"
	"github.com/dshills/modalkit/internal/input/mode"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		name   string
		want   Action
		wantOK bool
	}{
		{"cursor_left", CursorLeft, true},
		{"operator_toggle_case", OperatorToggleCase, true},
		{" word_end ", WordEnd, true},
		{"line_first_char", FirstNonBlank, true},
		{"find_char_forward", StartFindForward, true},
		{"execute_search", ExecuteCommand, true},
		{"delete_search_char", CommandBackspace, true},
		{"find_char", None, false},
		{"cancel", None, false},
		{"scroll_down_page", None, false},
		{"", None, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAction(tt.name)
			if ok != tt.wantOK {
				t.Fatalf("ParseAction(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseAction(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestActionNamesRoundTrip(t *testing.T) {
	for _, a := range Actions() {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", a.String(), got, ok)
		}
	}
}

func TestActionPredicates(t *testing.T) {
	if !OperatorDelete.IsOperator() || OperatorLine.IsOperator() {
		t.Error("IsOperator wrong for operator_delete/operator_line")
	}
	if !WordEnd.IsMotion() || !FindChar.IsMotion() || StartFindForward.IsMotion() {
		t.Error("IsMotion wrong")
	}
	if !StartTillBackward.IsCharSearchStart() || RepeatCharSearch.IsCharSearchStart() {
		t.Error("IsCharSearchStart wrong")
	}
	if !PutAfter.IsRepeatable() || Undo.IsRepeatable() || CursorLeft.IsRepeatable() {
		t.Error("IsRepeatable wrong")
	}
	if _, ok := FindChar.MotionKind(); ok {
		t.Error("FindChar should have no fixed motion kind")
	}
}

func TestBuildDefault(t *testing.T) {
	km := Default()

	tests := []struct {
		mode mode.Mode
		keys string
		want Action
	}{
		{mode.Normal, "gg", BufferStart},
		{mode.Normal, "d", OperatorDelete},
		{mode.Normal, "g~", OperatorToggleCase},
		{mode.Normal, "Ctrl+r", Redo},
		{mode.OperatorPending, "d", OperatorLine},
		{mode.OperatorPending, "w", WordForward},
		{mode.OperatorPending, "iw", TextObject},
		{mode.Insert, CharKey, InsertChar},
		{mode.Search, "Enter", ExecuteCommand},
		{mode.VisualBlock, "y", YankSelection},
	}

	for _, tt := range tests {
		b, ok := km.Table(tt.mode).Lookup(tt.keys)
		if !ok {
			t.Errorf("%s %q: not bound", tt.mode, tt.keys)
			continue
		}
		if b.Action != tt.want {
			t.Errorf("%s %q = %v, want %v", tt.mode, tt.keys, b.Action, tt.want)
		}
	}

	b, _ := km.Table(mode.OperatorPending).Lookup(`i"`)
	want := textobject.Spec{Type: textobject.Quote, Mode: textobject.Inner, Delim: '"'}
	if b.TextObject != want {
		t.Errorf("i\" text object = %+v, want %+v", b.TextObject, want)
	}
}

func TestBuildDropsUnknownActions(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	km, err := Build(map[string]map[string]string{
		"normal": {
			"j":  "cursor_down",
			"zz": "center_cursor",
			"q":  "text_object_qq",
		},
	}, logger)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	tbl := km.Table(mode.Normal)
	if tbl.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tbl.Len())
	}
	if _, ok := tbl.Lookup("zz"); ok {
		t.Error("unknown action should be dropped")
	}
	if !strings.Contains(logs.String(), "center_cursor") {
		t.Errorf("expected a warning naming the dropped action, got %q", logs.String())
	}
}

func TestBuildUnknownMode(t *testing.T) {
	_, err := Build(map[string]map[string]string{"emacs": {"x": "undo"}}, nil)
	if !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Build() error = %v, want ErrUnknownMode", err)
	}
}

func TestTableForUnboundMode(t *testing.T) {
	km, err := Build(nil, nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	tbl := km.Table(mode.Visual)
	if tbl == nil || tbl.Len() != 0 || tbl.Mode() != mode.Visual {
		t.Errorf("Table(Visual) = %+v, want empty visual table", tbl)
	}
}

func TestShouldWait(t *testing.T) {
	tbl := NewTable(mode.Normal)
	for _, keys := range []string{"g", "gg", "D", "C", "Z", "ZZ", "ZQ2", "E", "End", "x", "x1", "Ctrl+w", "Ctrl+w h", "s", "s1a"} {
		tbl.Add(Binding{Keys: keys, Action: CursorLeft})
	}

	tests := []struct {
		seq  string
		want bool
	}{
		{"g", true},
		{"D", false},
		{"C", false},
		{"Z", true},
		{"E", false},
		{"x", false},
		{"s", true},
		{"Ctrl+w", true},
		{"gg", false},
	}

	for _, tt := range tests {
		if got := tbl.ShouldWait(tt.seq); got != tt.want {
			t.Errorf("ShouldWait(%q) = %v, want %v", tt.seq, got, tt.want)
		}
	}
}

func TestHasStrictPrefix(t *testing.T) {
	tbl := Default().Table(mode.OperatorPending)
	if !tbl.HasStrictPrefix("i") {
		t.Error("\"i\" should prefix inner text objects")
	}
	if tbl.HasStrictPrefix("iw") {
		t.Error("\"iw\" has no longer binding")
	}
}

func TestMerge(t *testing.T) {
	base := map[string]map[string]string{
		"normal": {"j": "cursor_down", "k": "cursor_up"},
	}
	overlay := map[string]map[string]string{
		"normal": {"k": "", "J": "join_lines"},
		"insert": {"Ctrl+h": "delete_char"},
	}

	got := Merge(base, overlay)

	if _, ok := got["normal"]["k"]; ok {
		t.Error("empty action should unbind k")
	}
	if got["normal"]["j"] != "cursor_down" || got["normal"]["J"] != "join_lines" {
		t.Errorf("normal = %v", got["normal"])
	}
	if got["insert"]["Ctrl+h"] != "delete_char" {
		t.Errorf("insert = %v", got["insert"])
	}
	if base["normal"]["k"] != "cursor_up" {
		t.Error("Merge modified base")
	}
}
