package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/modalkit/internal/input/key"
	"github.com/dshills/modalkit/internal/input/mode"
)

// Terminal is the interactive front end: it draws the buffer and a status
// line, and feeds terminal key events to the session.
type Terminal struct {
	app    *Application
	screen tcell.Screen

	// top is the first buffer row on screen.
	top int
}

var (
	styleText   = tcell.StyleDefault
	styleFiller = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleStatus = tcell.StyleDefault.Reverse(true)
)

// NewTerminal creates a front end for app. A nil screen opens the real
// terminal.
func NewTerminal(app *Application, screen tcell.Screen) (*Terminal, error) {
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("create screen: %w", err)
		}
		screen = s
	}
	return &Terminal{app: app, screen: screen}, nil
}

// Run draws and handles keys until a quit command runs, the terminal
// closes or ctx is done.
func (t *Terminal) Run(ctx context.Context) error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer t.screen.Fini()
	return t.loop(ctx)
}

// loop handles events on an initialized screen.
func (t *Terminal) loop(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go t.pollEvents(events, quit)

	t.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch e := ev.(type) {
			case *tcell.EventKey:
				if k, ok := convertKey(e); ok {
					t.app.HandleKey(k.At(e.When()))
				}
				if t.app.Done() {
					return nil
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
			t.draw()
		}
	}
}

func (t *Terminal) pollEvents(events chan<- tcell.Event, quit <-chan struct{}) {
	defer close(events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

// draw renders the visible rows, the status line and the cursor.
func (t *Terminal) draw() {
	width, height := t.screen.Size()
	if height < 2 {
		return
	}
	textRows := height - 1

	in := t.app.Interpreter()
	buf := in.Buffer()
	cur := buf.Cursor()
	t.scrollTo(cur.Row, textRows)

	t.screen.Clear()
	for y := range textRows {
		row := t.top + y
		if row >= buf.LineCount() {
			t.screen.SetContent(0, y, '~', nil, styleFiller)
			continue
		}
		drawLine(t.screen, y, buf.Line(row), width, buf.TabWidth())
	}

	m := in.Mode()
	statusY := height - 1
	left := modeLabel(m)
	if m == mode.Command || m == mode.Search {
		left = in.CommandLine()
	} else if msg := in.Status(); msg != "" {
		left = strings.TrimSpace(left + " " + msg)
	}
	right := fmt.Sprintf("%s  %d,%d", in.Pending(), cur.Row+1, cur.Col+1)
	drawStatus(t.screen, statusY, width, left, right)

	if m == mode.Command || m == mode.Search {
		t.screen.ShowCursor(uniseg.StringWidth(left), statusY)
	} else {
		t.screen.ShowCursor(buf.DisplayColumn(cur.Row, cur.Col), cur.Row-t.top)
	}
	t.screen.SetCursorStyle(cursorStyle(m))
	t.screen.Show()
}

// scrollTo keeps row within the rows visible on screen.
func (t *Terminal) scrollTo(row, visible int) {
	switch {
	case row < t.top:
		t.top = row
	case row >= t.top+visible:
		t.top = row - visible + 1
	}
}

// drawLine writes one buffer line, expanding tabs and placing each
// grapheme cluster in as many cells as it is wide.
func drawLine(s tcell.Screen, y int, line []rune, width, tabWidth int) {
	x := 0
	g := uniseg.NewGraphemes(string(line))
	for g.Next() && x < width {
		runes := g.Runes()
		if runes[0] == '\t' {
			for n := tabWidth - x%tabWidth; n > 0 && x < width; n-- {
				s.SetContent(x, y, ' ', nil, styleText)
				x++
			}
			continue
		}
		s.SetContent(x, y, runes[0], runes[1:], styleText)
		x += max(g.Width(), 1)
	}
}

func drawStatus(s tcell.Screen, y, width int, left, right string) {
	for x := range width {
		s.SetContent(x, y, ' ', nil, styleStatus)
	}
	drawString(s, 0, y, width, left)
	if start := width - uniseg.StringWidth(right); start > uniseg.StringWidth(left) {
		drawString(s, start, y, width, right)
	}
}

func drawString(s tcell.Screen, x, y, width int, text string) {
	g := uniseg.NewGraphemes(text)
	for g.Next() && x < width {
		runes := g.Runes()
		s.SetContent(x, y, runes[0], runes[1:], styleStatus)
		x += max(g.Width(), 1)
	}
}

func modeLabel(m mode.Mode) string {
	switch m {
	case mode.Insert:
		return "-- INSERT --"
	case mode.Replace:
		return "-- REPLACE --"
	case mode.Visual:
		return "-- VISUAL --"
	case mode.VisualLine:
		return "-- VISUAL LINE --"
	case mode.VisualBlock:
		return "-- VISUAL BLOCK --"
	default:
		return ""
	}
}

func cursorStyle(m mode.Mode) tcell.CursorStyle {
	switch m.CursorStyle() {
	case mode.CursorBar:
		return tcell.CursorStyleSteadyBar
	case mode.CursorUnderline:
		return tcell.CursorStyleSteadyUnderline
	default:
		return tcell.CursorStyleSteadyBlock
	}
}

var namedKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyInsert:     key.KeyInsert,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
	tcell.KeyF1:         key.KeyF1,
	tcell.KeyF2:         key.KeyF2,
	tcell.KeyF3:         key.KeyF3,
	tcell.KeyF4:         key.KeyF4,
	tcell.KeyF5:         key.KeyF5,
	tcell.KeyF6:         key.KeyF6,
	tcell.KeyF7:         key.KeyF7,
	tcell.KeyF8:         key.KeyF8,
	tcell.KeyF9:         key.KeyF9,
	tcell.KeyF10:        key.KeyF10,
	tcell.KeyF11:        key.KeyF11,
	tcell.KeyF12:        key.KeyF12,
}

// convertKey converts a tcell key event. Control letters arrive as their
// own tcell keys and become Ctrl plus the letter. Ctrl+H, Ctrl+I and
// Ctrl+M are indistinguishable from Backspace, Tab and Enter.
func convertKey(ev *tcell.EventKey) (key.Event, bool) {
	mods := convertMod(ev.Modifiers())
	k := ev.Key()

	if k == tcell.KeyRune {
		return key.NewRuneEvent(ev.Rune(), mods), true
	}
	if named, ok := namedKeys[k]; ok {
		return key.NewSpecialEvent(named, mods.Without(key.ModCtrl)), true
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.NewRuneEvent(rune('a'+int(k-tcell.KeyCtrlA)), mods.With(key.ModCtrl)), true
	}
	return key.Event{}, false
}

func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result = result.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		result = result.With(key.ModCtrl)
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		result = result.With(key.ModAlt)
	}
	return result
}
