package render

import (
	"fmt"
	"slices"

	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/game"
	"dungeon-kernel/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var (
	styleMenu     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleMenuSel  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack)
	styleValid    = tcell.StyleDefault.Background(tcell.ColorNavy)
	styleCursorOK = tcell.StyleDefault.Background(tcell.ColorAqua)
	styleCursorNo = tcell.StyleDefault.Background(tcell.ColorMaroon)
)

// ItemMenu draws a lettered list over the current frame. Letters pick an
// item directly; arrows move the highlight and Enter picks it; Esc cancels.
func (t *Terminal) ItemMenu(title string, items []game.MenuItem) (game.MenuResult, ecs.EntityID) {
	if len(items) == 0 {
		t.closeMenu()
		return game.MenuCancel, 0
	}
	if title != t.menuTitle {
		t.menuTitle, t.cursor = title, 0
	}
	t.cursor = min(t.cursor, len(items)-1)
	t.drawItemMenu(title, items)

	ev := t.poll()
	if ev == nil {
		t.closeMenu()
		return game.MenuCancel, 0
	}
	k, ok := ev.(*tcell.EventKey)
	if !ok {
		return game.MenuNoResponse, 0
	}
	switch k.Key() {
	case tcell.KeyEscape:
		t.closeMenu()
		return game.MenuCancel, 0
	case tcell.KeyUp:
		t.cursor = (t.cursor - 1 + len(items)) % len(items)
		return game.MenuNoResponse, 0
	case tcell.KeyDown:
		t.cursor = (t.cursor + 1) % len(items)
		return game.MenuNoResponse, 0
	case tcell.KeyEnter:
		id := items[t.cursor].ID
		t.closeMenu()
		return game.MenuSelected, id
	case tcell.KeyRune:
		if i := int(k.Rune() - 'a'); i >= 0 && i < len(items) {
			t.closeMenu()
			return game.MenuSelected, items[i].ID
		}
	}
	return game.MenuNoResponse, 0
}

func (t *Terminal) closeMenu() { t.menuTitle, t.cursor = "", 0 }

func (t *Terminal) drawItemMenu(title string, items []game.MenuItem) {
	lines := make([]string, len(items))
	width := runewidth.StringWidth(title)
	for i, it := range items {
		lines[i] = fmt.Sprintf("(%c) %s", 'a'+rune(i), it.Name)
		width = max(width, runewidth.StringWidth(lines[i]))
	}
	footer := "ESC to cancel"
	width = max(width, runewidth.StringWidth(footer)) + 2

	sw, sh := t.screen.Size()
	x := max(0, (sw-width)/2)
	y := max(0, (sh-hudRows-len(items)-4)/2)
	t.fillRect(x, y, width, len(items)+4, styleMenu)
	putText(t.screen, x+1, y, title, styleTitle, x+width)
	for i, line := range lines {
		st := styleMenu
		if i == t.cursor {
			st = styleMenuSel
		}
		putText(t.screen, x+1, y+2+i, line, st, x+width)
	}
	putText(t.screen, x+1, y+3+len(items), footer, styleMenu, x+width)
	t.screen.Show()
}

func (t *Terminal) fillRect(x, y, w, h int, st tcell.Style) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			t.screen.SetContent(x+dx, y+dy, ' ', nil, st)
		}
	}
}

// Targeting highlights the valid tiles and lets the player move a cursor
// with the movement keys or the mouse. The cursor starts on the player.
// The chosen tile is returned even when it is not in valid; the game
// decides what to do with it.
func (t *Terminal) Targeting(v game.View, valid []gamemap.Point) (game.MenuResult, gamemap.Point) {
	if !t.targeting {
		t.targeting = true
		t.target = gamemap.Point{}
		if c := v.World.Get(v.Player, component.CPosition); c != nil {
			pos := c.(component.Position)
			t.target = gamemap.Pt(pos.X, pos.Y)
		}
	}
	t.drawTargeting(valid)

	ev := t.poll()
	switch ev := ev.(type) {
	case nil:
		t.targeting = false
		return game.MenuCancel, gamemap.Point{}
	case *tcell.EventMouse:
		sx, sy := ev.Position()
		wx, wy := t.camera.ScreenToWorld(sx, sy)
		t.target = gamemap.Pt(wx, wy)
		if ev.Buttons()&tcell.Button1 != 0 {
			t.targeting = false
			return game.MenuSelected, t.target
		}
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape:
			t.targeting = false
			return game.MenuCancel, gamemap.Point{}
		case tcell.KeyEnter:
			t.targeting = false
			return game.MenuSelected, t.target
		}
		if dx, dy, ok := targetDelta(ev); ok {
			t.target = gamemap.Pt(t.target.X+dx, t.target.Y+dy)
		}
	}
	return game.MenuNoResponse, gamemap.Point{}
}

func (t *Terminal) drawTargeting(valid []gamemap.Point) {
	for _, p := range valid {
		if sx, sy, ok := t.camera.WorldToScreen(p.X, p.Y); ok {
			t.restyle(sx, sy, styleValid)
		}
	}
	cursor := styleCursorNo
	if slices.Contains(valid, t.target) {
		cursor = styleCursorOK
	}
	if sx, sy, ok := t.camera.WorldToScreen(t.target.X, t.target.Y); ok {
		t.restyle(sx, sy, cursor)
	}
	sw, _ := t.screen.Size()
	putText(t.screen, 1, 0, "Select Target: move the cursor, Enter to fire, ESC to cancel", styleTitle, sw-1)
	t.screen.Show()
}

// restyle keeps the glyph at (x, y) and swaps its background.
func (t *Terminal) restyle(x, y int, bg tcell.Style) {
	mainc, combc, st, _ := t.screen.GetContent(x, y)
	_, bgColor, _ := bg.Decompose()
	t.screen.SetContent(x, y, mainc, combc, st.Background(bgColor))
}

// MainMenu draws the title screen. Load Game is skipped when there is no
// save. Arrows move the highlight; Enter confirms it.
func (t *Terminal) MainMenu(sel game.MainMenuSelection, saveExists bool) (game.MenuResult, game.MainMenuSelection) {
	entries := []game.MainMenuSelection{game.MenuNewGame}
	if saveExists {
		entries = append(entries, game.MenuLoadGame)
	}
	entries = append(entries, game.MenuQuit)
	cur := slices.Index(entries, sel)
	if cur < 0 {
		cur = 0
	}
	t.drawMainMenu(entries, cur)

	ev := t.poll()
	if ev == nil {
		return game.MenuSelected, game.MenuQuit
	}
	k, ok := ev.(*tcell.EventKey)
	if !ok {
		return game.MenuNoResponse, entries[cur]
	}
	switch k.Key() {
	case tcell.KeyUp:
		return game.MenuNoResponse, entries[(cur-1+len(entries))%len(entries)]
	case tcell.KeyDown:
		return game.MenuNoResponse, entries[(cur+1)%len(entries)]
	case tcell.KeyEnter:
		return game.MenuSelected, entries[cur]
	case tcell.KeyEscape:
		return game.MenuCancel, entries[cur]
	case tcell.KeyRune:
		switch k.Rune() {
		case 'k':
			return game.MenuNoResponse, entries[(cur-1+len(entries))%len(entries)]
		case 'j':
			return game.MenuNoResponse, entries[(cur+1)%len(entries)]
		}
	}
	return game.MenuNoResponse, entries[cur]
}

func menuLabel(s game.MainMenuSelection) string {
	switch s {
	case game.MenuNewGame:
		return "Begin New Game"
	case game.MenuLoadGame:
		return "Load Game"
	}
	return "Quit"
}

func (t *Terminal) drawMainMenu(entries []game.MainMenuSelection, cur int) {
	t.screen.Clear()
	sw, sh := t.screen.Size()
	y := max(0, sh/2-len(entries)-2)
	t.centered(y, "Dungeon Kernel", styleTitle)
	for i, e := range entries {
		st := styleMenu
		if i == cur {
			st = styleMenuSel
		}
		t.centered(y+2+i, menuLabel(e), st)
	}
	putText(t.screen, 0, sh-1, "Arrows to choose, Enter to confirm", styleMenu, sw)
	t.screen.Show()
}

func (t *Terminal) centered(y int, s string, st tcell.Style) {
	sw, _ := t.screen.Size()
	x := max(0, (sw-runewidth.StringWidth(s))/2)
	putText(t.screen, x, y, s, st, sw)
}

// GameOver shows the death screen until any key is pressed.
func (t *Terminal) GameOver() game.MenuResult {
	t.screen.Clear()
	_, sh := t.screen.Size()
	t.centered(sh/2-1, "Your journey has ended!", styleTitle)
	t.centered(sh/2+1, "Press any key to return to the menu.", styleMenu)
	t.screen.Show()

	switch t.poll().(type) {
	case nil, *tcell.EventKey:
		return game.MenuSelected
	}
	return game.MenuNoResponse
}
