package render

import (
	"fmt"

	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/game"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var (
	styleHUD = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleLog = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
)

// drawHUD renders the status bar and the most recent log entries in the
// bottom hudRows rows of the screen.
func (t *Terminal) drawHUD(v game.View) {
	sw, sh := t.screen.Size()
	hudY := sh - hudRows
	if hudY < 0 {
		return
	}
	t.drawHLine(hudY, tcell.ColorGray)

	status := "HP: ?"
	if v.World != nil {
		if c := v.World.Get(v.Player, component.CCombatStats); c != nil {
			s := c.(component.CombatStats)
			status = fmt.Sprintf("HP: %d/%d", s.HP, s.MaxHP)
		}
	}
	if v.Map != nil {
		status = fmt.Sprintf("Depth: %d  %s", v.Map.Depth, status)
	}
	putText(t.screen, 1, hudY+1, status, styleHUD, sw-1)

	if v.Log == nil {
		return
	}
	lines := v.Log.Last(hudRows - 2)
	for i, msg := range lines {
		putText(t.screen, 1, hudY+2+i, msg, styleLog, sw-1)
	}
}

func (t *Terminal) drawHLine(y int, color tcell.Color) {
	w, _ := t.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		t.screen.SetContent(x, y, '─', nil, style)
	}
}

// putText writes s starting at (x, y), clipped so that nothing is drawn at
// or past column maxX. Wide runes take two columns.
func putText(scr tcell.Screen, x, y int, s string, st tcell.Style, maxX int) {
	if x >= maxX {
		return
	}
	s = runewidth.Truncate(s, maxX-x, "…")
	for _, r := range s {
		scr.SetContent(x, y, r, nil, st)
		x += max(1, runewidth.RuneWidth(r))
	}
}
