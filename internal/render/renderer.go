package render

import (
	"sort"

	"dungeon-kernel/internal/component"
	"dungeon-kernel/internal/ecs"
	"dungeon-kernel/internal/game"
	"dungeon-kernel/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

var (
	styleWall       = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
	styleFloor      = tcell.StyleDefault.Foreground(tcell.ColorTeal).Background(tcell.ColorBlack)
	styleStairs     = tcell.StyleDefault.Foreground(tcell.ColorAqua).Background(tcell.ColorBlack)
	styleRemembered = tcell.StyleDefault.Foreground(tcell.ColorDimGray).Background(tcell.ColorBlack)
)

// Draw renders the map, the entities the player can see and the HUD.
func (t *Terminal) Draw(v game.View) {
	t.screen.Clear()
	t.drawWorld(v)
	t.drawHUD(v)
	t.screen.Show()
}

func (t *Terminal) drawWorld(v game.View) {
	if v.Map == nil || v.World == nil {
		return
	}
	t.resizeCamera()
	if c := v.World.Get(v.Player, component.CPosition); c != nil {
		pos := c.(component.Position)
		t.camera.Fit(pos.X, pos.Y, v.Map.Width, v.Map.Height)
	}
	t.drawMap(v.Map)
	t.drawEntities(v.World, v.Map)
}

func tileGlyph(kind gamemap.TileKind) (rune, tcell.Style) {
	switch kind {
	case gamemap.TileWall:
		return '#', styleWall
	case gamemap.TileStairsDown:
		return '>', styleStairs
	}
	return '.', styleFloor
}

// drawMap renders every revealed tile. Tiles out of view are dimmed.
func (t *Terminal) drawMap(gmap *gamemap.GameMap) {
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			tile := gmap.At(x, y)
			if !tile.Revealed && !tile.Visible {
				continue
			}
			sx, sy, onScreen := t.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			glyph, style := tileGlyph(tile.Kind)
			if !tile.Visible {
				style = styleRemembered
			}
			t.screen.SetContent(sx, sy, glyph, nil, style)
		}
	}
}

type renderableEntity struct {
	id   ecs.EntityID
	pos  component.Position
	rend component.Renderable
}

// drawEntities renders entities standing on visible tiles, lowest
// RenderOrder first so the player is drawn over items.
func (t *Terminal) drawEntities(w *ecs.World, gmap *gamemap.GameMap) {
	ids := w.Query(component.CRenderable, component.CPosition)
	entities := make([]renderableEntity, 0, len(ids))
	for _, id := range ids {
		pos := w.Get(id, component.CPosition).(component.Position)
		if !gmap.InBounds(pos.X, pos.Y) || !gmap.At(pos.X, pos.Y).Visible {
			continue
		}
		rend := w.Get(id, component.CRenderable).(component.Renderable)
		entities = append(entities, renderableEntity{id: id, pos: pos, rend: rend})
	}
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].rend.RenderOrder < entities[j].rend.RenderOrder
	})
	for _, e := range entities {
		sx, sy, onScreen := t.camera.WorldToScreen(e.pos.X, e.pos.Y)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(e.rend.FGColor).Background(e.rend.BGColor)
		t.screen.SetContent(sx, sy, e.rend.Glyph, nil, style)
	}
}
