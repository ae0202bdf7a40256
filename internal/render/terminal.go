// Package render draws the dungeon on a tcell screen and turns key and
// mouse events into game decisions.
package render

import (
	"sync"

	"dungeon-kernel/internal/game"
	"dungeon-kernel/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// hudRows is the number of rows reserved for the status line and log.
const hudRows = 7

// Terminal implements game.UI on top of a tcell.Screen. Each input method
// consumes exactly one screen event, so a menu that has not been decided
// yet reports MenuNoResponse and is asked again on the next tick.
type Terminal struct {
	screen tcell.Screen
	camera *Camera

	menuTitle string
	cursor    int

	targeting bool
	target    gamemap.Point

	closeOnce sync.Once
}

var _ game.UI = (*Terminal)(nil)

// NewTerminal wraps an initialised screen. Mouse reporting is enabled for
// targeting.
func NewTerminal(screen tcell.Screen) *Terminal {
	screen.EnableMouse()
	w, h := screen.Size()
	return &Terminal{
		screen: screen,
		camera: NewCamera(0, 0, w, max(0, h-hudRows)),
	}
}

// Close restores the terminal. Any blocked input method returns as if the
// player had quit. It is safe to call more than once.
func (t *Terminal) Close() { t.closeOnce.Do(t.screen.Fini) }

// poll waits for the next key or mouse event. It returns nil when the
// screen has been finalised.
func (t *Terminal) poll() tcell.Event {
	for {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey, *tcell.EventMouse:
			return ev
		}
	}
}

// PlayerInput reads one event and maps it to an action. A closed screen
// asks the game to save and quit.
func (t *Terminal) PlayerInput() game.Action {
	ev := t.poll()
	if ev == nil {
		return game.ActionSaveQuit
	}
	if k, ok := ev.(*tcell.EventKey); ok {
		return keyToAction(k)
	}
	return game.ActionNone
}

func (t *Terminal) resizeCamera() {
	w, h := t.screen.Size()
	t.camera.Resize(w, max(0, h-hudRows))
}
