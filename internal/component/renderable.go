package component

import (
	"dungeon-kernel/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 3

type Renderable struct {
	Glyph       rune
	FGColor     tcell.Color
	BGColor     tcell.Color
	RenderOrder int // lower draws first
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
